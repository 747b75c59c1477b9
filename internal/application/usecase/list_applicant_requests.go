package usecase

import (
	"context"
	"fmt"

	"github.com/Manaswita10/Finergize-sub000/internal/application/dto"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/port"
)

// ListApplicantRequestsUseCase retrieves an applicant's scoring history,
// newest first.
type ListApplicantRequestsUseCase struct {
	repo port.ScoringRequestRepository
}

// NewListApplicantRequestsUseCase wires dependencies.
func NewListApplicantRequestsUseCase(repo port.ScoringRequestRepository) *ListApplicantRequestsUseCase {
	return &ListApplicantRequestsUseCase{repo: repo}
}

// Execute looks up all scoring requests for the applicant. An applicant with
// no history yields an empty list, not an error.
func (uc *ListApplicantRequestsUseCase) Execute(
	ctx context.Context,
	req dto.ListApplicantRequestsRequest,
) ([]dto.ScoringRequestResponse, error) {
	requests, err := uc.repo.FindByApplicantID(ctx, req.ApplicantID)
	if err != nil {
		return nil, fmt.Errorf("find scoring requests for applicant: %w", err)
	}

	responses := make([]dto.ScoringRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toScoringRequestResponse(request))
	}
	return responses, nil
}
