package usecase

import (
	"context"
	"fmt"

	"github.com/Manaswita10/Finergize-sub000/internal/application/dto"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/port"
)

// GetScoringRequestUseCase retrieves a single scoring request by ID.
type GetScoringRequestUseCase struct {
	repo port.ScoringRequestRepository
}

// NewGetScoringRequestUseCase wires dependencies.
func NewGetScoringRequestUseCase(repo port.ScoringRequestRepository) *GetScoringRequestUseCase {
	return &GetScoringRequestUseCase{repo: repo}
}

// Execute looks up the request and maps it to the response DTO.
func (uc *GetScoringRequestUseCase) Execute(
	ctx context.Context,
	req dto.GetScoringRequestRequest,
) (dto.ScoringRequestResponse, error) {
	request, err := uc.repo.FindByID(ctx, req.RequestID)
	if err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("find scoring request: %w", err)
	}
	return toScoringRequestResponse(request), nil
}
