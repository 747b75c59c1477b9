package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Manaswita10/Finergize-sub000/internal/application/dto"
	"github.com/Manaswita10/Finergize-sub000/internal/application/usecase"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

// RiskHandler exposes the scoring pipeline over gRPC.
type RiskHandler struct {
	UnimplementedRiskServiceServer

	score *usecase.ScoreApplicationUseCase
	get   *usecase.GetScoringRequestUseCase
}

// NewRiskHandler creates a new handler with all use-case dependencies.
func NewRiskHandler(
	score *usecase.ScoreApplicationUseCase,
	get *usecase.GetScoringRequestUseCase,
) *RiskHandler {
	return &RiskHandler{
		score: score,
		get:   get,
	}
}

// ScoreApplication validates, standardizes and scores one loan application.
func (h *RiskHandler) ScoreApplication(
	ctx context.Context,
	req *ScoreApplicationRequest,
) (*ScoreApplicationResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}
	monthlyPayment, err := parseOptionalDecimal(req.MonthlyPayment)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly_payment: %v", err)
	}
	processingFee, err := parseOptionalDecimal(req.ProcessingFee)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid processing_fee: %v", err)
	}

	resp, err := h.score.Execute(ctx, dto.ScoreApplicationRequest{
		ApplicantID:    req.ApplicantID,
		LoanType:       req.LoanType,
		Fields:         req.Fields,
		Amount:         amount,
		TermMonths:     int(req.TermMonths),
		InterestRate:   req.InterestRate,
		MonthlyPayment: monthlyPayment,
		ProcessingFee:  processingFee,
	})
	if err != nil {
		var vErr *valueobject.ValidationError
		if errors.As(err, &vErr) {
			// A rejected application is a valid outcome, not a transport error.
			return &ScoreApplicationResponse{Request: toProtoScoringRequest(resp)}, nil
		}
		var pErr *valueobject.PredictionError
		if errors.As(err, &pErr) {
			return nil, status.Error(codes.Unavailable, "scoring is temporarily unavailable, please try again")
		}
		return nil, toStatusError(err)
	}

	return &ScoreApplicationResponse{Request: toProtoScoringRequest(resp)}, nil
}

// GetScoringRequest retrieves a scoring request by ID.
func (h *RiskHandler) GetScoringRequest(
	ctx context.Context,
	req *GetScoringRequestRequest,
) (*GetScoringRequestResponse, error) {
	resp, err := h.get.Execute(ctx, dto.GetScoringRequestRequest{RequestID: req.RequestID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetScoringRequestResponse{Request: toProtoScoringRequest(resp)}, nil
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrScoringRequestNotFound):
		return status.Error(codes.NotFound, "scoring request not found")
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}

func toProtoScoringRequest(resp dto.ScoringRequestResponse) *ScoringRequest {
	return &ScoringRequest{
		ID:              resp.ID,
		ApplicantID:     resp.ApplicantID,
		LoanType:        resp.LoanType,
		RequestedAmount: resp.RequestedAmount.String(),
		TermMonths:      int32(resp.TermMonths),
		InterestRate:    resp.InterestRate,
		Status:          resp.Status,
		RejectionField:  resp.RejectionField,
		RejectionReason: resp.RejectionReason,
		Approved:        resp.Approved,
		Confidence:      resp.Confidence,
		Feedback:        resp.Feedback,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
