package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Manaswita10/Finergize-sub000/internal/application/dto"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/model"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/port"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/service"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

// ScoreApplicationUseCase orchestrates the full pipeline for one submission:
// validate raw input, build the standardized feature vector, obtain a
// decision (cache first, then the prediction service), persist the request,
// and publish domain events.
type ScoreApplicationUseCase struct {
	repo        port.ScoringRequestRepository
	publisher   port.EventPublisher
	predictor   port.PredictionClient
	cache       port.DecisionCache
	validator   *service.Validator
	standardize *service.Standardizer
	logger      *slog.Logger
	cacheTTL    time.Duration
}

// NewScoreApplicationUseCase wires dependencies. cache may be nil when
// decision caching is disabled.
func NewScoreApplicationUseCase(
	repo port.ScoringRequestRepository,
	publisher port.EventPublisher,
	predictor port.PredictionClient,
	cache port.DecisionCache,
	validator *service.Validator,
	standardizer *service.Standardizer,
	logger *slog.Logger,
	cacheTTL time.Duration,
) *ScoreApplicationUseCase {
	return &ScoreApplicationUseCase{
		repo:        repo,
		publisher:   publisher,
		predictor:   predictor,
		cache:       cache,
		validator:   validator,
		standardize: standardizer,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Execute runs the scoring pipeline. A *valueobject.ValidationError is
// returned for bad input (the request is persisted as REJECTED and no model
// call is made); a *valueobject.PredictionError when the model service fails.
func (uc *ScoreApplicationUseCase) Execute(
	ctx context.Context,
	req dto.ScoreApplicationRequest,
) (dto.ScoringRequestResponse, error) {
	now := time.Now().UTC()

	loanType, err := valueobject.NewLoanType(req.LoanType)
	if err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("parse loan type: %w", err)
	}

	// 1. Create the aggregate.
	request, err := model.NewScoringRequest(
		req.ApplicantID, loanType, req.Amount, req.TermMonths, req.InterestRate, now,
	)
	if err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("create scoring request: %w", err)
	}

	loan := valueobject.LoanContext{
		LoanType:       loanType,
		Amount:         req.Amount.InexactFloat64(),
		TermMonths:     req.TermMonths,
		InterestRate:   req.InterestRate,
		MonthlyPayment: req.MonthlyPayment.InexactFloat64(),
		ProcessingFee:  req.ProcessingFee.InexactFloat64(),
	}

	// 2. Validate raw input and the loan context. Failures are terminal for
	// this submission: persist the rejection, publish, and surface the field
	// error.
	fields, err := uc.validator.Validate(valueobject.RawInput(req.Fields), loanType)
	if err != nil {
		var vErr *valueobject.ValidationError
		if errors.As(err, &vErr) {
			return uc.reject(ctx, request, vErr, now)
		}
		return dto.ScoringRequestResponse{}, fmt.Errorf("validate input: %w", err)
	}
	if err := uc.validator.ValidateLoanContext(loan); err != nil {
		var vErr *valueobject.ValidationError
		if errors.As(err, &vErr) {
			return uc.reject(ctx, request, vErr, now)
		}
		return dto.ScoringRequestResponse{}, fmt.Errorf("validate loan context: %w", err)
	}

	request, err = request.MarkValidated(now)
	if err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("mark validated: %w", err)
	}

	// 3. Build the standardized feature vector.
	vector, err := uc.standardize.BuildVector(fields, loan)
	if err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("build feature vector: %w", err)
	}

	// 4. Obtain a decision: cache first, then the prediction service.
	decision, err := uc.decide(ctx, vector)
	if err != nil {
		return uc.fail(ctx, request, err, now)
	}

	// 5. Apply the decision.
	request, err = request.ApplyDecision(decision, now)
	if err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	// 6. Persist.
	if err := uc.repo.Save(ctx, request); err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("save scoring request: %w", err)
	}

	// 7. Publish domain events.
	if err := uc.publisher.Publish(ctx, request.DomainEvents()...); err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toScoringRequestResponse(request), nil
}

// decide consults the cache and falls back to the prediction client.
func (uc *ScoreApplicationUseCase) decide(ctx context.Context, vector model.FeatureVector) (model.Decision, error) {
	key := vector.Hash()

	if uc.cache != nil {
		if decision, ok := uc.cache.Get(ctx, key); ok {
			uc.logger.DebugContext(ctx, "decision cache hit", "key", key)
			return decision, nil
		}
	}

	decision, err := uc.predictor.Predict(ctx, vector)
	if err != nil {
		return model.Decision{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, decision, uc.cacheTTL); err != nil {
			// Cache failures never fail the request.
			uc.logger.WarnContext(ctx, "decision cache store failed", "error", err)
		}
	}
	return decision, nil
}

// reject records a validation rejection and returns the field error.
func (uc *ScoreApplicationUseCase) reject(
	ctx context.Context,
	request model.ScoringRequest,
	vErr *valueobject.ValidationError,
	now time.Time,
) (dto.ScoringRequestResponse, error) {
	rejected, err := request.RejectValidation(vErr.Field, vErr.Error(), now)
	if err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("reject request: %w", err)
	}
	if err := uc.repo.Save(ctx, rejected); err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("save rejected request: %w", err)
	}
	if err := uc.publisher.Publish(ctx, rejected.DomainEvents()...); err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("publish events: %w", err)
	}
	return toScoringRequestResponse(rejected), vErr
}

// fail records a prediction-service failure and surfaces the typed error.
func (uc *ScoreApplicationUseCase) fail(
	ctx context.Context,
	request model.ScoringRequest,
	cause error,
	now time.Time,
) (dto.ScoringRequestResponse, error) {
	reason := "prediction unavailable"
	var pErr *valueobject.PredictionError
	if errors.As(cause, &pErr) {
		reason = pErr.Reason
	}

	failed, err := request.MarkFailed(reason, now)
	if err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("mark failed: %w", err)
	}
	if err := uc.repo.Save(ctx, failed); err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("save failed request: %w", err)
	}
	if err := uc.publisher.Publish(ctx, failed.DomainEvents()...); err != nil {
		return dto.ScoringRequestResponse{}, fmt.Errorf("publish events: %w", err)
	}
	return toScoringRequestResponse(failed), cause
}

func toScoringRequestResponse(req model.ScoringRequest) dto.ScoringRequestResponse {
	return dto.ScoringRequestResponse{
		ID:              req.ID(),
		ApplicantID:     req.ApplicantID(),
		LoanType:        req.LoanType().String(),
		RequestedAmount: req.RequestedAmount(),
		TermMonths:      req.TermMonths(),
		InterestRate:    req.InterestRate(),
		Status:          req.Status().String(),
		RejectionField:  req.RejectionField(),
		RejectionReason: req.RejectionReason(),
		Approved:        req.Approved(),
		Confidence:      req.Confidence(),
		Feedback:        req.Feedback(),
		CreatedAt:       req.CreatedAt(),
		UpdatedAt:       req.UpdatedAt(),
	}
}
