package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/model"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
	pkgpostgres "github.com/Manaswita10/Finergize-sub000/pkg/postgres"
)

// ScoringRequestRepo implements port.ScoringRequestRepository.
type ScoringRequestRepo struct {
	db pkgpostgres.Querier
}

// NewScoringRequestRepo creates a new repository backed by PostgreSQL.
// db may be a pool or an open transaction.
func NewScoringRequestRepo(db pkgpostgres.Querier) *ScoringRequestRepo {
	return &ScoringRequestRepo{db: db}
}

// Save persists a scoring request (upsert by ID with optimistic locking).
func (r *ScoringRequestRepo) Save(ctx context.Context, req model.ScoringRequest) error {
	query := `
		INSERT INTO scoring_requests (
			id, applicant_id, loan_type, requested_amount, term_months,
			interest_rate, status, rejection_field, rejection_reason,
			approved, confidence, feedback, failure_reason,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (id) DO UPDATE SET
			status           = EXCLUDED.status,
			rejection_field  = EXCLUDED.rejection_field,
			rejection_reason = EXCLUDED.rejection_reason,
			approved         = EXCLUDED.approved,
			confidence       = EXCLUDED.confidence,
			feedback         = EXCLUDED.feedback,
			failure_reason   = EXCLUDED.failure_reason,
			version          = scoring_requests.version + 1,
			updated_at       = EXCLUDED.updated_at
		WHERE scoring_requests.version = $14
	`
	tag, err := r.db.Exec(ctx, query,
		req.ID(), req.ApplicantID(), req.LoanType().String(),
		req.RequestedAmount(), req.TermMonths(), req.InterestRate(),
		req.Status().String(), req.RejectionField(), req.RejectionReason(),
		req.Approved(), req.Confidence(), req.Feedback(), req.FailureReason(),
		req.Version(), req.CreatedAt(), req.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save scoring request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on scoring request")
	}
	return nil
}

// FindByID retrieves a single scoring request.
func (r *ScoringRequestRepo) FindByID(ctx context.Context, id string) (model.ScoringRequest, error) {
	query := `
		SELECT id, applicant_id, loan_type, requested_amount, term_months,
		       interest_rate, status, rejection_field, rejection_reason,
		       approved, confidence, feedback, failure_reason,
		       version, created_at, updated_at
		FROM scoring_requests
		WHERE id = $1
	`
	req, err := scanScoringRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ScoringRequest{}, valueobject.ErrScoringRequestNotFound
		}
		return model.ScoringRequest{}, err
	}
	return req, nil
}

// FindByApplicantID retrieves all scoring requests for a given applicant.
func (r *ScoringRequestRepo) FindByApplicantID(ctx context.Context, applicantID string) ([]model.ScoringRequest, error) {
	query := `
		SELECT id, applicant_id, loan_type, requested_amount, term_months,
		       interest_rate, status, rejection_field, rejection_reason,
		       approved, confidence, feedback, failure_reason,
		       version, created_at, updated_at
		FROM scoring_requests
		WHERE applicant_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("query scoring requests: %w", err)
	}
	defer rows.Close()

	var result []model.ScoringRequest
	for rows.Next() {
		req, err := scanScoringRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, rows.Err()
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanScoringRequest(s scannable) (model.ScoringRequest, error) {
	var (
		id, applicantID, loanTypeStr     string
		requestedAmount                  decimal.Decimal
		termMonths                       int
		interestRate                     float64
		statusStr                        string
		rejectionField, rejectionReason  string
		approved                         bool
		confidence                       float64
		feedback                         []string
		failureReason                    string
		version                          int
		createdAt, updatedAt             time.Time
	)

	err := s.Scan(
		&id, &applicantID, &loanTypeStr,
		&requestedAmount, &termMonths, &interestRate,
		&statusStr, &rejectionField, &rejectionReason,
		&approved, &confidence, &feedback, &failureReason,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ScoringRequest{}, err
		}
		return model.ScoringRequest{}, fmt.Errorf("scan scoring request: %w", err)
	}

	loanType, err := valueobject.NewLoanType(loanTypeStr)
	if err != nil {
		return model.ScoringRequest{}, fmt.Errorf("parse loan type: %w", err)
	}
	status, err := valueobject.NewScoringStatus(statusStr)
	if err != nil {
		return model.ScoringRequest{}, fmt.Errorf("parse status: %w", err)
	}

	return model.ReconstructScoringRequest(
		id, applicantID, loanType,
		requestedAmount, termMonths, interestRate,
		status, rejectionField, rejectionReason,
		approved, confidence, feedback, failureReason,
		version, createdAt, updatedAt,
	), nil
}
