package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// ScoreApplicationRequest carries one loan-application submission: the raw
// form fields plus the loan context computed by the upstream calculator.
type ScoreApplicationRequest struct {
	ApplicantID    string            `json:"applicant_id"`
	LoanType       string            `json:"loan_type"`
	Fields         map[string]string `json:"fields"`
	Amount         decimal.Decimal   `json:"amount"`
	TermMonths     int               `json:"term_months"`
	InterestRate   float64           `json:"interest_rate"`
	MonthlyPayment decimal.Decimal   `json:"monthly_payment"`
	ProcessingFee  decimal.Decimal   `json:"processing_fee"`
}

// GetScoringRequestRequest identifies a scoring request to retrieve.
type GetScoringRequestRequest struct {
	RequestID string `json:"request_id"`
}

// ListApplicantRequestsRequest identifies an applicant whose scoring history
// is being retrieved.
type ListApplicantRequestsRequest struct {
	ApplicantID string `json:"applicant_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScoringRequestResponse is the external representation of a scoring request.
type ScoringRequestResponse struct {
	ID              string          `json:"id"`
	ApplicantID     string          `json:"applicant_id"`
	LoanType        string          `json:"loan_type"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	TermMonths      int             `json:"term_months"`
	InterestRate    float64         `json:"interest_rate"`
	Status          string          `json:"status"`
	RejectionField  string          `json:"rejection_field,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	Approved        bool            `json:"approved"`
	Confidence      float64         `json:"confidence"`
	Feedback        []string        `json:"feedback,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
