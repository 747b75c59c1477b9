package event

import (
	"github.com/shopspring/decimal"

	"github.com/Manaswita10/Finergize-sub000/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateType = "ScoringRequest"

// ---------------------------------------------------------------------------
// Scoring Request Events
// ---------------------------------------------------------------------------

// ScoringRequestReceived is raised when a new scoring request enters the system.
type ScoringRequestReceived struct {
	events.BaseEvent
	ApplicantID     string          `json:"applicant_id"`
	LoanType        string          `json:"loan_type"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	TermMonths      int             `json:"term_months"`
}

func NewScoringRequestReceived(
	requestID, applicantID, loanType string,
	amount decimal.Decimal, termMonths int,
) ScoringRequestReceived {
	return ScoringRequestReceived{
		BaseEvent:       events.NewBaseEvent("risk.scoring_request.received", requestID, aggregateType),
		ApplicantID:     applicantID,
		LoanType:        loanType,
		RequestedAmount: amount,
		TermMonths:      termMonths,
	}
}

// ScoringRequestRejected is raised when validation turns a submission away.
type ScoringRequestRejected struct {
	events.BaseEvent
	ApplicantID string `json:"applicant_id"`
	Field       string `json:"field"`
	Reason      string `json:"reason"`
}

func NewScoringRequestRejected(requestID, applicantID, field, reason string) ScoringRequestRejected {
	return ScoringRequestRejected{
		BaseEvent:   events.NewBaseEvent("risk.scoring_request.rejected", requestID, aggregateType),
		ApplicantID: applicantID,
		Field:       field,
		Reason:      reason,
	}
}

// ApplicationScored is raised when the prediction service returns a decision.
type ApplicationScored struct {
	events.BaseEvent
	ApplicantID string  `json:"applicant_id"`
	LoanType    string  `json:"loan_type"`
	Approved    bool    `json:"approved"`
	Confidence  float64 `json:"confidence"`
}

func NewApplicationScored(requestID, applicantID, loanType string, approved bool, confidence float64) ApplicationScored {
	return ApplicationScored{
		BaseEvent:   events.NewBaseEvent("risk.scoring_request.scored", requestID, aggregateType),
		ApplicantID: applicantID,
		LoanType:    loanType,
		Approved:    approved,
		Confidence:  confidence,
	}
}

// ScoringFailed is raised when the prediction call itself fails.
type ScoringFailed struct {
	events.BaseEvent
	ApplicantID string `json:"applicant_id"`
	Reason      string `json:"reason"`
}

func NewScoringFailed(requestID, applicantID, reason string) ScoringFailed {
	return ScoringFailed{
		BaseEvent:   events.NewBaseEvent("risk.scoring_request.failed", requestID, aggregateType),
		ApplicantID: applicantID,
		Reason:      reason,
	}
}
