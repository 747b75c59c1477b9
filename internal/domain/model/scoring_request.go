package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/event"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ScoringRequest aggregate root
// ---------------------------------------------------------------------------

// ScoringRequest is the record of one loan-risk scoring attempt. It is an
// immutable aggregate: every mutation returns a new copy.
//
// Lifecycle: RECEIVED -> VALIDATED -> SCORED | FAILED, or
// RECEIVED -> REJECTED when validation turns the submission away.
type ScoringRequest struct {
	id              string
	applicantID     string
	loanType        valueobject.LoanType
	requestedAmount decimal.Decimal
	termMonths      int
	interestRate    float64
	status          valueobject.ScoringStatus
	rejectionField  string
	rejectionReason string
	approved        bool
	confidence      float64
	feedback        []string
	failureReason   string
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewScoringRequest creates a brand-new request in RECEIVED status.
func NewScoringRequest(
	applicantID string,
	loanType valueobject.LoanType,
	requestedAmount decimal.Decimal,
	termMonths int,
	interestRate float64,
	now time.Time,
) (ScoringRequest, error) {
	if applicantID == "" {
		return ScoringRequest{}, errors.New("applicant ID is required")
	}
	if loanType.IsZero() {
		return ScoringRequest{}, errors.New("loan type is required")
	}
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return ScoringRequest{}, errors.New("requested amount must be positive")
	}
	if termMonths <= 0 {
		return ScoringRequest{}, errors.New("term months must be positive")
	}

	id := uuid.New().String()
	req := ScoringRequest{
		id:              id,
		applicantID:     applicantID,
		loanType:        loanType,
		requestedAmount: requestedAmount,
		termMonths:      termMonths,
		interestRate:    interestRate,
		status:          valueobject.ScoringStatusReceived,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}

	received := event.NewScoringRequestReceived(
		id, applicantID, loanType.String(), requestedAmount, termMonths,
	)
	req.domainEvents = append(req.domainEvents, received)
	return req, nil
}

// ReconstructScoringRequest rebuilds an aggregate from persistence without side-effects.
func ReconstructScoringRequest(
	id, applicantID string,
	loanType valueobject.LoanType,
	requestedAmount decimal.Decimal,
	termMonths int,
	interestRate float64,
	status valueobject.ScoringStatus,
	rejectionField, rejectionReason string,
	approved bool,
	confidence float64,
	feedback []string,
	failureReason string,
	version int,
	createdAt, updatedAt time.Time,
) ScoringRequest {
	return ScoringRequest{
		id:              id,
		applicantID:     applicantID,
		loanType:        loanType,
		requestedAmount: requestedAmount,
		termMonths:      termMonths,
		interestRate:    interestRate,
		status:          status,
		rejectionField:  rejectionField,
		rejectionReason: rejectionReason,
		approved:        approved,
		confidence:      confidence,
		feedback:        feedback,
		failureReason:   failureReason,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// MarkValidated transitions RECEIVED -> VALIDATED once input checks pass.
func (r ScoringRequest) MarkValidated(now time.Time) (ScoringRequest, error) {
	if !r.status.Equal(valueobject.ScoringStatusReceived) {
		return r, valueobject.ErrInvalidStatusTransition
	}
	next := r
	next.status = valueobject.ScoringStatusValidated
	next.updatedAt = now
	next.domainEvents = copyEvents(r.domainEvents)
	return next, nil
}

// RejectValidation transitions RECEIVED -> REJECTED and emits ScoringRequestRejected.
func (r ScoringRequest) RejectValidation(field, reason string, now time.Time) (ScoringRequest, error) {
	if !r.status.Equal(valueobject.ScoringStatusReceived) {
		return r, valueobject.ErrInvalidStatusTransition
	}
	next := r
	next.status = valueobject.ScoringStatusRejected
	next.rejectionField = field
	next.rejectionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(r.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewScoringRequestRejected(
		r.id, r.applicantID, field, reason,
	))
	return next, nil
}

// ApplyDecision transitions VALIDATED -> SCORED and emits ApplicationScored.
func (r ScoringRequest) ApplyDecision(decision Decision, now time.Time) (ScoringRequest, error) {
	if !r.status.Equal(valueobject.ScoringStatusValidated) {
		return r, valueobject.ErrInvalidStatusTransition
	}
	next := r
	next.status = valueobject.ScoringStatusScored
	next.approved = decision.Approved
	next.confidence = decision.Confidence
	next.feedback = append([]string(nil), decision.Feedback...)
	next.updatedAt = now
	next.domainEvents = copyEvents(r.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationScored(
		r.id, r.applicantID, r.loanType.String(), decision.Approved, decision.Confidence,
	))
	return next, nil
}

// MarkFailed transitions VALIDATED -> FAILED when the prediction call errors out.
func (r ScoringRequest) MarkFailed(reason string, now time.Time) (ScoringRequest, error) {
	if !r.status.Equal(valueobject.ScoringStatusValidated) {
		return r, valueobject.ErrInvalidStatusTransition
	}
	next := r
	next.status = valueobject.ScoringStatusFailed
	next.failureReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(r.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewScoringFailed(
		r.id, r.applicantID, reason,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r ScoringRequest) ID() string                         { return r.id }
func (r ScoringRequest) ApplicantID() string                { return r.applicantID }
func (r ScoringRequest) LoanType() valueobject.LoanType     { return r.loanType }
func (r ScoringRequest) RequestedAmount() decimal.Decimal   { return r.requestedAmount }
func (r ScoringRequest) TermMonths() int                    { return r.termMonths }
func (r ScoringRequest) InterestRate() float64              { return r.interestRate }
func (r ScoringRequest) Status() valueobject.ScoringStatus  { return r.status }
func (r ScoringRequest) RejectionField() string             { return r.rejectionField }
func (r ScoringRequest) RejectionReason() string            { return r.rejectionReason }
func (r ScoringRequest) Approved() bool                     { return r.approved }
func (r ScoringRequest) Confidence() float64                { return r.confidence }
func (r ScoringRequest) Feedback() []string                 { return r.feedback }
func (r ScoringRequest) FailureReason() string              { return r.failureReason }
func (r ScoringRequest) Version() int                       { return r.version }
func (r ScoringRequest) CreatedAt() time.Time               { return r.createdAt }
func (r ScoringRequest) UpdatedAt() time.Time               { return r.updatedAt }
func (r ScoringRequest) DomainEvents() []event.DomainEvent  { return r.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (r ScoringRequest) ClearEvents() ScoringRequest {
	next := r
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
