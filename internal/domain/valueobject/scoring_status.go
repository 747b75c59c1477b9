package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ScoringStatus – immutable value object
// ---------------------------------------------------------------------------

// ScoringStatus represents the lifecycle stage of a scoring request.
type ScoringStatus struct {
	value string
}

const (
	scoringStatusReceived  = "RECEIVED"
	scoringStatusValidated = "VALIDATED"
	scoringStatusScored    = "SCORED"
	scoringStatusRejected  = "REJECTED"
	scoringStatusFailed    = "FAILED"
)

var (
	ScoringStatusReceived  = ScoringStatus{value: scoringStatusReceived}
	ScoringStatusValidated = ScoringStatus{value: scoringStatusValidated}
	ScoringStatusScored    = ScoringStatus{value: scoringStatusScored}
	ScoringStatusRejected  = ScoringStatus{value: scoringStatusRejected}
	ScoringStatusFailed    = ScoringStatus{value: scoringStatusFailed}
)

var validScoringStatuses = map[string]ScoringStatus{
	scoringStatusReceived:  ScoringStatusReceived,
	scoringStatusValidated: ScoringStatusValidated,
	scoringStatusScored:    ScoringStatusScored,
	scoringStatusRejected:  ScoringStatusRejected,
	scoringStatusFailed:    ScoringStatusFailed,
}

// NewScoringStatus creates a ScoringStatus from a raw string.
func NewScoringStatus(s string) (ScoringStatus, error) {
	v, ok := validScoringStatuses[s]
	if !ok {
		return ScoringStatus{}, fmt.Errorf("invalid scoring status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ScoringStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ScoringStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ScoringStatus) Equal(other ScoringStatus) bool { return s.value == other.value }
