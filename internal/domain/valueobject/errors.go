package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------

// Validation failure reasons.
const (
	ReasonRequired   = "required"
	ReasonNotNumeric = "not_numeric"
	ReasonNotInteger = "not_integer"
	ReasonOutOfRange = "out_of_range"
)

// ValidationError reports a single offending input field. It is local,
// synchronous, and always recoverable by resubmitting corrected input.
type ValidationError struct {
	Field  string
	Reason string
	Min    float64
	Max    float64
}

func (e *ValidationError) Error() string {
	label := FieldLabel(e.Field)
	switch e.Reason {
	case ReasonRequired:
		return fmt.Sprintf("Please enter %s", label)
	case ReasonNotNumeric:
		return fmt.Sprintf("%s must be a number", label)
	case ReasonNotInteger:
		return fmt.Sprintf("%s must be a whole number", label)
	case ReasonOutOfRange:
		return fmt.Sprintf("%s must be between %v and %v", label, e.Min, e.Max)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// NewRequiredError reports an absent or empty required field.
func NewRequiredError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: ReasonRequired}
}

// NewNotNumericError reports a field that failed numeric parsing.
func NewNotNumericError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: ReasonNotNumeric}
}

// NewNotIntegerError reports a field that must hold an integer value.
func NewNotIntegerError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: ReasonNotInteger}
}

// NewOutOfRangeError reports a parsed value outside its registry range.
func NewOutOfRangeError(field string, r FieldRange) *ValidationError {
	return &ValidationError{Field: field, Reason: ReasonOutOfRange, Min: r.Min, Max: r.Max}
}

// ConfigurationError means a caller asked the registry for a field it does
// not define. This is a programmer error, not user input: wiring that hits
// it is broken and should fail loudly.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no range configured for field %q", e.Field)
}

// RangeError is raised by the strict standardization path when a value lies
// outside its field range. Values are rejected, never clamped: a vector
// built from out-of-bounds input would mislead the model.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("field %s: value %v outside range [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// Prediction failure reasons.
const (
	PredictionReasonTimeout   = "timeout"
	PredictionReasonHTTPError = "http_error"
	PredictionReasonMalformed = "malformed_response"
)

// PredictionError wraps failures of the external prediction call. It is the
// only error in the pipeline that crosses a network boundary; callers render
// it as a generic retry prompt without internal detail.
type PredictionError struct {
	Reason string
	Err    error
}

func (e *PredictionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prediction service: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("prediction service: %s", e.Reason)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrScoringRequestNotFound  = errors.New("scoring request not found")
)
