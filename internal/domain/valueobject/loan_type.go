package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// LoanType – immutable value object
// ---------------------------------------------------------------------------

// LoanType identifies the loan product an application belongs to. It decides
// which additional fields the applicant must supply and which ones appear in
// the feature vector.
type LoanType struct {
	value string
}

const (
	loanTypeStudent      = "student"
	loanTypeAgricultural = "agricultural"
	loanTypeBusiness     = "business"
)

var (
	LoanTypeStudent      = LoanType{value: loanTypeStudent}
	LoanTypeAgricultural = LoanType{value: loanTypeAgricultural}
	LoanTypeBusiness     = LoanType{value: loanTypeBusiness}
)

var validLoanTypes = map[string]LoanType{
	loanTypeStudent:      LoanTypeStudent,
	loanTypeAgricultural: LoanTypeAgricultural,
	loanTypeBusiness:     LoanTypeBusiness,
}

// NewLoanType creates a LoanType from a raw string.
func NewLoanType(s string) (LoanType, error) {
	v, ok := validLoanTypes[s]
	if !ok {
		return LoanType{}, fmt.Errorf("invalid loan type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the loan type.
func (t LoanType) String() string { return t.value }

// IsZero returns true if the loan type has not been initialised.
func (t LoanType) IsZero() bool { return t.value == "" }

// Equal returns true when both loan types carry the same value.
func (t LoanType) Equal(other LoanType) bool { return t.value == other.value }
