package valueobject

// RawInput is one loan-application submission exactly as the form layer
// produced it: string-keyed, string-valued, unvalidated. It is consumed once
// by the validator and never persisted here.
type RawInput map[string]string

// Get returns the trimmed-nothing raw value for a field and whether a
// non-empty value was supplied.
func (in RawInput) Get(field string) (string, bool) {
	v, ok := in[field]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// ---------------------------------------------------------------------------
// Validated fields – discriminated union over loan types
// ---------------------------------------------------------------------------

// LoanDetails is the per-loan-type portion of a validated application.
// Exactly one concrete type exists per loan type; dispatch is a type switch,
// not dynamic string lookup.
type LoanDetails interface {
	LoanType() LoanType
}

// StudentDetails holds the extra fields a student loan requires.
type StudentDetails struct {
	EducationLevel int
	CreditRisk     float64
}

func (StudentDetails) LoanType() LoanType { return LoanTypeStudent }

// AgriculturalDetails holds the extra fields an agricultural loan requires.
type AgriculturalDetails struct {
	Mortgage      float64
	HomeOwnership int
	EmpLength     float64
}

func (AgriculturalDetails) LoanType() LoanType { return LoanTypeAgricultural }

// BusinessDetails holds the extra fields a business loan requires.
type BusinessDetails struct {
	EmpLength          float64
	CreditCardUsage    float64
	CreditCardActivity int
}

func (BusinessDetails) LoanType() LoanType { return LoanTypeBusiness }

// ApplicationFields is the validated, numerically-typed form of one
// submission: the four common attributes plus the loan-type-specific detail
// set. Produced only by the validator.
type ApplicationFields struct {
	AnnualIncome float64
	DebtToIncome float64
	CreditScore  float64
	PersonAge    float64
	Details      LoanDetails
}

// ---------------------------------------------------------------------------
// Loan context
// ---------------------------------------------------------------------------

// LoanContext carries the terms computed by the upstream loan calculator.
// Amount, term, and rate are standardized into the feature vector; monthly
// payment and processing fee ride along for the record only.
type LoanContext struct {
	LoanType       LoanType
	Amount         float64
	TermMonths     int
	InterestRate   float64
	MonthlyPayment float64
	ProcessingFee  float64
}
