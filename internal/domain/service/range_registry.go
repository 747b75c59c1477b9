package service

import (
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RangeRegistry – canonical (min, max) bounds for every feature-vector field
// ---------------------------------------------------------------------------

// RangeRegistry is the single source of truth for field domains. It is built
// once at process start and read-only afterwards; validator and standardizer
// both consult it, so the two can never disagree on a bound.
type RangeRegistry struct {
	fields  map[string]valueobject.FieldRange
	product map[string]map[string]valueobject.FieldRange
}

// NewRangeRegistry returns the registry with the canonical bounds table.
//
// loan_amount, term, and int_rate carry provider limits that differ per
// product; everything else is loan-type-agnostic.
func NewRangeRegistry() *RangeRegistry {
	mustRange := valueobject.MustFieldRange

	fields := map[string]valueobject.FieldRange{
		valueobject.FieldAnnualIncome:       mustRange(valueobject.FieldAnnualIncome, 0, 100_000_000),
		valueobject.FieldCreditScore:        mustRange(valueobject.FieldCreditScore, 300, 850),
		valueobject.FieldPersonAge:          mustRange(valueobject.FieldPersonAge, 18, 80),
		valueobject.FieldDebtToIncome:       mustRange(valueobject.FieldDebtToIncome, 0, 100),
		valueobject.FieldEducationLevel:     mustRange(valueobject.FieldEducationLevel, 1, 5),
		valueobject.FieldCreditRisk:         mustRange(valueobject.FieldCreditRisk, 0, 100),
		valueobject.FieldMortgage:           mustRange(valueobject.FieldMortgage, 0, 100_000_000),
		valueobject.FieldEmpLength:          mustRange(valueobject.FieldEmpLength, 0, 50),
		valueobject.FieldCreditCardUsage:    mustRange(valueobject.FieldCreditCardUsage, 0, 100),
		valueobject.FieldCreditCardActivity: mustRange(valueobject.FieldCreditCardActivity, 1, 5),
		valueobject.FieldHomeOwnership:      mustRange(valueobject.FieldHomeOwnership, 0, 3),
	}

	product := map[string]map[string]valueobject.FieldRange{
		valueobject.LoanTypeStudent.String(): {
			valueobject.FieldLoanAmount:   mustRange(valueobject.FieldLoanAmount, 10_000, 5_000_000),
			valueobject.FieldTerm:         mustRange(valueobject.FieldTerm, 6, 120),
			valueobject.FieldInterestRate: mustRange(valueobject.FieldInterestRate, 4, 18),
		},
		valueobject.LoanTypeAgricultural.String(): {
			valueobject.FieldLoanAmount:   mustRange(valueobject.FieldLoanAmount, 25_000, 50_000_000),
			valueobject.FieldTerm:         mustRange(valueobject.FieldTerm, 12, 240),
			valueobject.FieldInterestRate: mustRange(valueobject.FieldInterestRate, 6, 20),
		},
		valueobject.LoanTypeBusiness.String(): {
			valueobject.FieldLoanAmount:   mustRange(valueobject.FieldLoanAmount, 50_000, 100_000_000),
			valueobject.FieldTerm:         mustRange(valueobject.FieldTerm, 12, 360),
			valueobject.FieldInterestRate: mustRange(valueobject.FieldInterestRate, 8, 24),
		},
	}

	return &RangeRegistry{fields: fields, product: product}
}

// Range returns the bounds for a loan-type-agnostic field.
func (r *RangeRegistry) Range(field string) (valueobject.FieldRange, error) {
	fr, ok := r.fields[field]
	if !ok {
		return valueobject.FieldRange{}, &valueobject.ConfigurationError{Field: field}
	}
	return fr, nil
}

// ProductRange returns the bounds for a loan-context field (loan_amount,
// term, int_rate) under the given loan type.
func (r *RangeRegistry) ProductRange(loanType valueobject.LoanType, field string) (valueobject.FieldRange, error) {
	byField, ok := r.product[loanType.String()]
	if !ok {
		return valueobject.FieldRange{}, &valueobject.ConfigurationError{Field: field}
	}
	fr, ok := byField[field]
	if !ok {
		return valueobject.FieldRange{}, &valueobject.ConfigurationError{Field: field}
	}
	return fr, nil
}
