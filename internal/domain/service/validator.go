package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Validator – presence and range checks on raw form input
// ---------------------------------------------------------------------------

// Validator enforces required-field presence, numeric parseability, and range
// membership before any standardization happens. It is a pure function of its
// inputs: validation is all-or-nothing per submission and the first failing
// field wins.
type Validator struct {
	registry *RangeRegistry
}

// NewValidator creates a validator bound to the given registry.
func NewValidator(registry *RangeRegistry) *Validator {
	return &Validator{registry: registry}
}

// commonFields are required for every loan type, checked in this order.
var commonFields = []string{
	valueobject.FieldAnnualIncome,
	valueobject.FieldDebtToIncome,
	valueobject.FieldCreditScore,
	valueobject.FieldPersonAge,
}

// Validate checks one raw submission against the registry for the given loan
// type. On success it returns the parsed, typed field set; on failure the
// *valueobject.ValidationError names the offending field.
func (v *Validator) Validate(input valueobject.RawInput, loanType valueobject.LoanType) (valueobject.ApplicationFields, error) {
	var fields valueobject.ApplicationFields

	common := make(map[string]float64, len(commonFields))
	for _, field := range commonFields {
		value, err := v.numericField(input, field)
		if err != nil {
			return valueobject.ApplicationFields{}, err
		}
		common[field] = value
	}
	fields.AnnualIncome = common[valueobject.FieldAnnualIncome]
	fields.DebtToIncome = common[valueobject.FieldDebtToIncome]
	fields.CreditScore = common[valueobject.FieldCreditScore]
	fields.PersonAge = common[valueobject.FieldPersonAge]

	details, err := v.detailsFor(input, loanType)
	if err != nil {
		return valueobject.ApplicationFields{}, err
	}
	fields.Details = details

	return fields, nil
}

// ValidateLoanContext checks the calculator-produced loan fields against the
// product bounds for the loan type. The calculator is an upstream
// collaborator, so its output is caller input here and gets the same typed
// rejection as the form fields.
func (v *Validator) ValidateLoanContext(loan valueobject.LoanContext) error {
	checks := []struct {
		field string
		value float64
	}{
		{valueobject.FieldLoanAmount, loan.Amount},
		{valueobject.FieldTerm, float64(loan.TermMonths)},
		{valueobject.FieldInterestRate, loan.InterestRate},
	}
	for _, c := range checks {
		fieldRange, err := v.registry.ProductRange(loan.LoanType, c.field)
		if err != nil {
			return err
		}
		if !fieldRange.Contains(c.value) {
			return valueobject.NewOutOfRangeError(c.field, fieldRange)
		}
	}
	return nil
}

// detailsFor runs the loan-type-specific step and returns the typed detail set.
func (v *Validator) detailsFor(input valueobject.RawInput, loanType valueobject.LoanType) (valueobject.LoanDetails, error) {
	switch {
	case loanType.Equal(valueobject.LoanTypeStudent):
		education, err := v.integerField(input, valueobject.FieldEducationLevel)
		if err != nil {
			return nil, err
		}
		risk, err := v.numericField(input, valueobject.FieldCreditRisk)
		if err != nil {
			return nil, err
		}
		return valueobject.StudentDetails{EducationLevel: education, CreditRisk: risk}, nil

	case loanType.Equal(valueobject.LoanTypeAgricultural):
		mortgage, err := v.numericField(input, valueobject.FieldMortgage)
		if err != nil {
			return nil, err
		}
		ownership, err := v.integerField(input, valueobject.FieldHomeOwnership)
		if err != nil {
			return nil, err
		}
		empLength, err := v.numericField(input, valueobject.FieldEmpLength)
		if err != nil {
			return nil, err
		}
		return valueobject.AgriculturalDetails{
			Mortgage:      mortgage,
			HomeOwnership: ownership,
			EmpLength:     empLength,
		}, nil

	case loanType.Equal(valueobject.LoanTypeBusiness):
		empLength, err := v.numericField(input, valueobject.FieldEmpLength)
		if err != nil {
			return nil, err
		}
		usage, err := v.numericField(input, valueobject.FieldCreditCardUsage)
		if err != nil {
			return nil, err
		}
		activity, err := v.integerField(input, valueobject.FieldCreditCardActivity)
		if err != nil {
			return nil, err
		}
		return valueobject.BusinessDetails{
			EmpLength:          empLength,
			CreditCardUsage:    usage,
			CreditCardActivity: activity,
		}, nil

	default:
		return nil, &valueobject.ConfigurationError{Field: loanType.String()}
	}
}

// numericField requires presence, parses a float, and checks registry bounds.
func (v *Validator) numericField(input valueobject.RawInput, field string) (float64, error) {
	raw, ok := input.Get(field)
	if !ok {
		return 0, valueobject.NewRequiredError(field)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, valueobject.NewNotNumericError(field)
	}

	fieldRange, err := v.registry.Range(field)
	if err != nil {
		return 0, err
	}
	if !fieldRange.Contains(value) {
		return 0, valueobject.NewOutOfRangeError(field, fieldRange)
	}
	return value, nil
}

// integerField is numericField with an additional whole-number requirement,
// used for coded attributes (education level, home ownership, card activity).
func (v *Validator) integerField(input valueobject.RawInput, field string) (int, error) {
	value, err := v.numericField(input, field)
	if err != nil {
		return 0, err
	}
	if value != math.Trunc(value) {
		return 0, valueobject.NewNotIntegerError(field)
	}
	return int(value), nil
}
