package service

import (
	"math"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/model"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Standardizer – min-max scaling and feature-vector assembly
// ---------------------------------------------------------------------------

// Standardizer maps validated raw values into the model's feature space with
// linear min-max scaling onto [targetMin, targetMax]. One instance serves
// every call site so there is exactly one target range in the process.
//
// Out-of-bounds values are rejected with a RangeError, never clamped. The
// validator runs first, so hitting that path means a wiring bug upstream.
type Standardizer struct {
	registry  *RangeRegistry
	targetMin float64
	targetMax float64
}

// NewStandardizer creates a standardizer with the canonical [0, 1] target range.
func NewStandardizer(registry *RangeRegistry) *Standardizer {
	return &Standardizer{registry: registry, targetMin: 0, targetMax: 1}
}

// Standardize scales value from its registry range onto the target range,
// rounded to 4 decimal places.
func (s *Standardizer) Standardize(field string, value float64) (float64, error) {
	fieldRange, err := s.registry.Range(field)
	if err != nil {
		return 0, err
	}
	return s.scale(field, value, fieldRange)
}

// StandardizeProduct is Standardize for the loan-context fields whose bounds
// depend on the loan type.
func (s *Standardizer) StandardizeProduct(loanType valueobject.LoanType, field string, value float64) (float64, error) {
	fieldRange, err := s.registry.ProductRange(loanType, field)
	if err != nil {
		return 0, err
	}
	return s.scale(field, value, fieldRange)
}

func (s *Standardizer) scale(field string, value float64, r valueobject.FieldRange) (float64, error) {
	if !r.Contains(value) {
		return 0, &valueobject.RangeError{Field: field, Value: value, Min: r.Min, Max: r.Max}
	}
	scaled := s.targetMin + (value-r.Min)/r.Width()*(s.targetMax-s.targetMin)
	return round4(scaled), nil
}

// BuildVector assembles the full feature vector from validated fields and the
// loan context. Cross-type fields stay nil and serialize as explicit nulls.
func (s *Standardizer) BuildVector(fields valueobject.ApplicationFields, loan valueobject.LoanContext) (model.FeatureVector, error) {
	if loan.Amount == 0 {
		return model.FeatureVector{}, &valueobject.RangeError{
			Field: valueobject.FieldLoanAmount,
			Value: loan.Amount,
		}
	}

	vector := model.FeatureVector{
		LoanType: loan.LoanType.String(),
		// income_to_loan is computed from raw values; its scale is
		// data-dependent, so it is never range-checked or standardized.
		IncomeToLoan: round4(fields.AnnualIncome / loan.Amount),
	}

	var err error
	if vector.LoanAmount, err = s.StandardizeProduct(loan.LoanType, valueobject.FieldLoanAmount, loan.Amount); err != nil {
		return model.FeatureVector{}, err
	}
	if vector.Term, err = s.StandardizeProduct(loan.LoanType, valueobject.FieldTerm, float64(loan.TermMonths)); err != nil {
		return model.FeatureVector{}, err
	}
	if vector.InterestRate, err = s.StandardizeProduct(loan.LoanType, valueobject.FieldInterestRate, loan.InterestRate); err != nil {
		return model.FeatureVector{}, err
	}
	if vector.AnnualIncome, err = s.Standardize(valueobject.FieldAnnualIncome, fields.AnnualIncome); err != nil {
		return model.FeatureVector{}, err
	}
	if vector.CreditScore, err = s.Standardize(valueobject.FieldCreditScore, fields.CreditScore); err != nil {
		return model.FeatureVector{}, err
	}
	if vector.PersonAge, err = s.Standardize(valueobject.FieldPersonAge, fields.PersonAge); err != nil {
		return model.FeatureVector{}, err
	}
	if vector.DebtToIncome, err = s.Standardize(valueobject.FieldDebtToIncome, fields.DebtToIncome); err != nil {
		return model.FeatureVector{}, err
	}

	if err := s.applyDetails(&vector, fields.Details); err != nil {
		return model.FeatureVector{}, err
	}

	return vector, nil
}

// applyDetails fills in the loan-type-specific slots via type switch.
func (s *Standardizer) applyDetails(vector *model.FeatureVector, details valueobject.LoanDetails) error {
	switch d := details.(type) {
	case valueobject.StudentDetails:
		education, err := s.Standardize(valueobject.FieldEducationLevel, float64(d.EducationLevel))
		if err != nil {
			return err
		}
		risk, err := s.Standardize(valueobject.FieldCreditRisk, d.CreditRisk)
		if err != nil {
			return err
		}
		vector.EducationLevel = &education
		vector.CreditRisk = &risk

	case valueobject.AgriculturalDetails:
		mortgage, err := s.Standardize(valueobject.FieldMortgage, d.Mortgage)
		if err != nil {
			return err
		}
		ownership, err := s.Standardize(valueobject.FieldHomeOwnership, float64(d.HomeOwnership))
		if err != nil {
			return err
		}
		empLength, err := s.Standardize(valueobject.FieldEmpLength, d.EmpLength)
		if err != nil {
			return err
		}
		vector.Mortgage = &mortgage
		vector.HomeOwnership = &ownership
		vector.EmpLength = &empLength

	case valueobject.BusinessDetails:
		empLength, err := s.Standardize(valueobject.FieldEmpLength, d.EmpLength)
		if err != nil {
			return err
		}
		usage, err := s.Standardize(valueobject.FieldCreditCardUsage, d.CreditCardUsage)
		if err != nil {
			return err
		}
		activity, err := s.Standardize(valueobject.FieldCreditCardActivity, float64(d.CreditCardActivity))
		if err != nil {
			return err
		}
		vector.EmpLength = &empLength
		vector.CreditCardUsage = &usage
		vector.CreditCardActivity = &activity

	default:
		return &valueobject.ConfigurationError{Field: "loan_details"}
	}
	return nil
}

func round4(v float64) float64 {
	return math.Round(v*10_000) / 10_000
}
