package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/service"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

func newStandardizer() *service.Standardizer {
	return service.NewStandardizer(service.NewRangeRegistry())
}

func TestStandardizer_Standardize(t *testing.T) {
	s := newStandardizer()

	t.Run("range minimum maps to 0", func(t *testing.T) {
		v, err := s.Standardize(valueobject.FieldCreditScore, 300)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	})

	t.Run("range maximum maps to 1", func(t *testing.T) {
		v, err := s.Standardize(valueobject.FieldCreditScore, 850)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	})

	t.Run("interior values scale linearly and round to 4 places", func(t *testing.T) {
		v, err := s.Standardize(valueobject.FieldCreditScore, 720)
		require.NoError(t, err)
		assert.Equal(t, 0.7636, v) // (720-300)/550

		v, err = s.Standardize(valueobject.FieldPersonAge, 30)
		require.NoError(t, err)
		assert.Equal(t, 0.1935, v) // (30-18)/62

		v, err = s.Standardize(valueobject.FieldDebtToIncome, 35)
		require.NoError(t, err)
		assert.Equal(t, 0.35, v)
	})

	t.Run("repeated calls yield identical output", func(t *testing.T) {
		first, err := s.Standardize(valueobject.FieldDebtToIncome, 33.33)
		require.NoError(t, err)
		second, err := s.Standardize(valueobject.FieldDebtToIncome, 33.33)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("out of range is rejected, not clamped", func(t *testing.T) {
		_, err := s.Standardize(valueobject.FieldCreditScore, 900)
		var rErr *valueobject.RangeError
		require.True(t, errors.As(err, &rErr))
		assert.Equal(t, valueobject.FieldCreditScore, rErr.Field)
		assert.Equal(t, 900.0, rErr.Value)

		_, err = s.Standardize(valueobject.FieldCreditScore, 299.9)
		assert.True(t, errors.As(err, &rErr))
	})

	t.Run("unknown field is a configuration error", func(t *testing.T) {
		_, err := s.Standardize("shoe_size", 42)
		var cfgErr *valueobject.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr))
	})
}

func TestStandardizer_StandardizeProduct(t *testing.T) {
	s := newStandardizer()

	t.Run("loan amount uses the product bounds", func(t *testing.T) {
		v, err := s.StandardizeProduct(valueobject.LoanTypeStudent, valueobject.FieldLoanAmount, 200_000)
		require.NoError(t, err)
		assert.Equal(t, 0.0381, v) // (200000-10000)/4990000
	})

	t.Run("same amount scales differently under another product", func(t *testing.T) {
		student, err := s.StandardizeProduct(valueobject.LoanTypeStudent, valueobject.FieldLoanAmount, 1_000_000)
		require.NoError(t, err)
		business, err := s.StandardizeProduct(valueobject.LoanTypeBusiness, valueobject.FieldLoanAmount, 1_000_000)
		require.NoError(t, err)
		assert.NotEqual(t, student, business)
	})

	t.Run("amount below the product floor is rejected", func(t *testing.T) {
		_, err := s.StandardizeProduct(valueobject.LoanTypeBusiness, valueobject.FieldLoanAmount, 10_000)
		var rErr *valueobject.RangeError
		assert.True(t, errors.As(err, &rErr))
	})
}

func TestStandardizer_BuildVector_Student(t *testing.T) {
	s := newStandardizer()

	fields := valueobject.ApplicationFields{
		AnnualIncome: 600_000,
		DebtToIncome: 35,
		CreditScore:  720,
		PersonAge:    30,
		Details:      valueobject.StudentDetails{EducationLevel: 3, CreditRisk: 20},
	}
	loan := valueobject.LoanContext{
		LoanType:     valueobject.LoanTypeStudent,
		Amount:       200_000,
		TermMonths:   24,
		InterestRate: 10,
	}

	vector, err := s.BuildVector(fields, loan)
	require.NoError(t, err)

	assert.Equal(t, "student", vector.LoanType)
	assert.Equal(t, 0.0381, vector.LoanAmount)
	assert.Equal(t, 0.1579, vector.Term)         // (24-6)/114
	assert.Equal(t, 0.4286, vector.InterestRate) // (10-4)/14
	assert.Equal(t, 0.006, vector.AnnualIncome)
	assert.Equal(t, 0.7636, vector.CreditScore)
	assert.Equal(t, 0.1935, vector.PersonAge)
	assert.Equal(t, 0.35, vector.DebtToIncome)

	// income_to_loan is a raw ratio, never standardized.
	assert.Equal(t, 3.0, vector.IncomeToLoan)

	require.NotNil(t, vector.EducationLevel)
	assert.Equal(t, 0.5, *vector.EducationLevel) // (3-1)/4
	require.NotNil(t, vector.CreditRisk)
	assert.Equal(t, 0.2, *vector.CreditRisk)

	// Cross-type slots stay nil for a student loan.
	assert.Nil(t, vector.Mortgage)
	assert.Nil(t, vector.HomeOwnership)
	assert.Nil(t, vector.EmpLength)
	assert.Nil(t, vector.CreditCardUsage)
	assert.Nil(t, vector.CreditCardActivity)
}

func TestStandardizer_BuildVector_Business(t *testing.T) {
	s := newStandardizer()

	fields := valueobject.ApplicationFields{
		AnnualIncome: 2_500_000,
		DebtToIncome: 40,
		CreditScore:  680,
		PersonAge:    45,
		Details: valueobject.BusinessDetails{
			EmpLength:          12,
			CreditCardUsage:    55.5,
			CreditCardActivity: 4,
		},
	}
	loan := valueobject.LoanContext{
		LoanType:     valueobject.LoanTypeBusiness,
		Amount:       500_000,
		TermMonths:   60,
		InterestRate: 12,
	}

	vector, err := s.BuildVector(fields, loan)
	require.NoError(t, err)

	require.NotNil(t, vector.EmpLength)
	assert.Equal(t, 0.24, *vector.EmpLength)
	require.NotNil(t, vector.CreditCardUsage)
	assert.Equal(t, 0.555, *vector.CreditCardUsage)
	require.NotNil(t, vector.CreditCardActivity)
	assert.Equal(t, 0.75, *vector.CreditCardActivity) // (4-1)/4

	assert.Nil(t, vector.EducationLevel)
	assert.Nil(t, vector.CreditRisk)
	assert.Nil(t, vector.Mortgage)
	assert.Nil(t, vector.HomeOwnership)
}

func TestStandardizer_BuildVector_Errors(t *testing.T) {
	s := newStandardizer()

	validFields := valueobject.ApplicationFields{
		AnnualIncome: 600_000,
		DebtToIncome: 35,
		CreditScore:  720,
		PersonAge:    30,
		Details:      valueobject.StudentDetails{EducationLevel: 3, CreditRisk: 20},
	}

	t.Run("zero loan amount", func(t *testing.T) {
		_, err := s.BuildVector(validFields, valueobject.LoanContext{
			LoanType:   valueobject.LoanTypeStudent,
			Amount:     0,
			TermMonths: 24,
		})
		var rErr *valueobject.RangeError
		require.True(t, errors.As(err, &rErr))
		assert.Equal(t, valueobject.FieldLoanAmount, rErr.Field)
	})

	t.Run("term outside product bounds", func(t *testing.T) {
		_, err := s.BuildVector(validFields, valueobject.LoanContext{
			LoanType:     valueobject.LoanTypeStudent,
			Amount:       200_000,
			TermMonths:   600,
			InterestRate: 10,
		})
		var rErr *valueobject.RangeError
		require.True(t, errors.As(err, &rErr))
		assert.Equal(t, valueobject.FieldTerm, rErr.Field)
	})

	t.Run("missing details is a configuration error", func(t *testing.T) {
		noDetails := validFields
		noDetails.Details = nil
		_, err := s.BuildVector(noDetails, valueobject.LoanContext{
			LoanType:     valueobject.LoanTypeStudent,
			Amount:       200_000,
			TermMonths:   24,
			InterestRate: 10,
		})
		var cfgErr *valueobject.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr))
	})
}
