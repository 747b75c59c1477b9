package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/service"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

func TestRangeRegistry_Range(t *testing.T) {
	registry := service.NewRangeRegistry()

	t.Run("returns the canonical bounds", func(t *testing.T) {
		tests := []struct {
			field    string
			min, max float64
		}{
			{valueobject.FieldAnnualIncome, 0, 100_000_000},
			{valueobject.FieldCreditScore, 300, 850},
			{valueobject.FieldPersonAge, 18, 80},
			{valueobject.FieldDebtToIncome, 0, 100},
			{valueobject.FieldEducationLevel, 1, 5},
			{valueobject.FieldCreditRisk, 0, 100},
			{valueobject.FieldMortgage, 0, 100_000_000},
			{valueobject.FieldEmpLength, 0, 50},
			{valueobject.FieldCreditCardUsage, 0, 100},
			{valueobject.FieldCreditCardActivity, 1, 5},
			{valueobject.FieldHomeOwnership, 0, 3},
		}
		for _, tc := range tests {
			r, err := registry.Range(tc.field)
			require.NoError(t, err, tc.field)
			assert.Equal(t, tc.min, r.Min, tc.field)
			assert.Equal(t, tc.max, r.Max, tc.field)
		}
	})

	t.Run("unknown field is a configuration error", func(t *testing.T) {
		_, err := registry.Range("shoe_size")
		var cfgErr *valueobject.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "shoe_size", cfgErr.Field)
	})
}

func TestRangeRegistry_ProductRange(t *testing.T) {
	registry := service.NewRangeRegistry()

	t.Run("loan amount bounds differ per product", func(t *testing.T) {
		student, err := registry.ProductRange(valueobject.LoanTypeStudent, valueobject.FieldLoanAmount)
		require.NoError(t, err)
		business, err := registry.ProductRange(valueobject.LoanTypeBusiness, valueobject.FieldLoanAmount)
		require.NoError(t, err)

		assert.Equal(t, 10_000.0, student.Min)
		assert.Equal(t, 5_000_000.0, student.Max)
		assert.Equal(t, 50_000.0, business.Min)
		assert.Equal(t, 100_000_000.0, business.Max)
	})

	t.Run("every product defines the three loan-context fields", func(t *testing.T) {
		products := []valueobject.LoanType{
			valueobject.LoanTypeStudent,
			valueobject.LoanTypeAgricultural,
			valueobject.LoanTypeBusiness,
		}
		fields := []string{
			valueobject.FieldLoanAmount,
			valueobject.FieldTerm,
			valueobject.FieldInterestRate,
		}
		for _, p := range products {
			for _, f := range fields {
				_, err := registry.ProductRange(p, f)
				assert.NoError(t, err, "%s/%s", p, f)
			}
		}
	})

	t.Run("non-context field under a product is a configuration error", func(t *testing.T) {
		_, err := registry.ProductRange(valueobject.LoanTypeStudent, valueobject.FieldCreditScore)
		var cfgErr *valueobject.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr))
	})

	t.Run("zero loan type is a configuration error", func(t *testing.T) {
		_, err := registry.ProductRange(valueobject.LoanType{}, valueobject.FieldLoanAmount)
		var cfgErr *valueobject.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr))
	})
}
