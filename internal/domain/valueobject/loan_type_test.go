package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

func TestNewLoanType(t *testing.T) {
	t.Run("accepts the three products", func(t *testing.T) {
		for _, name := range []string{"student", "agricultural", "business"} {
			lt, err := valueobject.NewLoanType(name)
			require.NoError(t, err)
			assert.Equal(t, name, lt.String())
			assert.False(t, lt.IsZero())
		}
	})

	t.Run("rejects unknown products", func(t *testing.T) {
		_, err := valueobject.NewLoanType("payday")
		assert.Error(t, err)
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := valueobject.NewLoanType("")
		assert.Error(t, err)
	})
}

func TestLoanType_Equal(t *testing.T) {
	a, _ := valueobject.NewLoanType("student")
	b, _ := valueobject.NewLoanType("student")
	c, _ := valueobject.NewLoanType("business")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNewScoringStatus(t *testing.T) {
	t.Run("accepts all lifecycle statuses", func(t *testing.T) {
		for _, name := range []string{"RECEIVED", "VALIDATED", "SCORED", "REJECTED", "FAILED"} {
			s, err := valueobject.NewScoringStatus(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("rejects lowercase", func(t *testing.T) {
		_, err := valueobject.NewScoringStatus("scored")
		assert.Error(t, err)
	})
}
