package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/valueobject"
)

func TestNewFieldRange(t *testing.T) {
	t.Run("creates a valid range", func(t *testing.T) {
		r, err := valueobject.NewFieldRange("credit_score", 300, 850)
		require.NoError(t, err)
		assert.Equal(t, "credit_score", r.Name)
		assert.Equal(t, 300.0, r.Min)
		assert.Equal(t, 850.0, r.Max)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := valueobject.NewFieldRange("", 0, 1)
		assert.Error(t, err)
	})

	t.Run("rejects min equal to max", func(t *testing.T) {
		_, err := valueobject.NewFieldRange("x", 5, 5)
		assert.Error(t, err)
	})

	t.Run("rejects min above max", func(t *testing.T) {
		_, err := valueobject.NewFieldRange("x", 10, 5)
		assert.Error(t, err)
	})
}

func TestFieldRange_Contains(t *testing.T) {
	r := valueobject.MustFieldRange("person_age", 18, 80)

	assert.True(t, r.Contains(18), "lower bound is inclusive")
	assert.True(t, r.Contains(80), "upper bound is inclusive")
	assert.True(t, r.Contains(42))
	assert.False(t, r.Contains(17.999))
	assert.False(t, r.Contains(80.001))
}

func TestFieldRange_Width(t *testing.T) {
	r := valueobject.MustFieldRange("credit_score", 300, 850)
	assert.Equal(t, 550.0, r.Width())
}

func TestMustFieldRange_PanicsOnInvalidBounds(t *testing.T) {
	assert.Panics(t, func() {
		valueobject.MustFieldRange("bad", 1, 1)
	})
}
