package valueobject

import "fmt"

// FieldRange is the valid domain for one financial attribute. Ranges are
// immutable and defined once at process start.
type FieldRange struct {
	Name string
	Min  float64
	Max  float64
}

// NewFieldRange creates a validated range. Min must be strictly below Max.
func NewFieldRange(name string, min, max float64) (FieldRange, error) {
	if name == "" {
		return FieldRange{}, fmt.Errorf("field range name is required")
	}
	if min >= max {
		return FieldRange{}, fmt.Errorf("field range %s: min %v must be below max %v", name, min, max)
	}
	return FieldRange{Name: name, Min: min, Max: max}, nil
}

// MustFieldRange is NewFieldRange that panics on error. Used for the static
// registry table, where a bad bound is a programming mistake.
func MustFieldRange(name string, min, max float64) FieldRange {
	r, err := NewFieldRange(name, min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains reports whether v lies within [Min, Max].
func (r FieldRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Width returns the size of the range.
func (r FieldRange) Width() float64 { return r.Max - r.Min }
