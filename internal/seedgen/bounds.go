package seedgen

import (
	"fmt"
	"math/rand"
)

// Bounds is an inclusive [Min, Max] count range for one population knob.
type Bounds struct {
	Min int `json:"min" mapstructure:"min"`
	Max int `json:"max" mapstructure:"max"`
}

// B is shorthand for a Bounds literal.
func B(min, max int) Bounds { return Bounds{Min: min, Max: max} }

// Validate rejects negative or inverted ranges.
func (b Bounds) Validate(name string) error {
	if b.Min < 0 {
		return fmt.Errorf("%w: %s: min %d is negative", ErrConfig, name, b.Min)
	}
	if b.Min > b.Max {
		return fmt.Errorf("%w: %s: min %d > max %d", ErrConfig, name, b.Min, b.Max)
	}
	return nil
}

// Pick draws a uniform integer over the closed interval [Min, Max].
func (b Bounds) Pick(r *rand.Rand) int {
	if b.Max <= b.Min {
		return b.Min
	}
	return b.Min + r.Intn(b.Max-b.Min+1)
}
