package options

import (
	"fmt"

	"fixture-generator/scalar"
)

// Range is a half-open interval [Min, Max) of lengths or counts. When Min equals Max the range
// holds exactly Min.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

var (
	DefaultStringLength    = Range{Min: 5, Max: 11}
	DefaultCollectionCount = Range{Min: 3, Max: 6}
)

// Validate requires 0 <= Min <= Max.
func (r Range) Validate() error {
	return scalar.CheckRange(r.Min, r.Max)
}

// Draw returns a uniformly chosen value of the range. The range must be valid.
func (r Range) Draw() int {
	if r.Max <= r.Min {
		return r.Min
	}

	return r.Min + scalar.Rand().IntN(r.Max-r.Min)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Min, r.Max)
}
