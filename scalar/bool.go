package scalar

import "fmt"

func Bool() bool {
	return Rand().Uint64()&1 == 1
}

// BoolWithProbability returns true with probability p.
func BoolWithProbability(p float64) (bool, error) {
	if p < 0 || p > 1 {
		return false, fmt.Errorf("%w: probability %v is outside [0, 1]", ErrInvalidRange, p)
	}

	return Rand().Float64() < p, nil
}
