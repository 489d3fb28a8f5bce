package scalar

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	ErrInvalidRange    = errors.New("invalid range")
	ErrInvalidArgument = errors.New("invalid argument")
)

// CheckRange validates a half-open or inclusive range where both ends are counts or lengths.
func CheckRange(min, max int) error {
	if min < 0 {
		return fmt.Errorf("%w: minimum %d must not be negative", ErrInvalidRange, min)
	}

	return checkOrder(min, max)
}

func checkOrder[T cmp.Ordered](min, max T) error {
	if max < min {
		return fmt.Errorf("%w: maximum %v must not be less than minimum %v", ErrInvalidRange, max, min)
	}

	return nil
}
