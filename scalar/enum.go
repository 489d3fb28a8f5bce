package scalar

import (
	"fmt"

	"github.com/samber/lo"
)

// Enum returns a uniformly chosen member that is not excluded.
// members is the declaration-ordered list of the enumeration's values.
func Enum[E comparable](members []E, exclude ...E) (E, error) {
	values, err := candidates(members, exclude)
	if err != nil {
		var zero E
		return zero, err
	}

	return pick(values), nil
}

// EnumBetween returns a member positioned between min and max inclusive, in declaration order.
func EnumBetween[E comparable](members []E, min, max E, exclude ...E) (E, error) {
	values, err := candidates(members, exclude)
	if err != nil {
		var zero E
		return zero, err
	}

	first, last := indexOf(values, min), indexOf(values, max)
	switch {
	case first < 0:
		return min, fmt.Errorf("%w: %v is not an available member", ErrInvalidArgument, min)
	case last < 0:
		return min, fmt.Errorf("%w: %v is not an available member", ErrInvalidArgument, max)
	case last < first:
		return min, fmt.Errorf("%w: %v is declared before %v", ErrInvalidRange, max, min)
	}

	return values[intn(first, last+1)], nil
}

// EnumFrom returns a member declared at or after start when direction is Positive,
// and at or before start otherwise.
func EnumFrom[E comparable](members []E, start E, direction Direction, exclude ...E) (E, error) {
	values, err := candidates(members, exclude)
	if err != nil {
		return start, err
	}

	i := indexOf(values, start)
	if i < 0 {
		return start, fmt.Errorf("%w: %v is not an available member", ErrInvalidArgument, start)
	}

	if direction == Positive {
		return values[intn(i, len(values))], nil
	}

	return values[intn(0, i+1)], nil
}

func candidates[E comparable](members, exclude []E) ([]E, error) {
	values := lo.Without(lo.Uniq(members), exclude...)
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no members left to choose from", ErrInvalidArgument)
	}

	return values, nil
}

func indexOf[E comparable](values []E, v E) int {
	return lo.IndexOf(values, v)
}
