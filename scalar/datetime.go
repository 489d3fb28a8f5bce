package scalar

import (
	"fmt"
	"time"
)

type Zone int

const (
	UTC Zone = iota
	Local
)

func (z Zone) now() time.Time {
	if z == UTC {
		return time.Now().UTC()
	}

	return time.Now()
}

// Now returns the current time in the zone.
func Now(z Zone) time.Time {
	return z.now()
}

// Before returns the current time in the zone shifted back by shift.
func Before(z Zone, shift time.Duration) time.Time {
	return z.now().Add(-shift)
}

// After returns the current time in the zone shifted forward by shift.
func After(z Zone, shift time.Duration) time.Time {
	return z.now().Add(shift)
}

// TimeBetween returns a time in [from, to].
func TimeBetween(from, to time.Time) (time.Time, error) {
	if to.Before(from) {
		return time.Time{}, fmt.Errorf("%w: %s is before %s", ErrInvalidRange, to, from)
	}

	return from.Add(between(time.Duration(0), to.Sub(from))), nil
}
