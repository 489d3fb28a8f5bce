package scalar

import (
	"fmt"
	"time"
)

type Direction int

const (
	Positive Direction = iota
	Negative
)

// Limit bounds each component of a generated duration, inclusive.
type Limit struct {
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// DefaultLimit produces durations of under a week.
var DefaultLimit = Limit{Days: 6, Hours: 23, Minutes: 59, Seconds: 59, Milliseconds: 999}

func (l Limit) validate() error {
	if l.Days < 0 || l.Hours < 0 || l.Minutes < 0 || l.Seconds < 0 || l.Milliseconds < 0 {
		return fmt.Errorf("%w: duration limits must not be negative: %+v", ErrInvalidRange, l)
	}

	return nil
}

func (l Limit) draw(minMillis int) time.Duration {
	return time.Duration(intn(0, l.Days+1))*24*time.Hour +
		time.Duration(intn(0, l.Hours+1))*time.Hour +
		time.Duration(intn(0, l.Minutes+1))*time.Minute +
		time.Duration(intn(0, l.Seconds+1))*time.Second +
		time.Duration(intn(minMillis, max(minMillis, l.Milliseconds)+1))*time.Millisecond
}

// Duration returns a non-zero duration within a week in either direction.
func Duration() time.Duration {
	return signed(randomDirection(), DefaultLimit.draw(1))
}

func DurationTowards(d Direction) time.Duration {
	return signed(d, DefaultLimit.draw(1))
}

func DurationWithin(l Limit) (time.Duration, error) {
	return DurationTowardsWithin(randomDirection(), l)
}

func DurationTowardsWithin(d Direction, l Limit) (time.Duration, error) {
	if err := l.validate(); err != nil {
		return 0, err
	}

	return signed(d, l.draw(0)), nil
}

func randomDirection() Direction {
	if Bool() {
		return Positive
	}

	return Negative
}

func signed(d Direction, v time.Duration) time.Duration {
	if d == Negative {
		return -v
	}

	return v
}
