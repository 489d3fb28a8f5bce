package populate

import (
	"fmt"
	"reflect"

	"fixture-generator/internal/diagnostic"
	"fixture-generator/options"
)

var errNilGenerator = fmt.Errorf("%w: nil generator", ErrInvalidArgument)

// New returns a populated T built by the default generator. T must be a struct type.
func New[T any](overrides ...Override[T]) (T, error) {
	return Of(Default(), overrides...)
}

// Of returns a populated T built by g. No partial value is returned on error.
func Of[T any](g *Generator, overrides ...Override[T]) (T, error) {
	var zero T
	if g == nil {
		return zero, errNilGenerator
	}

	t := reflect.TypeFor[T]()
	if err := constructible(t); err != nil {
		return zero, err
	}

	resolved, err := resolveOverrides(overrides)
	if err != nil {
		return zero, err
	}

	s := g.session()
	v, err := s.object(t, diagnostic.NewFieldPath(t.Name()), resolved)
	s.done(t, err)

	if err != nil {
		return zero, err
	}

	return v.Interface().(T), nil
}

// MustNew is like New but panics on error. It is meant for tests.
func MustNew[T any](overrides ...Override[T]) T {
	v, err := New(overrides...)
	if err != nil {
		panic(err)
	}

	return v
}

func constructible(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Struct:
		return nil
	case reflect.Interface:
		return fmt.Errorf("%w: %s is an interface", ErrNotConstructible, t)
	default:
		return fmt.Errorf("%w: %s is not a struct type", ErrNotConstructible, t)
	}
}

// Slice returns a []T whose length is drawn from the default collection count range.
func Slice[T any]() ([]T, error) {
	r := Default().CollectionCount()
	return SliceOf[T](Default(), r.Min, r.Max)
}

// SliceMax returns a []T with a length in [0, max).
func SliceMax[T any](max int) ([]T, error) {
	return SliceOf[T](Default(), 0, max)
}

// SliceBetween returns a []T with a length in [min, max).
func SliceBetween[T any](min, max int) ([]T, error) {
	return SliceOf[T](Default(), min, max)
}

// SliceOf returns a []T built by g with a length in [min, max). Struct elements are populated;
// interface elements cannot be constructed and yield an empty slice.
func SliceOf[T any](g *Generator, min, max int) ([]T, error) {
	if g == nil {
		return nil, errNilGenerator
	}

	r := options.Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	t := reflect.TypeFor[[]T]()
	s := g.session()
	v, err := s.sequence(t, diagnostic.NewFieldPath(t.String()), r.Draw())
	s.done(t, err)

	if err != nil {
		return nil, err
	}

	return v.Interface().([]T), nil
}

// Map returns a map[K]V whose size is drawn from the default collection count range.
// Colliding keys may leave it smaller.
func Map[K comparable, V any]() (map[K]V, error) {
	r := Default().CollectionCount()
	return MapOf[K, V](Default(), r.Min, r.Max)
}

// MapMax returns a map[K]V with up to max-1 entries.
func MapMax[K comparable, V any](max int) (map[K]V, error) {
	return MapOf[K, V](Default(), 0, max)
}

// MapBetween returns a map[K]V with a drawn size in [min, max).
func MapBetween[K comparable, V any](min, max int) (map[K]V, error) {
	return MapOf[K, V](Default(), min, max)
}

// MapOf returns a map[K]V built by g with a drawn size in [min, max).
func MapOf[K comparable, V any](g *Generator, min, max int) (map[K]V, error) {
	if g == nil {
		return nil, errNilGenerator
	}

	r := options.Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	t := reflect.TypeFor[map[K]V]()
	s := g.session()
	v, err := s.mapping(t, diagnostic.NewFieldPath(t.String()), r.Draw())
	s.done(t, err)

	if err != nil {
		return nil, err
	}

	return v.Interface().(map[K]V), nil
}
