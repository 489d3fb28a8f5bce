package populate

import (
	"errors"

	"fixture-generator/scalar"
)

var (
	// ErrNotConstructible reports a root type that is not a concrete struct.
	ErrNotConstructible = errors.New("type cannot be constructed")
	// ErrMalformedOverride reports an override or fixed value that cannot be applied to its field.
	ErrMalformedOverride = errors.New("malformed override")
	// ErrUnknownGenerator reports a generator name that is neither built in nor known to gofakeit.
	ErrUnknownGenerator = errors.New("unknown generator")

	ErrInvalidRange    = scalar.ErrInvalidRange
	ErrInvalidArgument = scalar.ErrInvalidArgument
)
