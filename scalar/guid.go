package scalar

import (
	"github.com/google/uuid"
)

// GUID returns a random (version 4) UUID drawn from the shared source.
func GUID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(Reader)
	if err != nil {
		// Reader never fails
		panic(err)
	}

	return id
}

// SequentialGUID returns a time-ordered (version 7) UUID. Values created later sort after earlier ones.
func SequentialGUID() uuid.UUID {
	id, err := uuid.NewV7FromReader(Reader)
	if err != nil {
		panic(err)
	}

	return id
}
