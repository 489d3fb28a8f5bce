package populate

import (
	"reflect"

	"fixture-generator/internal/diagnostic"
)

// mapping fills a map with up to n entries; colliding keys collapse. A key type under construction
// leaves the map empty, a value type under construction keeps the keys with zero values.
func (s *session) mapping(t reflect.Type, path diagnostic.FieldPath, n int) (reflect.Value, error) {
	key, elem := t.Key(), t.Elem()
	out := reflect.MakeMapWithSize(t, n)

	if !s.generable(key, path) {
		return reflect.MakeMap(t), nil
	}

	zeroValues := s.guard.Cyclic(elem)
	if zeroValues {
		s.note(diagnostic.CodeCycleCut, "value type is already under construction", base(elem), path.Value())
	}

	for range n {
		k, err := s.fill(key, path, true)
		if err != nil {
			return reflect.Value{}, err
		}

		if !k.IsValid() {
			s.warn(diagnostic.CodeInvalidKeyType, "map keys of this type cannot be generated", key, path)
			return reflect.MakeMap(t), nil
		}

		v := reflect.Zero(elem)
		if !zeroValues {
			if v, err = s.fill(elem, path.Value(), true); err != nil {
				return reflect.Value{}, err
			}

			if !v.IsValid() {
				v = reflect.Zero(elem)
			}
		}

		out.SetMapIndex(k, v)
	}

	return out, nil
}
