package populate

import (
	"fmt"
	"reflect"
	"slices"

	"fixture-generator/internal/common"
	"fixture-generator/internal/diagnostic"
	"fixture-generator/options"
)

// fieldTag is the struct tag that steers generation of a field.
const fieldTag = "populate"

// object populates every settable field of struct type t. overrides apply to t's own fields only
// and are nil below the root.
func (s *session) object(t reflect.Type, path diagnostic.FieldPath, overrides map[string]resolvedOverride) (reflect.Value, error) {
	s.guard.Enter(t)
	defer s.guard.Leave(t)

	out := reflect.New(t).Elem()
	settings := s.g.Config().Type(common.TypeName(t))

	var replaced [][]int // embedded structs set as a whole by an override

	for _, f := range settableFields(t) {
		if slices.ContainsFunc(replaced, func(prefix []int) bool { return isPrefix(prefix, f.Index) }) {
			continue
		}

		if f.Anonymous && f.Type.Kind() == reflect.Struct && Dispatch(f.Type) == DispatcherStruct {
			if _, ok := overrides[f.Name]; !ok {
				// promoted fields are visited on their own
				continue
			}

			replaced = append(replaced, f.Index)
		}

		fv := out.FieldByIndex(f.Index)
		if !fv.CanSet() {
			continue
		}

		v, err := s.field(t, f, path.Field(f.Name), settings, overrides)
		if err != nil {
			return reflect.Value{}, err
		}

		if v.IsValid() {
			fv.Set(v)
		}
	}

	return out, nil
}

// field resolves one field in precedence order: override, skip tag, configured skip, configured
// fixed value, generator tag or configured generator, and finally generation by shape.
func (s *session) field(
	owner reflect.Type, f reflect.StructField, path diagnostic.FieldPath,
	settings *options.TypeConfig, overrides map[string]resolvedOverride,
) (reflect.Value, error) {
	if o, ok := overrides[f.Name]; ok {
		if o.skip {
			s.note(diagnostic.CodeSkipped, "skipped by override", owner, path)
			return reflect.Value{}, nil
		}

		v, err := assign(o.produce(), f.Type)
		if err != nil {
			err = fmt.Errorf("%w: %s: %w", ErrMalformedOverride, path, err)
			return reflect.Value{}, s.fail(diagnostic.CodeBadOverride, err, owner, path)
		}

		return v, nil
	}

	tag := f.Tag.Get(fieldTag)
	if tag == "-" {
		s.note(diagnostic.CodeSkipped, `tagged populate:"-"`, owner, path)
		return reflect.Value{}, nil
	}

	if settings != nil {
		if slices.Contains(settings.Skip, f.Name) {
			s.note(diagnostic.CodeSkipped, "skipped by configuration", owner, path)
			return reflect.Value{}, nil
		}

		if raw, ok := settings.Fields[f.Name]; ok {
			v, err := options.Coerce(raw, f.Type)
			if err != nil {
				err = fmt.Errorf("%w: %s: %w", ErrMalformedOverride, path, err)
				return reflect.Value{}, s.fail(diagnostic.CodeBadOverride, err, owner, path)
			}

			return v, nil
		}

		if name, ok := settings.Generators[f.Name]; ok {
			tag = name
		}
	}

	if tag != "" {
		return s.tagged(f.Type, tag, path)
	}

	return s.fill(f.Type, path, false)
}

func isPrefix(prefix, index []int) bool {
	return len(prefix) < len(index) && slices.Equal(prefix, index[:len(prefix)])
}
