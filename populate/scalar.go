package populate

import (
	"errors"
	"fmt"
	"reflect"

	"fixture-generator/internal/diagnostic"
	"fixture-generator/scalar"
)

func (s *session) primitive(t reflect.Type, path diagnostic.FieldPath) reflect.Value {
	v, ok := s.g.Scalars.Value(t, s.stringLength)
	if !ok {
		s.warn(diagnostic.CodeUnsupported, "scalar table produced no value", t, path)
	}

	return v
}

// enum picks a registered member of t, or a value of its underlying kind when t was never registered.
func (s *session) enum(t reflect.Type, path diagnostic.FieldPath) reflect.Value {
	members, ok := lookupEnum(t)
	if !ok {
		return s.primitive(t, path)
	}

	m, err := scalar.Enum(members)
	if err != nil {
		return reflect.Value{}
	}

	return reflect.ValueOf(m).Convert(t)
}

// tagged fills a field from a named generator. Slices and arrays get one generated value per element
// when the generated value does not fit the field as a whole.
func (s *session) tagged(t reflect.Type, name string, path diagnostic.FieldPath) (reflect.Value, error) {
	gen, err := s.g.named(name)
	if err != nil {
		var hints []string
		if errors.Is(err, ErrUnknownGenerator) {
			hints = suggest(name, GeneratorNames())
		}

		return reflect.Value{}, s.fail(diagnostic.CodeUnknownTag, fmt.Errorf("%s: %w", path, err), t, path, hints...)
	}

	x, err := gen()
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%s: %w", path, err)
	}

	v, err := assign(reflect.ValueOf(x), t)
	if err == nil {
		return v, nil
	}

	depth, b := ptrDepthAndBase(t)
	if b.Kind() != reflect.Slice && b.Kind() != reflect.Array {
		err = fmt.Errorf("%w: %s: generator %q: %w", ErrMalformedOverride, path, name, err)
		return reflect.Value{}, s.fail(diagnostic.CodeBadOverride, err, t, path)
	}

	out := reflect.New(b).Elem()
	if b.Kind() == reflect.Slice {
		count := s.count()
		out = reflect.MakeSlice(b, count, count)
	}

	for i := range out.Len() {
		x, err := gen()
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%s: %w", path, err)
		}

		ev, err := assign(reflect.ValueOf(x), b.Elem())
		if err != nil {
			err = fmt.Errorf("%w: %s: generator %q: %w", ErrMalformedOverride, path.Elem(), name, err)
			return reflect.Value{}, s.fail(diagnostic.CodeBadOverride, err, t, path.Elem())
		}

		out.Index(i).Set(ev)
	}

	return wrap(out, depth, t), nil
}
