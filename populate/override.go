package populate

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"

	"fixture-generator/options"
)

// Override replaces generation of one direct field of T. Build it with Set, Skip, SetField or
// SkipField. Overrides never reach into nested objects.
type Override[T any] struct {
	name     string
	selector func(*T) any
	produce  func() reflect.Value
	skip     bool
}

// Set assigns the result of produce to the field picked by selector, which must return the address
// of a field of its argument: populate.Set(func(o *Order) *string { return &o.Note }, note).
// A nil produce leaves the field at its zero value.
func Set[T, F any](selector func(*T) *F, produce func() F) Override[T] {
	o := Override[T]{skip: produce == nil}
	if selector != nil {
		o.selector = func(t *T) any { return selector(t) }
	}

	if produce != nil {
		o.produce = func() reflect.Value {
			v := produce()
			return reflect.ValueOf(&v).Elem()
		}
	}

	return o
}

// Skip leaves the selected field at its zero value.
func Skip[T, F any](selector func(*T) *F) Override[T] {
	return Set[T, F](selector, nil)
}

// SetField assigns the result of produce to the field called name. The value is assigned,
// converted between compatible kinds, or coerced (string "42" to int) to fit the field.
func SetField[T any](name string, produce func() any) Override[T] {
	o := Override[T]{name: name, skip: produce == nil}
	if produce != nil {
		o.produce = func() reflect.Value { return reflect.ValueOf(produce()) }
	}

	return o
}

// SkipField leaves the field called name at its zero value.
func SkipField[T any](name string) Override[T] {
	return SetField[T](name, nil)
}

type resolvedOverride struct {
	produce func() reflect.Value
	skip    bool
}

// resolveOverrides maps every override onto a visible field name of T. Later overrides of the
// same field win.
func resolveOverrides[T any](overrides []Override[T]) (map[string]resolvedOverride, error) {
	if len(overrides) == 0 {
		return nil, nil
	}

	t := reflect.TypeFor[T]()
	fields := settableFields(t)
	out := make(map[string]resolvedOverride, len(overrides))

	for i, o := range overrides {
		var (
			name string
			err  error
		)

		switch {
		case o.selector != nil:
			name, err = selectField(t, fields, o.selector)
		case o.name != "":
			name, err = namedField(t, fields, o.name)
		default:
			err = fmt.Errorf("%w: override #%d of %s selects no field", ErrMalformedOverride, i, t)
		}

		if err != nil {
			return nil, err
		}

		out[name] = resolvedOverride{produce: o.produce, skip: o.skip}
	}

	return out, nil
}

// selectField runs selector on a probe instance and finds the field whose address it returned.
func selectField[T any](t reflect.Type, fields []reflect.StructField, selector func(*T) any) (name string, err error) {
	probe := new(T)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: selector on %s panicked: %v", ErrMalformedOverride, t, r)
		}
	}()

	ptr := reflect.ValueOf(selector(probe))
	if !ptr.IsValid() || ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return "", fmt.Errorf("%w: selector on %s returned no field address", ErrMalformedOverride, t)
	}

	root := reflect.ValueOf(probe).Elem()
	for _, f := range fields {
		fv := root.FieldByIndex(f.Index)
		if fv.Addr().Pointer() == ptr.Pointer() && f.Type == ptr.Type().Elem() {
			return f.Name, nil
		}
	}

	return "", fmt.Errorf("%w: selector on %s does not return the address of one of its fields", ErrMalformedOverride, t)
}

func namedField(t reflect.Type, fields []reflect.StructField, name string) (string, error) {
	if _, ok := lo.Find(fields, func(f reflect.StructField) bool { return f.Name == name }); ok {
		return name, nil
	}

	names := lo.Map(fields, func(f reflect.StructField, _ int) string { return f.Name })

	return "", fmt.Errorf("%w: %s has no settable field %q%s", ErrMalformedOverride, t, name, didYouMean(suggest(name, names)))
}

// settableFields lists the exported visible fields of struct t that can be set without
// dereferencing an embedded pointer.
func settableFields(t reflect.Type) []reflect.StructField {
	return lo.Filter(reflect.VisibleFields(t), func(f reflect.StructField, _ int) bool {
		return f.IsExported() && !throughPointer(t, f.Index)
	})
}

func throughPointer(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		t = t.Field(i).Type
		if t.Kind() == reflect.Ptr {
			return true
		}
	}

	return false
}

// assign fits v to type t: as is when assignable, converted when both are numeric or of the same
// kind, and coerced through options.Coerce otherwise.
func assign(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Zero(t), nil
	}

	if v.Type().AssignableTo(t) {
		return v, nil
	}

	if compatibleKinds(v.Type(), t) && v.Type().ConvertibleTo(t) {
		return v.Convert(t), nil
	}

	if v.Kind() == reflect.Interface && v.IsNil() {
		return reflect.Zero(t), nil
	}

	return options.Coerce(v.Interface(), t)
}

func compatibleKinds(a, b reflect.Type) bool {
	numeric := func(k reflect.Kind) bool {
		return k >= reflect.Int && k <= reflect.Float64
	}

	return a.Kind() == b.Kind() || numeric(a.Kind()) && numeric(b.Kind())
}
