package options

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"fixture-generator/primitive"
)

var ErrInvalidValue = errors.New("value cannot be coerced")

// Coerce converts a configured value (usually decoded from YAML) to rtype. Pointers are allocated,
// slices are coerced element by element, and named basic types go through their underlying kind.
func Coerce(value any, rtype reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(rtype), nil
	}

	if vt := reflect.TypeOf(value); vt.AssignableTo(rtype) {
		return reflect.ValueOf(value), nil
	}

	switch rtype.Kind() {
	case reflect.Ptr:
		elem, err := Coerce(value, rtype.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(rtype.Elem())
		ptr.Elem().Set(elem)

		return ptr, nil

	case reflect.Slice:
		items, err := cast.ToSliceE(value)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v to %s: %w", ErrInvalidValue, value, rtype, err)
		}

		out := reflect.MakeSlice(rtype, len(items), len(items))
		for i, item := range items {
			elem, err := Coerce(item, rtype.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(elem)
		}

		return out, nil
	}

	kind := primitive.FromReflectType(rtype)
	if kind == primitive.KindPrimitiveEnum {
		kind = primitive.Underlying(rtype)
	}

	v, err := coerceKind(value, kind)
	if err == nil {
		err = checkWidth(v, kind)
	}

	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %v to %s: %w", ErrInvalidValue, value, rtype, err)
	}

	return reflect.ValueOf(v).Convert(rtype), nil
}

func coerceKind(value any, kind primitive.KindEnum) (any, error) {
	switch {
	case kind.IsSigned():
		return cast.ToInt64E(value)
	case kind.IsUnsigned():
		return cast.ToUint64E(value)
	case kind.IsFloat():
		return cast.ToFloat64E(value)
	}

	switch kind {
	case primitive.KindBool:
		return cast.ToBoolE(value)
	case primitive.KindString:
		return cast.ToStringE(value)
	case primitive.KindTime:
		return cast.ToTimeE(value)
	case primitive.KindDuration:
		return cast.ToDurationE(value)
	case primitive.KindUUID:
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, err
		}

		return uuid.Parse(s)
	default:
		return nil, errors.New("unsupported field type")
	}
}

// checkWidth rejects a coerced number that the kind's width cannot hold, rather than letting the
// conversion wrap it.
func checkWidth(v any, kind primitive.KindEnum) error {
	if !kind.IsNumber() || kind.Bits() == 64 {
		return nil
	}

	bits := kind.Bits()
	overflow := false

	switch n := v.(type) {
	case int64:
		overflow = n < -(1<<(bits-1)) || n >= 1<<(bits-1)
	case uint64:
		overflow = n >= 1<<bits
	case float64:
		overflow = !math.IsInf(n, 0) && math.Abs(n) > math.MaxFloat32
	}

	if overflow {
		return fmt.Errorf("%v overflows %d bits", v, bits)
	}

	return nil
}
