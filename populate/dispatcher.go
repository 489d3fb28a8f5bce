package populate

import (
	"reflect"

	"fixture-generator/primitive"
)

// Dispatch classifies a non-pointer type by the generator responsible for it.
func Dispatch(t reflect.Type) DispatcherEnum {
	if t.Kind() == reflect.Ptr {
		panic("dispatcher is not allowing pointer reflect types")
	}

	if _, ok := lookupCollection(t); ok {
		return DispatcherCollection
	}

	if _, ok := lookupEnum(t); ok {
		return DispatcherEnumeration
	}

	switch primitive.FromReflectType(t) {
	case 0:
	case primitive.KindPrimitiveEnum:
		return DispatcherEnumeration
	default:
		return DispatcherPrimitive
	}

	switch t.Kind() {
	case reflect.Interface:
		return DispatcherInterface
	case reflect.Slice, reflect.Array:
		return DispatcherSlice
	case reflect.Map:
		return DispatcherMap
	case reflect.Chan:
		return DispatcherCollection
	case reflect.Func:
		if isSeq(t) {
			return DispatcherCollection
		}

		return DispatcherUnknown
	case reflect.Struct:
		return DispatcherStruct
	default:
		return DispatcherUnknown
	}
}

// isSeq reports whether t has the shape of iter.Seq or iter.Seq2.
func isSeq(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}

	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return false
	}

	return yield.NumIn() == 1 || yield.NumIn() == 2
}

func base(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// ptrDepthAndBase returns the pointer depth and the final base type.
func ptrDepthAndBase(t reflect.Type) (depth int, base reflect.Type) {
	depth, base = 0, t
	for t != nil && base.Kind() == reflect.Ptr {
		depth++
		base = base.Elem()
	}

	return
}

// wrap takes v through depth levels of pointers and converts the result to t.
func wrap(v reflect.Value, depth int, t reflect.Type) reflect.Value {
	for range depth {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p
	}

	if v.Type() != t {
		v = v.Convert(t)
	}

	return v
}
