package primitive

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"fixture-generator/scalar"
)

// Table holds one generator per scalar kind. Any slot may be replaced to change how values of
// that kind are produced. A nil slot falls back to the default generator.
//
// Slots are read without synchronization: replace them before population starts.
type Table struct {
	Bool     func() bool
	Int      func() int
	Int8     func() int8
	Int16    func() int16
	Int32    func() int32
	Int64    func() int64
	Uint     func() uint
	Uint8    func() uint8
	Uint16   func() uint16
	Uint32   func() uint32
	Uint64   func() uint64
	Float32  func() float32
	Float64  func() float64
	String   func(length int) string
	Time     func() time.Time
	Duration func() time.Duration
	UUID     func() uuid.UUID
}

// DefaultTable returns a table wired to the scalar generators. Times default to the current UTC time
// and durations to a positive span under a week.
func DefaultTable() *Table {
	return &Table{
		Bool:    scalar.Bool,
		Int:     scalar.Int,
		Int8:    scalar.Int8,
		Int16:   scalar.Int16,
		Int32:   scalar.Int32,
		Int64:   scalar.Int64,
		Uint:    scalar.Uint,
		Uint8:   scalar.Uint8,
		Uint16:  scalar.Uint16,
		Uint32:  scalar.Uint32,
		Uint64:  scalar.Uint64,
		Float32: scalar.Float32,
		Float64: scalar.Float64,
		String: func(length int) string {
			s, _ := scalar.ASCII(max(length, 0))
			return s
		},
		Time:     func() time.Time { return scalar.Now(scalar.UTC) },
		Duration: func() time.Duration { return scalar.DurationTowards(scalar.Positive) },
		UUID:     scalar.GUID,
	}
}

var fallback = DefaultTable()

// Generate produces a value for kind k. length supplies string lengths and is called only for strings.
// KindPrimitiveEnum and unknown kinds yield nil.
func (t *Table) Generate(k KindEnum, length func() int) any {
	switch k {
	case KindBool:
		return or(t.Bool, fallback.Bool)()
	case KindInt:
		return or(t.Int, fallback.Int)()
	case KindInt8:
		return or(t.Int8, fallback.Int8)()
	case KindInt16:
		return or(t.Int16, fallback.Int16)()
	case KindInt32:
		return or(t.Int32, fallback.Int32)()
	case KindInt64:
		return or(t.Int64, fallback.Int64)()
	case KindUint:
		return or(t.Uint, fallback.Uint)()
	case KindUint8:
		return or(t.Uint8, fallback.Uint8)()
	case KindUint16:
		return or(t.Uint16, fallback.Uint16)()
	case KindUint32:
		return or(t.Uint32, fallback.Uint32)()
	case KindUint64:
		return or(t.Uint64, fallback.Uint64)()
	case KindFloat32:
		return or(t.Float32, fallback.Float32)()
	case KindFloat64:
		return or(t.Float64, fallback.Float64)()
	case KindString:
		return or(t.String, fallback.String)(length())
	case KindTime:
		return or(t.Time, fallback.Time)()
	case KindDuration:
		return or(t.Duration, fallback.Duration)()
	case KindUUID:
		return or(t.UUID, fallback.UUID)()
	default:
		return nil
	}
}

// Value is Generate converted to rtype, so named types over a basic kind receive a value of their
// underlying kind. The second result is false when no value could be produced.
func (t *Table) Value(rtype reflect.Type, length func() int) (reflect.Value, bool) {
	k := FromReflectType(rtype)
	if k == KindPrimitiveEnum {
		k = Underlying(rtype)
	}

	v := t.Generate(k, length)
	if v == nil {
		return reflect.Value{}, false
	}

	return reflect.ValueOf(v).Convert(rtype), true
}

func or[F any](fn, def F) F {
	if reflect.ValueOf(fn).IsNil() {
		return def
	}

	return fn
}
