package scalar

import (
	"math"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

func Int() int         { return int(Rand().Uint64()) }
func Int8() int8       { return int8(Rand().Uint64()) }
func Int16() int16     { return int16(Rand().Uint64()) }
func Int32() int32     { return int32(Rand().Uint64()) }
func Int64() int64     { return int64(Rand().Uint64()) }
func Uint() uint       { return uint(Rand().Uint64()) }
func Uint8() uint8     { return uint8(Rand().Uint64()) }
func Uint16() uint16   { return uint16(Rand().Uint64()) }
func Uint32() uint32   { return uint32(Rand().Uint64()) }
func Uint64() uint64   { return Rand().Uint64() }
func Float32() float32 { return float32(floatBetween(-math.MaxFloat32, math.MaxFloat32)) }
func Float64() float64 { return floatBetween(-math.MaxFloat64, math.MaxFloat64) }

// Between returns a value in the inclusive range [min, max].
// For floating point types the upper bound is reachable only through rounding.
func Between[T Number](min, max T) (T, error) {
	if err := checkOrder(min, max); err != nil {
		return 0, err
	}

	return between(min, max), nil
}

// MustBetween is like Between but panics on an invalid range.
func MustBetween[T Number](min, max T) T {
	v, err := Between(min, max)
	if err != nil {
		panic(err)
	}

	return v
}

func between[T Number](min, max T) T {
	if isFloat[T]() {
		return T(floatBetween(float64(min), float64(max)))
	}

	// two's complement arithmetic on the widened bit patterns works for every integer width
	lo, hi := uint64(int64(min)), uint64(int64(max))
	span := hi - lo
	if span == math.MaxUint64 {
		return T(Rand().Uint64())
	}

	return T(lo + Rand().Uint64N(span+1))
}

func isFloat[T Number]() bool {
	half := T(1)
	half /= 2

	return half != 0
}

func floatBetween(min, max float64) float64 {
	f := Rand().Float64()

	// the weighted form never overflows, unlike min + f*(max-min)
	v := min*(1-f) + max*f

	return math.Max(min, math.Min(max, v))
}
