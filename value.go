package ezh

import (
	"math"
	"reflect"
	"strconv"

	"tlog.app/go/errors"
)

type (
	// Kind is a scalar type tag.
	Kind uint8

	// Value is a single fixed-width scalar.
	// It holds the value bits, not the encoded bytes,
	// so the same Value can be written with any Encoder byte order.
	Value struct {
		kind Kind
		bits uint64
	}

	// Scalar is the set of types Of accepts.
	// Pointers, uintptr, complex numbers, strings and aggregates are not scalars.
	Scalar interface {
		~bool |
			~int8 | ~int16 | ~int32 | ~int64 |
			~uint8 | ~uint16 | ~uint32 | ~uint64 |
			~int | ~uint |
			~float32 | ~float64
	}
)

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt
	KindUint
	KindFloat32
	KindFloat64

	kindMax
)

const wordSize = strconv.IntSize / 8

var kindNames = [kindMax]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt8:    "i8",
	KindInt16:   "i16",
	KindInt32:   "i32",
	KindInt64:   "i64",
	KindUint8:   "u8",
	KindUint16:  "u16",
	KindUint32:  "u32",
	KindUint64:  "u64",
	KindInt:     "int",
	KindUint:    "uint",
	KindFloat32: "f32",
	KindFloat64: "f64",
}

var kindSizes = [kindMax]int{
	KindBool:    1,
	KindInt8:    1,
	KindInt16:   2,
	KindInt32:   4,
	KindInt64:   8,
	KindUint8:   1,
	KindUint16:  2,
	KindUint32:  4,
	KindUint64:  8,
	KindInt:     wordSize,
	KindUint:    wordSize,
	KindFloat32: 4,
	KindFloat64: 8,
}

// Size is the native byte width of the kind.
func (k Kind) Size() int {
	if k >= kindMax {
		return 0
	}

	return kindSizes[k]
}

func (k Kind) String() string {
	if k >= kindMax {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

func Bool(v bool) Value {
	if v {
		return Value{kind: KindBool, bits: 1}
	}

	return Value{kind: KindBool}
}

func Int8(v int8) Value   { return Value{kind: KindInt8, bits: uint64(v)} }
func Int16(v int16) Value { return Value{kind: KindInt16, bits: uint64(v)} }
func Int32(v int32) Value { return Value{kind: KindInt32, bits: uint64(v)} }
func Int64(v int64) Value { return Value{kind: KindInt64, bits: uint64(v)} }

func Uint8(v uint8) Value   { return Value{kind: KindUint8, bits: uint64(v)} }
func Uint16(v uint16) Value { return Value{kind: KindUint16, bits: uint64(v)} }
func Uint32(v uint32) Value { return Value{kind: KindUint32, bits: uint64(v)} }
func Uint64(v uint64) Value { return Value{kind: KindUint64, bits: v} }

func Int(v int) Value   { return Value{kind: KindInt, bits: uint64(v)} }
func Uint(v uint) Value { return Value{kind: KindUint, bits: uint64(v)} }

func Float32(v float32) Value { return Value{kind: KindFloat32, bits: uint64(math.Float32bits(v))} }
func Float64(v float64) Value { return Value{kind: KindFloat64, bits: math.Float64bits(v)} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) Size() int  { return v.kind.Size() }

// Of converts any scalar, including named types like time.Duration, to a Value.
func Of[T Scalar](v T) Value {
	x, err := fromReflect(reflect.ValueOf(v))
	if err != nil {
		// Scalar admits only kinds fromReflect knows.
		panic(err)
	}

	return x
}

// FromAny is Of for callers holding an interface.
// It returns ErrUnsupportedType for nil, pointers and non scalar types.
func FromAny(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case nil:
		return Value{}, errors.Wrap(ErrUnsupportedType, "nil")
	}

	return fromReflect(reflect.ValueOf(x))
}

// Values converts a list with FromAny.
func Values(xs ...any) ([]Value, error) {
	vals := make([]Value, len(xs))

	for i, x := range xs {
		v, err := FromAny(x)
		if err != nil {
			return nil, errors.Wrap(err, "arg #%d", i)
		}

		vals[i] = v
	}

	return vals, nil
}

// Size is the number of bytes vals occupy when written.
func Size(vals ...Value) (n int) {
	for _, v := range vals {
		n += v.Size()
	}

	return n
}

func fromReflect(r reflect.Value) (Value, error) {
	switch r.Kind() {
	case reflect.Bool:
		return Bool(r.Bool()), nil
	case reflect.Int8:
		return Int8(int8(r.Int())), nil
	case reflect.Int16:
		return Int16(int16(r.Int())), nil
	case reflect.Int32:
		return Int32(int32(r.Int())), nil
	case reflect.Int64:
		return Int64(r.Int()), nil
	case reflect.Int:
		return Int(int(r.Int())), nil
	case reflect.Uint8:
		return Uint8(uint8(r.Uint())), nil
	case reflect.Uint16:
		return Uint16(uint16(r.Uint())), nil
	case reflect.Uint32:
		return Uint32(uint32(r.Uint())), nil
	case reflect.Uint64:
		return Uint64(r.Uint()), nil
	case reflect.Uint:
		return Uint(uint(r.Uint())), nil
	case reflect.Float32:
		return Float32(float32(r.Float())), nil
	case reflect.Float64:
		return Float64(r.Float()), nil
	}

	return Value{}, errors.Wrap(ErrUnsupportedType, "%v", r.Type())
}
