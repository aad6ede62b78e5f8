package ezh

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type myFloat float32

func TestKind(t *testing.T) {
	for k, sz := range map[Kind]int{
		KindInvalid: 0,
		KindBool:    1,
		KindInt8:    1,
		KindUint8:   1,
		KindInt16:   2,
		KindUint16:  2,
		KindInt32:   4,
		KindUint32:  4,
		KindFloat32: 4,
		KindInt64:   8,
		KindUint64:  8,
		KindFloat64: 8,
		KindInt:     strconv.IntSize / 8,
		KindUint:    strconv.IntSize / 8,
		Kind(200):   0,
	} {
		assert.Equal(t, sz, k.Size(), "kind %v", k)
	}

	assert.Equal(t, "i32", KindInt32.String())
	assert.Equal(t, "f64", KindFloat64.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "kind(200)", Kind(200).String())
}

func TestOf(t *testing.T) {
	assert.Equal(t, Int64(3), Of(time.Duration(3)))
	assert.Equal(t, Float32(1.5), Of(myFloat(1.5)))
	assert.Equal(t, Bool(true), Of(true))
	assert.Equal(t, Int8(-1), Of(int8(-1)))
	assert.Equal(t, Uint(7), Of(uint(7)))
	assert.Equal(t, Float64(3.14), Of(3.14))
	assert.Equal(t, Int(42), Of(42))
}

func TestFromAny(t *testing.T) {
	x := 5

	for _, bad := range []any{nil, &x, "str", []int{1}, struct{}{}, complex(1, 2), uintptr(1), map[int]int{}} {
		_, err := FromAny(bad)
		assert.ErrorIs(t, err, ErrUnsupportedType, "%T", bad)
	}

	v, err := FromAny(uint16(9))
	require.NoError(t, err)
	assert.Equal(t, Uint16(9), v)

	v, err = FromAny(Float32(2))
	require.NoError(t, err)
	assert.Equal(t, Float32(2), v)

	vals, err := Values(int32(42), float32(3.14), false)
	require.NoError(t, err)
	assert.Equal(t, []Value{Int32(42), Float32(3.14), Bool(false)}, vals)
	assert.Equal(t, 9, Size(vals...))

	_, err = Values(1, "two")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "arg #1")
}

func TestSize(t *testing.T) {
	assert.Equal(t, 0, Size())
	assert.Equal(t, 0, Size(Value{}))
	assert.Equal(t, 15, Size(Bool(true), Int16(1), Uint32(2), Float64(3)))
	assert.Equal(t, KindUint32, Uint32(2).Kind())
	assert.Equal(t, 4, Uint32(2).Size())
}
