package low

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testError struct{}

func TestIsNil(t *testing.T) {
	var e interface{}
	var i = 3

	assert.Equal(t, true, IsNil(e))

	assert.Equal(t, false, IsNil(i))

	e = i

	assert.Equal(t, false, IsNil(e))

	e = (*int)(nil)

	assert.Equal(t, true, IsNil(e))

	var err error

	assert.Equal(t, true, IsNil(err))

	err = &testError{}

	assert.Equal(t, false, IsNil(err))

	err = (*testError)(nil)

	assert.Equal(t, true, IsNil(err))

	var f *os.File

	assert.Equal(t, true, IsNil(f))
	assert.Equal(t, false, IsNil(os.Stderr))
}

func TestBytes(t *testing.T) {
	x := uint16(0x0102)

	b := Bytes(&x)
	assert.Len(t, b, 2)
	assert.ElementsMatch(t, []byte{1, 2}, b)

	var f float64

	assert.Len(t, Bytes(&f), 8)
	assert.Equal(t, make([]byte, 8), Bytes(&f))
}

func TestBuf(t *testing.T) {
	var b Buf

	n, err := b.Write([]byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	b.NewLine()
	b.NewLine()

	assert.Equal(t, "abc\n", string(b.Bytes()))
	assert.Equal(t, 4, b.Len())
}

func (*testError) Error() string { return "test error" }
