package ezh

import (
	"encoding/binary"
	"io"
	"unsafe"

	"tlog.app/go/errors"
)

type (
	// Encoder writes Values using Order.
	// Zero Encoder writes the native representation.
	Encoder struct {
		Order binary.ByteOrder
	}
)

// Native is the Encoder used by package level functions.
var Native Encoder

func WriteToStream(w io.Writer, vals ...Value) (io.Writer, error) {
	return Native.WriteToStream(w, vals...)
}

func WriteToRawMemory(dst unsafe.Pointer, vals ...Value) (unsafe.Pointer, error) {
	return Native.WriteToRawMemory(dst, vals...)
}

func WriteToBuffer(buf []byte, off int, vals ...Value) (int, error) {
	return Native.WriteToBuffer(buf, off, vals...)
}

func (e Encoder) order() binary.ByteOrder {
	if e.Order == nil {
		return binary.NativeEndian
	}

	return e.Order
}

// check rejects values with no scalar kind, like the zero Value.
func check(vals []Value) error {
	for i, v := range vals {
		if v.Size() == 0 {
			return errors.Wrap(ErrUnsupportedType, "arg #%d: %v", i, v.kind)
		}
	}

	return nil
}

// put writes vals into b which must be at least Size(vals...) long.
func (e Encoder) put(b []byte, vals []Value) {
	o := e.order()
	i := 0

	for _, v := range vals {
		switch v.Size() {
		case 1:
			b[i] = byte(v.bits)
		case 2:
			o.PutUint16(b[i:], uint16(v.bits))
		case 4:
			o.PutUint32(b[i:], uint32(v.bits))
		case 8:
			o.PutUint64(b[i:], v.bits)
		}

		i += v.Size()
	}
}

func (e Encoder) appendValues(b []byte, vals []Value) []byte {
	st := len(b)
	n := Size(vals...)

	if cap(b)-st < n {
		q := make([]byte, st, st+n)
		copy(q, b)
		b = q
	}

	b = b[:st+n]
	e.put(b[st:], vals)

	return b
}
