package ezh

import "unsafe"

// WriteToRawMemory copies vals to dst and returns the address right after the last byte written.
// dst must point to at least Size(vals...) writable bytes. That is not checked.
// dst itself is not modified. Values of an invalid kind are rejected with ErrUnsupportedType.
func (e Encoder) WriteToRawMemory(dst unsafe.Pointer, vals ...Value) (unsafe.Pointer, error) {
	if dst == nil {
		return nil, ErrNullDestination
	}

	err := check(vals)
	if err != nil {
		return dst, err
	}

	n := Size(vals...)

	e.put(unsafe.Slice((*byte)(dst), n), vals)

	return unsafe.Add(dst, n), nil
}
