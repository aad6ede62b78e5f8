package ezh_test

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/icyveins7/ezh"
)

func ExampleWriteToBuffer() {
	buf := make([]byte, 8)

	off, err := ezh.WriteToBuffer(buf, 0, ezh.Int32(42), ezh.Float32(3.14))
	fmt.Println(off, err)

	_, err = ezh.WriteToBuffer(buf, off, ezh.Bool(true))
	fmt.Println(err != nil)

	// Output:
	// 8 <nil>
	// true
}

func ExampleEncoder() {
	e := ezh.Encoder{Order: binary.BigEndian}

	buf := make([]byte, 6)

	_, _ = e.WriteToBuffer(buf, 0, ezh.Uint16(0x0102), ezh.Of(int32(-1)))
	fmt.Printf("% x\n", buf)

	// Output:
	// 01 02 ff ff ff ff
}

func ExampleWriteToStream() {
	_, err := ezh.WriteToStream(os.Stdout, ezh.Uint8('h'), ezh.Uint8('i'), ezh.Uint8('\n'))
	if err != nil {
		panic(err)
	}

	// Output:
	// hi
}
