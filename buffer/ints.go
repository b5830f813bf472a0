package buffer

import (
	"unsafe"

	"github.com/arloliu/citysave/endian"
)

// Integer is the set of element types a fixed-size table in the save formats uses.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

// ReadInts fills dst with consecutive wire-order integers from the cursor.
//
// On little-endian hosts the region is copied as raw memory; otherwise every
// element is decoded through the cursor's engine.
func ReadInts[T Integer](c *Cursor, dst []T) error {
	if len(dst) == 0 {
		return c.err
	}
	width := int(unsafe.Sizeof(dst[0]))
	b, err := c.next(len(dst) * width)
	if err != nil {
		return err
	}

	if width == 1 || c.nativeOrder() {
		copy(asBytes(dst), b)
		return nil
	}

	for i := range dst {
		off := i * width
		switch width {
		case 2:
			dst[i] = T(c.engine.Uint16(b[off:]))
		case 4:
			dst[i] = T(c.engine.Uint32(b[off:]))
		}
	}

	return nil
}

// WriteInts writes src as consecutive wire-order integers.
func WriteInts[T Integer](c *Cursor, src []T) error {
	if len(src) == 0 {
		return c.err
	}
	width := int(unsafe.Sizeof(src[0]))
	b, err := c.next(len(src) * width)
	if err != nil {
		return err
	}

	if width == 1 || c.nativeOrder() {
		copy(b, asBytes(src))
		return nil
	}

	for i, v := range src {
		off := i * width
		switch width {
		case 2:
			c.engine.PutUint16(b[off:], uint16(v))
		case 4:
			c.engine.PutUint32(b[off:], uint32(v))
		}
	}

	return nil
}

func (c *Cursor) nativeOrder() bool {
	return c.engine == endian.Wire() && endian.NativeMatchesWire()
}

func asBytes[T Integer](s []T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(s[0])))
}
