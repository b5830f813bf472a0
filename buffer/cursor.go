package buffer

import (
	"github.com/pkg/errors"

	"github.com/arloliu/citysave/endian"
	"github.com/arloliu/citysave/errs"
)

// Cursor is a fixed-size byte region with a read/write position.
type Cursor struct {
	data   []byte
	pos    int
	err    error
	engine endian.EndianEngine
}

// New allocates a zeroed cursor of exactly size bytes.
//
// Panics if size is negative; piece sizes are compile-time layout constants.
func New(size int) *Cursor {
	if size < 0 {
		panic(errors.Wrapf(errs.ErrInvalidSize, "size %d", size))
	}

	return &Cursor{
		data:   make([]byte, size),
		engine: endian.Wire(),
	}
}

// Wrap creates a cursor over an existing byte slice without copying it.
func Wrap(data []byte) *Cursor {
	return &Cursor{data: data, engine: endian.Wire()}
}

// Reset rewinds the position to 0 and clears the sticky error. Contents are kept.
func (c *Cursor) Reset() {
	c.pos = 0
	c.err = nil
}

// Size returns the fixed capacity of the cursor.
func (c *Cursor) Size() int { return len(c.data) }

// Pos returns the current position.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of bytes between the position and the end.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Drained reports whether the position has reached the end.
func (c *Cursor) Drained() bool { return c.pos == len(c.data) }

// Bytes returns the whole underlying region regardless of position.
// The transport layer fills and drains it directly.
func (c *Cursor) Bytes() []byte { return c.data }

// Err returns the first error recorded by a fixed-width accessor since the last Reset.
func (c *Cursor) Err() error { return c.err }

// next reserves n bytes at the position and advances past them.
func (c *Cursor) next(n int) ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	if n < 0 || n > len(c.data)-c.pos {
		c.err = errors.Wrapf(errs.ErrBufferOverrun, "need %d bytes at offset %d of %d", n, c.pos, len(c.data))
		return nil, c.err
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// ReadRaw copies len(dst) bytes from the position into dst.
func (c *Cursor) ReadRaw(dst []byte) error {
	b, err := c.next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)

	return nil
}

// WriteRaw copies src to the position.
func (c *Cursor) WriteRaw(src []byte) error {
	b, err := c.next(len(src))
	if err != nil {
		return err
	}
	copy(b, src)

	return nil
}

// Skip advances the position by n bytes without touching them.
func (c *Cursor) Skip(n int) error {
	_, err := c.next(n)
	return err
}

func (c *Cursor) ReadU8() uint8 {
	b, err := c.next(1)
	if err != nil {
		return 0
	}

	return b[0]
}

func (c *Cursor) WriteU8(v uint8) {
	if b, err := c.next(1); err == nil {
		b[0] = v
	}
}

func (c *Cursor) ReadI8() int8 { return int8(c.ReadU8()) }

func (c *Cursor) WriteI8(v int8) { c.WriteU8(uint8(v)) }

func (c *Cursor) ReadU16() uint16 {
	b, err := c.next(2)
	if err != nil {
		return 0
	}

	return c.engine.Uint16(b)
}

func (c *Cursor) WriteU16(v uint16) {
	if b, err := c.next(2); err == nil {
		c.engine.PutUint16(b, v)
	}
}

func (c *Cursor) ReadI16() int16 { return int16(c.ReadU16()) }

func (c *Cursor) WriteI16(v int16) { c.WriteU16(uint16(v)) }

func (c *Cursor) ReadU32() uint32 {
	b, err := c.next(4)
	if err != nil {
		return 0
	}

	return c.engine.Uint32(b)
}

func (c *Cursor) WriteU32(v uint32) {
	if b, err := c.next(4); err == nil {
		c.engine.PutUint32(b, v)
	}
}

// ReadI32 reads a little-endian signed 32-bit integer.
func (c *Cursor) ReadI32() int32 { return int32(c.ReadU32()) }

// WriteI32 writes a little-endian signed 32-bit integer.
func (c *Cursor) WriteI32(v int32) { c.WriteU32(uint32(v)) }
