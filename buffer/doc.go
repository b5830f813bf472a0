// Package buffer implements the fixed-capacity cursor every piece of a
// savegame or scenario file is staged in.
//
// A Cursor owns exactly Size() bytes and a position. Reads and writes copy a
// fixed number of bytes and advance the position; running past the end is an
// error (ErrBufferOverrun), never a silent clamp. After a complete
// serialize or deserialize pass each cursor must be Drained.
//
// Raw operations (ReadRaw, WriteRaw, Skip) return their error directly. The
// fixed-width integer accessors record the first failure in a sticky error so
// codecs can read a run of fields and check Err() once:
//
//	x := c.ReadI32()
//	y := c.ReadI32()
//	if err := c.Err(); err != nil {
//		return err
//	}
package buffer
