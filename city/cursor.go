package city

import "github.com/arloliu/citysave/buffer"

func firstErr(cursors ...*buffer.Cursor) error {
	for _, c := range cursors {
		if err := c.Err(); err != nil {
			return err
		}
	}

	return nil
}

func readI32s(c *buffer.Cursor, dst ...*int32) {
	for _, p := range dst {
		*p = c.ReadI32()
	}
}

func writeI32s(c *buffer.Cursor, src ...int32) {
	for _, v := range src {
		c.WriteI32(v)
	}
}
