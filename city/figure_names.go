package city

import "github.com/arloliu/citysave/buffer"

// FigureNames holds the next-name counters per figure category.
type FigureNames [21]int32

func (f *FigureNames) LoadState(c *buffer.Cursor) error {
	return buffer.ReadInts(c, f[:])
}

func (f *FigureNames) SaveState(c *buffer.Cursor) error {
	return buffer.WriteInts(c, f[:])
}
