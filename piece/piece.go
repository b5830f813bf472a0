// Package piece implements the ordered table of fixed-size pieces a save file
// is made of, and its transport to and from a byte stream.
//
// A table is declared once from a layout (a list of Spec). Every later call to
// EnsureInitialized only rewinds the cursors, so codecs can hold *Piece
// pointers across operations.
package piece

import (
	"github.com/arloliu/citysave/buffer"
)

// Spec declares one piece of a file layout.
type Spec struct {
	Name       string
	Size       int
	Compressed bool
}

// Piece is a named, fixed-size region of a save file staged in a cursor.
type Piece struct {
	*buffer.Cursor

	Index      int // position in the declared layout
	Name       string
	Compressed bool
}

// Spec returns the declaration this piece was created from.
func (p *Piece) Spec() Spec {
	return Spec{Name: p.Name, Size: p.Size(), Compressed: p.Compressed}
}

// Mismatch describes a piece whose cursor did not end at its size after a pass.
type Mismatch struct {
	Index int
	Name  string
	Pos   int
	Size  int
	Err   error // sticky cursor error, if any
}
