package piece

import (
	"github.com/pkg/errors"

	"github.com/arloliu/citysave/buffer"
	"github.com/arloliu/citysave/errs"
)

// Table is an ordered collection of pieces with a fixed slot capacity.
type Table struct {
	name     string
	capacity int
	pieces   []*Piece
	byName   map[string]*Piece
}

// NewTable creates an empty table. capacity is the number of piece slots
// reserved for the layout.
func NewTable(name string, capacity int) *Table {
	return &Table{
		name:     name,
		capacity: capacity,
		byName:   make(map[string]*Piece, capacity),
	}
}

// Name returns the table's name as used in logs and errors.
func (t *Table) Name() string { return t.name }

// Initialized reports whether the table holds pieces.
func (t *Table) Initialized() bool { return len(t.pieces) > 0 }

// EnsureInitialized allocates the pieces of specs on the first call. When the
// table already holds pieces it only rewinds every cursor; the layout must be
// the one used the first time.
func (t *Table) EnsureInitialized(specs []Spec) error {
	if t.Initialized() {
		if len(specs) != len(t.pieces) {
			return errors.Wrapf(errs.ErrLayoutMismatch, "%s: %d pieces, table has %d", t.name, len(specs), len(t.pieces))
		}
		for i, s := range specs {
			if s != t.pieces[i].Spec() {
				return errors.Wrapf(errs.ErrLayoutMismatch, "%s: piece %d is %q", t.name, i, s.Name)
			}
		}
		for _, p := range t.pieces {
			p.Reset()
		}

		return nil
	}

	if len(specs) > t.capacity {
		return errors.Wrapf(errs.ErrTableFull, "%s: %d pieces, %d slots", t.name, len(specs), t.capacity)
	}

	pieces := make([]*Piece, 0, len(specs))
	byName := make(map[string]*Piece, len(specs))
	for i, s := range specs {
		if _, ok := byName[s.Name]; ok {
			return errors.Wrapf(errs.ErrDuplicatePiece, "%s: %q", t.name, s.Name)
		}
		p := &Piece{
			Cursor:     buffer.New(s.Size),
			Index:      i,
			Name:       s.Name,
			Compressed: s.Compressed,
		}
		pieces = append(pieces, p)
		byName[s.Name] = p
	}
	t.pieces = pieces
	t.byName = byName

	return nil
}

// Rewind resets every cursor to position 0.
func (t *Table) Rewind() {
	for _, p := range t.pieces {
		p.Reset()
	}
}

// Get returns the named piece.
func (t *Table) Get(name string) (*Piece, error) {
	p, ok := t.byName[name]
	if !ok {
		return nil, errors.Wrapf(errs.ErrPieceNotFound, "%s: %q", t.name, name)
	}

	return p, nil
}

// Pieces returns the pieces in declared order. The slice must not be modified.
func (t *Table) Pieces() []*Piece { return t.pieces }

func (t *Table) Len() int { return len(t.pieces) }

func (t *Table) Capacity() int { return t.capacity }

// TotalSize returns the sum of all piece sizes.
func (t *Table) TotalSize() int {
	total := 0
	for _, p := range t.pieces {
		total += p.Size()
	}

	return total
}

// Layout returns the specs the table was initialized from.
func (t *Table) Layout() []Spec {
	specs := make([]Spec, len(t.pieces))
	for i, p := range t.pieces {
		specs[i] = p.Spec()
	}

	return specs
}

// Verify lists every piece whose cursor is not drained or carries an error.
func (t *Table) Verify() []Mismatch {
	var out []Mismatch
	for _, p := range t.pieces {
		if p.Drained() && p.Err() == nil {
			continue
		}
		out = append(out, Mismatch{
			Index: p.Index,
			Name:  p.Name,
			Pos:   p.Pos(),
			Size:  p.Size(),
			Err:   p.Err(),
		})
	}

	return out
}
