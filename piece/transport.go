package piece

import (
	"io"

	"github.com/pkg/errors"

	"github.com/arloliu/citysave/chunk"
)

// StoredPiece reports how one piece was framed on disk.
type StoredPiece struct {
	Index int
	Name  string
	chunk.Stats
}

// ReadFrom fills every piece from r in declared order.
func (t *Table) ReadFrom(r io.Reader, f *chunk.Framer) ([]StoredPiece, error) {
	return t.readRange(r, f, 0, len(t.pieces))
}

// ReadPrefix fills only the first n pieces. ReadRest continues from there.
func (t *Table) ReadPrefix(r io.Reader, f *chunk.Framer, n int) ([]StoredPiece, error) {
	return t.readRange(r, f, 0, min(n, len(t.pieces)))
}

// ReadRest fills the pieces after the first n.
func (t *Table) ReadRest(r io.Reader, f *chunk.Framer, n int) ([]StoredPiece, error) {
	return t.readRange(r, f, min(n, len(t.pieces)), len(t.pieces))
}

func (t *Table) readRange(r io.Reader, f *chunk.Framer, from, to int) ([]StoredPiece, error) {
	stored := make([]StoredPiece, 0, to-from)
	for _, p := range t.pieces[from:to] {
		sp := StoredPiece{Index: p.Index, Name: p.Name}
		if p.Compressed {
			stats, err := f.ReadChunk(r, p.Bytes())
			if err != nil {
				return stored, errors.WithMessagef(err, "%s: read piece %d (%s)", t.name, p.Index, p.Name)
			}
			sp.Stats = stats
		} else {
			if err := chunk.ReadFull(r, p.Bytes()); err != nil {
				return stored, errors.WithMessagef(err, "%s: read piece %d (%s)", t.name, p.Index, p.Name)
			}
			sp.Stats = chunk.Stats{RawSize: p.Size(), StoredSize: p.Size()}
		}
		stored = append(stored, sp)
	}

	return stored, nil
}

// WriteTo writes every piece to w in declared order.
func (t *Table) WriteTo(w io.Writer, f *chunk.Framer) ([]StoredPiece, error) {
	stored := make([]StoredPiece, 0, len(t.pieces))
	for _, p := range t.pieces {
		sp := StoredPiece{Index: p.Index, Name: p.Name}
		if p.Compressed {
			stats, err := f.WriteChunk(w, p.Bytes())
			if err != nil {
				return stored, errors.WithMessagef(err, "%s: write piece %d (%s)", t.name, p.Index, p.Name)
			}
			sp.Stats = stats
		} else {
			if _, err := w.Write(p.Bytes()); err != nil {
				return stored, errors.Wrapf(err, "%s: write piece %d (%s)", t.name, p.Index, p.Name)
			}
			sp.Stats = chunk.Stats{RawSize: p.Size(), StoredSize: p.Size()}
		}
		stored = append(stored, sp)
	}

	return stored, nil
}

// StoredBytes sums the on-disk size of a transport pass.
func StoredBytes(stored []StoredPiece) int64 {
	var n int64
	for _, sp := range stored {
		n += int64(sp.StoredSize)
	}

	return n
}
