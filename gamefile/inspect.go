package gamefile

import (
	"io"

	"github.com/arloliu/citysave/internal/hash"
	"github.com/arloliu/citysave/piece"
	"github.com/arloliu/citysave/savegame"
)

// PieceInfo describes one piece of an inspected savegame.
type PieceInfo struct {
	piece.StoredPiece
	Compressed  bool
	Fingerprint uint64
}

// Inspection is the result of reading a savegame without loading it.
type Inspection struct {
	Version     int32
	Pieces      []PieceInfo
	StoredBytes int64
	// Digest covers the decoded bytes of every piece in layout order, so two
	// files that differ only in compression have the same digest.
	Digest uint64
}

// Inspect reads a savegame from r into a scratch table and fingerprints every
// piece. The engine state is not touched and no hooks run.
func (e *Engine) Inspect(r io.Reader) (*Inspection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := savegame.NewTable()
	if err := t.EnsureInitialized(savegame.Layout); err != nil {
		return nil, err
	}
	stored, err := t.ReadFrom(r, e.framer)
	if err != nil {
		return nil, err
	}
	version, err := savegame.Version(t)
	if err != nil {
		return nil, err
	}

	in := &Inspection{
		Version:     version,
		Pieces:      make([]PieceInfo, len(stored)),
		StoredBytes: piece.StoredBytes(stored),
	}
	digest := hash.NewDigest()
	for i, p := range t.Pieces() {
		data := p.Bytes()
		digest.Add(data)
		in.Pieces[i] = PieceInfo{
			StoredPiece: stored[i],
			Compressed:  p.Compressed,
			Fingerprint: hash.Fingerprint(data),
		}
	}
	in.Digest = digest.Sum64()

	return in, nil
}
