// Package chunk implements the length-prefixed framing of compressed pieces.
//
// A chunk is a 4-byte little-endian length followed by that many bytes of
// codec output. When the length equals format.UncompressedSentinel the piece
// follows raw instead, and its size comes from the piece layout. Writers fall
// back to the sentinel whenever compression fails or would not fit the
// scratch buffer; readers accept both forms.
package chunk

import (
	"io"

	"github.com/pkg/errors"

	"github.com/arloliu/citysave/compress"
	"github.com/arloliu/citysave/endian"
	"github.com/arloliu/citysave/errs"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/internal/options"
	"github.com/arloliu/citysave/internal/pool"
)

// Framer writes and reads compressed chunks with one codec.
//
// A Framer is not safe for concurrent use; the engine serializes access.
type Framer struct {
	codec  compress.Codec
	limit  int
	engine endian.EndianEngine
}

type Option = options.Option[*Framer]

// WithLimit overrides the scratch capacity. Files written with a smaller
// limit remain readable with the default one, not the other way around.
func WithLimit(n int) Option {
	return options.New(func(f *Framer) error {
		if n <= 0 {
			return errors.Wrapf(errs.ErrInvalidConfig, "chunk limit %d", n)
		}
		f.limit = n

		return nil
	})
}

// New creates a framer for the given codec with a format.MaxChunkSize scratch limit.
func New(codec compress.Codec, opts ...Option) (*Framer, error) {
	f := &Framer{
		codec:  codec,
		limit:  format.MaxChunkSize,
		engine: endian.Wire(),
	}
	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Limit returns the scratch capacity in bytes.
func (f *Framer) Limit() int { return f.limit }

// Stats describes one chunk as it was stored.
type Stats struct {
	RawSize    int  // piece size
	StoredSize int  // bytes on disk, header included
	Fallback   bool // stored raw behind the sentinel
}

// WriteChunk frames data and writes it to w.
func (f *Framer) WriteChunk(w io.Writer, data []byte) (Stats, error) {
	stats := Stats{RawSize: len(data)}

	var payload []byte
	if len(data) <= f.limit {
		scratch := pool.GetScratch()
		defer pool.PutScratch(scratch)
		scratch.Grow(f.limit)

		out, err := f.codec.Compress(scratch.B[:0], data)
		if err == nil && len(out) <= f.limit {
			payload = out
		}
	}

	header := make([]byte, 0, format.ChunkHeaderSize)
	if payload == nil {
		stats.Fallback = true
		header = f.engine.AppendUint32(header, format.UncompressedSentinel)
		payload = data
	} else {
		header = f.engine.AppendUint32(header, uint32(len(payload)))
	}

	if _, err := w.Write(header); err != nil {
		return stats, errors.Wrap(err, "write chunk header")
	}
	if _, err := w.Write(payload); err != nil {
		return stats, errors.Wrap(err, "write chunk payload")
	}
	stats.StoredSize = len(header) + len(payload)

	return stats, nil
}

// ReadChunk reads one chunk from r and fills dst with exactly len(dst) bytes.
func (f *Framer) ReadChunk(r io.Reader, dst []byte) (Stats, error) {
	stats := Stats{RawSize: len(dst)}

	var header [format.ChunkHeaderSize]byte
	if err := ReadFull(r, header[:]); err != nil {
		return stats, errors.WithMessage(err, "read chunk header")
	}

	size := f.engine.Uint32(header[:])
	if size == format.UncompressedSentinel {
		stats.Fallback = true
		stats.StoredSize = len(header) + len(dst)

		return stats, errors.WithMessage(ReadFull(r, dst), "read raw chunk")
	}

	if int64(size) > int64(f.limit) {
		return stats, errors.Wrapf(errs.ErrChunkTooLarge, "length %d, limit %d", size, f.limit)
	}
	stats.StoredSize = len(header) + int(size)

	scratch := pool.GetScratch()
	defer pool.PutScratch(scratch)
	scratch.Grow(int(size))
	scratch.SetLength(int(size))

	if err := ReadFull(r, scratch.B); err != nil {
		return stats, errors.WithMessage(err, "read chunk payload")
	}

	out, err := f.codec.Decompress(dst[:0], scratch.B)
	if err != nil {
		return stats, errors.Wrap(err, "decompress chunk")
	}
	if len(out) != len(dst) {
		return stats, errors.Wrapf(errs.ErrChunkSizeMismatch, "got %d bytes, want %d", len(out), len(dst))
	}
	copy(dst, out)

	return stats, nil
}

// ReadFull reads exactly len(b) bytes, reporting a short read as ErrTruncated.
func ReadFull(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errors.Wrapf(errs.ErrTruncated, "wanted %d bytes", len(b))
		}

		return err
	}

	return nil
}
