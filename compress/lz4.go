package compress

import (
	"sync"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"

	"github.com/arloliu/citysave/errs"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses src as a single LZ4 block.
//
// Returns ErrIncompressible when the block would not shrink; the chunk framer
// then stores the piece raw.
func (c LZ4Compressor) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	bound := lz4.CompressBlockBound(len(src))
	if cap(dst) < bound {
		dst = make([]byte, bound)
	}
	dst = dst[:bound]

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 || n >= len(src) {
		return nil, errs.ErrIncompressible
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block into dst.
//
// LZ4 blocks do not record their decoded size. The capacity of dst is tried
// first; when it is too small the buffer doubles until maxSize.
func (c LZ4Compressor) Decompress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	bufSize := cap(dst)
	if bufSize == 0 {
		bufSize = len(src) * 4
	}
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := dst[:0]
		if cap(buf) < bufSize {
			buf = make([]byte, bufSize)
		}
		buf = buf[:bufSize]

		n, err := lz4.UncompressBlock(src, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
