//go:build gozstd

package compress

import (
	"github.com/pkg/errors"
	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress compresses src with the cgo zstd binding.
func (c ZstdCompressor) Compress(dst, src []byte) ([]byte, error) {
	return gozstd.CompressLevel(dst[:0], src, gozstdLevel), nil
}

func (c ZstdCompressor) Decompress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	out, err := gozstd.Decompress(dst[:0], src)
	if err != nil {
		return nil, errors.Wrap(err, "zstd decompression failed")
	}

	return out, nil
}
