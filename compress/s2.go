package compress

import "github.com/klauspost/compress/s2"

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses src using S2 block compression.
// s2 reuses dst only when its length covers the worst case, so the full
// capacity is offered.
func (c S2Compressor) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	return s2.Encode(dst[:cap(dst)], src), nil
}

// Decompress decompresses an S2 block.
func (c S2Compressor) Decompress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	return s2.Decode(dst[:cap(dst)], src)
}
