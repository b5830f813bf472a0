package compress

// NoOpCompressor copies data through unchanged.
//
// The chunk framer treats it as a real codec, so a savegame written with it
// still uses length-prefixed chunks; only the bytes are not reduced.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress copies src into dst.
func (c NoOpCompressor) Compress(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}

// Decompress copies src into dst.
func (c NoOpCompressor) Decompress(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}
