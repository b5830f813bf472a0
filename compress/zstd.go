package compress

// ZstdCompressor provides Zstandard compression.
//
// The default build uses github.com/klauspost/compress/zstd with pooled
// encoders and decoders. Building with -tags gozstd switches to the cgo
// binding github.com/valyala/gozstd; both produce standard zstd frames, so
// files written by one build are readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	scratch, err := codec.Compress(scratch, piece)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
