// Package compress provides the codecs used for the compressed pieces of a savegame.
//
// The savegame format treats compression as a black box: a compressed piece is
// written as a 4-byte length followed by whatever the codec produced. Which
// codec a file uses is a property of the engine writing and reading it, not of
// the file, so both sides must be configured alike.
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(dst, src []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(dst, src []byte) ([]byte, error)
//	}
//
// Both append into dst[:0] so the chunk framer can reuse one scratch buffer
// for every piece.
//
// # Algorithms
//
//   - None: copies bytes through (format.CompressionNone)
//   - Zstd: best ratio on map layers and building tables (format.CompressionZstd)
//   - S2: fast with a good ratio (format.CompressionS2)
//   - LZ4: fastest decode; reports ErrIncompressible when a block would grow (format.CompressionLZ4)
//
// Zstd is implemented with github.com/klauspost/compress by default, or with
// the cgo library github.com/valyala/gozstd when built with -tags gozstd.
//
// # Thread Safety
//
// All codecs are stateless values; pooled encoders make them safe for
// concurrent use.
package compress
