package compress

import (
	"github.com/pkg/errors"

	"github.com/arloliu/citysave/errs"
	"github.com/arloliu/citysave/format"
)

// Compressor compresses one piece of a savegame.
//
// Memory management:
//   - The result is appended to dst[:0]; pass a scratch slice to avoid allocation
//   - src is never modified
//   - An error means the caller should store src raw instead
type Compressor interface {
	Compress(dst, src []byte) ([]byte, error)
}

// Decompressor restores a piece previously produced by the matching Compressor.
//
// The result is appended to dst[:0]. When cap(dst) equals the expected piece
// size the call does not allocate.
type Decompressor interface {
	Decompress(dst, src []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, errors.Wrapf(errs.ErrInvalidCompression, "%s: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, errors.Wrapf(errs.ErrInvalidCompression, "unsupported compression type: %s", compressionType)
}
