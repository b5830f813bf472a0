// Package errs defines the sentinel errors returned by citysave packages.
//
// Errors are wrapped with context (piece name, index, path) on the way up, so
// callers should match them with errors.Is rather than comparing directly.
package errs

import "github.com/pkg/errors"

// Buffer errors.
var (
	ErrBufferOverrun = errors.New("buffer overrun")
	ErrInvalidSize   = errors.New("invalid buffer size")
)

// Chunk framing errors.
var (
	ErrChunkTooLarge      = errors.New("compressed chunk exceeds scratch capacity")
	ErrChunkSizeMismatch  = errors.New("decompressed chunk does not match piece size")
	ErrIncompressible     = errors.New("data is incompressible")
	ErrInvalidCompression = errors.New("invalid compression type")
)

// Piece table errors.
var (
	ErrTableFull      = errors.New("piece table is full")
	ErrDuplicatePiece = errors.New("duplicate piece name")
	ErrPieceNotFound  = errors.New("piece not found")
	ErrLayoutMismatch = errors.New("piece layout differs from initialized table")
	ErrCursorMismatch = errors.New("piece cursor did not consume the whole piece")
)

// File and operation errors.
var (
	ErrFileNotFound        = errors.New("file not found")
	ErrFileCreate          = errors.New("failed to create file")
	ErrTruncated           = errors.New("file is truncated")
	ErrIncompatibleVersion = errors.New("incompatible savegame version")
	ErrMissionNotFound     = errors.New("mission not found in mission pack")
	ErrInvalidMission      = errors.New("invalid mission id")
	ErrInvalidConfig       = errors.New("invalid configuration")
)
