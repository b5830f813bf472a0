package piece

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/citysave/chunk"
	"github.com/arloliu/citysave/compress"
	"github.com/arloliu/citysave/errs"
)

var testLayout = []Spec{
	{Name: "version", Size: 4},
	{Name: "grid", Size: 2048, Compressed: true},
	{Name: "camera", Size: 8},
	{Name: "trailer", Size: 16},
}

func newTable(t *testing.T) *Table {
	t.Helper()
	table := NewTable("test", 8)
	require.NoError(t, table.EnsureInitialized(testLayout))

	return table
}

func TestEnsureInitialized(t *testing.T) {
	require := require.New(t)

	table := newTable(t)
	require.Equal(4, table.Len())
	require.Equal(4+2048+8+16, table.TotalSize())
	require.Equal(testLayout, table.Layout())

	grid, err := table.Get("grid")
	require.NoError(err)
	require.Equal(1, grid.Index)
	require.True(grid.Compressed)

	require.NoError(grid.Skip(100))

	// A second call rewinds and keeps the same pieces.
	require.NoError(table.EnsureInitialized(testLayout))
	again, err := table.Get("grid")
	require.NoError(err)
	require.Same(grid, again)
	require.Equal(0, again.Pos())
}

func TestEnsureInitializedErrors(t *testing.T) {
	t.Run("table full", func(t *testing.T) {
		table := NewTable("small", 2)
		require.True(t, errors.Is(table.EnsureInitialized(testLayout), errs.ErrTableFull))
		require.False(t, table.Initialized())
	})

	t.Run("duplicate", func(t *testing.T) {
		table := NewTable("dup", 4)
		err := table.EnsureInitialized([]Spec{{Name: "a", Size: 1}, {Name: "a", Size: 2}})
		require.True(t, errors.Is(err, errs.ErrDuplicatePiece))
	})

	t.Run("layout changed", func(t *testing.T) {
		table := newTable(t)
		changed := append([]Spec(nil), testLayout...)
		changed[2].Size = 12
		require.True(t, errors.Is(table.EnsureInitialized(changed), errs.ErrLayoutMismatch))
		require.True(t, errors.Is(table.EnsureInitialized(testLayout[:2]), errs.ErrLayoutMismatch))
	})

	t.Run("unknown piece", func(t *testing.T) {
		_, err := newTable(t).Get("nope")
		require.True(t, errors.Is(err, errs.ErrPieceNotFound))
	})
}

func TestVerify(t *testing.T) {
	require := require.New(t)

	table := newTable(t)
	for _, p := range table.Pieces() {
		require.NoError(p.Skip(p.Size()))
	}
	require.Empty(table.Verify())

	table.Rewind()
	for _, p := range table.Pieces() {
		if p.Name != "camera" {
			require.NoError(p.Skip(p.Size()))
		}
	}
	camera, _ := table.Get("camera")
	camera.WriteI32(1)

	mismatches := table.Verify()
	require.Len(mismatches, 1)
	require.Equal(Mismatch{Index: 2, Name: "camera", Pos: 4, Size: 8}, mismatches[0])
}

func TestTransportRoundTrip(t *testing.T) {
	require := require.New(t)

	framer, err := chunk.New(compress.NewZstdCompressor())
	require.NoError(err)

	src := newTable(t)
	for i, p := range src.Pieces() {
		for j := range p.Bytes() {
			p.Bytes()[j] = byte(i + j/64)
		}
	}

	var buf bytes.Buffer
	written, err := src.WriteTo(&buf, framer)
	require.NoError(err)
	require.Len(written, 4)
	require.Equal(int64(buf.Len()), StoredBytes(written))
	require.Less(buf.Len(), src.TotalSize())

	dst := newTable(t)
	read, err := dst.ReadFrom(&buf, framer)
	require.NoError(err)
	require.Equal(written, read)
	for i, p := range dst.Pieces() {
		require.Equal(src.Pieces()[i].Bytes(), p.Bytes())
	}
}

func TestReadPrefixThenRest(t *testing.T) {
	require := require.New(t)

	framer, err := chunk.New(compress.NewS2Compressor())
	require.NoError(err)

	src := newTable(t)
	src.Pieces()[0].WriteI32(0x66)
	var buf bytes.Buffer
	_, err = src.WriteTo(&buf, framer)
	require.NoError(err)

	dst := newTable(t)
	head, err := dst.ReadPrefix(&buf, framer, 1)
	require.NoError(err)
	require.Len(head, 1)
	require.Equal(int32(0x66), dst.Pieces()[0].ReadI32())

	rest, err := dst.ReadRest(&buf, framer, 1)
	require.NoError(err)
	require.Len(rest, 3)
	require.Equal(0, buf.Len())
}

func TestReadTruncated(t *testing.T) {
	framer, err := chunk.New(compress.NewNoOpCompressor())
	require.NoError(t, err)

	src := newTable(t)
	var buf bytes.Buffer
	_, err = src.WriteTo(&buf, framer)
	require.NoError(t, err)

	cut := buf.Bytes()[:buf.Len()-3]
	_, err = newTable(t).ReadFrom(bytes.NewReader(cut), framer)
	require.True(t, errors.Is(err, errs.ErrTruncated))
	require.Contains(t, err.Error(), "trailer")
}
