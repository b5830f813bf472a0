package schema

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/citysave/buffer"
	"github.com/arloliu/citysave/errs"
	"github.com/arloliu/citysave/piece"
)

var layout = []piece.Spec{
	{Name: "count", Size: 4},
	{Name: "values", Size: 6},
	{Name: "pair_a", Size: 4},
	{Name: "pair_b", Size: 2},
	{Name: "tail", Size: 10},
}

type state struct {
	count  int32
	values [3]int16
	a      int32
	b      uint16
}

func bindings(s *state) []Binding {
	return []Binding{
		Raw("count", &s.count),
		Delegate([]string{"pair_b", "pair_a"},
			func(c []*buffer.Cursor) error {
				s.b = c[0].ReadU16()
				s.a = c[1].ReadI32()
				return nil
			},
			func(c []*buffer.Cursor) error {
				c[0].WriteU16(s.b)
				c[1].WriteI32(s.a)
				return nil
			}),
		RawSlice("values", s.values[:]),
		Reserve("tail"),
	}
}

func newTable(t *testing.T) *piece.Table {
	t.Helper()
	table := piece.NewTable("schema", len(layout))
	require.NoError(t, table.EnsureInitialized(layout))

	return table
}

func TestSaveLoad(t *testing.T) {
	require := require.New(t)

	table := newTable(t)
	in := &state{count: 7, values: [3]int16{-1, 2, 3}, a: 42, b: 9}
	require.NoError(Save(table, bindings(in)))
	require.Empty(table.Verify())

	table.Rewind()
	out := &state{}
	require.NoError(Load(table, bindings(out)))
	require.Empty(table.Verify())
	require.Equal(in, out)
}

func TestShortBindingIsVisibleToVerify(t *testing.T) {
	table := newTable(t)
	var short [2]int16
	require.NoError(t, Save(table, []Binding{RawSlice("values", short[:])}))

	mismatches := table.Verify()
	names := make([]string, 0, len(mismatches))
	for _, m := range mismatches {
		names = append(names, m.Name)
	}
	require.Contains(t, names, "values")
}

func TestOverrunStopsPass(t *testing.T) {
	table := newTable(t)
	var wide [4]int16
	err := Load(table, []Binding{RawSlice("values", wide[:])})
	require.True(t, errors.Is(err, errs.ErrBufferOverrun))
}

func TestStickyErrorFromDelegate(t *testing.T) {
	table := newTable(t)
	b := Delegate([]string{"pair_b"},
		func(c []*buffer.Cursor) error {
			c[0].ReadI32()
			return nil
		}, nil)

	err := Load(table, []Binding{b})
	require.True(t, errors.Is(err, errs.ErrBufferOverrun))
}

func TestUnknownPiece(t *testing.T) {
	var v int32
	err := Load(newTable(t), []Binding{Raw("missing", &v)})
	require.True(t, errors.Is(err, errs.ErrPieceNotFound))
}

func TestCoverage(t *testing.T) {
	s := &state{}
	missing, repeated, unknown := Coverage(layout, bindings(s))
	require.Empty(t, missing)
	require.Empty(t, repeated)
	require.Empty(t, unknown)

	extra := append(bindings(s)[1:], Raw("values", &s.count), Raw("ghost", &s.count))
	missing, repeated, unknown = Coverage(layout, extra)
	require.Equal(t, []string{"count"}, missing)
	require.Equal(t, []string{"values"}, repeated)
	require.Equal(t, []string{"ghost"}, unknown)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "raw", RawCopy.String())
	require.Equal(t, "delegated", Delegated.String())
	require.Equal(t, "reserved", Reserved.String())
	require.Equal(t, "unknown", Kind(0).String())
}
