package savegame

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/citysave/city"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/internal/schema"
	"github.com/arloliu/citysave/piece"
)

func newTable(t *testing.T) *piece.Table {
	t.Helper()
	table := NewTable()
	require.NoError(t, table.EnsureInitialized(Layout))

	return table
}

func TestLayout(t *testing.T) {
	require := require.New(t)

	require.Len(Layout, 133)
	require.LessOrEqual(len(Layout), format.SavegameSlots)
	require.Equal("settings.mission_id", Layout[0].Name)
	require.Equal(VersionPiece, Layout[1].Name)
	require.Equal(piece.Spec{Name: "end_marker", Size: format.EndMarkerSize}, Layout[len(Layout)-1])

	total := 0
	compressed := 0
	for _, s := range Layout {
		total += s.Size
		if s.Compressed {
			compressed++
			require.LessOrEqual(s.Size, format.MaxChunkSize, s.Name)
		}
	}
	require.Equal(1255017, total)
	require.Equal(27, compressed)

	random, err := newTable(t).Get("grid.random")
	require.NoError(err)
	require.False(random.Compressed)
}

func TestBindingsCoverLayout(t *testing.T) {
	missing, repeated, unknown := schema.Coverage(Layout, Bindings(city.New()))
	require.Empty(t, missing)
	require.Empty(t, repeated)
	require.Empty(t, unknown)
}

func TestRoundTripIsByteIdentical(t *testing.T) {
	require := require.New(t)

	src := newTable(t)
	rng := rand.New(rand.NewSource(42))
	for _, p := range src.Pieces() {
		rng.Read(p.Bytes())
	}
	// The two hospital slots share one field, so only equal slots survive a round trip.
	legacy, _ := src.Get("coverage.hospital_legacy")
	hospital, _ := src.Get("coverage.hospital")
	copy(legacy.Bytes(), hospital.Bytes())

	state := city.New()
	require.NoError(Deserialize(src, state))
	require.Empty(src.Verify())

	dst := newTable(t)
	require.NoError(Serialize(dst, state))
	require.Empty(dst.Verify())

	for i, p := range dst.Pieces() {
		if p.Name == "end_marker" {
			continue
		}
		require.Equal(src.Pieces()[i].Bytes(), p.Bytes(), p.Name)
	}
}

func TestStateRoundTrip(t *testing.T) {
	require := require.New(t)

	in := city.New()
	in.Session.PlayerName = "Lucius"
	in.Settings.CurrentMissionID = 4
	in.Grid.GraphicIDs[100] = 0x1234
	in.Grid.Desirability[7] = -12
	in.Coverage.Hospital = 77
	in.Scenario.SetMapSize(40, 60)
	in.Formations.List[3].Morale = 50
	in.EnemyArmies.List[24].Strength = 300
	in.Extra.Bookmarks[3] = city.Point{X: 5, Y: 9}
	in.Events.LastInternalInvasionID = -2
	in.Counts.Military[3] = 4
	PrepareSave(in)

	table := newTable(t)
	require.NoError(Serialize(table, in))
	require.Empty(table.Verify())

	version, err := Version(table)
	require.NoError(err)
	require.Equal(format.SavegameVersion, version)

	table.Rewind()
	out := city.New()
	require.NoError(Deserialize(table, out))
	require.Empty(table.Verify())

	in.Session = city.Session{}
	require.Equal(in, out)
	require.Equal("Lucius", out.Extra.PlayerName(1))
	require.Equal("", out.Extra.PlayerName(0))
}

func TestPrepareSave(t *testing.T) {
	s := city.New()
	s.Version = 1
	s.Extra.SetPlayerName(0, "stale")
	s.Session.PlayerName = "Quintus"

	PrepareSave(s)
	require.Equal(t, format.SavegameVersion, s.Version)
	require.Equal(t, "", s.Extra.PlayerName(0))
	require.Equal(t, "Quintus", s.Extra.PlayerName(1))
}

func TestVersionDoesNotMoveCursor(t *testing.T) {
	table := newTable(t)
	p, err := table.Get(VersionPiece)
	require.NoError(t, err)
	p.WriteI32(0x42)
	p.Reset()

	v, err := Version(table)
	require.NoError(t, err)
	require.Equal(t, int32(0x42), v)
	require.Equal(t, 0, p.Pos())
}
