package scenario

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/citysave/city"
	"github.com/arloliu/citysave/endian"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/internal/schema"
)

func TestLayout(t *testing.T) {
	require.Len(t, Layout, 9)

	total := 0
	for _, s := range Layout {
		require.False(t, s.Compressed, s.Name)
		total += s.Size
	}
	require.Equal(t, 6*format.GridSize+2*format.GridSize+16+city.ScenarioSize, total)

	missing, repeated, unknown := schema.Coverage(Layout, Bindings(city.New()))
	require.Empty(t, missing)
	require.Empty(t, repeated)
	require.Empty(t, unknown)
}

func TestDeserializePatterns(t *testing.T) {
	require := require.New(t)

	table := NewTable()
	require.NoError(table.EnsureInitialized(Layout))
	for i, p := range table.Pieces()[:6] {
		for j := range p.Bytes() {
			p.Bytes()[j] = byte(0x10 + i)
		}
	}
	iv, _ := table.Get("random.iv")
	iv.WriteU32(11)
	iv.WriteU32(22)
	iv.Reset()
	camera, _ := table.Get("camera")
	camera.WriteI32(30)
	camera.WriteI32(-4)
	camera.Reset()
	block, _ := table.Get("scenario")
	endian.Wire().PutUint32(block.Bytes()[348:], 10)
	endian.Wire().PutUint32(block.Bytes()[352:], 10)

	s := city.New()
	require.NoError(Deserialize(table, s))
	require.Empty(table.Verify())

	require.Equal(uint16(0x1010), s.Grid.GraphicIDs[0])
	require.True(bytes.Equal(bytes.Repeat([]byte{0x11}, format.GridSize), s.Grid.Edge[:]))
	require.Equal(uint16(0x1212), s.Grid.Terrain[format.GridSize-1])
	require.Equal(uint8(0x13), s.Grid.Bitfields[5])
	require.Equal(uint8(0x14), s.Grid.Random[5])
	require.Equal(uint8(0x15), s.Grid.Elevation[5])
	require.Equal(city.Random{IV1: 11, IV2: 22}, s.Random)
	require.Equal(int32(30), s.Settings.CameraX)
	require.Equal(int32(-4), s.Settings.CameraY)
	require.Equal(int32(10), s.Scenario.MapWidth())
	require.Equal(int32(10), s.Scenario.MapHeight())
}

func TestSerializeRoundTrip(t *testing.T) {
	require := require.New(t)

	in := city.New()
	in.Grid.Terrain[9] = 0xABCD
	in.Settings.CameraX = 7
	in.Random = city.Random{IV1: 1, IV2: 2}
	in.Scenario.SetEmpireID(3)

	table := NewTable()
	require.NoError(table.EnsureInitialized(Layout))
	require.NoError(Serialize(table, in))
	require.Empty(table.Verify())

	require.NoError(table.EnsureInitialized(Layout))
	out := city.New()
	require.NoError(Deserialize(table, out))
	require.Equal(in.Grid.Terrain, out.Grid.Terrain)
	require.Equal(in.Settings.CameraX, out.Settings.CameraX)
	require.Equal(in.Random, out.Random)
	require.Equal(int32(3), out.Scenario.EmpireID())
}
