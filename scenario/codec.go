// Package scenario maps the scenario (map) file layout onto city.State.
//
// A scenario file is nine uncompressed pieces: six map layers, the random
// generator seed, the camera position and the scenario description block.
package scenario

import (
	"github.com/pkg/errors"

	"github.com/arloliu/citysave/buffer"
	"github.com/arloliu/citysave/city"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/internal/schema"
	"github.com/arloliu/citysave/piece"
)

// Layout is the scenario wire contract in file order.
var Layout = []piece.Spec{
	{Name: "grid.graphic_ids", Size: 2 * format.GridSize},
	{Name: "grid.edge", Size: format.GridSize},
	{Name: "grid.terrain", Size: 2 * format.GridSize},
	{Name: "grid.bitfields", Size: format.GridSize},
	{Name: "grid.random", Size: format.GridSize},
	{Name: "grid.elevation", Size: format.GridSize},
	{Name: "random.iv", Size: 8},
	{Name: "camera", Size: 8},
	{Name: "scenario", Size: city.ScenarioSize},
}

// NewTable returns an empty scenario piece table.
func NewTable() *piece.Table {
	return piece.NewTable("scenario", format.ScenarioSlots)
}

// Bindings returns the bindings of every scenario piece to s, in processing
// order: the map layers, the camera, the random seed, then the scenario block.
func Bindings(s *city.State) []schema.Binding {
	g := &s.Grid

	return []schema.Binding{
		schema.RawSlice("grid.graphic_ids", g.GraphicIDs[:]),
		schema.RawSlice("grid.edge", g.Edge[:]),
		schema.RawSlice("grid.terrain", g.Terrain[:]),
		schema.RawSlice("grid.bitfields", g.Bitfields[:]),
		schema.RawSlice("grid.random", g.Random[:]),
		schema.RawSlice("grid.elevation", g.Elevation[:]),
		schema.Delegate([]string{"camera"},
			func(c []*buffer.Cursor) error {
				s.Settings.CameraX = c[0].ReadI32()
				s.Settings.CameraY = c[0].ReadI32()
				return nil
			},
			func(c []*buffer.Cursor) error {
				c[0].WriteI32(s.Settings.CameraX)
				c[0].WriteI32(s.Settings.CameraY)
				return nil
			}),
		schema.Delegate([]string{"random.iv"},
			func(c []*buffer.Cursor) error { return s.Random.LoadState(c[0]) },
			func(c []*buffer.Cursor) error { return s.Random.SaveState(c[0]) }),
		schema.RawSlice("scenario", s.Scenario.Raw[:]),
	}
}

// Deserialize reads the map state of s from the cursors of t.
func Deserialize(t *piece.Table, s *city.State) error {
	return errors.WithMessage(schema.Load(t, Bindings(s)), "deserialize scenario")
}

// Serialize writes the map state of s into the cursors of t.
func Serialize(t *piece.Table, s *city.State) error {
	return errors.WithMessage(schema.Save(t, Bindings(s)), "serialize scenario")
}
