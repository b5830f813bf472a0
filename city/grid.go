package city

import "github.com/arloliu/citysave/format"

// Grid holds the per-tile map layers. Each layer covers format.GridSize tiles.
type Grid struct {
	GraphicIDs        [format.GridSize]uint16
	Edge              [format.GridSize]uint8
	BuildingIDs       [format.GridSize]uint16
	Terrain           [format.GridSize]uint16
	Aqueducts         [format.GridSize]uint8
	FigureIDs         [format.GridSize]uint16
	Bitfields         [format.GridSize]uint8
	SpriteOffsets     [format.GridSize]uint8
	Random            [format.GridSize]uint8
	Desirability      [format.GridSize]int8
	Elevation         [format.GridSize]uint8
	BuildingDamage    [format.GridSize]uint8
	UndoAqueducts     [format.GridSize]uint8
	UndoSpriteOffsets [format.GridSize]uint8
}

// Offset returns the grid offset of tile (x, y).
func Offset(x, y int) int {
	return y*format.GridWidth + x
}
