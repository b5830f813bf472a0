package city

import "github.com/arloliu/citysave/buffer"

// BuildingLists are the scratch worklists of building ids.
type BuildingLists struct {
	Small [MaxSmallList]int16
	Large [MaxLargeList]int16
}

func (b *BuildingLists) LoadState(small, large *buffer.Cursor) error {
	if err := buffer.ReadInts(small, b.Small[:]); err != nil {
		return err
	}

	return buffer.ReadInts(large, b.Large[:])
}

func (b *BuildingLists) SaveState(small, large *buffer.Cursor) error {
	if err := buffer.WriteInts(small, b.Small[:]); err != nil {
		return err
	}

	return buffer.WriteInts(large, b.Large[:])
}
