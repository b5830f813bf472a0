package city

import "github.com/arloliu/citysave/buffer"

// BuildingCounts are the per-type building tallies, split into the six
// aggregates the format stores in separate pieces.
type BuildingCounts struct {
	Industry [32]int32
	Culture1 [33]int32
	Culture2 [8]int32
	Culture3 [10]int32
	Military [4]int32
	Support  [6]int32
}

// LoadState reads the aggregates from their pieces, given in the order
// industry, culture1, culture2, culture3, military, support.
func (b *BuildingCounts) LoadState(industry, culture1, culture2, culture3, military, support *buffer.Cursor) error {
	pairs := []struct {
		c *buffer.Cursor
		v []int32
	}{
		{industry, b.Industry[:]},
		{culture1, b.Culture1[:]},
		{culture2, b.Culture2[:]},
		{culture3, b.Culture3[:]},
		{military, b.Military[:]},
		{support, b.Support[:]},
	}
	for _, p := range pairs {
		if err := buffer.ReadInts(p.c, p.v); err != nil {
			return err
		}
	}

	return nil
}

func (b *BuildingCounts) SaveState(industry, culture1, culture2, culture3, military, support *buffer.Cursor) error {
	pairs := []struct {
		c *buffer.Cursor
		v []int32
	}{
		{industry, b.Industry[:]},
		{culture1, b.Culture1[:]},
		{culture2, b.Culture2[:]},
		{culture3, b.Culture3[:]},
		{military, b.Military[:]},
		{support, b.Support[:]},
	}
	for _, p := range pairs {
		if err := buffer.WriteInts(p.c, p.v); err != nil {
			return err
		}
	}

	return nil
}
