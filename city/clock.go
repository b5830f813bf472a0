package city

import "github.com/arloliu/citysave/buffer"

// GameTime is the simulation clock.
type GameTime struct {
	Tick      int32
	Day       int32
	Month     int32
	Year      int32
	TotalDays int32
}

func (g *GameTime) LoadState(c *buffer.Cursor) error {
	readI32s(c, &g.Tick, &g.Day, &g.Month, &g.Year, &g.TotalDays)
	return c.Err()
}

func (g *GameTime) SaveState(c *buffer.Cursor) error {
	writeI32s(c, g.Tick, g.Day, g.Month, g.Year, g.TotalDays)
	return c.Err()
}

// Random is the random generator's persisted seed pair.
type Random struct {
	IV1 uint32
	IV2 uint32
}

func (r *Random) LoadState(c *buffer.Cursor) error {
	r.IV1 = c.ReadU32()
	r.IV2 = c.ReadU32()

	return c.Err()
}

func (r *Random) SaveState(c *buffer.Cursor) error {
	c.WriteU32(r.IV1)
	c.WriteU32(r.IV2)

	return c.Err()
}
