package city

import "github.com/arloliu/citysave/buffer"

const (
	MaxFormations       = 50
	FormationRecordSize = 128
	FormationFigures    = 16

	formationReserved = 72
)

// Formation is one legion, enemy or herd formation record.
type Formation struct {
	InUse          uint8
	Faction        uint8
	LegionID       uint8
	IsAtFort       uint8
	FigureType     int16
	BuildingID     int16
	Figures        [FormationFigures]int16
	NumFigures     uint8
	MaxFigures     uint8
	Orientation    uint8
	Layout         uint8
	X              int16
	Y              int16
	XHome          int16
	YHome          int16
	Morale         int16
	MonthsFromHome int16

	// Reserved holds the unparsed tail of the record.
	Reserved [formationReserved]byte
}

// Formations is the formation table with its totals.
type Formations struct {
	List         [MaxFormations]Formation
	IDLastInUse  int32
	IDLastLegion int32
	NumLegions   int32
}

// LoadState unpacks the formation table and its totals.
func (f *Formations) LoadState(list, totals *buffer.Cursor) error {
	for i := range f.List {
		r := &f.List[i]
		r.InUse = list.ReadU8()
		r.Faction = list.ReadU8()
		r.LegionID = list.ReadU8()
		r.IsAtFort = list.ReadU8()
		r.FigureType = list.ReadI16()
		r.BuildingID = list.ReadI16()
		if err := buffer.ReadInts(list, r.Figures[:]); err != nil {
			return err
		}
		r.NumFigures = list.ReadU8()
		r.MaxFigures = list.ReadU8()
		r.Orientation = list.ReadU8()
		r.Layout = list.ReadU8()
		r.X = list.ReadI16()
		r.Y = list.ReadI16()
		r.XHome = list.ReadI16()
		r.YHome = list.ReadI16()
		r.Morale = list.ReadI16()
		r.MonthsFromHome = list.ReadI16()
		if err := list.ReadRaw(r.Reserved[:]); err != nil {
			return err
		}
	}
	readI32s(totals, &f.IDLastInUse, &f.IDLastLegion, &f.NumLegions)

	return firstErr(list, totals)
}

// SaveState packs the formation table and its totals.
func (f *Formations) SaveState(list, totals *buffer.Cursor) error {
	for i := range f.List {
		r := &f.List[i]
		list.WriteU8(r.InUse)
		list.WriteU8(r.Faction)
		list.WriteU8(r.LegionID)
		list.WriteU8(r.IsAtFort)
		list.WriteI16(r.FigureType)
		list.WriteI16(r.BuildingID)
		if err := buffer.WriteInts(list, r.Figures[:]); err != nil {
			return err
		}
		list.WriteU8(r.NumFigures)
		list.WriteU8(r.MaxFigures)
		list.WriteU8(r.Orientation)
		list.WriteU8(r.Layout)
		list.WriteI16(r.X)
		list.WriteI16(r.Y)
		list.WriteI16(r.XHome)
		list.WriteI16(r.YHome)
		list.WriteI16(r.Morale)
		list.WriteI16(r.MonthsFromHome)
		if err := list.WriteRaw(r.Reserved[:]); err != nil {
			return err
		}
	}
	writeI32s(totals, f.IDLastInUse, f.IDLastLegion, f.NumLegions)

	return firstErr(list, totals)
}
