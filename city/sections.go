package city

import "github.com/arloliu/citysave/buffer"

// Settings are the persisted game settings.
type Settings struct {
	SaveGameMissionID          int32
	Orientation                int32
	CameraX                    int32
	CameraY                    int32
	StartingFavor              int32
	PersonalSavingsLastMission int32
	CurrentMissionID           int32
	IsCustomScenario           int32
}

type Figures struct {
	Table           [FiguresSize]byte
	CreatedSequence int32
}

type Routes struct {
	FigureIDs                [MaxRouteFigures]int16
	DirectionPaths           [RouteDirectionsSize]byte
	Unknown1RoutesCalculated int32
	EnemyRoutesCalculated    int32
	TotalRoutesCalculated    int32
	Unknown2RoutesCalculated int32
}

type Buildings struct {
	Table                        [BuildingsSize]byte
	Storages                     [StoragesSize]byte
	HighestIDEver                int32
	HighestIDInUse               int32
	BarracksTowerSentryRequested int32
	CreatedSequence              int32
}

// Burning is the list of buildings on fire.
type Burning struct {
	Total int32
	Index int32
	Items [MaxBurningItems]int16
}

type Empire struct {
	ScrollX        int32
	ScrollY        int32
	SelectedObject int32
	Cities         [EmpireCitiesSize]byte
}

// CultureCoverage holds the percentage of population covered per service.
type CultureCoverage struct {
	Theater      int32
	Amphitheater int32
	Colosseum    int32
	Hospital     int32
	Hippodrome   int32
	Ceres        int32
	Neptune      int32
	Mercury      int32
	Mars         int32
	Venus        int32
	Oracle       int32
	School       int32
	Library      int32
	Academy      int32
}

type EmperorChange struct {
	GameYear int32
	Month    int32
	State    int32
}

type Earthquake struct {
	GameYear    int32
	Month       int32
	State       int32
	Duration    int32
	MaxDuration int32
	MaxDelay    int32
	Delay       int32
	Expand      [EarthquakeBranches]Point
}

type GladiatorRevolt struct {
	GameYear int32
	Month    int32
	EndMonth int32
	State    int32
}

// Events is the state of the scripted and random events.
type Events struct {
	EmperorChange          EmperorChange
	Earthquake             Earthquake
	GladiatorRevolt        GladiatorRevolt
	TimeLimitMaxGameYear   int32
	LastInternalInvasionID int16
}

type Messages struct {
	Table                   [MessagesSize]byte
	NextMessageSequence     int32
	TotalMessages           int32
	CurrentMessageID        int32
	PopulationMessagesShown [PopulationMilestones]uint8
	CategoryCount           [MessageCategories]int32
	Delay                   [MessageCategories]int32
}

type Tutorial struct {
	Tutorial1Fire                 int32
	Tutorial1Crime                int32
	Tutorial1Collapse             int32
	Tutorial1SenateBuilt          int32
	Tutorial2GranaryBuilt         int32
	Tutorial2Population250Reached int32
	Tutorial2Population450Reached int32
	Tutorial2PotteryMade          int32
	Tutorial2PotteryMadeYear      int32
	Tutorial3Disease              int32
}

// Point is a map tile position.
type Point struct {
	X int32
	Y int32
}

// Flag is a map marker with its cached grid offset.
type Flag struct {
	X          int32
	Y          int32
	GridOffset int32
}

// CityExtra holds the small city fields stored outside the city info block.
type CityExtra struct {
	UnknownBytes         [2]byte
	PlayerNames          [2][PlayerNameLength]byte
	CIID                 int32
	PopulationGraphOrder int32
	UnknownOrder         int32
	EntryFlag            Flag
	ExitFlag             Flag
	Bookmarks            [MaxBookmarks]Point
}

type Debug struct {
	MaxConnectsEver         int32
	IncorrectHousePositions int32
	UnfixableHousePositions int32
}

// LoadPoints reads consecutive (x, y) pairs.
func LoadPoints(c *buffer.Cursor, points []Point) error {
	for i := range points {
		readI32s(c, &points[i].X, &points[i].Y)
	}

	return c.Err()
}

func SavePoints(c *buffer.Cursor, points []Point) error {
	for _, p := range points {
		writeI32s(c, p.X, p.Y)
	}

	return c.Err()
}

// LoadNames reads the fixed-width player name table.
func (e *CityExtra) LoadNames(c *buffer.Cursor) error {
	for i := range e.PlayerNames {
		if err := c.ReadRaw(e.PlayerNames[i][:]); err != nil {
			return err
		}
	}

	return nil
}

func (e *CityExtra) SaveNames(c *buffer.Cursor) error {
	for i := range e.PlayerNames {
		if err := c.WriteRaw(e.PlayerNames[i][:]); err != nil {
			return err
		}
	}

	return nil
}

// PlayerName returns the NUL-terminated name stored in slot.
func (e *CityExtra) PlayerName(slot int) string {
	name := e.PlayerNames[slot][:]
	for i, b := range name {
		if b == 0 {
			return string(name[:i])
		}
	}

	return string(name)
}

// SetPlayerName stores name in slot, truncated to leave room for the terminator.
func (e *CityExtra) SetPlayerName(slot int, name string) {
	dst := &e.PlayerNames[slot]
	*dst = [PlayerNameLength]byte{}
	copy(dst[:PlayerNameLength-1], name)
}
