package city

// Sizes of the opaque collaborator blocks, in bytes.
const (
	FiguresSize          = 128000
	RouteDirectionsSize  = 300000
	CityInfoSize         = 36136
	BuildingsSize        = 256000
	EmpireCitiesSize     = 2706
	MessagesSize         = 16000
	InvasionWarningsSize = 3232
	SoundCitySize        = 8960
	StoragesSize         = 6400
	ScenarioSize         = 1720
	SelectedScenarioSize = 65
)

// Table lengths of the fixed arrays inside the state.
const (
	MaxRouteFigures      = 600
	MaxBurningItems      = 500
	MaxSmallList         = 500
	MaxLargeList         = 2000
	MessageCategories    = 20
	PopulationMilestones = 10
	PlayerNameLength     = 32
	MaxBookmarks         = 4
	EarthquakeBranches   = 4
)
