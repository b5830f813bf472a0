package city

// State is the complete mutable state of a city session.
//
// State is large (well over a megabyte); always allocate it with New.
type State struct {
	Version int32

	Settings         Settings
	Grid             Grid
	Figures          Figures
	Routes           Routes
	Formations       Formations
	CityInfo         [CityInfoSize]byte
	Extra            CityExtra
	Buildings        Buildings
	Burning          Burning
	BuildingLists    BuildingLists
	Clock            GameTime
	Random           Random
	Debug            Debug
	Counts           BuildingCounts
	Empire           Empire
	TradePrices      TradePrices
	TradeRoutes      TradeRoutes
	Traders          Traders
	FigureNames      FigureNames
	Coverage         CultureCoverage
	Scenario         ScenarioConfig
	Events           Events
	Messages         Messages
	InvasionWarnings [InvasionWarningsSize]byte
	SoundCity        [SoundCitySize]byte
	Tutorial         Tutorial
	EnemyArmies      EnemyArmies
	SelectedScenario [SelectedScenarioSize]byte

	Map     MapSettings
	UI      UI
	Session Session
}

// New allocates a zeroed state.
func New() *State {
	return &State{}
}
