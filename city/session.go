package city

// MapSettings are the map dimensions derived from the scenario block on load.
type MapSettings struct {
	Width           int32
	Height          int32
	GridStartOffset int32
	GridBorderSize  int32
}

// UI holds the interface flags reset after a savegame is loaded.
type UI struct {
	UndoReady                    bool
	CurrentOverlay               int32
	PreviousOverlay              int32
	MissionBriefingShown         bool
	Tutorial1FireMessageShown    bool
	Tutorial3DiseaseMessageShown bool
	MessageMaxScroll             int32
	MessageScroll                int32
}

// Session is the state of the running session that is not written to disk.
type Session struct {
	PlayerName              string
	MissionSavedGameWritten bool
	Paused                  bool
}
