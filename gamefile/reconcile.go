package gamefile

import (
	"github.com/arloliu/citysave/city"
)

// Hook is a callback into a simulation subsystem. Nil hooks are skipped.
type Hook func(s *city.State)

// Hooks are the subsystem callbacks the engine runs around loading. They
// recompute state the file does not carry.
type Hooks struct {
	// StopMusic runs before a savegame file is read.
	StopMusic Hook

	// LoadEmpire reloads the empire map for the scenario's empire.
	LoadEmpire func(s *city.State, custom bool, empireID int32)

	RomanTravelTime Hook
	EnemyTravelTime Hook

	ViewLookup   Hook
	CameraBounds Hook

	ClearLandCitizenRouting Hook
	LandCitizenRouting      Hook
	LandNonCitizenRouting   Hook
	WaterRouting            Hook
	WallRouting             Hook

	OrientedBuildings Hook
	CleanFigureRoutes Hook
	RoadNetworks      Hook
	AccessToRome      Hook
	GranaryInfo       Hook
	BuildMenu         Hook
	ProblemAreas      Hook
	SoundCity         Hook
	ResetMusic        Hook

	ClimateImages func(climate uint8)
	EnemyImages   func(enemyID int32)

	DistantBattleCity Hook
	Gardens           Hook

	// ResetStorageBuildingIDs runs after a savegame (not a mission pack entry) is loaded.
	ResetStorageBuildingIDs Hook
}

type step struct {
	name string
	run  func()
}

func hookStep(name string, h Hook, s *city.State) step {
	if h == nil {
		return step{name: name}
	}

	return step{name: name, run: func() { h(s) }}
}

// reconcileSteps lists the post-load pass in execution order.
func (e *Engine) reconcileSteps() []step {
	s, h := e.state, e.hooks

	empire := step{name: "empire"}
	if h.LoadEmpire != nil {
		empire.run = func() { h.LoadEmpire(s, s.Settings.IsCustomScenario != 0, s.Scenario.EmpireID()) }
	}
	climate := step{name: "climate_images"}
	if h.ClimateImages != nil {
		climate.run = func() { h.ClimateImages(s.Scenario.Climate()) }
	}
	enemies := step{name: "enemy_images"}
	if h.EnemyImages != nil {
		enemies.run = func() { h.EnemyImages(s.Scenario.EnemyID()) }
	}

	steps := []step{
		empire,
		hookStep("roman_travel_time", h.RomanTravelTime, s),
		hookStep("enemy_travel_time", h.EnemyTravelTime, s),
		{name: "map_settings", run: func() { applyMapSettings(s) }},
		{name: "orientation", run: func() { s.Settings.Orientation = normalizeOrientation(s.Settings.Orientation) }},
		hookStep("view_lookup", h.ViewLookup, s),
		hookStep("camera_bounds", h.CameraBounds, s),
		hookStep("routing_clear_land_citizen", h.ClearLandCitizenRouting, s),
		hookStep("routing_land_citizen", h.LandCitizenRouting, s),
		hookStep("routing_land_non_citizen", h.LandNonCitizenRouting, s),
		hookStep("routing_water", h.WaterRouting, s),
		hookStep("routing_walls", h.WallRouting, s),
		hookStep("oriented_buildings", h.OrientedBuildings, s),
		hookStep("clean_figure_routes", h.CleanFigureRoutes, s),
		hookStep("road_networks", h.RoadNetworks, s),
		hookStep("access_to_rome", h.AccessToRome, s),
		hookStep("granary_info", h.GranaryInfo, s),
		hookStep("build_menu", h.BuildMenu, s),
		hookStep("problem_areas", h.ProblemAreas, s),
		hookStep("sound_city", h.SoundCity, s),
		hookStep("reset_music", h.ResetMusic, s),
		{name: "ui_flags", run: func() { resetUI(&s.UI) }},
		climate,
		enemies,
		hookStep("distant_battle_city", h.DistantBattleCity, s),
		hookStep("gardens", h.Gardens, s),
		{name: "messages", run: func() {
			s.UI.MessageMaxScroll = 0
			s.UI.MessageScroll = 0
		}},
		{name: "unpause", run: func() { s.Session.Paused = false }},
	}

	return steps
}

// reconcile runs the post-load pass and returns the names of the steps that ran.
func (e *Engine) reconcile() []string {
	ran := make([]string, 0, 32)
	for _, st := range e.reconcileSteps() {
		if st.run == nil {
			continue
		}
		st.run()
		ran = append(ran, st.name)
	}
	e.logger.Debug().Strs("steps", ran).Msg("reconciled session state")

	return ran
}

func applyMapSettings(s *city.State) {
	s.Map = city.MapSettings{
		Width:           s.Scenario.MapWidth(),
		Height:          s.Scenario.MapHeight(),
		GridStartOffset: s.Scenario.GridStartOffset(),
		GridBorderSize:  s.Scenario.GridBorderSize(),
	}
}

// normalizeOrientation rounds an orientation in [0,6] down to an even value;
// anything else becomes 0.
func normalizeOrientation(o int32) int32 {
	if o < 0 || o > 6 {
		return 0
	}

	return 2 * (o / 2)
}

func resetUI(ui *city.UI) {
	ui.UndoReady = false
	ui.CurrentOverlay = 0
	ui.PreviousOverlay = 0
	ui.MissionBriefingShown = true
	ui.Tutorial1FireMessageShown = true
	ui.Tutorial3DiseaseMessageShown = true
}
