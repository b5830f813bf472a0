package gamefile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/citysave/city"
)

func recordingHooks(calls *[]string) Hooks {
	rec := func(name string) Hook {
		return func(*city.State) { *calls = append(*calls, name) }
	}

	return Hooks{
		StopMusic: rec("stop_music"),
		LoadEmpire: func(_ *city.State, custom bool, id int32) {
			*calls = append(*calls, "empire")
		},
		RomanTravelTime:         rec("roman_travel_time"),
		EnemyTravelTime:         rec("enemy_travel_time"),
		ViewLookup:              rec("view_lookup"),
		CameraBounds:            rec("camera_bounds"),
		ClearLandCitizenRouting: rec("routing_clear_land_citizen"),
		LandCitizenRouting:      rec("routing_land_citizen"),
		LandNonCitizenRouting:   rec("routing_land_non_citizen"),
		WaterRouting:            rec("routing_water"),
		WallRouting:             rec("routing_walls"),
		OrientedBuildings:       rec("oriented_buildings"),
		CleanFigureRoutes:       rec("clean_figure_routes"),
		RoadNetworks:            rec("road_networks"),
		AccessToRome:            rec("access_to_rome"),
		GranaryInfo:             rec("granary_info"),
		BuildMenu:               rec("build_menu"),
		ProblemAreas:            rec("problem_areas"),
		SoundCity:               rec("sound_city"),
		ResetMusic:              rec("reset_music"),
		ClimateImages:           func(uint8) { *calls = append(*calls, "climate_images") },
		EnemyImages:             func(int32) { *calls = append(*calls, "enemy_images") },
		DistantBattleCity:       rec("distant_battle_city"),
		Gardens:                 rec("gardens"),
		ResetStorageBuildingIDs: rec("reset_storage"),
	}
}

func TestLoadRunsHooksInOrder(t *testing.T) {
	require := require.New(t)
	data := encodeSavegame(t, sampleState())

	var calls []string
	e := newEngine(t, city.New(), WithHooks(recordingHooks(&calls)))
	report, err := e.ReadSavegame(bytes.NewReader(data))
	require.NoError(err)

	require.Equal([]string{
		"stop_music",
		"empire", "roman_travel_time", "enemy_travel_time",
		"view_lookup", "camera_bounds",
		"routing_clear_land_citizen", "routing_land_citizen", "routing_land_non_citizen",
		"routing_water", "routing_walls",
		"oriented_buildings", "clean_figure_routes", "road_networks", "access_to_rome",
		"granary_info", "build_menu", "problem_areas", "sound_city", "reset_music",
		"climate_images", "enemy_images", "distant_battle_city", "gardens",
		"reset_storage",
	}, calls)

	require.Equal("empire", report.Steps[0])
	require.Contains(report.Steps, "map_settings")
	require.Equal("unpause", report.Steps[len(report.Steps)-1])
}

func TestReconcileWithoutHooks(t *testing.T) {
	require := require.New(t)

	s := city.New()
	s.Scenario.SetMapSize(50, 70)
	s.Settings.Orientation = 5
	s.UI = city.UI{UndoReady: true, CurrentOverlay: 4, PreviousOverlay: 2, MessageMaxScroll: 8, MessageScroll: 3}
	s.Session.Paused = true

	steps := newEngine(t, s).reconcile()
	require.Equal([]string{"map_settings", "orientation", "ui_flags", "messages", "unpause"}, steps)

	require.Equal(int32(50), s.Map.Width)
	require.Equal(int32(70), s.Map.Height)
	require.Equal(int32(4), s.Settings.Orientation)
	require.Equal(city.UI{
		MissionBriefingShown:         true,
		Tutorial1FireMessageShown:    true,
		Tutorial3DiseaseMessageShown: true,
	}, s.UI)
	require.False(s.Session.Paused)
}

func TestNormalizeOrientation(t *testing.T) {
	cases := map[int32]int32{-1: 0, 0: 0, 1: 0, 2: 2, 3: 2, 4: 4, 5: 4, 6: 6, 7: 0, 100: 0}
	for in, want := range cases {
		require.Equal(t, want, normalizeOrientation(in), "orientation %d", in)
	}
}
