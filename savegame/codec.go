// Package savegame maps the savegame piece layout onto city.State.
package savegame

import (
	"github.com/pkg/errors"

	"github.com/arloliu/citysave/buffer"
	"github.com/arloliu/citysave/city"
	"github.com/arloliu/citysave/endian"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/internal/schema"
	"github.com/arloliu/citysave/piece"
)

type cursors = []*buffer.Cursor

// Bindings returns the bindings of every savegame piece to s, in layout order.
// A binding that consumes several pieces sits at the position of its first one.
//
// Both hospital coverage pieces carry the same field; the file keeps a legacy
// duplicate slot and the later one wins on load.
func Bindings(s *city.State) []schema.Binding {
	g := &s.Grid

	return []schema.Binding{
		schema.Raw("settings.mission_id", &s.Settings.SaveGameMissionID),
		schema.Raw(VersionPiece, &s.Version),
		schema.RawSlice("grid.graphic_ids", g.GraphicIDs[:]),
		schema.RawSlice("grid.edge", g.Edge[:]),
		schema.RawSlice("grid.building_ids", g.BuildingIDs[:]),
		schema.RawSlice("grid.terrain", g.Terrain[:]),
		schema.RawSlice("grid.aqueducts", g.Aqueducts[:]),
		schema.RawSlice("grid.figure_ids", g.FigureIDs[:]),
		schema.RawSlice("grid.bitfields", g.Bitfields[:]),
		schema.RawSlice("grid.sprite_offsets", g.SpriteOffsets[:]),
		schema.RawSlice("grid.random", g.Random[:]),
		schema.RawSlice("grid.desirability", g.Desirability[:]),
		schema.RawSlice("grid.elevation", g.Elevation[:]),
		schema.RawSlice("grid.building_damage", g.BuildingDamage[:]),
		schema.RawSlice("grid.undo_aqueducts", g.UndoAqueducts[:]),
		schema.RawSlice("grid.undo_sprite_offsets", g.UndoSpriteOffsets[:]),
		schema.RawSlice("figures", s.Figures.Table[:]),
		schema.RawSlice("routes.figure_ids", s.Routes.FigureIDs[:]),
		schema.RawSlice("routes.direction_paths", s.Routes.DirectionPaths[:]),
		schema.Delegate([]string{"formations", "formations.totals"},
			func(c cursors) error { return s.Formations.LoadState(c[0], c[1]) },
			func(c cursors) error { return s.Formations.SaveState(c[0], c[1]) }),
		schema.RawSlice("city_info", s.CityInfo[:]),
		schema.RawSlice("city.unknown_bytes", s.Extra.UnknownBytes[:]),
		schema.Delegate([]string{"city.player_names"},
			func(c cursors) error { return s.Extra.LoadNames(c[0]) },
			func(c cursors) error { return s.Extra.SaveNames(c[0]) }),
		schema.Raw("city.ciid", &s.Extra.CIID),
		schema.RawSlice("buildings", s.Buildings.Table[:]),
		schema.Raw("settings.orientation", &s.Settings.Orientation),
		schema.Delegate([]string{"game_time"},
			func(c cursors) error { return s.Clock.LoadState(c[0]) },
			func(c cursors) error { return s.Clock.SaveState(c[0]) }),
		schema.Raw("buildings.highest_id_ever", &s.Buildings.HighestIDEver),
		schema.Raw("debug.max_connects_ever", &s.Debug.MaxConnectsEver),
		schema.Delegate([]string{"random.iv"},
			func(c cursors) error { return s.Random.LoadState(c[0]) },
			func(c cursors) error { return s.Random.SaveState(c[0]) }),
		schema.Raw("settings.camera_x", &s.Settings.CameraX),
		schema.Raw("settings.camera_y", &s.Settings.CameraY),
		schema.Delegate(buildingCountPieces,
			func(c cursors) error { return s.Counts.LoadState(c[1], c[0], c[2], c[3], c[4], c[5]) },
			func(c cursors) error { return s.Counts.SaveState(c[1], c[0], c[2], c[3], c[4], c[5]) }),
		schema.Raw("city.population_graph_order", &s.Extra.PopulationGraphOrder),
		schema.Raw("city.unknown_order", &s.Extra.UnknownOrder),
		schema.Raw("event.emperor_change.year", &s.Events.EmperorChange.GameYear),
		schema.Raw("event.emperor_change.month", &s.Events.EmperorChange.Month),
		schema.Raw("empire.scroll_x", &s.Empire.ScrollX),
		schema.Raw("empire.scroll_y", &s.Empire.ScrollY),
		schema.Raw("empire.selected_object", &s.Empire.SelectedObject),
		schema.RawSlice("empire.cities", s.Empire.Cities[:]),
		schema.Delegate([]string{"trade.prices"},
			func(c cursors) error { return s.TradePrices.LoadState(c[0]) },
			func(c cursors) error { return s.TradePrices.SaveState(c[0]) }),
		schema.Delegate([]string{"figure_names"},
			func(c cursors) error { return s.FigureNames.LoadState(c[0]) },
			func(c cursors) error { return s.FigureNames.SaveState(c[0]) }),
		schema.Raw("coverage.theater", &s.Coverage.Theater),
		schema.Raw("coverage.amphitheater", &s.Coverage.Amphitheater),
		schema.Raw("coverage.colosseum", &s.Coverage.Colosseum),
		schema.Raw("coverage.hospital_legacy", &s.Coverage.Hospital),
		schema.Raw("coverage.hippodrome", &s.Coverage.Hippodrome),
		schema.Raw("coverage.religion_ceres", &s.Coverage.Ceres),
		schema.Raw("coverage.religion_neptune", &s.Coverage.Neptune),
		schema.Raw("coverage.religion_mercury", &s.Coverage.Mercury),
		schema.Raw("coverage.religion_mars", &s.Coverage.Mars),
		schema.Raw("coverage.religion_venus", &s.Coverage.Venus),
		schema.Raw("coverage.oracle", &s.Coverage.Oracle),
		schema.Raw("coverage.school", &s.Coverage.School),
		schema.Raw("coverage.library", &s.Coverage.Library),
		schema.Raw("coverage.academy", &s.Coverage.Academy),
		schema.Raw("coverage.hospital", &s.Coverage.Hospital),
		schema.RawSlice("scenario", s.Scenario.Raw[:]),
		schema.Raw("event.time_limit_max_year", &s.Events.TimeLimitMaxGameYear),
		schema.Raw("event.earthquake.year", &s.Events.Earthquake.GameYear),
		schema.Raw("event.earthquake.month", &s.Events.Earthquake.Month),
		schema.Raw("event.earthquake.state", &s.Events.Earthquake.State),
		schema.Raw("event.earthquake.duration", &s.Events.Earthquake.Duration),
		schema.Raw("event.earthquake.max_duration", &s.Events.Earthquake.MaxDuration),
		schema.Raw("event.earthquake.max_delay", &s.Events.Earthquake.MaxDelay),
		schema.Raw("event.earthquake.delay", &s.Events.Earthquake.Delay),
		schema.Delegate([]string{"event.earthquake.expand"},
			func(c cursors) error { return city.LoadPoints(c[0], s.Events.Earthquake.Expand[:]) },
			func(c cursors) error { return city.SavePoints(c[0], s.Events.Earthquake.Expand[:]) }),
		schema.Raw("event.emperor_change.state", &s.Events.EmperorChange.State),
		schema.RawSlice("messages", s.Messages.Table[:]),
		schema.Raw("messages.next_sequence", &s.Messages.NextMessageSequence),
		schema.Raw("messages.total", &s.Messages.TotalMessages),
		schema.Raw("messages.current_id", &s.Messages.CurrentMessageID),
		schema.RawSlice("messages.population_shown", s.Messages.PopulationMessagesShown[:]),
		schema.RawSlice("messages.category_count", s.Messages.CategoryCount[:]),
		schema.RawSlice("messages.category_delay", s.Messages.Delay[:]),
		schema.Raw("burning.total", &s.Burning.Total),
		schema.Raw("burning.index", &s.Burning.Index),
		schema.Raw("figures.created_sequence", &s.Figures.CreatedSequence),
		schema.Raw("settings.starting_favor", &s.Settings.StartingFavor),
		schema.Raw("settings.personal_savings_last_mission", &s.Settings.PersonalSavingsLastMission),
		schema.Raw("settings.current_mission_id", &s.Settings.CurrentMissionID),
		schema.RawSlice("invasion_warnings", s.InvasionWarnings[:]),
		schema.Raw("settings.is_custom_scenario", &s.Settings.IsCustomScenario),
		schema.RawSlice("sound.city", s.SoundCity[:]),
		schema.Raw("buildings.highest_id_in_use", &s.Buildings.HighestIDInUse),
		schema.Delegate([]string{"traders"},
			func(c cursors) error { return s.Traders.LoadState(c[0]) },
			func(c cursors) error { return s.Traders.SaveState(c[0]) }),
		schema.RawSlice("burning.items", s.Burning.Items[:]),
		schema.Delegate([]string{"building_list.small", "building_list.large"},
			func(c cursors) error { return s.BuildingLists.LoadState(c[0], c[1]) },
			func(c cursors) error { return s.BuildingLists.SaveState(c[0], c[1]) }),
		schema.Raw("tutorial.t1_fire", &s.Tutorial.Tutorial1Fire),
		schema.Raw("tutorial.t1_crime", &s.Tutorial.Tutorial1Crime),
		schema.Raw("tutorial.t1_collapse", &s.Tutorial.Tutorial1Collapse),
		schema.Raw("tutorial.t2_granary_built", &s.Tutorial.Tutorial2GranaryBuilt),
		schema.Raw("tutorial.t2_population_250", &s.Tutorial.Tutorial2Population250Reached),
		schema.Raw("tutorial.t1_senate_built", &s.Tutorial.Tutorial1SenateBuilt),
		schema.Raw("tutorial.t2_population_450", &s.Tutorial.Tutorial2Population450Reached),
		schema.Raw("tutorial.t2_pottery_made", &s.Tutorial.Tutorial2PotteryMade),
		schema.Delegate([]string{"enemy_armies", "enemy_armies.totals"},
			func(c cursors) error { return s.EnemyArmies.LoadState(c[0], c[1]) },
			func(c cursors) error { return s.EnemyArmies.SaveState(c[0], c[1]) }),
		schema.RawSlice("buildings.storages", s.Buildings.Storages[:]),
		schema.Raw("tutorial.t2_pottery_made_year", &s.Tutorial.Tutorial2PotteryMadeYear),
		schema.Raw("event.gladiator_revolt.year", &s.Events.GladiatorRevolt.GameYear),
		schema.Raw("event.gladiator_revolt.month", &s.Events.GladiatorRevolt.Month),
		schema.Raw("event.gladiator_revolt.end_month", &s.Events.GladiatorRevolt.EndMonth),
		schema.Raw("event.gladiator_revolt.state", &s.Events.GladiatorRevolt.State),
		schema.Delegate([]string{"trade.route_limit", "trade.route_traded"},
			func(c cursors) error { return s.TradeRoutes.LoadState(c[0], c[1]) },
			func(c cursors) error { return s.TradeRoutes.SaveState(c[0], c[1]) }),
		schema.Raw("buildings.barracks_tower_sentry_requested", &s.Buildings.BarracksTowerSentryRequested),
		schema.Raw("buildings.created_sequence", &s.Buildings.CreatedSequence),
		schema.Raw("routes.unknown1_calculated", &s.Routes.Unknown1RoutesCalculated),
		schema.Raw("routes.enemy_calculated", &s.Routes.EnemyRoutesCalculated),
		schema.Raw("routes.total_calculated", &s.Routes.TotalRoutesCalculated),
		schema.Raw("routes.unknown2_calculated", &s.Routes.Unknown2RoutesCalculated),
		schema.Raw("city.entry_flag_x", &s.Extra.EntryFlag.X),
		schema.Raw("city.entry_flag_y", &s.Extra.EntryFlag.Y),
		schema.Raw("city.exit_flag_x", &s.Extra.ExitFlag.X),
		schema.Raw("city.exit_flag_y", &s.Extra.ExitFlag.Y),
		schema.Raw("event.last_internal_invasion_id", &s.Events.LastInternalInvasionID),
		schema.Raw("debug.incorrect_house_positions", &s.Debug.IncorrectHousePositions),
		schema.Raw("debug.unfixable_house_positions", &s.Debug.UnfixableHousePositions),
		schema.RawSlice("file_list.selected_scenario", s.SelectedScenario[:]),
		schema.Delegate([]string{"city.bookmarks"},
			func(c cursors) error { return city.LoadPoints(c[0], s.Extra.Bookmarks[:]) },
			func(c cursors) error { return city.SavePoints(c[0], s.Extra.Bookmarks[:]) }),
		schema.Raw("tutorial.t3_disease", &s.Tutorial.Tutorial3Disease),
		schema.Raw("city.entry_flag_grid_offset", &s.Extra.EntryFlag.GridOffset),
		schema.Raw("city.exit_flag_grid_offset", &s.Extra.ExitFlag.GridOffset),
		schema.Reserve("end_marker"),
	}
}

// buildingCountPieces lists the building count aggregates from the first one
// in the file; they are scattered across the layout.
var buildingCountPieces = []string{
	"building_count.culture1",
	"building_count.industry",
	"building_count.culture2",
	"building_count.culture3",
	"building_count.military",
	"building_count.support",
}

// PrepareSave applies the side effects that precede serialization: the
// current format version is stamped and the session's player name is copied
// into slot 1 of the two-slot name table.
func PrepareSave(s *city.State) {
	s.Version = format.SavegameVersion
	s.Extra.PlayerNames[0] = [city.PlayerNameLength]byte{}
	s.Extra.SetPlayerName(1, s.Session.PlayerName)
}

// Serialize writes s into the cursors of t, which must be initialized with
// Layout and rewound.
func Serialize(t *piece.Table, s *city.State) error {
	return errors.WithMessage(schema.Save(t, Bindings(s)), "serialize savegame")
}

// Deserialize reads s from the cursors of t.
func Deserialize(t *piece.Table, s *city.State) error {
	return errors.WithMessage(schema.Load(t, Bindings(s)), "deserialize savegame")
}

// Version returns the format version staged in t without moving any cursor.
func Version(t *piece.Table) (int32, error) {
	p, err := t.Get(VersionPiece)
	if err != nil {
		return 0, err
	}

	return int32(endian.Wire().Uint32(p.Bytes())), nil
}
