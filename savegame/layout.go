package savegame

import (
	"github.com/arloliu/citysave/city"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/piece"
)

// Layout is the savegame wire contract: every piece in file order with its
// size and compression flag. Changing it requires a new format.SavegameVersion.
var Layout = []piece.Spec{
	{Name: "settings.mission_id", Size: 4},
	{Name: "file_version", Size: 4},
	{Name: "grid.graphic_ids", Size: 2 * format.GridSize, Compressed: true},
	{Name: "grid.edge", Size: format.GridSize, Compressed: true},
	{Name: "grid.building_ids", Size: 2 * format.GridSize, Compressed: true},
	{Name: "grid.terrain", Size: 2 * format.GridSize, Compressed: true},
	{Name: "grid.aqueducts", Size: format.GridSize, Compressed: true},
	{Name: "grid.figure_ids", Size: 2 * format.GridSize, Compressed: true},
	{Name: "grid.bitfields", Size: format.GridSize, Compressed: true},
	{Name: "grid.sprite_offsets", Size: format.GridSize, Compressed: true},
	{Name: "grid.random", Size: format.GridSize},
	{Name: "grid.desirability", Size: format.GridSize, Compressed: true},
	{Name: "grid.elevation", Size: format.GridSize, Compressed: true},
	{Name: "grid.building_damage", Size: format.GridSize, Compressed: true},
	{Name: "grid.undo_aqueducts", Size: format.GridSize, Compressed: true},
	{Name: "grid.undo_sprite_offsets", Size: format.GridSize, Compressed: true},
	{Name: "figures", Size: city.FiguresSize, Compressed: true},
	{Name: "routes.figure_ids", Size: 1200, Compressed: true},
	{Name: "routes.direction_paths", Size: city.RouteDirectionsSize, Compressed: true},
	{Name: "formations", Size: city.MaxFormations * city.FormationRecordSize, Compressed: true},
	{Name: "formations.totals", Size: 12},
	{Name: "city_info", Size: city.CityInfoSize, Compressed: true},
	{Name: "city.unknown_bytes", Size: 2},
	{Name: "city.player_names", Size: 64},
	{Name: "city.ciid", Size: 4},
	{Name: "buildings", Size: city.BuildingsSize, Compressed: true},
	{Name: "settings.orientation", Size: 4},
	{Name: "game_time", Size: 20},
	{Name: "buildings.highest_id_ever", Size: 4},
	{Name: "debug.max_connects_ever", Size: 4},
	{Name: "random.iv", Size: 8},
	{Name: "settings.camera_x", Size: 4},
	{Name: "settings.camera_y", Size: 4},
	{Name: "building_count.culture1", Size: 132},
	{Name: "city.population_graph_order", Size: 4},
	{Name: "city.unknown_order", Size: 4},
	{Name: "event.emperor_change.year", Size: 4},
	{Name: "event.emperor_change.month", Size: 4},
	{Name: "empire.scroll_x", Size: 4},
	{Name: "empire.scroll_y", Size: 4},
	{Name: "empire.selected_object", Size: 4},
	{Name: "empire.cities", Size: city.EmpireCitiesSize, Compressed: true},
	{Name: "building_count.industry", Size: 128},
	{Name: "trade.prices", Size: 128},
	{Name: "figure_names", Size: 84},
	{Name: "coverage.theater", Size: 4},
	{Name: "coverage.amphitheater", Size: 4},
	{Name: "coverage.colosseum", Size: 4},
	{Name: "coverage.hospital_legacy", Size: 4},
	{Name: "coverage.hippodrome", Size: 4},
	{Name: "coverage.religion_ceres", Size: 4},
	{Name: "coverage.religion_neptune", Size: 4},
	{Name: "coverage.religion_mercury", Size: 4},
	{Name: "coverage.religion_mars", Size: 4},
	{Name: "coverage.religion_venus", Size: 4},
	{Name: "coverage.oracle", Size: 4},
	{Name: "coverage.school", Size: 4},
	{Name: "coverage.library", Size: 4},
	{Name: "coverage.academy", Size: 4},
	{Name: "coverage.hospital", Size: 4},
	{Name: "scenario", Size: city.ScenarioSize},
	{Name: "event.time_limit_max_year", Size: 4},
	{Name: "event.earthquake.year", Size: 4},
	{Name: "event.earthquake.month", Size: 4},
	{Name: "event.earthquake.state", Size: 4},
	{Name: "event.earthquake.duration", Size: 4},
	{Name: "event.earthquake.max_duration", Size: 4},
	{Name: "event.earthquake.max_delay", Size: 4},
	{Name: "event.earthquake.delay", Size: 4},
	{Name: "event.earthquake.expand", Size: 32},
	{Name: "event.emperor_change.state", Size: 4},
	{Name: "messages", Size: city.MessagesSize, Compressed: true},
	{Name: "messages.next_sequence", Size: 4},
	{Name: "messages.total", Size: 4},
	{Name: "messages.current_id", Size: 4},
	{Name: "messages.population_shown", Size: 10},
	{Name: "messages.category_count", Size: 80},
	{Name: "messages.category_delay", Size: 80},
	{Name: "burning.total", Size: 4},
	{Name: "burning.index", Size: 4},
	{Name: "figures.created_sequence", Size: 4},
	{Name: "settings.starting_favor", Size: 4},
	{Name: "settings.personal_savings_last_mission", Size: 4},
	{Name: "settings.current_mission_id", Size: 4},
	{Name: "invasion_warnings", Size: city.InvasionWarningsSize, Compressed: true},
	{Name: "settings.is_custom_scenario", Size: 4},
	{Name: "sound.city", Size: city.SoundCitySize},
	{Name: "buildings.highest_id_in_use", Size: 4},
	{Name: "traders", Size: 4804},
	{Name: "burning.items", Size: 1000, Compressed: true},
	{Name: "building_list.small", Size: 1000, Compressed: true},
	{Name: "building_list.large", Size: 4000, Compressed: true},
	{Name: "tutorial.t1_fire", Size: 4},
	{Name: "tutorial.t1_crime", Size: 4},
	{Name: "tutorial.t1_collapse", Size: 4},
	{Name: "tutorial.t2_granary_built", Size: 4},
	{Name: "tutorial.t2_population_250", Size: 4},
	{Name: "tutorial.t1_senate_built", Size: 4},
	{Name: "tutorial.t2_population_450", Size: 4},
	{Name: "tutorial.t2_pottery_made", Size: 4},
	{Name: "building_count.military", Size: 16},
	{Name: "enemy_armies.totals", Size: 20},
	{Name: "buildings.storages", Size: city.StoragesSize},
	{Name: "building_count.culture2", Size: 32},
	{Name: "building_count.support", Size: 24},
	{Name: "tutorial.t2_pottery_made_year", Size: 4},
	{Name: "event.gladiator_revolt.year", Size: 4},
	{Name: "event.gladiator_revolt.month", Size: 4},
	{Name: "event.gladiator_revolt.end_month", Size: 4},
	{Name: "event.gladiator_revolt.state", Size: 4},
	{Name: "trade.route_limit", Size: 1280, Compressed: true},
	{Name: "trade.route_traded", Size: 1280, Compressed: true},
	{Name: "buildings.barracks_tower_sentry_requested", Size: 4},
	{Name: "buildings.created_sequence", Size: 4},
	{Name: "routes.unknown1_calculated", Size: 4},
	{Name: "routes.enemy_calculated", Size: 4},
	{Name: "routes.total_calculated", Size: 4},
	{Name: "routes.unknown2_calculated", Size: 4},
	{Name: "building_count.culture3", Size: 40},
	{Name: "enemy_armies", Size: 900},
	{Name: "city.entry_flag_x", Size: 4},
	{Name: "city.entry_flag_y", Size: 4},
	{Name: "city.exit_flag_x", Size: 4},
	{Name: "city.exit_flag_y", Size: 4},
	{Name: "event.last_internal_invasion_id", Size: 2},
	{Name: "debug.incorrect_house_positions", Size: 4},
	{Name: "debug.unfixable_house_positions", Size: 4},
	{Name: "file_list.selected_scenario", Size: city.SelectedScenarioSize},
	{Name: "city.bookmarks", Size: 32},
	{Name: "tutorial.t3_disease", Size: 4},
	{Name: "city.entry_flag_grid_offset", Size: 4},
	{Name: "city.exit_flag_grid_offset", Size: 4},
	{Name: "end_marker", Size: format.EndMarkerSize},
}

const (
	// VersionPiece holds the file format version.
	VersionPiece = "file_version"

	// HeaderPieces is the number of leading pieces read before the version is checked.
	HeaderPieces = 2
)

// NewTable returns an empty savegame piece table with the reserved slot count.
func NewTable() *piece.Table {
	return piece.NewTable("savegame", format.SavegameSlots)
}
