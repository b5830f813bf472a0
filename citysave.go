// Package citysave reads and writes the savegame and scenario files of a
// city-building game session.
//
// A savegame is a fixed sequence of 133 pieces. Large pieces (map layers,
// figure and building tables) are stored as length-prefixed compressed
// chunks; small ones are stored raw. A scenario file is nine raw pieces
// describing a map before play starts.
//
// # Core Features
//
//   - Fixed piece layouts with one binding per piece onto typed state
//   - Compressed chunks with a raw fallback (None, Zstd, S2, LZ4)
//   - Version check before any state is touched
//   - Post-load reconciliation with pluggable simulation hooks
//   - Mission pack extraction and per-mission snapshots
//   - Structured logging (zerolog) and Prometheus metrics
//
// # Basic Usage
//
// Loading a savegame into a fresh session:
//
//	import "github.com/arloliu/citysave"
//
//	state, report, err := citysave.LoadSavegame("Caesar.sav")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Pieces, state.Session.PlayerName)
//
// Saving it again:
//
//	state.Session.PlayerName = "Lucius"
//	_, err = citysave.SaveSavegame("Caesar.sav", state)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the gamefile
// package. For hooks, metrics, mission packs and repeated loads into the same
// session, create a gamefile.Engine directly.
package citysave

import (
	"github.com/arloliu/citysave/city"
	"github.com/arloliu/citysave/gamefile"
)

// NewEngine creates an engine operating on state with custom options.
//
// Available options:
//   - gamefile.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - gamefile.WithStrict(true|false)
//   - gamefile.WithLogger(zerolog.Logger)
//   - gamefile.WithMetrics(prometheus.Registerer)
//   - gamefile.WithHooks(gamefile.Hooks)
//   - gamefile.WithDataDir(dir) / gamefile.WithMissionPack(path)
//   - gamefile.FromConfig(config.Config)
//
// Returns an error if the configuration is invalid.
func NewEngine(state *city.State, opts ...gamefile.Option) (*gamefile.Engine, error) {
	return gamefile.New(state, opts...)
}

// NewDefaultEngine creates an engine on a new zeroed state with the default
// settings: Zstd compression, strict cursor checks and no hooks.
func NewDefaultEngine() (*gamefile.Engine, error) {
	return gamefile.New(city.New())
}

// LoadSavegame loads the savegame at path into a new state.
//
// The returned report lists the stored size of every piece and the
// reconciliation steps that ran.
func LoadSavegame(path string, opts ...gamefile.Option) (*city.State, *gamefile.Report, error) {
	state := city.New()
	engine, err := gamefile.New(state, opts...)
	if err != nil {
		return nil, nil, err
	}
	report, err := engine.LoadSavegame(path)
	if err != nil {
		return nil, report, err
	}

	return state, report, nil
}

// SaveSavegame writes state to path as a savegame.
//
// Saving stamps the current file version and copies the session's player
// name into the file, so state is modified.
func SaveSavegame(path string, state *city.State, opts ...gamefile.Option) (*gamefile.Report, error) {
	engine, err := gamefile.New(state, opts...)
	if err != nil {
		return nil, err
	}

	return engine.WriteSavegame(path)
}

// LoadScenario loads the scenario map at path into a new state.
//
// When no file exists at path, loaded is false and the state is blank.
func LoadScenario(path string, opts ...gamefile.Option) (state *city.State, loaded bool, err error) {
	state = city.New()
	engine, err := gamefile.New(state, opts...)
	if err != nil {
		return nil, false, err
	}
	loaded, err = engine.LoadScenario(path)
	if err != nil {
		return nil, false, err
	}

	return state, loaded, nil
}
