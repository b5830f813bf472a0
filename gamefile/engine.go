// Package gamefile loads and saves city sessions.
//
// An Engine owns the savegame and scenario piece tables, the chunk framer and
// the state they are mapped onto. Its entry points are serialized by a mutex
// and must not be re-entered from hooks.
//
//	state := city.New()
//	engine, err := gamefile.New(state, gamefile.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	report, err := engine.LoadSavegame("Caesar.sav")
package gamefile

import (
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/arloliu/citysave/chunk"
	"github.com/arloliu/citysave/city"
	"github.com/arloliu/citysave/compress"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/internal/options"
	"github.com/arloliu/citysave/piece"
	"github.com/arloliu/citysave/savegame"
	"github.com/arloliu/citysave/scenario"
)

// Engine loads and saves one city.State.
type Engine struct {
	mu sync.Mutex

	state    *city.State
	savegame *piece.Table
	scenario *piece.Table
	framer   *chunk.Framer

	compression format.CompressionType
	strict      bool
	maxChunk    int
	dataDir     string
	missionPack string

	logger  zerolog.Logger
	metrics *metrics
	hooks   Hooks
}

// New creates an engine operating on state.
func New(state *city.State, opts ...Option) (*Engine, error) {
	if state == nil {
		return nil, errors.New("gamefile: nil state")
	}

	e := &Engine{
		state:       state,
		savegame:    savegame.NewTable(),
		scenario:    scenario.NewTable(),
		compression: format.CompressionZstd,
		strict:      true,
		maxChunk:    format.MaxChunkSize,
		dataDir:     ".",
		missionPack: format.MissionPackFile,
		logger:      zerolog.Nop(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(e.compression, "savegame")
	if err != nil {
		return nil, err
	}
	e.framer, err = chunk.New(codec, chunk.WithLimit(e.maxChunk))
	if err != nil {
		return nil, err
	}

	return e, nil
}

// State returns the state the engine loads into and saves from.
func (e *Engine) State() *city.State { return e.state }

// Compression returns the codec used for compressed pieces.
func (e *Engine) Compression() format.CompressionType { return e.compression }

func (e *Engine) missionPackPath() string {
	if filepath.IsAbs(e.missionPack) {
		return e.missionPack
	}

	return filepath.Join(e.dataDir, e.missionPack)
}

// Report summarizes one load or save.
type Report struct {
	Op        string
	Path      string
	Pieces    int
	Bytes     int64
	Fallbacks int
	Warnings  []piece.Mismatch
	Steps     []string
}

func newReport(op, path string, stored []piece.StoredPiece) *Report {
	r := &Report{Op: op, Path: path, Pieces: len(stored), Bytes: piece.StoredBytes(stored)}
	for _, sp := range stored {
		if sp.Fallback {
			r.Fallbacks++
		}
	}

	return r
}
