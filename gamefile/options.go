package gamefile

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/arloliu/citysave/config"
	"github.com/arloliu/citysave/errs"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/internal/options"
)

// Option configures an Engine.
type Option = options.Option[*Engine]

// WithCompression selects the codec for compressed pieces. The default is Zstd.
func WithCompression(ct format.CompressionType) Option {
	return options.NoError(func(e *Engine) {
		e.compression = ct
	})
}

// WithStrict selects fail-closed handling of cursor mismatches (the default).
// With strict off, mismatches are returned as Report warnings instead.
func WithStrict(strict bool) Option {
	return options.NoError(func(e *Engine) {
		e.strict = strict
	})
}

func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(e *Engine) {
		e.logger = logger
	})
}

// WithMetrics registers the engine's collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return options.New(func(e *Engine) error {
		m, err := newMetrics(reg)
		if err != nil {
			return errors.Wrap(err, "register metrics")
		}
		e.metrics = m

		return nil
	})
}

// WithHooks installs the simulation callbacks run during reconciliation.
func WithHooks(h Hooks) Option {
	return options.NoError(func(e *Engine) {
		e.hooks = h
	})
}

// WithDataDir sets the directory for mission snapshots and a relative mission pack path.
func WithDataDir(dir string) Option {
	return options.NoError(func(e *Engine) {
		e.dataDir = dir
	})
}

// WithMissionPack sets the mission pack path, relative to the data dir unless absolute.
func WithMissionPack(path string) Option {
	return options.New(func(e *Engine) error {
		if path == "" {
			return errors.Wrap(errs.ErrInvalidConfig, "mission pack path is empty")
		}
		e.missionPack = path

		return nil
	})
}

// WithMaxChunkSize overrides the compression scratch capacity.
func WithMaxChunkSize(n int) Option {
	return options.New(func(e *Engine) error {
		if n <= 0 {
			return errors.Wrapf(errs.ErrInvalidConfig, "max chunk size %d", n)
		}
		e.maxChunk = n

		return nil
	})
}

// FromConfig applies every setting of cfg.
func FromConfig(cfg config.Config) Option {
	return options.New(func(e *Engine) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		ct, _ := cfg.CompressionType()
		e.compression = ct
		e.strict = !cfg.Lenient
		e.dataDir = cfg.DataDir
		e.missionPack = cfg.MissionPack
		e.maxChunk = cfg.MaxChunkSize

		return nil
	})
}
