// Package config loads engine settings from an optional key=value file and
// the environment. Environment variables override the file.
//
//	CITYSAVE_DATA_DIR=/var/lib/city
//	CITYSAVE_MISSION_PACK=mission1.pak
//	CITYSAVE_COMPRESSION=zstd
//	CITYSAVE_LENIENT=false
//	CITYSAVE_MAX_CHUNK_SIZE=600000
//	CITYSAVE_LOG_LEVEL=info
package config

import (
	"os"
	"strings"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/arloliu/citysave/errs"
	"github.com/arloliu/citysave/format"
)

type Config struct {
	DataDir      string `config:"CITYSAVE_DATA_DIR"`
	MissionPack  string `config:"CITYSAVE_MISSION_PACK"`
	Compression  string `config:"CITYSAVE_COMPRESSION"`
	Lenient      bool   `config:"CITYSAVE_LENIENT"`
	MaxChunkSize int    `config:"CITYSAVE_MAX_CHUNK_SIZE"`
	LogLevel     string `config:"CITYSAVE_LOG_LEVEL"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		DataDir:      ".",
		MissionPack:  format.MissionPackFile,
		Compression:  "zstd",
		MaxChunkSize: format.MaxChunkSize,
		LogLevel:     "info",
	}
}

// Load reads file (when non-empty) and then the environment on top of Default.
func Load(file string) (Config, error) {
	cfg := Default()

	var builder *jlconfig.Builder
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return cfg, errors.Wrapf(err, "config file %s", file)
		}
		builder = jlconfig.From(file).FromEnv()
	} else {
		builder = jlconfig.FromEnv()
	}
	if err := builder.To(&cfg); err != nil {
		return cfg, errors.Wrap(err, "load config")
	}

	return cfg, cfg.Validate()
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if _, err := c.CompressionType(); err != nil {
		return err
	}
	if c.MaxChunkSize <= 0 {
		return errors.Wrapf(errs.ErrInvalidConfig, "max chunk size %d", c.MaxChunkSize)
	}
	if c.MissionPack == "" {
		return errors.Wrap(errs.ErrInvalidConfig, "mission pack path is empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// CompressionType parses the Compression field.
func (c Config) CompressionType() (format.CompressionType, error) {
	ct, ok := format.ParseCompressionType(strings.ToLower(c.Compression))
	if !ok {
		return 0, errors.Wrapf(errs.ErrInvalidConfig, "compression %q", c.Compression)
	}

	return ct, nil
}

// Level parses the LogLevel field.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(errs.ErrInvalidConfig, "log level %q", c.LogLevel)
	}

	return lvl, nil
}
