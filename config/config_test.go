package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/citysave/errs"
	"github.com/arloliu/citysave/format"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	ct, err := cfg.CompressionType()
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, ct)
}

func TestLoadFileThenEnv(t *testing.T) {
	require := require.New(t)

	file := filepath.Join(t.TempDir(), "citysave.config")
	content := "CITYSAVE_DATA_DIR=/srv/saves\nCITYSAVE_COMPRESSION=lz4\nCITYSAVE_MAX_CHUNK_SIZE=4096\n"
	require.NoError(os.WriteFile(file, []byte(content), 0o600))

	t.Setenv("CITYSAVE_COMPRESSION", "s2")
	t.Setenv("CITYSAVE_LENIENT", "true")
	t.Setenv("CITYSAVE_LOG_LEVEL", "debug")

	cfg, err := Load(file)
	require.NoError(err)
	require.Equal("/srv/saves", cfg.DataDir)
	require.Equal("s2", cfg.Compression)
	require.Equal(4096, cfg.MaxChunkSize)
	require.True(cfg.Lenient)
	require.Equal(format.MissionPackFile, cfg.MissionPack)

	lvl, err := cfg.Level()
	require.NoError(err)
	require.Equal(zerolog.DebugLevel, lvl)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.config"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"compression", func(c *Config) { c.Compression = "brotli" }},
		{"chunk size", func(c *Config) { c.MaxChunkSize = 0 }},
		{"mission pack", func(c *Config) { c.MissionPack = "" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			require.True(t, errors.Is(cfg.Validate(), errs.ErrInvalidConfig))
		})
	}
}
