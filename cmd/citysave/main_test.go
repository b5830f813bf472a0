package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/citysave/city"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/gamefile"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"citysave"}, args...))

	return out.String(), err
}

func writeSavegame(t *testing.T, path string) {
	t.Helper()
	s := city.New()
	s.Session.PlayerName = "Aulus"
	s.Grid.GraphicIDs[42] = 7

	engine, err := gamefile.New(s)
	require.NoError(t, err)
	_, err = engine.WriteSavegame(path)
	require.NoError(t, err)
}

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city.sav")
	writeSavegame(t, path)

	out, err := run(t, "inspect", path)
	require.NoError(t, err)
	require.Contains(t, out, "grid.graphic_ids")
	require.Contains(t, out, "end_marker")
	require.Contains(t, out, "version 0x66, 133 pieces")
	require.Contains(t, out, "file blake3 ")

	_, err = run(t, "inspect")
	require.Error(t, err)
}

func TestRecompressAndVerify(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "city.sav")
	dst := filepath.Join(dir, "city.lz4.sav")
	writeSavegame(t, src)

	out, err := run(t, "recompress", "--to", "lz4", src, dst)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "save_savegame "))

	_, err = run(t, "--compression", "lz4", "verify", dst)
	require.NoError(t, err)

	// The default codec cannot read an LZ4 file.
	_, err = run(t, "verify", dst)
	require.Error(t, err)

	_, err = run(t, "recompress", "--to", "brotli", src, dst)
	require.Error(t, err)
}

func TestExtractMission(t *testing.T) {
	dir := t.TempDir()
	sav := filepath.Join(dir, "city.sav")
	writeSavegame(t, sav)
	data, err := os.ReadFile(sav)
	require.NoError(t, err)

	pack := make([]byte, 64, 64+len(data))
	copy(pack, gamefile.PutMissionIndex([]int32{64}))
	pack = append(pack, data...)
	require.NoError(t, os.WriteFile(filepath.Join(dir, format.MissionPackFile), pack, 0o600))

	out := filepath.Join(dir, "mission0.sav")
	_, err = run(t, "--data-dir", dir, "extract-mission", "--id", "0", out)
	require.NoError(t, err)

	extracted, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, len(data), len(extracted))

	_, err = run(t, "--data-dir", dir, "extract-mission", "--id", "1", out)
	require.Error(t, err)
}

func TestScenarioCommand(t *testing.T) {
	s := city.New()
	s.Scenario.SetMapSize(10, 10)
	s.Scenario.SetEmpireID(3)
	engine, err := gamefile.New(s)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = engine.WriteScenarioTo(&buf)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "small.map")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	out, err := run(t, "scenario", path)
	require.NoError(t, err)
	require.Contains(t, out, "map 10x10")
	require.Contains(t, out, "empire 3")

	_, err = run(t, "scenario", path+".missing")
	require.Error(t, err)
}
