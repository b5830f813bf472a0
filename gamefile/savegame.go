package gamefile

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/arloliu/citysave/errs"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/piece"
	"github.com/arloliu/citysave/savegame"
)

const (
	opLoadSavegame = "load_savegame"
	opLoadMission  = "load_mission"
	opSaveSavegame = "save_savegame"
	opLoadScenario = "load_scenario"
	opSaveScenario = "save_scenario"
)

// LoadSavegame reads the savegame at path into the state and reconciles it.
//
// A missing file fails with ErrFileNotFound before anything is touched. A
// wrong version or a truncated file also leaves the state unchanged. A
// failure after deserialization started leaves it partially overwritten.
func (e *Engine) LoadSavegame(path string) (*Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	report, err := e.loadSavegameFile(path)
	e.finish(opLoadSavegame, path, start, report, err)

	return report, err
}

// ReadSavegame loads a savegame from r with the same side effects as LoadSavegame.
func (e *Engine) ReadSavegame(r io.Reader) (*Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	e.runHook(e.hooks.StopMusic)
	report, err := e.readSavegame(r, opLoadSavegame, "")
	if err == nil {
		e.afterPlainLoad()
	}
	e.finish(opLoadSavegame, "", start, report, err)

	return report, err
}

func (e *Engine) loadSavegameFile(path string) (*Report, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	e.runHook(e.hooks.StopMusic)
	report, err := e.readSavegame(bufio.NewReader(f), opLoadSavegame, path)
	if err != nil {
		return report, errors.WithMessagef(err, "load %s", path)
	}
	e.afterPlainLoad()

	return report, nil
}

// afterPlainLoad runs the steps that follow a regular savegame load but not
// a mission pack load.
func (e *Engine) afterPlainLoad() {
	e.runHook(e.hooks.ResetStorageBuildingIDs)
	e.state.Session.PlayerName = e.state.Extra.PlayerName(1)
}

// readSavegame reads, checks, deserializes and reconciles one savegame.
func (e *Engine) readSavegame(r io.Reader, op, path string) (*Report, error) {
	t := e.savegame
	if err := t.EnsureInitialized(savegame.Layout); err != nil {
		return nil, err
	}

	head, err := t.ReadPrefix(r, e.framer, savegame.HeaderPieces)
	if err != nil {
		return nil, err
	}
	version, err := savegame.Version(t)
	if err != nil {
		return nil, err
	}
	if version != format.SavegameVersion {
		return nil, errors.Wrapf(errs.ErrIncompatibleVersion, "version 0x%x, supported 0x%x", version, format.SavegameVersion)
	}

	rest, err := t.ReadRest(r, e.framer, savegame.HeaderPieces)
	if err != nil {
		return nil, err
	}
	report := newReport(op, path, append(head, rest...))

	if err := savegame.Deserialize(t, e.state); err != nil {
		return report, err
	}
	if err := e.checkCursors(t, report); err != nil {
		return report, err
	}
	report.Steps = e.reconcile()

	return report, nil
}

// checkCursors enforces the drained-cursor contract after a pass.
func (e *Engine) checkCursors(t *piece.Table, report *Report) error {
	mismatches := t.Verify()
	if len(mismatches) == 0 {
		return nil
	}
	for _, m := range mismatches {
		e.logger.Warn().
			Str("table", t.Name()).
			Int("index", m.Index).
			Str("piece", m.Name).
			Int("pos", m.Pos).
			Int("size", m.Size).
			AnErr("cursor_err", m.Err).
			Msg("piece not fully consumed")
	}
	if e.strict {
		m := mismatches[0]
		return errors.Wrapf(errs.ErrCursorMismatch, "%s piece %d (%s): position %d of %d, %d pieces affected",
			t.Name(), m.Index, m.Name, m.Pos, m.Size, len(mismatches))
	}
	report.Warnings = append(report.Warnings, mismatches...)

	return nil
}

// WriteSavegame serializes the state and writes it to path.
//
// The file is written to a temporary name in the same directory and renamed
// over path once complete.
func (e *Engine) WriteSavegame(path string) (*Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	report, err := e.writeSavegameFile(path)
	e.finish(opSaveSavegame, path, start, report, err)

	return report, err
}

// WriteSavegameTo serializes the state and writes it to w.
func (e *Engine) WriteSavegameTo(w io.Writer) (*Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	if err := e.prepareSavegame(); err != nil {
		e.finish(opSaveSavegame, "", start, nil, err)
		return nil, err
	}
	stored, err := e.savegame.WriteTo(w, e.framer)
	report := newReport(opSaveSavegame, "", stored)
	e.finish(opSaveSavegame, "", start, report, err)

	return report, err
}

// prepareSavegame applies the save side effects and serializes into the table.
func (e *Engine) prepareSavegame() error {
	t := e.savegame
	if err := t.EnsureInitialized(savegame.Layout); err != nil {
		return err
	}
	savegame.PrepareSave(e.state)
	if err := savegame.Serialize(t, e.state); err != nil {
		return err
	}

	// A short serialize pass is a codec bug, never acceptable on save.
	if mismatches := t.Verify(); len(mismatches) > 0 {
		m := mismatches[0]
		return errors.Wrapf(errs.ErrCursorMismatch, "serialize piece %d (%s): position %d of %d", m.Index, m.Name, m.Pos, m.Size)
	}

	return nil
}

func (e *Engine) writeSavegameFile(path string) (*Report, error) {
	if err := e.prepareSavegame(); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, errors.Wrapf(errs.ErrFileCreate, "%s: %v", path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriterSize(tmp, 256*1024)
	stored, err := e.savegame.WriteTo(w, e.framer)
	if err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, errors.Wrapf(err, "flush %s", path)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrapf(err, "close %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return nil, errors.Wrapf(errs.ErrFileCreate, "%s: %v", path, err)
	}
	committed = true

	return newReport(opSaveSavegame, path, stored), nil
}

// DeleteSavegame removes the savegame at path.
func (e *Engine) DeleteSavegame(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(errs.ErrFileNotFound, path)
		}

		return errors.Wrapf(err, "delete %s", path)
	}
	e.logger.Info().Str("path", path).Msg("deleted savegame")

	return nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errs.ErrFileNotFound, path)
		}

		return nil, errors.Wrapf(err, "open %s", path)
	}

	return f, nil
}

func (e *Engine) runHook(h Hook) {
	if h != nil {
		h(e.state)
	}
}

// finish logs an operation and records its metrics.
func (e *Engine) finish(op, path string, start time.Time, report *Report, err error) {
	var bytes int64
	if report != nil {
		bytes = report.Bytes
		e.metrics.fallback(report.Fallbacks)
	}
	e.metrics.observe(op, start, bytes, err)

	if err != nil {
		e.logger.Error().Err(err).Str("op", op).Str("path", path).Msg("operation failed")
		return
	}
	ev := e.logger.Info().Str("op", op).Str("path", path).Dur("elapsed", time.Since(start))
	if report != nil {
		ev = ev.Int("pieces", report.Pieces).Int64("bytes", report.Bytes).
			Int("fallbacks", report.Fallbacks).Int("warnings", len(report.Warnings))
	}
	ev.Msg("operation complete")
}
