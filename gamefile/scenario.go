package gamefile

import (
	"bufio"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/arloliu/citysave/errs"
	"github.com/arloliu/citysave/scenario"
)

// LoadScenario reads the scenario map at path into the state.
//
// A missing file is not an error: loaded is false and the caller starts from
// a blank map. After a successful read the trade prices are reset, the empire
// is loaded for the scenario's empire and travel times are recomputed.
func (e *Engine) LoadScenario(path string) (loaded bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	f, err := openFile(path)
	if err != nil {
		if errors.Is(err, errs.ErrFileNotFound) {
			e.logger.Info().Str("path", path).Msg("no scenario file, starting blank")
			return false, nil
		}
		e.finish(opLoadScenario, path, start, nil, err)

		return false, err
	}
	defer f.Close()

	report, err := e.readScenario(bufio.NewReader(f), path)
	if err != nil {
		err = errors.WithMessagef(err, "load %s", path)
	}
	e.finish(opLoadScenario, path, start, report, err)

	return err == nil, err
}

// ReadScenario loads a scenario map from r with the same side effects as LoadScenario.
func (e *Engine) ReadScenario(r io.Reader) (*Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	report, err := e.readScenario(r, "")
	e.finish(opLoadScenario, "", start, report, err)

	return report, err
}

func (e *Engine) readScenario(r io.Reader, path string) (*Report, error) {
	t := e.scenario
	if err := t.EnsureInitialized(scenario.Layout); err != nil {
		return nil, err
	}
	stored, err := t.ReadFrom(r, e.framer)
	if err != nil {
		return nil, err
	}
	report := newReport(opLoadScenario, path, stored)

	if err := scenario.Deserialize(t, e.state); err != nil {
		return report, err
	}
	if err := e.checkCursors(t, report); err != nil {
		return report, err
	}

	s := e.state
	s.TradePrices.Reset()
	report.Steps = append(report.Steps, "trade_prices")
	if e.hooks.LoadEmpire != nil {
		e.hooks.LoadEmpire(s, true, s.Scenario.EmpireID())
		report.Steps = append(report.Steps, "empire")
	}
	if e.hooks.RomanTravelTime != nil {
		e.hooks.RomanTravelTime(s)
		report.Steps = append(report.Steps, "roman_travel_time")
	}
	if e.hooks.EnemyTravelTime != nil {
		e.hooks.EnemyTravelTime(s)
		report.Steps = append(report.Steps, "enemy_travel_time")
	}

	return report, nil
}

// WriteScenarioTo writes the map state as a scenario file to w.
func (e *Engine) WriteScenarioTo(w io.Writer) (*Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.scenario
	if err := t.EnsureInitialized(scenario.Layout); err != nil {
		return nil, err
	}
	if err := scenario.Serialize(t, e.state); err != nil {
		return nil, err
	}
	if mismatches := t.Verify(); len(mismatches) > 0 {
		m := mismatches[0]
		return nil, errors.Wrapf(errs.ErrCursorMismatch, "serialize piece %d (%s): position %d of %d", m.Index, m.Name, m.Pos, m.Size)
	}
	stored, err := t.WriteTo(w, e.framer)
	if err != nil {
		return nil, err
	}

	return newReport(opSaveScenario, "", stored), nil
}
