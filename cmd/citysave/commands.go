package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/citysave/city"
	"github.com/arloliu/citysave/config"
	"github.com/arloliu/citysave/format"
	"github.com/arloliu/citysave/gamefile"
)

const settingsKey = "settings"

type settings struct {
	cfg    config.Config
	logger zerolog.Logger
}

// setup loads the configuration, applies the global flags and builds the logger.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("compression") {
		cfg.Compression = c.String("compression")
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.Bool("lenient") {
		cfg.Lenient = true
	}
	if c.Bool("verbose") {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: c.App.ErrWriter, NoColor: true}).
		Level(level).With().Timestamp().Logger()
	c.App.Metadata = map[string]interface{}{settingsKey: &settings{cfg: cfg, logger: logger}}

	return nil
}

func settingsFrom(c *cli.Context) *settings {
	if s, ok := c.App.Metadata[settingsKey].(*settings); ok {
		return s
	}

	return &settings{cfg: config.Default(), logger: zerolog.Nop()}
}

func newEngine(c *cli.Context, state *city.State, opts ...gamefile.Option) (*gamefile.Engine, error) {
	s := settingsFrom(c)
	base := []gamefile.Option{gamefile.FromConfig(s.cfg), gamefile.WithLogger(s.logger)}

	return gamefile.New(state, append(base, opts...)...)
}

func firstArg(c *cli.Context, name string) (string, error) {
	if c.NArg() < 1 {
		return "", errors.Errorf("missing %s argument", name)
	}

	return c.Args().First(), nil
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "List the pieces of a savegame with their stored sizes and fingerprints",
		ArgsUsage: "<savegame>",
		Action: func(c *cli.Context) error {
			path, err := firstArg(c, "savegame")
			if err != nil {
				return err
			}
			engine, err := newEngine(c, city.New())
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return errors.Wrap(err, "open savegame")
			}
			defer f.Close()

			in, err := engine.Inspect(bufio.NewReader(f))
			if err != nil {
				return err
			}
			fileHash, err := hashFile(path)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INDEX\tPIECE\tSIZE\tSTORED\tFALLBACK\tFINGERPRINT")
			for _, p := range in.Pieces {
				kind := "-"
				if p.Compressed {
					kind = "no"
					if p.Fallback {
						kind = "yes"
					}
				}
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%016x\n", p.Index, p.Name, p.RawSize, p.StoredSize, kind, p.Fingerprint)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "version 0x%x, %d pieces, %d bytes\n", in.Version, len(in.Pieces), in.StoredBytes)
			fmt.Fprintf(c.App.Writer, "content digest %016x\n", in.Digest)
			fmt.Fprintf(c.App.Writer, "file blake3 %x\n", fileHash)

			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Load a savegame into a scratch session and report problems",
		ArgsUsage: "<savegame>",
		Action: func(c *cli.Context) error {
			path, err := firstArg(c, "savegame")
			if err != nil {
				return err
			}
			engine, err := newEngine(c, city.New())
			if err != nil {
				return err
			}
			report, err := engine.LoadSavegame(path)
			if err != nil {
				return err
			}
			printReport(c.App.Writer, report)
			for _, m := range report.Warnings {
				fmt.Fprintf(c.App.Writer, "warning: piece %d (%s) consumed %d of %d bytes\n", m.Index, m.Name, m.Pos, m.Size)
			}
			if len(report.Warnings) > 0 {
				return errors.Errorf("%d pieces not fully consumed", len(report.Warnings))
			}

			return nil
		},
	}
}

func recompressCommand() *cli.Command {
	return &cli.Command{
		Name:      "recompress",
		Usage:     "Rewrite a savegame with another codec",
		ArgsUsage: "<in> <out>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Required: true, Usage: "Codec of the written file (none, zstd, s2, lz4)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("recompress needs <in> and <out>")
			}
			to, ok := format.ParseCompressionType(c.String("to"))
			if !ok {
				return errors.Errorf("unknown codec %q", c.String("to"))
			}

			state := city.New()
			reader, err := newEngine(c, state)
			if err != nil {
				return err
			}
			writer, err := newEngine(c, state, gamefile.WithCompression(to))
			if err != nil {
				return err
			}

			if _, err := reader.LoadSavegame(c.Args().Get(0)); err != nil {
				return err
			}
			report, err := writer.WriteSavegame(c.Args().Get(1))
			if err != nil {
				return err
			}
			printReport(c.App.Writer, report)

			return nil
		},
	}
}

func extractMissionCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract-mission",
		Usage:     "Write the savegame embedded in the mission pack for one mission",
		ArgsUsage: "<out>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "id", Required: true, Usage: "Mission id, 0 to 11"},
			&cli.StringFlag{Name: "pack", TakesFile: true, Usage: "Mission pack path; defaults to the configured one"},
		},
		Action: func(c *cli.Context) error {
			out, err := firstArg(c, "out")
			if err != nil {
				return err
			}
			var opts []gamefile.Option
			if c.IsSet("pack") {
				opts = append(opts, gamefile.WithMissionPack(c.String("pack")))
			}
			engine, err := newEngine(c, city.New(), opts...)
			if err != nil {
				return err
			}

			if _, err := engine.LoadSavegameFromMissionPack(c.Int("id")); err != nil {
				return err
			}
			report, err := engine.WriteSavegame(out)
			if err != nil {
				return err
			}
			printReport(c.App.Writer, report)

			return nil
		},
	}
}

func scenarioCommand() *cli.Command {
	return &cli.Command{
		Name:      "scenario",
		Usage:     "Print the map settings of a scenario file",
		ArgsUsage: "<map>",
		Action: func(c *cli.Context) error {
			path, err := firstArg(c, "map")
			if err != nil {
				return err
			}
			state := city.New()
			engine, err := newEngine(c, state)
			if err != nil {
				return err
			}
			loaded, err := engine.LoadScenario(path)
			if err != nil {
				return err
			}
			if !loaded {
				return errors.Errorf("no scenario at %s", path)
			}

			sc := &state.Scenario
			fmt.Fprintf(c.App.Writer, "map %dx%d, grid start %d, border %d\n",
				sc.MapWidth(), sc.MapHeight(), sc.GridStartOffset(), sc.GridBorderSize())
			fmt.Fprintf(c.App.Writer, "start year %d, empire %d, enemy %d, climate %d, funds %d\n",
				sc.StartYear(), sc.EmpireID(), sc.EnemyID(), sc.Climate(), sc.InitialFunds())
			fmt.Fprintf(c.App.Writer, "camera %d,%d\n", state.Settings.CameraX, state.Settings.CameraY)

			return nil
		},
	}
}

func printReport(w io.Writer, r *gamefile.Report) {
	fmt.Fprintf(w, "%s %s: %d pieces, %d bytes, %d raw fallbacks\n", r.Op, r.Path, r.Pieces, r.Bytes, r.Fallbacks)
}
