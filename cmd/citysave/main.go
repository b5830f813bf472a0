// Command citysave inspects, verifies and converts savegame files.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var (
	Version   = "development"
	BuildTime = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger := zerolog.New(os.Stderr)
		logger.Fatal().Err(err).Msg("citysave failed")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "citysave",
		Usage:   "Inspect, verify and convert city savegame files",
		Version: fmt.Sprintf("%s.%s", Version, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", TakesFile: true, Usage: "Read settings from a key=value file", EnvVars: []string{"CITYSAVE_CONFIG"}},
			&cli.StringFlag{Name: "compression", Usage: "Codec for compressed pieces (none, zstd, s2, lz4); overrides the config"},
			&cli.StringFlag{Name: "data-dir", Usage: "Directory holding the mission pack and mission snapshots; overrides the config"},
			&cli.BoolFlag{Name: "lenient", Usage: "Report unconsumed pieces as warnings instead of failing"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log at debug level"},
		},
		Before: setup,
		Commands: []*cli.Command{
			inspectCommand(),
			verifyCommand(),
			recompressCommand(),
			extractMissionCommand(),
			scenarioCommand(),
		},
	}
}
