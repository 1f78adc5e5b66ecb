package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tuidolist/internal/commands"
	"github.com/colonyops/tuidolist/internal/core/config"
	"github.com/colonyops/tuidolist/internal/core/logging"
	"github.com/colonyops/tuidolist/internal/core/styles"
	"github.com/colonyops/tuidolist/internal/printer"
	"github.com/colonyops/tuidolist/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads
	// runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := printer.NewContext(context.Background(), printer.New(os.Stdout, os.Stderr))

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "tuidolist",
		Usage:     "A small todo list for the terminal",
		UsageText: "tuidolist [global options] command [command options]",
		Description: `tuidolist keeps a single list of items, each with a name, a description
and a done flag, in one JSON file.

Run 'tuidolist' with no arguments to open the interactive list.
Run 'tuidolist ls' to print it.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TUIDOLIST_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/tuidolist.log)",
				Sources:     cli.EnvVars("TUIDOLIST_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TUIDOLIST_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TUIDOLIST_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "data-file",
				Usage:       "path to the item file (overrides data_file in config)",
				Sources:     cli.EnvVars("TUIDOLIST_DATA_FILE"),
				Destination: &flags.DataFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; the TUI owns stdout.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "tuidolist.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			logging.Install(logger)
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			ctx = logging.WithDataFile(ctx, flags.DataFilePath())
			log.Debug().Ctx(ctx).Str("config", flags.ConfigPath).Msg("configuration loaded")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewAddCmd(flags).Register(app)
	app = commands.NewPruneCmd(flags).Register(app)
	app = commands.NewImportCmd(flags).Register(app)
	app = commands.NewPathCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'tuidolist --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
