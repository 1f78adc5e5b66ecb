package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type PathCmd struct {
	flags *Flags

	config bool
}

// NewPathCmd creates a new path command
func NewPathCmd(flags *Flags) *PathCmd {
	return &PathCmd{flags: flags}
}

// Register adds the path command to the application
func (cmd *PathCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "path",
		Usage:     "Print the item file location",
		UsageText: "tuidolist path [--config]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "config",
				Usage:       "print the config file location instead",
				Destination: &cmd.config,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PathCmd) run(_ context.Context, c *cli.Command) error {
	path := cmd.flags.DataFilePath()
	if cmd.config {
		path = cmd.flags.ConfigPath
	}

	_, err := fmt.Fprintln(c.Root().Writer, path)
	return err
}
