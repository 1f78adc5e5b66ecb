package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/tuidolist/internal/core/logging"
	"github.com/colonyops/tuidolist/internal/printer"
)

type PruneCmd struct {
	flags *Flags

	yes bool
}

// NewPruneCmd creates a new prune command
func NewPruneCmd(flags *Flags) *PruneCmd {
	return &PruneCmd{flags: flags}
}

// Register adds the prune command to the application
func (cmd *PruneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "prune",
		Usage:     "Remove all completed items",
		UsageText: "tuidolist prune [--yes]",
		Description: `Deletes every item marked as done. Pending items keep their order.

Asks for confirmation unless --yes is given.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PruneCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "prune")
	p := printer.Ctx(ctx)

	store, items, err := cmd.flags.openStore(ctx)
	if err != nil {
		return err
	}

	kept := items.WithoutDone()
	count := len(items) - len(kept)
	if count == 0 {
		p.Infof("No completed items to prune")
		return nil
	}

	if !cmd.yes {
		ok, err := confirmPrune(count)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !ok {
			p.Infof("Nothing removed")
			return nil
		}
	}

	if err := store.Save(ctx, kept); err != nil {
		return fmt.Errorf("save items: %w", err)
	}

	p.Successf("Pruned %d item(s)", count)
	return nil
}

func confirmPrune(count int) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New("refusing to prune without confirmation; pass --yes")
	}

	var confirm bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Remove %d completed item(s)?", count)).
		Description("This cannot be undone").
		Value(&confirm).
		Run()
	return confirm, err
}
