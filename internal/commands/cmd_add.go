package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tuidolist/internal/core/logging"
	"github.com/colonyops/tuidolist/internal/core/todo"
	"github.com/colonyops/tuidolist/internal/printer"
)

type AddCmd struct {
	flags *Flags

	// Command-specific flags
	name        string
	description string
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Append an item to the list",
		UsageText: "tuidolist add [--name NAME] [--description TEXT]",
		Description: `Appends a pending item to the end of the list.

When --name is omitted, an interactive form prompts for input.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "item name",
				Destination: &cmd.name,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "item description (markdown)",
				Destination: &cmd.description,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "add")
	p := printer.Ctx(ctx)

	if cmd.name == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := todo.ValidateNameInput(cmd.name); err != nil {
		return err
	}

	item, err := todo.New(cmd.name, cmd.description)
	if err != nil {
		return err
	}

	store, items, err := cmd.flags.openStore(ctx)
	if err != nil {
		return err
	}

	pos := items.Append(item)
	if err := store.Save(ctx, items); err != nil {
		return fmt.Errorf("save items: %w", err)
	}

	p.Successf("Added %q as #%d", item.Name, pos+1)
	return nil
}

func (cmd *AddCmd) runForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Shown in the list").
				Validate(todo.ValidateNameInput).
				Value(&cmd.name),
			huh.NewText().
				Title("Description").
				Description("Optional, rendered as markdown").
				Value(&cmd.description),
		),
	).Run()
}
