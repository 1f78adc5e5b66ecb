package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/tuidolist/internal/core/logging"
	"github.com/colonyops/tuidolist/internal/tui"
)

// ErrNotInteractive is returned when the TUI is started without a terminal.
var ErrNotInteractive = errors.New("tuidolist needs an interactive terminal; use 'tuidolist ls' to print items")

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "tui")

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotInteractive
	}

	store, items, err := cmd.flags.openStore(ctx)
	if err != nil {
		return err
	}

	m := tui.New(ctx, tui.Options{
		Items:    items,
		Saver:    store,
		Keys:     cmd.flags.Config.Keys,
		Markdown: cmd.flags.Config.MarkdownEnabled(),
	})

	finalModel, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if model, ok := finalModel.(tui.Model); ok && model.Err() != nil {
		return model.Err()
	}

	return nil
}
