package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tuidolist/internal/core/logging"
	"github.com/colonyops/tuidolist/internal/core/styles"
	"github.com/colonyops/tuidolist/internal/printer"
	"github.com/colonyops/tuidolist/pkg/iojson"
)

const lsDescriptionWidth = 50

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List all items",
		UsageText: "tuidolist ls [--json]",
		Description: `Displays a table of items with their position, status, name and the first
line of their description.

Use --json for one JSON object per line.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// itemInfo is the JSON output format for tuidolist ls --json.
type itemInfo struct {
	Index       int    `json:"index"`
	Done        bool   `json:"is_done"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "ls")

	_, items, err := cmd.flags.openStore(ctx)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	rows := make([]itemInfo, 0, len(items))
	for i, item := range items {
		rows = append(rows, itemInfo{Index: i + 1, Done: item.Done, Name: item.Name, Description: item.Description})
	}

	if cmd.jsonOutput {
		for _, row := range rows {
			if err := iojson.WriteLine(out, row); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	if len(rows) == 0 {
		printer.Ctx(ctx).Infof("No items found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tSTATUS\tNAME\tDESCRIPTION")

	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", row.Index, status(row.Done), row.Name, summary(row.Description))
	}

	_ = w.Flush()

	done, pending := items.Counts()
	printer.Ctx(ctx).Infof("%d pending, %d done", pending, done)

	return nil
}

func status(done bool) string {
	if done {
		return styles.IconDone
	}
	return styles.IconPending
}

// summary returns the first line of a description, truncated for the table.
func summary(description string) string {
	line, _, _ := strings.Cut(description, "\n")
	return ansi.Truncate(line, lsDescriptionWidth, "…")
}
