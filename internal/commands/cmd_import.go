package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tuidolist/internal/core/logging"
	"github.com/colonyops/tuidolist/internal/core/todo"
	"github.com/colonyops/tuidolist/internal/store/jsonfile"
	"github.com/colonyops/tuidolist/pkg/iojson"
)

type ImportCmd struct {
	flags *Flags
	fr    *iojson.FileReader[json.RawMessage]
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{
		flags: flags,
		fr:    &iojson.FileReader[json.RawMessage]{},
	}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "import",
		Usage: "Append items from a JSON document",
		UsageText: `tuidolist import [options]

Read from stdin:
  echo '{"items":[{"is_done":false,"name":"milk","description":""}]}' | tuidolist import

Read from file:
  tuidolist import -f items.json`,
		Description: `Appends every item of an item document to the end of the list.

The input uses the same format as the item file. Each item must carry
is_done, name and description, and names cannot be blank. Nothing is
written when any item is invalid.

Prints a JSON summary with the number of imported items and the new total.`,
		Flags:  []cli.Flag{cmd.fr.Flag()},
		Action: cmd.run,
	})

	return app
}

// importResult is the JSON output of tuidolist import.
type importResult struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "import")

	raw, err := cmd.fr.Read()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	incoming, err := jsonfile.Decode(raw)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	if err := validateImport(incoming); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	store, items, err := cmd.flags.openStore(ctx)
	if err != nil {
		return err
	}

	items = append(items, incoming...)
	if err := store.Save(ctx, items); err != nil {
		return fmt.Errorf("save items: %w", err)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, importResult{
		Imported: len(incoming),
		Total:    len(items),
	})
}

func validateImport(items todo.List) error {
	var errs criterio.FieldErrorsBuilder
	for i, item := range items {
		if err := todo.ValidateNameInput(item.Name); err != nil {
			errs = errs.Append(fmt.Sprintf("items[%d].name", i), err)
		}
	}
	return errs.ToError()
}
