package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tuidolist/internal/core/config"
	"github.com/colonyops/tuidolist/internal/core/todo"
	"github.com/colonyops/tuidolist/internal/printer"
	"github.com/colonyops/tuidolist/internal/store/jsonfile"
	"github.com/colonyops/tuidolist/pkg/tuitest"
)

type testApp struct {
	flags  *Flags
	stdin  string
	dataFn string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.DataDir = dir

	return &testApp{
		flags: &Flags{
			DataDir:    dir,
			ConfigPath: filepath.Join(dir, "config.yaml"),
			Config:     &cfg,
		},
		dataFn: filepath.Join(dir, config.DataFileName),
	}
}

// run executes args against a freshly registered command tree.
func (a *testApp) run(args ...string) (string, error) {
	out := &bytes.Buffer{}
	app := &cli.Command{
		Name:           appName,
		Writer:         out,
		ErrWriter:      out,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	imp := NewImportCmd(a.flags)
	imp.fr.Stdin = strings.NewReader(a.stdin)

	app = NewLsCmd(a.flags).Register(app)
	app = NewAddCmd(a.flags).Register(app)
	app = NewPruneCmd(a.flags).Register(app)
	app = NewPathCmd(a.flags).Register(app)
	app = imp.Register(app)
	app = NewConfigValidateCmd(a.flags).Register(app)

	ctx := printer.NewContext(context.Background(), printer.New(out, out))
	err := app.Run(ctx, append([]string{appName}, args...))
	return tuitest.StripANSI(out.String()), err
}

func (a *testApp) seed(t *testing.T, items todo.List) {
	t.Helper()
	require.NoError(t, jsonfile.NewItemStore(a.dataFn).Save(context.Background(), items))
}

func (a *testApp) items(t *testing.T) todo.List {
	t.Helper()
	items, err := jsonfile.NewItemStore(a.dataFn).Load(context.Background())
	require.NoError(t, err)
	return items
}

func sample() todo.List {
	return todo.List{
		{Name: "milk", Description: "2 liters\nsemi-skimmed"},
		{Name: "eggs", Done: true},
		{Name: "bread"},
	}
}

func TestLs(t *testing.T) {
	a := newTestApp(t)
	a.seed(t, sample())

	out, err := a.run("ls")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "milk")
	assert.Contains(t, out, "2 liters")
	assert.NotContains(t, out, "semi-skimmed")
	assert.Contains(t, out, "2 pending, 1 done")
}

func TestLs_JSON(t *testing.T) {
	a := newTestApp(t)
	a.seed(t, sample())

	out, err := a.run("ls", "--json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var first itemInfo
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, itemInfo{Index: 1, Name: "milk", Description: "2 liters\nsemi-skimmed"}, first)

	var second itemInfo
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, itemInfo{Index: 2, Done: true, Name: "eggs"}, second)
}

func TestLs_CreatesMissingFile(t *testing.T) {
	a := newTestApp(t)

	out, err := a.run("ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No items found")

	data, err := os.ReadFile(a.dataFn)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(data))
}

func TestLs_CorruptFile(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, os.WriteFile(a.dataFn, []byte("not json"), 0o644))

	_, err := a.run("ls")
	require.ErrorIs(t, err, jsonfile.ErrCorrupt)

	data, err := os.ReadFile(a.dataFn)
	require.NoError(t, err)
	assert.Equal(t, "not json", string(data))
}

func TestAdd(t *testing.T) {
	a := newTestApp(t)
	a.seed(t, sample())

	out, err := a.run("add", "--name", "butter", "--description", "salted")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "butter" as #4`)

	items := a.items(t)
	require.Len(t, items, 4)
	assert.Equal(t, todo.Item{Name: "butter", Description: "salted"}, items[3])
}

func TestAdd_BlankName(t *testing.T) {
	a := newTestApp(t)
	a.seed(t, sample())

	_, err := a.run("add", "--name", "   ")
	require.ErrorIs(t, err, todo.ErrNameRequired)
	assert.Len(t, a.items(t), 3)
}

func TestPrune(t *testing.T) {
	a := newTestApp(t)
	a.seed(t, sample())

	out, err := a.run("prune", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Pruned 1 item(s)")

	items := a.items(t)
	assert.Equal(t, todo.List{sample()[0], sample()[2]}, items)
}

func TestPrune_NothingDone(t *testing.T) {
	a := newTestApp(t)
	a.seed(t, todo.List{{Name: "milk"}})

	out, err := a.run("prune")
	require.NoError(t, err)
	assert.Contains(t, out, "No completed items to prune")
}

func TestImport(t *testing.T) {
	a := newTestApp(t)
	a.seed(t, sample())
	a.stdin = `{"items":[{"is_done":true,"name":"jam","description":"apricot"}]}`

	out, err := a.run("import")
	require.NoError(t, err)
	assert.JSONEq(t, `{"imported":1,"total":4}`, out)

	items := a.items(t)
	require.Len(t, items, 4)
	assert.Equal(t, todo.Item{Done: true, Name: "jam", Description: "apricot"}, items[3])
}

func TestImport_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"blank name", `{"items":[{"is_done":false,"name":"jam","description":""},{"is_done":false,"name":" ","description":""}]}`},
		{"missing field", `{"items":[{"name":"jam","description":""}]}`},
		{"wrong shape", `{"todos":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			a.seed(t, sample())
			a.stdin = tt.input

			_, err := a.run("import")
			require.Error(t, err)
			assert.Len(t, a.items(t), 3)
		})
	}
}

func TestPath(t *testing.T) {
	a := newTestApp(t)

	out, err := a.run("path")
	require.NoError(t, err)
	assert.Equal(t, a.dataFn, out)

	a.flags.DataFile = filepath.Join(t.TempDir(), "other.json")
	out, err = a.run("path")
	require.NoError(t, err)
	assert.Equal(t, a.flags.DataFile, out)

	out, err = a.run("path", "--config")
	require.NoError(t, err)
	assert.Equal(t, a.flags.ConfigPath, out)
}

func TestConfigValidate(t *testing.T) {
	a := newTestApp(t)

	out, err := a.run("config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	a.flags.Config.Theme = "neon"
	out, err = a.run("config", "validate", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, out, `"valid": false`)
	assert.Contains(t, out, `"field": "theme"`)
}

func TestOpenStore_MigratesLegacy(t *testing.T) {
	a := newTestApp(t)

	legacy := LegacyDataFile()
	require.NoError(t, os.MkdirAll(filepath.Dir(legacy), 0o755))
	require.NoError(t, os.WriteFile(legacy, []byte(`{"items":[{"is_done":false,"name":"old","description":""}]}`), 0o644))

	_, items, err := a.flags.openStore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, todo.List{{Name: "old"}}, items)

	disabled := false
	a.flags.Config.MigrateLegacy = &disabled
	a.flags.DataFile = filepath.Join(t.TempDir(), "fresh.json")

	_, items, err = a.flags.openStore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
