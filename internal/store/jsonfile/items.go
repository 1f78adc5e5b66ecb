// Package jsonfile implements the item store as a single JSON document on disk.
package jsonfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/colonyops/tuidolist/internal/core/logging"
	"github.com/colonyops/tuidolist/internal/core/todo"
)

// ErrCorrupt is returned when the item file has content that is not a valid
// item document. The file is never rewritten when this is returned.
var ErrCorrupt = errors.New("corrupt item file")

//go:embed schema/items.schema.json
var documentSchema string

var schema = jsonschema.MustCompileString("items.schema.json", documentSchema)

// Document is the root JSON structure stored on disk.
type Document struct {
	Items []todo.Item `json:"items"`
}

var _ todo.Store = (*ItemStore)(nil)

// ItemStore implements todo.Store using one JSON file that is rewritten in
// full on every save.
type ItemStore struct {
	path string
	log  zerolog.Logger
}

// NewItemStore creates a JSON file item store at the given path.
func NewItemStore(path string) *ItemStore {
	return &ItemStore{
		path: path,
		log:  logging.Component("store"),
	}
}

// Path returns the file backing the store.
func (s *ItemStore) Path() string {
	return s.path
}

// Load reads the item file. A missing file (and missing parent directories)
// or a whitespace-only file is replaced by the empty document and yields an
// empty list. Unparsable content returns an error wrapping ErrCorrupt.
func (s *ItemStore) Load(ctx context.Context) (todo.List, error) {
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.log.Debug().Ctx(ctx).Str("path", s.path).Msg("item file missing, creating empty document")
		return s.bootstrap()
	case err != nil:
		return nil, fmt.Errorf("read item file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.log.Debug().Ctx(ctx).Str("path", s.path).Msg("item file empty, normalizing")
		return s.bootstrap()
	}

	items, err := Decode(data)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Str("path", s.path).Msg("item file failed to parse")
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	s.log.Debug().Ctx(ctx).Int("items", len(items)).Msg("loaded items")
	return items, nil
}

// Save writes items as the whole document, replacing the file atomically.
func (s *ItemStore) Save(ctx context.Context, items todo.List) error {
	data, err := Encode(items)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		s.log.Error().Ctx(ctx).Err(err).Str("path", s.path).Msg("failed to save items")
		return fmt.Errorf("write item file: %w", err)
	}

	s.log.Debug().Ctx(ctx).Int("items", len(items)).Msg("saved items")
	return nil
}

func (s *ItemStore) bootstrap() (todo.List, error) {
	data, err := Encode(nil)
	if err != nil {
		return nil, err
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return nil, fmt.Errorf("create item file: %w", err)
	}
	return todo.List{}, nil
}

// Decode parses and validates a non-empty item document.
func Decode(data []byte) (todo.List, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return todo.List(doc.Items).Clone(), nil
}

// Encode renders items as the canonical indented document.
func Encode(items todo.List) ([]byte, error) {
	doc := Document{Items: items.Clone()}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	return append(data, '\n'), nil
}

// writeFileAtomic writes data to a temp file next to path and renames it into
// place so readers never observe a partial document.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
