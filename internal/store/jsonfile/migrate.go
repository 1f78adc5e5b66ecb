package jsonfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// MigrateLegacy copies the item document at legacyPath to the store's path
// when the store has no file yet. Returns true if a document was copied.
// Blank legacy files are ignored; corrupt ones return an error wrapping
// ErrCorrupt and nothing is written.
func (s *ItemStore) MigrateLegacy(ctx context.Context, legacyPath string) (bool, error) {
	if legacyPath == "" || legacyPath == s.path {
		return false, nil
	}

	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat item file: %w", err)
	}

	data, err := os.ReadFile(legacyPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read legacy item file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}

	items, err := Decode(data)
	if err != nil {
		return false, fmt.Errorf("%s: %w", legacyPath, err)
	}

	if err := s.Save(ctx, items); err != nil {
		return false, err
	}

	s.log.Info().Ctx(ctx).
		Str("from", legacyPath).
		Str("to", s.path).
		Int("items", len(items)).
		Msg("migrated legacy item file")

	return true, nil
}
