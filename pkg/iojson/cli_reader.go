package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrNoInput is returned when no file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); use -f flag or pipe JSON input")

// FileReader decodes a JSON value of type T from the --file flag or stdin.
type FileReader[T any] struct {
	fileFlagValue string

	// Stdin overrides os.Stdin, used by tests.
	Stdin io.Reader
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// SetFile sets the file path as if the flag had been passed.
func (fr *FileReader[T]) SetFile(path string) {
	fr.fileFlagValue = path
}

func (fr *FileReader[T]) Read() (T, error) {
	var (
		reader io.Reader
		input  T
	)

	switch {
	case fr.fileFlagValue != "":
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	case fr.Stdin != nil:
		reader = fr.Stdin
	default:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return input, ErrNoInput
		}
		reader = os.Stdin
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}
