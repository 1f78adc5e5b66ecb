// iojson are utilities for reading and writing JSON IO from a
// command line interface perspective
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Error is the standard error format type that is returned when errors
// happen.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func jsonError(msg string, jsonErr error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError builds the JSON error payload for msg. When data cannot be
// marshaled, a hand-built payload carrying the marshal error is returned.
func MarshalError(msg string, data map[string]any) string {
	resp := Error{Message: msg, Data: data}

	bits, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return jsonError(msg, err)
	}

	return string(bits)
}

// WriteError writes a JSON error payload to stderr.
func WriteError(str string, data map[string]any) error {
	_, err := fmt.Fprintln(os.Stderr, MarshalError(str, data))
	return err
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported
// on ew as a JSON error payload.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		errStr := jsonError("error marshaling in iojson.Write", err)
		_, err = fmt.Fprintln(ew, errStr)
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj as a single compact JSON line (JSON Lines output).
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal json line: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr]
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}
