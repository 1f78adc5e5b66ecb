package logging

import "context"

type contextKey string

const (
	commandKey  contextKey = "command"
	dataFileKey contextKey = "data_file"
)

// WithCommand records the CLI command being run in the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithDataFile records the resolved item file path in the context.
func WithDataFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, dataFileKey, path)
}

// GetCommand returns the command name, or empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}

// GetDataFile returns the data file path, or empty string if not present.
func GetDataFile(ctx context.Context) string {
	if path, ok := ctx.Value(dataFileKey).(string); ok {
		return path
	}
	return ""
}
