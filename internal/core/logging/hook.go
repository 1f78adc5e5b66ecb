package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies command and data_file from the event context onto log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if name := GetCommand(ctx); name != "" {
		e.Str("command", name)
	}

	if path := GetDataFile(ctx); path != "" {
		e.Str("data_file", path)
	}
}
