package logging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
// The CLI uses it with a console writer on interactive terminals.
type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	emit(z.l.Info(), msg, args)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	emit(z.l.Warn(), msg, args)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	emit(z.l.Error(), msg, args)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i+1 < len(args); i += 2 {
		c = c.Interface(key(args[i]), args[i+1])
	}
	return &ZerologLogger{l: c.Logger()}
}

// emit attaches the key/value pairs to the event and sends it.
// A trailing key without a value is logged under "!BADKEY", mirroring slog.
func emit(e *zerolog.Event, msg string, args []any) {
	i := 0
	for ; i+1 < len(args); i += 2 {
		e = e.Interface(key(args[i]), args[i+1])
	}
	if i < len(args) {
		e = e.Interface("!BADKEY", args[i])
	}
	e.Msg(msg)
}

func key(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
