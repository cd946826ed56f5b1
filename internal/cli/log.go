package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-equalheight/internal/debug"
)

// newLogger creates the command logger.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return debug.New(w, level)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default() if none
// was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
