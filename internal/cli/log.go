package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the logger shared by all commands.
// The logger writes to w (stderr in production, so stdout stays free for the
// rendered diagram) and filters messages below level.
// Timestamps are formatted as "HH:MM:SS.cc" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times a whole run and logs its completion with the elapsed
// duration. Per-stage timings are reported separately by the debug hooks.
// It is meant for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts timing now. Call done once the run completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level followed by the elapsed time, rounded to the
// nearest millisecond.
// Example output: "rendered 6 tokens (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for the command logger.
const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l. The root command attaches the
// logger before any subcommand runs so that HTTP and pipeline hooks, which
// only see a context, log through the same logger and level.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached by withLogger.
// If none is attached (for example when a hook fires from a library caller
// that did not go through the CLI), it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
