package cli

import (
	"context"
	"time"

	"github.com/matzehuels/deptree/pkg/observability"
)

// logHooks reports HTTP and pipeline events as debug log lines on the
// logger carried by the event's context.
type logHooks struct{}

var (
	_ observability.HTTPHooks     = logHooks{}
	_ observability.PipelineHooks = logHooks{}
)

func (logHooks) OnRequest(ctx context.Context, method, host, path string) {
	loggerFromContext(ctx).Debug("http request", "method", method, "host", host, "path", path)
}

func (logHooks) OnResponse(ctx context.Context, method, host, path string, status int, d time.Duration) {
	loggerFromContext(ctx).Debug("http response", "method", method, "path", path, "status", status,
		"duration", d.Round(time.Millisecond))
}

func (logHooks) OnError(ctx context.Context, method, host, path string, err error) {
	loggerFromContext(ctx).Debug("http error", "method", method, "host", host, "err", err)
}

func (logHooks) OnParseStart(ctx context.Context, source, language string) {
	if language == "" {
		language = "auto"
	}
	loggerFromContext(ctx).Debug("analyzing", "source", source, "language", language)
}

func (logHooks) OnParseComplete(ctx context.Context, _ string, tokens int, d time.Duration, err error) {
	logStage(ctx, "parse", d, err, "tokens", tokens)
}

func (logHooks) OnLayoutStart(ctx context.Context, sentences, tokens int) {
	loggerFromContext(ctx).Debug("building DOT", "sentences", sentences, "tokens", tokens)
}

func (logHooks) OnLayoutComplete(ctx context.Context, size int, d time.Duration, err error) {
	logStage(ctx, "layout", d, err, "bytes", size)
}

func (logHooks) OnRenderStart(ctx context.Context, format string) {
	loggerFromContext(ctx).Debug("rendering", "format", format)
}

func (logHooks) OnRenderComplete(ctx context.Context, format string, size int, d time.Duration, err error) {
	logStage(ctx, "render", d, err, "format", format, "bytes", size)
}

func logStage(ctx context.Context, stage string, d time.Duration, err error, kv ...any) {
	kv = append([]any{"stage", stage, "duration", d.Round(time.Millisecond)}, kv...)
	if err != nil {
		kv = append(kv, "err", err)
	}
	loggerFromContext(ctx).Debug("stage complete", kv...)
}

// registerHooks installs the logging hooks for the current process.
func registerHooks() {
	observability.SetHTTPHooks(logHooks{})
	observability.SetPipelineHooks(logHooks{})
}
