package cli

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		debug   bool
		wantLog bool
	}{
		{"info at info level", LogInfo, false, true},
		{"debug at info level", LogInfo, true, false},
		{"debug at debug level", LogDebug, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			if tt.debug {
				logger.Debug("sending request")
			} else {
				logger.Info("sending request")
			}
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("wrote output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("rendered")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("log line should start with HH:MM:SS.cc, got %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, LogInfo))
	p.start = time.Now().Add(-1500 * time.Millisecond)

	p.done("rendered 6 tokens")

	out := buf.String()
	if !strings.Contains(out, "rendered 6 tokens") {
		t.Errorf("missing message in %q", out)
	}
	if !regexp.MustCompile(`\(1\.5\d*s\)`).MatchString(out) {
		t.Errorf("missing rounded duration in %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, LogDebug)

	if got := loggerFromContext(withLogger(context.Background(), logger)); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, LogDebug))
	h := logHooks{}

	h.OnParseStart(ctx, "content", "")
	h.OnRequest(ctx, "POST", "api.rosette.com", "/rest/v1/syntax/dependencies")
	h.OnResponse(ctx, "POST", "api.rosette.com", "/rest/v1/syntax/dependencies", 200, 120*time.Millisecond)
	h.OnParseComplete(ctx, "eng", 6, 130*time.Millisecond, nil)
	h.OnRenderComplete(ctx, "svg", 0, time.Millisecond, errors.New("layout failed"))

	out := buf.String()
	for _, want := range []string{
		"language=auto",
		"status=200",
		"stage=parse",
		"tokens=6",
		"stage=render",
		"layout failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("hook log missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, LogInfo))

	logHooks{}.OnLayoutComplete(ctx, 512, time.Millisecond, nil)

	if buf.Len() != 0 {
		t.Errorf("hooks should log at debug only, got %q", buf.String())
	}
}
