package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cyclecheck/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// elapsed returns the time since the progress was created.
func (p *progress) elapsed() time.Duration {
	return time.Since(p.start)
}

// done logs msg at debug level along with the elapsed time.
// Example output: "Loaded 42 edges from graph.json (1.234ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, p.elapsed().Round(time.Microsecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports detection events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.DetectionHooks = logHooks{}

func (h logHooks) OnLoadStart(_ context.Context, source, format string) {
	h.logger.Debug("loading edges", "source", source, "format", format)
}

func (h logHooks) OnLoadComplete(_ context.Context, source, format string, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "source", source, "format", format, "err", err)
		return
	}
	h.logger.Debug("loaded edges", "source", source, "edges", edges, "took", d)
}

func (h logHooks) OnDetectComplete(_ context.Context, source string, hasCycle bool, edges int, d time.Duration) {
	h.logger.Debug("detection finished", "source", source, "cycle", hasCycle, "edges", edges, "took", d)
}
