// Logging for the hanoi CLI.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; animation and cache events reach the
// logger through the hooks installed by the root command, with runs at info
// level and individual moves and phases at debug level.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat renders timestamps as e.g. "14:32:01.45".
const logTimeFormat = "15:04:05.00"

// newLogger returns a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// redirectLogs points the CLI logger at path, or discards output when path
// is empty. The player uses it while the alternate screen owns the
// terminal. The returned func restores stderr and closes the file.
func (c *CLI) redirectLogs(path string) (func(), error) {
	if path == "" {
		c.Logger.SetOutput(io.Discard)
		return func() { c.Logger.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	c.Logger.SetOutput(f)
	return func() {
		c.Logger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// progress logs how long an operation took, e.g.
// "Rendered tree for 5 disks (1.234s)". Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx. The root command does this before any
// subcommand runs.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() for contexts built outside the command tree (tests, the
// HTTP handlers' request contexts).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
