package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level     log.Level
		wantDebug bool
	}{
		{LogInfo, false},
		{LogDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			logger.Debug("Move dispatched", "disk", 1)
			logger.Info("Run started", "disks", 3)

			out := buf.String()
			if !strings.Contains(out, "Run started") {
				t.Errorf("info line missing: %q", out)
			}
			if got := strings.Contains(out, "Move dispatched"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v: %q", got, tt.wantDebug, out)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("Run started")

	stamp := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} INFO Run started`)
	if !stamp.MatchString(buf.String()) {
		t.Errorf("line = %q, want %s prefix", buf.String(), logTimeFormat)
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, LogInfo))
	p.done("Rendered tree for 3 disks")

	line := regexp.MustCompile(`INFO Rendered tree for 3 disks \(\d+(\.\d+)?(ns|µs|ms|s|m\d+(\.\d+)?s)\)\n$`)
	if !line.MatchString(buf.String()) {
		t.Errorf("progress line = %q", buf.String())
	}
}

func TestRootAttachesLogger(t *testing.T) {
	t.Cleanup(observability.Reset)

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	var got *log.Logger
	root.AddCommand(&cobra.Command{
		Use: "noop",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = loggerFromContext(cmd.Context())
			return nil
		},
	})
	root.SetArgs([]string{"noop"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != c.Logger {
		t.Errorf("loggerFromContext = %p, want CLI logger %p", got, c.Logger)
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("bare context should fall back to log.Default()")
	}

	l := newLogger(&bytes.Buffer{}, LogDebug)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("attached logger not returned")
	}
}

func TestRedirectLogs(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	path := filepath.Join(t.TempDir(), "play.log")

	restore, err := c.redirectLogs(path)
	if err != nil {
		t.Fatalf("redirectLogs: %v", err)
	}
	c.Logger.Info("Run started", "disks", 4)
	restore()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Run started") || !strings.Contains(string(data), "disks=4") {
		t.Errorf("log file = %q", data)
	}
}

func TestRedirectLogsBadPath(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	path := filepath.Join(t.TempDir(), "missing", "play.log")

	if _, err := c.redirectLogs(path); err == nil {
		t.Error("expected error for unwritable path")
	}
}
