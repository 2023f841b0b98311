package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hanoi/pkg/observability"
)

// logHooks reports animation and cache events to a logger.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) logHooks { return logHooks{logger: l} }

func (h logHooks) OnRunStart(_ context.Context, runID string, disks, moves int) {
	h.logger.Info("run started", "run", shortID(runID), "disks", disks, "moves", moves)
}

func (h logHooks) OnRunComplete(_ context.Context, runID string, moves, ticks int) {
	h.logger.Info("run complete", "run", shortID(runID), "moves", moves, "ticks", ticks)
}

func (h logHooks) OnReset(_ context.Context, runID string, pending int, inFlight bool) {
	h.logger.Info("run cancelled", "run", shortID(runID), "pending", pending, "in_flight", inFlight)
}

func (h logHooks) OnMoveStart(_ context.Context, runID string, index, from, to, disk int) {
	h.logger.Debug("move", "run", shortID(runID), "n", index, "disk", disk, "from", from, "to", to)
}

func (h logHooks) OnPhaseChange(_ context.Context, runID string, index int, phase string) {
	h.logger.Debug("phase", "run", shortID(runID), "n", index, "phase", phase)
}

func (h logHooks) OnMoveComplete(_ context.Context, runID string, index, from, to, disk, ticks int) {
	h.logger.Debug("landed", "run", shortID(runID), "n", index, "disk", disk, "peg", to, "ticks", ticks)
}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", shortKey(key))
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", shortKey(key))
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", shortKey(key), "bytes", size)
}

var (
	_ observability.AnimationHooks = logHooks{}
	_ observability.CacheHooks     = logHooks{}
)

// shortID trims a UUID to its first group for log lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// shortKey trims a "prefix:hash" cache key.
func shortKey(key string) string {
	if len(key) > 16 {
		return key[:16]
	}
	return key
}
