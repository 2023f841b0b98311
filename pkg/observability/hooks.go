// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about animation runs and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the animation core free of logging and metrics imports; the CLI
// registers a charmbracelet/log implementation and the HTTP server a
// Prometheus one.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAnimationHooks(&myAnimationHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// The animation driver and session call hooks to emit events:
//
//	observability.Animation().OnMoveStart(ctx, runID, index, from, to, disk)
//	// ... lift, translate, drop ...
//	observability.Animation().OnMoveComplete(ctx, runID, index, from, to, disk, ticks)
package observability

import (
	"context"
	"sync"
)

// =============================================================================
// Animation Hooks
// =============================================================================

// AnimationHooks receives events from the animation driver and its session.
// Move indices are 1-based positions in the run's move sequence.
type AnimationHooks interface {
	// Run events
	OnRunStart(ctx context.Context, runID string, disks, moves int)
	OnRunComplete(ctx context.Context, runID string, moves, ticks int)
	OnReset(ctx context.Context, runID string, pending int, inFlight bool)

	// Move events
	OnMoveStart(ctx context.Context, runID string, index, from, to, disk int)
	OnPhaseChange(ctx context.Context, runID string, index int, phase string)
	OnMoveComplete(ctx context.Context, runID string, index, from, to, disk, ticks int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnimationHooks is a no-op implementation of AnimationHooks.
type NoopAnimationHooks struct{}

func (NoopAnimationHooks) OnRunStart(context.Context, string, int, int)            {}
func (NoopAnimationHooks) OnRunComplete(context.Context, string, int, int)         {}
func (NoopAnimationHooks) OnReset(context.Context, string, int, bool)              {}
func (NoopAnimationHooks) OnMoveStart(context.Context, string, int, int, int, int) {}
func (NoopAnimationHooks) OnPhaseChange(context.Context, string, int, string)      {}
func (NoopAnimationHooks) OnMoveComplete(context.Context, string, int, int, int, int, int) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Fan-out
// =============================================================================

// MultiAnimationHooks forwards every event to each hook in order.
type MultiAnimationHooks []AnimationHooks

func (m MultiAnimationHooks) OnRunStart(ctx context.Context, runID string, disks, moves int) {
	for _, h := range m {
		h.OnRunStart(ctx, runID, disks, moves)
	}
}

func (m MultiAnimationHooks) OnRunComplete(ctx context.Context, runID string, moves, ticks int) {
	for _, h := range m {
		h.OnRunComplete(ctx, runID, moves, ticks)
	}
}

func (m MultiAnimationHooks) OnReset(ctx context.Context, runID string, pending int, inFlight bool) {
	for _, h := range m {
		h.OnReset(ctx, runID, pending, inFlight)
	}
}

func (m MultiAnimationHooks) OnMoveStart(ctx context.Context, runID string, index, from, to, disk int) {
	for _, h := range m {
		h.OnMoveStart(ctx, runID, index, from, to, disk)
	}
}

func (m MultiAnimationHooks) OnPhaseChange(ctx context.Context, runID string, index int, phase string) {
	for _, h := range m {
		h.OnPhaseChange(ctx, runID, index, phase)
	}
}

func (m MultiAnimationHooks) OnMoveComplete(ctx context.Context, runID string, index, from, to, disk, ticks int) {
	for _, h := range m {
		h.OnMoveComplete(ctx, runID, index, from, to, disk, ticks)
	}
}

// MultiCacheHooks forwards every cache event to each hook in order.
type MultiCacheHooks []CacheHooks

func (m MultiCacheHooks) OnCacheHit(ctx context.Context, key string) {
	for _, h := range m {
		h.OnCacheHit(ctx, key)
	}
}

func (m MultiCacheHooks) OnCacheMiss(ctx context.Context, key string) {
	for _, h := range m {
		h.OnCacheMiss(ctx, key)
	}
}

func (m MultiCacheHooks) OnCacheSet(ctx context.Context, key string, size int) {
	for _, h := range m {
		h.OnCacheSet(ctx, key, size)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	animationHooks AnimationHooks = NoopAnimationHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetAnimationHooks registers custom animation hooks.
// This should be called once at application startup before any run starts.
func SetAnimationHooks(h AnimationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		animationHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Animation returns the registered animation hooks.
func Animation() AnimationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return animationHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	animationHooks = NoopAnimationHooks{}
	cacheHooks = NoopCacheHooks{}
}
