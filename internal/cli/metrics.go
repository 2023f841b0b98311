package cli

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/hanoi/pkg/observability"
)

// metrics exports animation and cache events as Prometheus collectors.
type metrics struct {
	runsStarted   prometheus.Counter
	runsCompleted prometheus.Counter
	runsCancelled prometheus.Counter
	moves         *prometheus.CounterVec
	moveTicks     prometheus.Histogram
	phases        *prometheus.CounterVec
	cache         *prometheus.CounterVec
	cacheBytes    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hanoi_runs_started_total",
			Help: "Runs started.",
		}),
		runsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hanoi_runs_completed_total",
			Help: "Runs that applied every move.",
		}),
		runsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hanoi_runs_cancelled_total",
			Help: "Runs cancelled by a reset or restart.",
		}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hanoi_moves_completed_total",
			Help: "Disk moves completed, by source and destination peg.",
		}, []string{"from", "to"}),
		moveTicks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hanoi_move_ticks",
			Help:    "Ticks taken by a single move.",
			Buckets: prometheus.ExponentialBuckets(4, 2, 8),
		}),
		phases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hanoi_phase_transitions_total",
			Help: "Animation phase entries.",
		}, []string{"phase"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hanoi_cache_requests_total",
			Help: "Rendered tree cache lookups.",
		}, []string{"result"}),
		cacheBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hanoi_cache_written_bytes_total",
			Help: "Bytes written to the rendered tree cache.",
		}),
	}
	reg.MustRegister(
		m.runsStarted, m.runsCompleted, m.runsCancelled,
		m.moves, m.moveTicks, m.phases,
		m.cache, m.cacheBytes,
	)
	return m
}

func (m *metrics) OnRunStart(context.Context, string, int, int) { m.runsStarted.Inc() }

func (m *metrics) OnRunComplete(context.Context, string, int, int) { m.runsCompleted.Inc() }

func (m *metrics) OnReset(context.Context, string, int, bool) { m.runsCancelled.Inc() }

func (m *metrics) OnMoveStart(context.Context, string, int, int, int, int) {}

func (m *metrics) OnPhaseChange(_ context.Context, _ string, _ int, phase string) {
	m.phases.WithLabelValues(phase).Inc()
}

func (m *metrics) OnMoveComplete(_ context.Context, _ string, _, from, to, _, ticks int) {
	m.moves.WithLabelValues(strconv.Itoa(from), strconv.Itoa(to)).Inc()
	m.moveTicks.Observe(float64(ticks))
}

func (m *metrics) OnCacheHit(context.Context, string)  { m.cache.WithLabelValues("hit").Inc() }
func (m *metrics) OnCacheMiss(context.Context, string) { m.cache.WithLabelValues("miss").Inc() }

func (m *metrics) OnCacheSet(_ context.Context, _ string, size int) {
	m.cacheBytes.Add(float64(size))
}

var (
	_ observability.AnimationHooks = (*metrics)(nil)
	_ observability.CacheHooks     = (*metrics)(nil)
)
