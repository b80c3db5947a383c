package observability

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// maxDurationSamples bounds the latency window kept for percentile snapshots.
const maxDurationSamples = 1024

// Metrics collects in-process counters for the resolve API. All methods are
// safe for concurrent use; recording is cheap enough for the request path.
type Metrics struct {
	requestTotal  atomic.Int64
	resolvedTotal atomic.Int64
	declinedTotal atomic.Int64
	cacheSizeFn   func() int

	mu         sync.Mutex
	byStrategy map[string]int64
	durations  []time.Duration
}

// NewMetrics creates an empty metrics collector. cacheSize may be nil.
func NewMetrics(cacheSize func() int) *Metrics {
	return &Metrics{
		byStrategy:  make(map[string]int64),
		cacheSizeFn: cacheSize,
	}
}

// RecordResolve records one resolve call. strategy is empty for declines.
func (m *Metrics) RecordResolve(strategy string, resolved bool, d time.Duration) {
	m.requestTotal.Add(1)
	if resolved {
		m.resolvedTotal.Add(1)
	} else {
		m.declinedTotal.Add(1)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if strategy != "" {
		m.byStrategy[strategy]++
	}
	if len(m.durations) >= maxDurationSamples {
		// Sliding window: drop the oldest half rather than shifting per call.
		m.durations = append(m.durations[:0], m.durations[maxDurationSamples/2:]...)
	}
	m.durations = append(m.durations, d)
}

// Snapshot is a point-in-time view of the collector.
type Snapshot struct {
	TotalRequests int64            `json:"total_requests"`
	Resolved      int64            `json:"resolved"`
	Declined      int64            `json:"declined"`
	SuccessRate   float64          `json:"success_rate"`
	ByStrategy    map[string]int64 `json:"by_strategy"`
	AvgLatencyUs  int64            `json:"avg_latency_us"`
	P95LatencyUs  int64            `json:"p95_latency_us"`
	CacheSize     int              `json:"cache_size"`
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		TotalRequests: m.requestTotal.Load(),
		Resolved:      m.resolvedTotal.Load(),
		Declined:      m.declinedTotal.Load(),
		ByStrategy:    make(map[string]int64),
	}
	if s.TotalRequests > 0 {
		s.SuccessRate = float64(s.Resolved) / float64(s.TotalRequests)
	}
	if m.cacheSizeFn != nil {
		s.CacheSize = m.cacheSizeFn()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.byStrategy {
		s.ByStrategy[k] = v
	}
	if len(m.durations) > 0 {
		sorted := make([]time.Duration, len(m.durations))
		copy(sorted, m.durations)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum time.Duration
		for _, d := range sorted {
			sum += d
		}
		s.AvgLatencyUs = (sum / time.Duration(len(sorted))).Microseconds()
		s.P95LatencyUs = sorted[len(sorted)*95/100].Microseconds()
	}
	return s
}
