package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordAndSnapshot(t *testing.T) {
	m := NewMetrics(func() int { return 7 })

	m.RecordResolve("shortcut", true, 100*time.Microsecond)
	m.RecordResolve("numeric", true, 300*time.Microsecond)
	m.RecordResolve("", false, 200*time.Microsecond)

	s := m.Snapshot()
	assert.Equal(t, int64(3), s.TotalRequests)
	assert.Equal(t, int64(2), s.Resolved)
	assert.Equal(t, int64(1), s.Declined)
	assert.InDelta(t, 2.0/3.0, s.SuccessRate, 1e-9)
	assert.Equal(t, int64(1), s.ByStrategy["shortcut"])
	assert.Equal(t, int64(1), s.ByStrategy["numeric"])
	assert.NotContains(t, s.ByStrategy, "")
	assert.Equal(t, int64(200), s.AvgLatencyUs)
	assert.Equal(t, 7, s.CacheSize)
}

func TestMetrics_Empty(t *testing.T) {
	m := NewMetrics(nil)
	s := m.Snapshot()
	assert.Equal(t, int64(0), s.TotalRequests)
	assert.Equal(t, float64(0), s.SuccessRate)
	assert.Equal(t, int64(0), s.AvgLatencyUs)
	assert.Equal(t, 0, s.CacheSize)
}

func TestMetrics_DurationWindowBounded(t *testing.T) {
	m := NewMetrics(nil)
	for i := 0; i < maxDurationSamples*3; i++ {
		m.RecordResolve("numeric", true, time.Millisecond)
	}
	m.mu.Lock()
	n := len(m.durations)
	m.mu.Unlock()
	assert.LessOrEqual(t, n, maxDurationSamples)
}
