package prediction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/smartdate/resolver"
)

// Monday 2024-06-10, 10:00 UTC.
var fixedNow = time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

func newFixedEngine() *Engine {
	base := resolver.New().WithLocation(time.UTC)
	return NewEngine(base).WithClock(func() time.Time { return fixedNow })
}

func TestPredict(t *testing.T) {
	e := newFixedEngine()

	tests := []struct {
		input       string
		formatted   string
		description string
		confidence  float32
		kind        Kind
	}{
		{"today", "2024-06-10", "today", 1.0, KindShortcut},
		{"t", "2024-06-10", "today", 1.0, KindShortcut},
		{"明天", "2024-06-11", "tomorrow", 1.0, KindShortcut},
		{"+3", "2024-06-13", "3 days from now", 0.7, KindRelative},
		{"-1", "2024-06-09", "yesterday", 0.7, KindRelative},
		{"3天后", "2024-06-13", "3 days from now", 0.7, KindRelative},
		{"20250431", "2025-04-30", "2025年4月30日", 0.95, KindNumeric},
		{"20240615", "2024-06-15", "5 days from now", 0.95, KindNumeric},
		{"202406", "2024-06-10", "today", 0.9, KindNumeric},
		{"0615", "2024-06-15", "5 days from now", 0.85, KindNumeric},
		{"315", "2024-03-15", "87 days ago", 0.8, KindNumeric},
		{"15", "2024-06-15", "5 days from now", 0.75, KindNumeric},
		{"2024-06-11", "2024-06-11", "tomorrow", 0.8, KindParsed},
		{"tomorrow", "2024-06-11", "tomorrow", 0.7, KindParsed},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := e.Predict(tt.input, "")
			require.True(t, ok, "input %q", tt.input)
			assert.Equal(t, tt.formatted, got.Formatted)
			assert.Equal(t, tt.description, got.Description)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.Equal(t, tt.kind, got.Kind)
		})
	}
}

func TestPredict_CustomFormat(t *testing.T) {
	e := newFixedEngine()

	got, ok := e.Predict("+3", "yyyyMMdd")
	require.True(t, ok)
	assert.Equal(t, "20240613", got.Formatted)
}

func TestPredict_Unresolvable(t *testing.T) {
	e := newFixedEngine()

	for _, input := range []string{"", "   ", "certainly not a date !!!"} {
		got, ok := e.Predict(input, "")
		assert.False(t, ok, "input %q", input)
		assert.Nil(t, got)
	}
}

func TestDescribe_FarDates(t *testing.T) {
	assert.Equal(t, "2025年1月1日",
		describe(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), fixedNow))
	assert.Equal(t, "2023年12月31日",
		describe(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), fixedNow))
	assert.Equal(t, "60 days from now",
		describe(time.Date(2024, 8, 9, 0, 0, 0, 0, time.UTC), fixedNow))
	assert.Equal(t, "2024年8月10日",
		describe(time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC), fixedNow))
}
