package resolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/smartdate/locale"
)

// Anchor for all cases: Monday 2024-06-10.
func TestMatchNaturalLanguage_Categories(t *testing.T) {
	enRec := locale.Lookup(locale.EnUS)
	zhRec := locale.Lookup(locale.ZhCN)

	tests := []struct {
		input string
		rec   *locale.Record
		want  time.Time
	}{
		{"today", enRec, date(2024, 6, 10)},
		{"tomorrow", enRec, date(2024, 6, 11)},
		{"yesterday", enRec, date(2024, 6, 9)},
		{"now", enRec, date(2024, 6, 10)},
		{"right now", enRec, date(2024, 6, 10)},
		// Week anchors follow the locale's week start.
		{"this week", enRec, date(2024, 6, 9)},
		{"next week", enRec, date(2024, 6, 16)},
		{"last week", enRec, date(2024, 6, 2)},
		{"本周", zhRec, date(2024, 6, 10)},
		{"下周", zhRec, date(2024, 6, 17)},
		{"上周", zhRec, date(2024, 6, 3)},
		{"this month", enRec, date(2024, 6, 1)},
		{"next month", enRec, date(2024, 7, 1)},
		{"last month", enRec, date(2024, 5, 1)},
		{"上个月", zhRec, date(2024, 5, 1)},
		{"this year", enRec, date(2024, 1, 1)},
		{"next year", enRec, date(2025, 1, 1)},
		{"last year", enRec, date(2023, 1, 1)},
		{"明年", zhRec, date(2025, 1, 1)},
		{"去年", zhRec, date(2023, 1, 1)},
		{"今日", zhRec, date(2024, 6, 10)},
		{"现在", zhRec, date(2024, 6, 10)},
		// Substring match survives surrounding text.
		{"remind me tomorrow please", enRec, date(2024, 6, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := matchNaturalLanguage(tt.input, tt.rec, fixedNow)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchNaturalLanguage_Weekdays(t *testing.T) {
	enRec := locale.Lookup(locale.EnUS)
	zhRec := locale.Lookup(locale.ZhCN)

	tests := []struct {
		input string
		rec   *locale.Record
		want  time.Time
	}{
		// CJK bare weekdays stay inside the current Monday-based week.
		{"周三", zhRec, date(2024, 6, 12)},
		{"星期五", zhRec, date(2024, 6, 14)},
		{"本周六", zhRec, date(2024, 6, 15)},
		{"周日", zhRec, date(2024, 6, 16)},
		{"周一", zhRec, date(2024, 6, 10)},
		// Explicit next/last week forms jump a whole week.
		{"下周三", zhRec, date(2024, 6, 19)},
		{"下星期一", zhRec, date(2024, 6, 17)},
		{"上周五", zhRec, date(2024, 6, 7)},
		{"上周一", zhRec, date(2024, 6, 3)},
		// English bare weekday means the next occurrence.
		{"wednesday", enRec, date(2024, 6, 12)},
		{"friday", enRec, date(2024, 6, 14)},
		{"monday", enRec, date(2024, 6, 17)},
		{"next monday", enRec, date(2024, 6, 17)},
		{"next friday", enRec, date(2024, 6, 21)},
		{"last friday", enRec, date(2024, 6, 7)},
		{"last monday", enRec, date(2024, 6, 3)},
		{"Next Wednesday", enRec, date(2024, 6, 19)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := matchNaturalLanguage(tt.input, tt.rec, fixedNow)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchNaturalLanguage_WeekdayBeatsCategory(t *testing.T) {
	zhRec := locale.Lookup(locale.ZhCN)

	// "下周三" contains the "下周" keyword but must land on the Wednesday,
	// not the week anchor.
	got, ok := matchNaturalLanguage("下周三", zhRec, fixedNow)
	require.True(t, ok)
	assert.Equal(t, date(2024, 6, 19), got)
}

func TestMatchNaturalLanguage_Declines(t *testing.T) {
	enRec := locale.Lookup(locale.EnUS)
	// "mondays" must not match: the weekday word boundary is exact.
	for _, input := range []string{"", "someday", "mondays", "soon", "2024-06-10"} {
		_, ok := matchNaturalLanguage(input, enRec, fixedNow)
		assert.False(t, ok, "input %q", input)
	}
}
