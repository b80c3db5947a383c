package resolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numericToday = time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

func decode(t *testing.T, digits string, yearFirst bool) DateComponents {
	t.Helper()
	c, ok := decodeNumeric(digits, yearFirst, numericToday, true)
	require.True(t, ok, "decodeNumeric(%q) declined", digits)
	return c
}

func TestDecodeNumeric_YearFirst(t *testing.T) {
	tests := []struct {
		digits string
		want   DateComponents
	}{
		// Single digit replaces the last digit of the current year.
		{"5", DateComponents{2025, 6, 10}},
		{"0", DateComponents{2020, 6, 10}},
		// Two digits: day when 1-31, else a year suffix.
		{"15", DateComponents{2024, 6, 15}},
		{"31", DateComponents{2024, 6, 30}}, // June has 30 days
		{"45", DateComponents{2045, 6, 10}},
		{"99", DateComponents{1999, 6, 10}},
		// Three digits: month + two-digit day, else year suffix.
		{"315", DateComponents{2024, 3, 15}},
		{"130", DateComponents{2024, 1, 30}},
		{"032", DateComponents{2032, 6, 10}},
		{"999", DateComponents{2099, 6, 10}}, // day 99 is no day, year suffix wins
		// Four digits: plausible year unless it reads as a month/day pair.
		{"2025", DateComponents{2025, 6, 10}},
		{"1990", DateComponents{1990, 6, 10}},
		{"1231", DateComponents{2024, 12, 31}},
		{"0610", DateComponents{2024, 6, 10}},
		{"0431", DateComponents{2024, 4, 30}},
		// Five/six/seven digits: year plus progressively complete fields.
		{"20253", DateComponents{2025, 3, 10}},
		{"202503", DateComponents{2025, 3, 10}},
		{"2025031", DateComponents{2025, 3, 1}},
		// Eight digits: YYYYMMDD, corrected when invalid.
		{"20250431", DateComponents{2025, 4, 30}},
		{"20240230", DateComponents{2024, 2, 29}},
		{"20240315", DateComponents{2024, 3, 15}},
		// Longer input truncates to the first eight digits.
		{"2024031599", DateComponents{2024, 3, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(t, tt.digits, true))
		})
	}
}

func TestDecodeNumeric_MonthFirst(t *testing.T) {
	tests := []struct {
		digits string
		want   DateComponents
	}{
		{"315", DateComponents{2024, 3, 15}},
		// Four digits are always MMDD for month-first targets.
		{"2025", DateComponents{2024, 12, 25}}, // month 20 clamps to 12
		{"0431", DateComponents{2024, 4, 30}},
		// MMDD plus a one-digit year suffix.
		{"03155", DateComponents{2025, 3, 15}},
		// Six digits read as YYMMDD through two-digit-year expansion.
		{"240315", DateComponents{2024, 3, 15}},
		{"990315", DateComponents{1999, 3, 15}},
		// MMDD plus a three-digit year suffix.
		{"0315025", DateComponents{2025, 3, 15}},
		// Eight digits: MMDDYYYY.
		{"03152024", DateComponents{2024, 3, 15}},
		{"02302024", DateComponents{2024, 2, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(t, tt.digits, false))
		})
	}
}

func TestDecodeNumeric_CorrectionDisabled(t *testing.T) {
	// With smart correction off, out-of-range month/day declines instead of
	// clamping; in-range input still decodes.
	_, ok := decodeNumeric("20250431", true, numericToday, false)
	assert.False(t, ok)

	c, ok := decodeNumeric("20250430", true, numericToday, false)
	require.True(t, ok)
	assert.Equal(t, DateComponents{2025, 4, 30}, c)
}

func TestDecodeNumeric_Empty(t *testing.T) {
	_, ok := decodeNumeric("", true, numericToday, true)
	assert.False(t, ok)
}
