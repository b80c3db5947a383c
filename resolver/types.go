// Package resolver turns arbitrary, possibly malformed, locale-mixed human
// text ("20250431", "明天", "+3", "may 15th") into a valid calendar date
// through a fixed-priority strategy pipeline. It never raises: every input
// either resolves to a calendar-valid date or declines predictably.
package resolver

import (
	"time"

	"github.com/hrygo/smartdate/locale"
)

// StrategyID identifies the pipeline stage that produced an outcome.
type StrategyID string

const (
	StrategyStandardFormat  StrategyID = "standard_format"
	StrategyFormatCorrected StrategyID = "smart_format_correction"
	StrategyCompositeFormat StrategyID = "composite_format"
	StrategyNumeric         StrategyID = "numeric"
	StrategyShortcut        StrategyID = "shortcut"
	StrategyRelative        StrategyID = "relative_offset"
	StrategyNatural         StrategyID = "natural_language"
	StrategyRelativeLegacy  StrategyID = "relative_offset_legacy"
	StrategyTextual         StrategyID = "textual_month"
	StrategyFallbackSweep   StrategyID = "fallback_formats"
)

// Options configures a single resolve call.
type Options struct {
	Format                string
	Locale                locale.Key
	EnableNaturalLanguage bool
	EnableRelativeDate    bool
	EnableSmartCorrection bool
	Strict                bool
}

// DefaultOptions returns the documented defaults: ISO target format, en-US
// locale, every feature enabled, non-strict.
func DefaultOptions() Options {
	return Options{
		Format:                "yyyy-MM-dd",
		Locale:                locale.EnUS,
		EnableNaturalLanguage: true,
		EnableRelativeDate:    true,
		EnableSmartCorrection: true,
		Strict:                false,
	}
}

// DateComponents is a plain (year, month, day) triple. It carries no calendar
// validity guarantee until passed through Correct.
type DateComponents struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Date returns the triple as a midnight time.Time in loc.
func (c DateComponents) Date(loc *time.Location) time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, 0, 0, 0, 0, loc)
}

// Outcome is the tagged result of a resolve call. When Resolved is true, Date
// is a calendar-valid date at local midnight. Reason is populated only in
// strict mode.
type Outcome struct {
	Resolved  bool       `json:"resolved"`
	Date      time.Time  `json:"date,omitempty"`
	Formatted string     `json:"formatted,omitempty"`
	Strategy  StrategyID `json:"strategy,omitempty"`
	Reason    string     `json:"reason,omitempty"`
}

// request is the internal per-call state: trimmed input, compiled target
// pattern, locale record, and the single "now" sample the whole call uses.
type request struct {
	input   string
	opts    Options
	pattern Pattern
	rec     *locale.Record
	now     time.Time
}
