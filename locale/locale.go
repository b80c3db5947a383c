// Package locale provides the read-only locale tables consumed by the
// resolver: month names, weekday names, the natural-language keyword
// vocabulary, and the week-start convention.
package locale

import (
	"sort"
	"time"
)

// Key identifies a locale record, e.g. "en-US" or "zh-CN".
type Key string

const (
	EnUS Key = "en-US"
	ZhCN Key = "zh-CN"
)

// Unit is the calendar unit a keyword category anchors on.
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitYear
	UnitNow
)

// KeywordCategory is one natural-language vocabulary entry. Categories are
// matched in declared order, so the slice order in a Record is an implicit
// priority list.
type KeywordCategory struct {
	Name  string
	Unit  Unit
	Delta int
	Forms []string
}

// Record is an immutable locale table. Records are constructed once at
// package init and shared read-only for the lifetime of the process.
type Record struct {
	Key          Key
	MonthNames   [12]string
	MonthAbbrs   [12]string
	WeekdayNames []string // surface forms for weekday stripping, longest first
	WeekStart    time.Weekday
	Keywords     []KeywordCategory
}

// Lookup returns the record for key, falling back to en-US for unknown keys.
func Lookup(key Key) *Record {
	if rec, ok := records[key]; ok {
		return rec
	}
	return records[EnUS]
}

// Keys returns the registered locale keys in sorted order.
func Keys() []Key {
	keys := make([]Key, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
