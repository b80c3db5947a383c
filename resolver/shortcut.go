package resolver

import (
	"strings"
	"time"

	"github.com/hrygo/smartdate/locale"
)

// shortcutAnchor names the anchor a shortcut token resolves to.
type shortcutAnchor int

const (
	anchorToday shortcutAnchor = iota
	anchorYesterday
	anchorTomorrow
	anchorWeekStart
	anchorMonthStart
)

// shortcuts is the fixed exact-match token table. Matching is whole-string
// and case-insensitive, never substring.
var shortcuts = map[string]shortcutAnchor{
	"t":         anchorToday,
	"today":     anchorToday,
	"今":         anchorToday,
	"今天":        anchorToday,
	"y":         anchorYesterday,
	"yesterday": anchorYesterday,
	"昨":         anchorYesterday,
	"昨天":        anchorYesterday,
	"tm":        anchorTomorrow,
	"tomorrow":  anchorTomorrow,
	"明":         anchorTomorrow,
	"明天":        anchorTomorrow,
	"w":         anchorWeekStart,
	"week":      anchorWeekStart,
	"周":         anchorWeekStart,
	"本周":        anchorWeekStart,
	"m":         anchorMonthStart,
	"month":     anchorMonthStart,
	"月":         anchorMonthStart,
	"本月":        anchorMonthStart,
}

// matchShortcut resolves a shortcut token against "now". Week anchors honor
// the locale's week-start convention.
func matchShortcut(input string, rec *locale.Record, now time.Time) (time.Time, bool) {
	anchor, ok := shortcuts[strings.ToLower(input)]
	if !ok {
		return time.Time{}, false
	}

	day := startOfDay(now)
	switch anchor {
	case anchorToday:
		return day, true
	case anchorYesterday:
		return day.AddDate(0, 0, -1), true
	case anchorTomorrow:
		return day.AddDate(0, 0, 1), true
	case anchorWeekStart:
		return startOfWeek(now, rec.WeekStart), true
	case anchorMonthStart:
		return startOfMonth(now), true
	}
	return time.Time{}, false
}

// IsShortcutToken reports whether s is a whole-string shortcut, ignoring
// case and surrounding space.
func IsShortcutToken(s string) bool {
	_, ok := shortcuts[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return startOfDay(t).AddDate(0, 0, -back)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}
