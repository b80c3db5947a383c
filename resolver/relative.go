package resolver

import (
	"regexp"
	"strings"
	"time"
)

// Offset grammars. All deltas apply to "now" at call time; there is no
// chaining or relative-to-previous-result support.
var (
	// +N, -3, w+2, m-1, y+10
	symbolicOffsetRe = regexp.MustCompile(`^([wmy]?)([+-])(\d{1,4})$`)
	// 3天后, 2周前, 1个月后, 5年前
	cjkOffsetRe = regexp.MustCompile(`^(\d{1,4})(天|日|周|星期|个月|月|年)(后|前)$`)
	// in 3 days, 2 weeks ago, 1 month from now
	englishInRe  = regexp.MustCompile(`^in (\d{1,4}) (day|week|month|year)s?$`)
	englishAgoRe = regexp.MustCompile(`^(\d{1,4}) (day|week|month|year)s? (ago|from now)$`)
)

// IsRelativeOffset reports whether s has the shape of an explicit offset.
func IsRelativeOffset(s string) bool {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	return symbolicOffsetRe.MatchString(lower) ||
		cjkOffsetRe.MatchString(s) ||
		englishInRe.MatchString(lower) ||
		englishAgoRe.MatchString(lower)
}

// matchRelative decodes an explicit relative offset against "now".
func matchRelative(input string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(input)
	day := startOfDay(now)

	if m := symbolicOffsetRe.FindStringSubmatch(lower); m != nil {
		n := num(m[3])
		if m[2] == "-" {
			n = -n
		}
		switch m[1] {
		case "w":
			return day.AddDate(0, 0, n*7), true
		case "m":
			return day.AddDate(0, n, 0), true
		case "y":
			return day.AddDate(n, 0, 0), true
		default:
			return day.AddDate(0, 0, n), true
		}
	}

	if m := cjkOffsetRe.FindStringSubmatch(input); m != nil {
		n := num(m[1])
		if m[3] == "前" {
			n = -n
		}
		switch m[2] {
		case "天", "日":
			return day.AddDate(0, 0, n), true
		case "周", "星期":
			return day.AddDate(0, 0, n*7), true
		case "个月", "月":
			return day.AddDate(0, n, 0), true
		case "年":
			return day.AddDate(n, 0, 0), true
		}
	}

	if m := englishInRe.FindStringSubmatch(lower); m != nil {
		return applyUnit(day, m[2], num(m[1])), true
	}
	if m := englishAgoRe.FindStringSubmatch(lower); m != nil {
		n := num(m[1])
		if m[3] == "ago" {
			n = -n
		}
		return applyUnit(day, m[2], n), true
	}

	return time.Time{}, false
}

func applyUnit(day time.Time, unit string, n int) time.Time {
	switch unit {
	case "week":
		return day.AddDate(0, 0, n*7)
	case "month":
		return day.AddDate(0, n, 0)
	case "year":
		return day.AddDate(n, 0, 0)
	default:
		return day.AddDate(0, 0, n)
	}
}
