package resolver

import (
	"regexp"
	"strings"
	"time"

	"github.com/hrygo/smartdate/locale"
)

var (
	// "may 15th", "may 15, 2025", "september 3 2024"
	monthDayRe = regexp.MustCompile(`^([a-z]+\.?)\s+(\d{1,2})(?:st|nd|rd|th)?,?(?:\s+(\d{4}))?$`)
	// "15th may", "15 of may 2025"
	dayMonthRe = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]+\.?)(?:,?\s+(\d{4}))?$`)
	// "5月15日", "5月15号", "5月"
	cjkMonthDayRe = regexp.MustCompile(`^(\d{1,2})月(?:(\d{1,2})[日号]?)?$`)
)

// irregularMonthAbbrs lists abbreviations outside the standard 3-letter set.
var irregularMonthAbbrs = map[string]int{
	"sept": 9,
	"janu": 1,
	"febr": 2,
}

// matchTextualDate runs the three textual grammars in order: month+day+year,
// month+day (current year), bare month (day 1 of the current year). Either
// token order is accepted, with optional ordinal suffix and comma.
func matchTextualDate(input string, rec *locale.Record, now time.Time) (DateComponents, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))

	if m := monthDayRe.FindStringSubmatch(lower); m != nil {
		if month, ok := monthFromToken(m[1], rec); ok {
			year := now.Year()
			if m[3] != "" {
				year = num(m[3])
			}
			return DateComponents{Year: year, Month: month, Day: num(m[2])}, true
		}
	}

	if m := dayMonthRe.FindStringSubmatch(lower); m != nil {
		if month, ok := monthFromToken(m[2], rec); ok {
			year := now.Year()
			if m[3] != "" {
				year = num(m[3])
			}
			return DateComponents{Year: year, Month: month, Day: num(m[1])}, true
		}
	}

	if m := cjkMonthDayRe.FindStringSubmatch(input); m != nil {
		day := 1
		if m[2] != "" {
			day = num(m[2])
		}
		return DateComponents{Year: now.Year(), Month: num(m[1]), Day: day}, true
	}

	// Bare month name alone.
	if month, ok := monthFromToken(lower, rec); ok {
		return DateComponents{Year: now.Year(), Month: month, Day: 1}, true
	}

	return DateComponents{}, false
}

// monthFromToken resolves a candidate token to a month number. It accepts
// full names, standard 3-letter abbreviations, listed irregular
// abbreviations, the locale's CJK month names, and finally a fuzzy fallback
// requiring the token be at least 2 characters and a strict prefix of a full
// English month name.
func monthFromToken(token string, rec *locale.Record) (int, bool) {
	token = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(token)), ".")
	if token == "" {
		return 0, false
	}

	en := locale.Lookup(locale.EnUS)
	for i, name := range en.MonthNames {
		if token == name {
			return i + 1, true
		}
	}
	for i, abbr := range en.MonthAbbrs {
		if token == abbr {
			return i + 1, true
		}
	}
	if m, ok := irregularMonthAbbrs[token]; ok {
		return m, true
	}

	for i, name := range rec.MonthNames {
		if token == name {
			return i + 1, true
		}
	}
	zh := locale.Lookup(locale.ZhCN)
	for i, name := range zh.MonthNames {
		if token == name {
			return i + 1, true
		}
	}

	// Prefix fuzzy: "febr" resolves, "f" does not.
	if len(token) >= 2 {
		for i, name := range en.MonthNames {
			if strings.HasPrefix(name, token) {
				return i + 1, true
			}
		}
	}
	return 0, false
}
