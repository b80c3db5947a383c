package resolver

import (
	"regexp"
	"strings"
	"time"

	"github.com/hrygo/smartdate/locale"
)

var (
	cjkWeekdayRe     = regexp.MustCompile(`(?:这|本)?(?:周|星期)([一二三四五六日天])`)
	cjkNextWeekdayRe = regexp.MustCompile(`下(?:周|星期)([一二三四五六日天])`)
	cjkLastWeekdayRe = regexp.MustCompile(`上(?:周|星期)([一二三四五六日天])`)
	enWeekdayRe      = regexp.MustCompile(`\b(next |last )?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

// cjkWeekdays maps the CJK weekday character to an offset from Monday.
var cjkWeekdays = map[string]int{
	"一": 0, "二": 1, "三": 2, "四": 3, "五": 4, "六": 5, "日": 6, "天": 6,
}

var enWeekdays = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
}

// matchNaturalLanguage scans the locale's keyword vocabulary for a substring
// match. Weekday phrases are tried first so that "下周三" resolves to the
// concrete Wednesday rather than the bare "下周" week anchor; after that, the
// category iteration order is the table's declared order, which makes the
// table an implicit priority list.
func matchNaturalLanguage(input string, rec *locale.Record, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(input)

	if d, ok := matchWeekdayPhrase(input, lower, now); ok {
		return d, true
	}

	for _, cat := range rec.Keywords {
		for _, form := range cat.Forms {
			if !strings.Contains(lower, strings.ToLower(form)) {
				continue
			}
			return resolveCategory(cat, rec, now), true
		}
	}
	return time.Time{}, false
}

func resolveCategory(cat locale.KeywordCategory, rec *locale.Record, now time.Time) time.Time {
	switch cat.Unit {
	case locale.UnitWeek:
		return startOfWeek(now, rec.WeekStart).AddDate(0, 0, cat.Delta*7)
	case locale.UnitMonth:
		return startOfMonth(now).AddDate(0, cat.Delta, 0)
	case locale.UnitYear:
		return startOfYear(now).AddDate(cat.Delta, 0, 0)
	case locale.UnitNow:
		return startOfDay(now)
	default:
		return startOfDay(now).AddDate(0, 0, cat.Delta)
	}
}

// matchWeekdayPhrase resolves weekday names: "周三", "下周五", "next monday",
// "friday". CJK forms count from Monday; "下周X"/"上周X" jump a whole week
// before landing on the weekday, the bare form stays inside this week.
func matchWeekdayPhrase(input, lower string, now time.Time) (time.Time, bool) {
	// Monday-based index of "now".
	cur := int(now.Weekday())
	if cur == 0 {
		cur = 7
	}
	cur--
	day := startOfDay(now)

	// Next-week and last-week forms first, the bare pattern would otherwise
	// match the "周X" inside "下周X".
	if m := cjkNextWeekdayRe.FindStringSubmatch(input); m != nil {
		target := cjkWeekdays[m[1]]
		return day.AddDate(0, 0, 7-cur+target), true
	}
	if m := cjkLastWeekdayRe.FindStringSubmatch(input); m != nil {
		target := cjkWeekdays[m[1]]
		return day.AddDate(0, 0, -(cur+7)+target), true
	}
	if m := cjkWeekdayRe.FindStringSubmatch(input); m != nil {
		target := cjkWeekdays[m[1]]
		return day.AddDate(0, 0, target-cur), true
	}

	if m := enWeekdayRe.FindStringSubmatch(lower); m != nil {
		target := enWeekdays[m[2]]
		diff := (int(target) - int(now.Weekday()) + 7) % 7
		switch strings.TrimSpace(m[1]) {
		case "next":
			if diff == 0 {
				diff = 7
			} else {
				diff += 7
			}
		case "last":
			diff -= 7
		default:
			// Bare weekday means the next occurrence; today rolls a week.
			if diff == 0 {
				diff = 7
			}
		}
		return day.AddDate(0, 0, diff), true
	}

	return time.Time{}, false
}
