package resolver

import (
	"regexp"
	"strings"
)

// Clock is a resolved wall-clock time of day.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

var (
	colonTimeRe = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})(?::\d{1,2})?$`)
	cjkHourRe   = regexp.MustCompile(`(\d{1,2})[点时]`)
	cjkMinuteRe = regexp.MustCompile(`(\d{1,2})分`)
)

// cjkNumerals maps spelled-out hour numerals, longest form first so 十二
// matches before 十 and 二.
var cjkNumerals = []struct {
	text  string
	value int
}{
	{"二十四", 24}, {"二十三", 23}, {"二十二", 22}, {"二十一", 21}, {"二十", 20},
	{"十九", 19}, {"十八", 18}, {"十七", 17}, {"十六", 16}, {"十五", 15},
	{"十四", 14}, {"十三", 13}, {"十二", 12}, {"十一", 11}, {"十", 10},
	{"九", 9}, {"八", 8}, {"七", 7}, {"六", 6}, {"五", 5},
	{"四", 4}, {"三", 3}, {"二", 2}, {"两", 2}, {"一", 1},
}

var pmModifiers = []string{"下午", "晚上", "傍晚", "夜里", "pm", "p.m."}
var amModifiers = []string{"上午", "早上", "凌晨", "中午", "am", "a.m."}

// ResolveTimeOfDay interprets human clock-time text: "930", "9:30", "0930",
// "下午3点", "3点半", "15点30分". Bare digit strings split as H, HH, HMM, or
// HHMM; out-of-range components clamp instead of failing. Ambiguous bare
// hours follow the reminder convention: 1-6 defaults to afternoon, 7-11
// stays morning, 12 stays noon.
func ResolveTimeOfDay(input string) (Clock, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Clock{}, false
	}
	lower := strings.ToLower(input)

	if m := colonTimeRe.FindStringSubmatch(lower); m != nil {
		return clampClock(num(m[1]), num(m[2])), true
	}

	if isAllDigits(lower) {
		switch len(lower) {
		case 1:
			return clampClock(num(lower), 0), true
		case 2:
			return clampClock(num(lower), 0), true
		case 3:
			return clampClock(num(lower[:1]), num(lower[1:])), true
		case 4:
			return clampClock(num(lower[:2]), num(lower[2:])), true
		default:
			return Clock{}, false
		}
	}

	return resolveCJKTime(input, lower)
}

func resolveCJKTime(input, lower string) (Clock, bool) {
	hour := -1

	if m := cjkHourRe.FindStringSubmatch(input); m != nil {
		hour = num(m[1])
	}
	if hour == -1 {
		for _, cn := range cjkNumerals {
			if strings.Contains(input, cn.text+"点") || strings.Contains(input, cn.text+"时") {
				hour = cn.value
				break
			}
		}
	}
	if hour == -1 {
		return Clock{}, false
	}

	minute := 0
	if m := cjkMinuteRe.FindStringSubmatch(input); m != nil {
		minute = num(m[1])
	} else if strings.Contains(input, "半") {
		minute = 30
	}

	if hour <= 12 {
		switch {
		case containsAny(lower, pmModifiers):
			if hour < 12 {
				hour += 12
			}
		case containsAny(lower, amModifiers):
			// Explicit morning marker, keep as is.
		case hour >= 1 && hour <= 6:
			hour += 12
		}
	}

	return clampClock(hour, minute), true
}

func clampClock(hour, minute int) Clock {
	if hour < 0 {
		hour = 0
	} else if hour > 23 {
		hour = 23
	}
	if minute < 0 {
		minute = 0
	} else if minute > 59 {
		minute = 59
	}
	return Clock{Hour: hour, Minute: minute}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
