package resolver

import (
	"strconv"
	"time"
)

// decodeNumeric interprets a pure digit string of length 1-8 (longer input is
// truncated to the first 8 digits) as partial or complete date components,
// filling missing fields from today. The interpretation branches on both the
// digit count and whether the target format is year-first or month-first.
//
// Every branch that produces a month/day pair goes through Correct before
// acceptance; the decoder never emits an uncorrected triple. With smart
// correction disabled, a branch whose month/day is out of range declines
// instead of clamping.
func decodeNumeric(digits string, yearFirst bool, today time.Time, smart bool) (DateComponents, bool) {
	if digits == "" {
		return DateComponents{}, false
	}
	if len(digits) > 8 {
		digits = digits[:8]
	}

	cy, cm, cd := today.Year(), int(today.Month()), today.Day()

	finish := func(y, m, d int) (DateComponents, bool) {
		c := Correct(y, m, d)
		if !smart && !validDate(c.Year, m, d) {
			return DateComponents{}, false
		}
		return c, true
	}

	switch len(digits) {
	case 1:
		// Single digit replaces the last digit of the current year.
		v := num(digits)
		return finish(cy/10*10+v, cm, cd)

	case 2:
		v := num(digits)
		if v >= 1 && v <= 31 {
			return finish(cy, cm, v)
		}
		return finish(expandTwoDigitYear(v), cm, cd)

	case 3:
		// First digit month, remaining two day; otherwise a year suffix.
		m := num(digits[:1])
		d := num(digits[1:])
		if m >= 1 && d >= 1 && d <= 31 {
			return finish(cy, m, d)
		}
		return finish(2000+num(digits)%100, cm, cd)

	case 4:
		mm, dd := num(digits[:2]), num(digits[2:])
		if yearFirst {
			v := num(digits)
			plausibleYear := v >= defaultCorrector.minPlausibleYear && v <= defaultCorrector.maxPlausibleYear
			validPair := mm >= 1 && mm <= 12 && dd >= 1 && dd <= 31
			if plausibleYear && !validPair {
				return finish(v, cm, cd)
			}
		}
		return finish(cy, mm, dd)

	case 5:
		if yearFirst {
			// Four-digit year plus an unpadded month.
			return finish(num(digits[:4]), num(digits[4:]), cd)
		}
		// MMDD plus a one-digit year suffix.
		return finish(cy/10*10+num(digits[4:]), num(digits[:2]), num(digits[2:4]))

	case 6:
		if yearFirst {
			return finish(num(digits[:4]), num(digits[4:]), cd)
		}
		// YYMMDD through two-digit-year expansion.
		return finish(expandTwoDigitYear(num(digits[:2])), num(digits[2:4]), num(digits[4:]))

	case 7:
		if yearFirst {
			return finish(num(digits[:4]), num(digits[4:6]), num(digits[6:]))
		}
		// MMDD plus a three-digit year suffix.
		return finish(2000+num(digits[4:])%100, num(digits[:2]), num(digits[2:4]))

	default: // 8
		if yearFirst {
			return finish(num(digits[:4]), num(digits[4:6]), num(digits[6:]))
		}
		return finish(num(digits[4:]), num(digits[:2]), num(digits[2:4]))
	}
}

// isAllDigits reports whether s is non-empty pure ASCII digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func num(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
