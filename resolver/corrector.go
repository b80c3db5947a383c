package resolver

import "time"

// correctorConfig holds the era-anchor heuristics for year correction. The
// buckets are tied to "now" being in the 2020s and drift as real time
// advances; they are kept in one place so callers with long-term correctness
// needs can see exactly what the product behavior pins.
type correctorConfig struct {
	minPlausibleYear int // below this the year heuristics kick in
	maxPlausibleYear int // above this the year wraps onto the era base
	eraBase          int // far-future years map to eraBase + year%10
	centurySplit     int // two-digit years below this land in 2000s, else 1900s
}

var defaultCorrector = correctorConfig{
	minPlausibleYear: 1950,
	maxPlausibleYear: 2100,
	eraBase:          2024,
	centurySplit:     50,
}

// Correct clamps a possibly out-of-range (year, month, day) triple to the
// nearest valid calendar date. It is total: any input produces a
// calendar-valid result, and already-valid triples are fixed points.
//
// Rules apply in order. Year: two-digit values expand by the century split
// (<50 to 2000s, otherwise 1900s), three-digit values to 2000+year%100,
// far-future values to eraBase+year%10; years 1000 through the plausible
// maximum pass through unchanged. Month clamps to [1,12]. Day clamps to
// [1, day count of the corrected month].
func Correct(year, month, day int) DateComponents {
	return defaultCorrector.correct(year, month, day)
}

func (cfg correctorConfig) correct(year, month, day int) DateComponents {
	switch {
	case year > cfg.maxPlausibleYear:
		year = cfg.eraBase + ((year%10)+10)%10
	case year >= 1000:
		// Plausible historical or modern years stay as written.
	case year >= 100:
		year = 2000 + year%100
	default:
		v := ((year % 100) + 100) % 100
		if v < cfg.centurySplit {
			year = 2000 + v
		} else {
			year = 1900 + v
		}
	}

	if month < 1 {
		month = 1
	} else if month > 12 {
		month = 12
	}

	if day < 1 {
		day = 1
	} else if last := daysInMonth(year, month); day > last {
		day = last
	}

	return DateComponents{Year: year, Month: month, Day: day}
}

// expandTwoDigitYear applies the century-split rule to a 0-99 value.
func expandTwoDigitYear(v int) int {
	if v < defaultCorrector.centurySplit {
		return 2000 + v
	}
	return 1900 + v
}

// daysInMonth returns the day count of a month, leap years included.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// validDate reports whether the triple names an existing calendar date.
func validDate(year, month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= daysInMonth(year, month)
}
