package resolver

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// tokenKind classifies one token of a format pattern.
type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokYear
	tokMonth
	tokDay
	tokWeekday
)

type patternToken struct {
	kind  tokenKind
	width int
	text  string // literal text, empty for date tokens
}

// Pattern is a compiled format pattern. The token language is the usual
// year/month/day width grammar: yyyy, yy, MM, M, dd, d, EEE, EEEE, plus
// literal separators. Patterns are immutable once compiled.
type Pattern struct {
	raw        string
	tokens     []patternToken
	layout     string // equivalent Go reference layout
	shapeRe    *regexp.Regexp
	groups     []tokenKind // date-token kinds in capture-group order
	yearFirst  bool
	hasWeekday bool
}

// DefaultFormat is the target format assumed when none is given.
const DefaultFormat = "yyyy-MM-dd"

// CompilePattern compiles a format string. Empty input compiles to
// DefaultFormat. Unknown letters are treated as literals; a malformed
// pattern is a programmer error and simply produces a pattern that never
// matches, it does not panic.
func CompilePattern(raw string) Pattern {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultFormat
	}

	p := Pattern{raw: raw}
	for i := 0; i < len(raw); {
		c := raw[i]
		j := i
		switch c {
		case 'y', 'M', 'd', 'E':
			for j < len(raw) && raw[j] == c {
				j++
			}
			width := j - i
			switch c {
			case 'y':
				if width >= 3 {
					width = 4
				} else {
					width = 2
				}
				p.tokens = append(p.tokens, patternToken{kind: tokYear, width: width})
			case 'M':
				if width >= 2 {
					width = 2
				}
				p.tokens = append(p.tokens, patternToken{kind: tokMonth, width: width})
			case 'd':
				if width >= 2 {
					width = 2
				}
				p.tokens = append(p.tokens, patternToken{kind: tokDay, width: width})
			case 'E':
				if width >= 4 {
					width = 4
				} else {
					width = 3
				}
				p.tokens = append(p.tokens, patternToken{kind: tokWeekday, width: width})
				p.hasWeekday = true
			}
		default:
			for j < len(raw) && !strings.ContainsRune("yMdE", rune(raw[j])) {
				j++
			}
			p.tokens = append(p.tokens, patternToken{kind: tokLiteral, text: raw[i:j]})
		}
		i = j
	}

	p.layout = buildLayout(p.tokens)
	p.yearFirst = firstDateToken(p.tokens) == tokYear
	if !p.hasWeekday {
		p.shapeRe, p.groups = buildShape(p.tokens)
	}
	return p
}

// Raw returns the original format string.
func (p Pattern) Raw() string { return p.raw }

// YearFirst reports whether the pattern's leading date token is a year.
func (p Pattern) YearFirst() bool { return p.yearFirst }

// Format renders a date through the pattern.
func (p Pattern) Format(t time.Time) string {
	return t.Format(p.layout)
}

// ParseStrict interprets input exactly as the pattern: digits and punctuation
// in the positions the format specifies, calendar validity included. The Go
// time package rejects out-of-range components ("2025-04-31"), which is
// exactly the contract this stage wants.
func (p Pattern) ParseStrict(input string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(p.layout, input, loc)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
}

// MatchShape checks whether the input's digit/punctuation shape matches the
// pattern and, if so, returns the positionally extracted year/month/day
// groups. Missing tokens fall back to the anchor date's components.
func (p Pattern) MatchShape(input string, anchor time.Time) (DateComponents, bool) {
	if p.shapeRe == nil {
		return DateComponents{}, false
	}
	m := p.shapeRe.FindStringSubmatch(input)
	if m == nil {
		return DateComponents{}, false
	}
	c := DateComponents{Year: anchor.Year(), Month: int(anchor.Month()), Day: anchor.Day()}
	for i, kind := range p.groups {
		v := atoiDigits(m[i+1])
		switch kind {
		case tokYear:
			c.Year = v
		case tokMonth:
			c.Month = v
		case tokDay:
			c.Day = v
		}
	}
	return c, true
}

// StripWeekday removes weekday tokens from the pattern and the locale's
// weekday names (longest-first) from the input, returning the reduced
// pattern and input for a strict retry.
func (p Pattern) StripWeekday(input string, weekdayNames []string) (Pattern, string) {
	if !p.hasWeekday {
		return p, input
	}

	var kept []patternToken
	for _, tok := range p.tokens {
		if tok.kind != tokWeekday {
			kept = append(kept, tok)
		}
	}

	lower := strings.ToLower(input)
	for _, name := range weekdayNames {
		if idx := strings.Index(lower, strings.ToLower(name)); idx >= 0 {
			input = input[:idx] + input[idx+len(name):]
			break
		}
	}

	const cutset = " ,、"
	reduced := Pattern{raw: strings.Trim(buildRaw(kept), cutset), tokens: kept}
	reduced.layout = strings.Trim(buildLayout(kept), cutset)
	reduced.yearFirst = firstDateToken(kept) == tokYear
	reduced.shapeRe, reduced.groups = buildShape(kept)
	return reduced, strings.Trim(input, cutset)
}

// fallbackFormats is the fixed alternate-format sweep: ISO, US, EU, dotted,
// compact, and the CJK composed form.
var fallbackFormats = []string{
	"yyyy-MM-dd",
	"yyyy/MM/dd",
	"yyyy.MM.dd",
	"MM/dd/yyyy",
	"dd/MM/yyyy",
	"dd.MM.yyyy",
	"MM-dd-yyyy",
	"M/d/yyyy",
	"yyyyMMdd",
	"yyyy年M月d日",
}

func buildLayout(tokens []patternToken) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.kind {
		case tokYear:
			if tok.width == 4 {
				b.WriteString("2006")
			} else {
				b.WriteString("06")
			}
		case tokMonth:
			if tok.width == 2 {
				b.WriteString("01")
			} else {
				b.WriteString("1")
			}
		case tokDay:
			if tok.width == 2 {
				b.WriteString("02")
			} else {
				b.WriteString("2")
			}
		case tokWeekday:
			if tok.width == 4 {
				b.WriteString("Monday")
			} else {
				b.WriteString("Mon")
			}
		case tokLiteral:
			b.WriteString(tok.text)
		}
	}
	return b.String()
}

func buildRaw(tokens []patternToken) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.kind {
		case tokYear:
			b.WriteString(strings.Repeat("y", tok.width))
		case tokMonth:
			b.WriteString(strings.Repeat("M", tok.width))
		case tokDay:
			b.WriteString(strings.Repeat("d", tok.width))
		case tokWeekday:
			b.WriteString(strings.Repeat("E", tok.width))
		case tokLiteral:
			b.WriteString(tok.text)
		}
	}
	return b.String()
}

func buildShape(tokens []patternToken) (*regexp.Regexp, []tokenKind) {
	// Adjacent numeric tokens (compact patterns like yyyyMMdd) force exact
	// widths, otherwise the groups would split the digit run greedily.
	compact := false
	prevNumeric := false
	for _, tok := range tokens {
		numeric := tok.kind == tokYear || tok.kind == tokMonth || tok.kind == tokDay
		if numeric && prevNumeric {
			compact = true
		}
		prevNumeric = numeric
	}

	numGroup := func(width int) string {
		if compact || width == 4 {
			return `(\d{` + strconv.Itoa(width) + `})`
		}
		return `(\d{1,2})`
	}

	var b strings.Builder
	var groups []tokenKind
	b.WriteString(`^`)
	for _, tok := range tokens {
		switch tok.kind {
		case tokYear:
			b.WriteString(numGroup(tok.width))
			groups = append(groups, tokYear)
		case tokMonth:
			b.WriteString(numGroup(tok.width))
			groups = append(groups, tokMonth)
		case tokDay:
			b.WriteString(numGroup(tok.width))
			groups = append(groups, tokDay)
		case tokWeekday:
			return nil, nil
		case tokLiteral:
			b.WriteString(regexp.QuoteMeta(tok.text))
		}
	}
	b.WriteString(`$`)
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, nil
	}
	return re, groups
}

func firstDateToken(tokens []patternToken) tokenKind {
	for _, tok := range tokens {
		if tok.kind != tokLiteral && tok.kind != tokWeekday {
			return tok.kind
		}
	}
	return tokLiteral
}

func atoiDigits(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
