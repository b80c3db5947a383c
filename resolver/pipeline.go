package resolver

import (
	"log/slog"
	"strings"
	"time"

	"github.com/hrygo/smartdate/locale"
)

// unresolvedReason is the only caller-visible error text, surfaced in strict
// mode only.
const unresolvedReason = "Invalid date format"

// Resolver is the strategy pipeline. It is synchronous and stateless across
// calls: every resolve is a pure computation over its arguments, the
// immutable locale tables, and a single "now" sample taken at entry.
type Resolver struct {
	now func() time.Time
	loc *time.Location
}

// New creates a resolver anchored on the local clock.
func New() *Resolver {
	return &Resolver{now: time.Now, loc: time.Local}
}

// WithClock returns a resolver using the given clock. Used by callers that
// need deterministic anchoring, and by tests.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	return &Resolver{now: now, loc: r.loc}
}

// WithLocation returns a resolver producing dates in the given location.
func (r *Resolver) WithLocation(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{now: r.now, loc: loc}
}

// stage is one self-contained parsing attempt. Stages either produce a
// definite date or decline; the slice order below is the fixed priority
// order and is total and deterministic for a given request.
type stage struct {
	id      StrategyID
	enabled func(*request) bool
	run     func(*Resolver, *request) (time.Time, bool)
}

func naturalEnabled(req *request) bool  { return req.opts.EnableNaturalLanguage }
func relativeEnabled(req *request) bool { return req.opts.EnableRelativeDate }

// Numeric input sits ahead of the language matchers on purpose: digit
// strings are unambiguous once the target format's shape is known, while the
// substring scans below could misfire against them.
var stages = []stage{
	{id: StrategyStandardFormat, run: (*Resolver).runStandardFormat},
	{
		id:      StrategyFormatCorrected,
		enabled: func(req *request) bool { return req.opts.EnableSmartCorrection },
		run:     (*Resolver).runFormatCorrected,
	},
	{
		id:      StrategyCompositeFormat,
		enabled: func(req *request) bool { return req.pattern.hasWeekday },
		run:     (*Resolver).runCompositeFormat,
	},
	{id: StrategyNumeric, run: (*Resolver).runNumeric},
	{id: StrategyShortcut, enabled: naturalEnabled, run: (*Resolver).runShortcut},
	{id: StrategyRelative, enabled: relativeEnabled, run: (*Resolver).runRelative},
	{id: StrategyNatural, enabled: naturalEnabled, run: (*Resolver).runNatural},
	// Legacy priority slot for verbal offsets like "3天后"; points at the
	// same matcher as the relative stage and is idempotent to call twice.
	{id: StrategyRelativeLegacy, enabled: relativeEnabled, run: (*Resolver).runRelative},
	{id: StrategyTextual, enabled: naturalEnabled, run: (*Resolver).runTextual},
	{id: StrategyFallbackSweep, run: (*Resolver).runFallbackSweep},
}

// Resolve runs the strategy pipeline over raw input. Empty input after
// trimming is the only input-shape short-circuit; otherwise every stage is
// tried in priority order and the first definite date wins. The pipeline
// itself never raises: a panicking stage is treated as declining.
func (r *Resolver) Resolve(input string, opts Options) Outcome {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return unresolved(opts)
	}

	req := &request{
		input:   trimmed,
		opts:    opts,
		pattern: CompilePattern(opts.Format),
		rec:     locale.Lookup(opts.Locale),
		now:     r.now().In(r.loc),
	}

	for i := range stages {
		st := &stages[i]
		if st.enabled != nil && !st.enabled(req) {
			continue
		}
		if date, ok := r.runStage(st, req); ok {
			date = startOfDay(date)
			return Outcome{
				Resolved:  true,
				Date:      date,
				Formatted: req.pattern.Format(date),
				Strategy:  st.id,
			}
		}
	}

	return unresolved(opts)
}

func (r *Resolver) runStage(st *stage, req *request) (date time.Time, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Debug("resolver stage panicked, treating as decline",
				"strategy", string(st.id), "panic", rec)
			date, ok = time.Time{}, false
		}
	}()
	return st.run(r, req)
}

func unresolved(opts Options) Outcome {
	out := Outcome{Resolved: false}
	if opts.Strict {
		out.Reason = unresolvedReason
	}
	return out
}

func (r *Resolver) runStandardFormat(req *request) (time.Time, bool) {
	return req.pattern.ParseStrict(req.input, r.loc)
}

func (r *Resolver) runFormatCorrected(req *request) (time.Time, bool) {
	c, ok := req.pattern.MatchShape(req.input, req.now)
	if !ok {
		return time.Time{}, false
	}
	corrected := Correct(c.Year, c.Month, c.Day)
	return corrected.Date(r.loc), true
}

func (r *Resolver) runCompositeFormat(req *request) (time.Time, bool) {
	reduced, remainder := req.pattern.StripWeekday(req.input, req.rec.WeekdayNames)
	if remainder == "" {
		return time.Time{}, false
	}
	return reduced.ParseStrict(remainder, r.loc)
}

func (r *Resolver) runNumeric(req *request) (time.Time, bool) {
	if !isAllDigits(req.input) {
		return time.Time{}, false
	}
	c, ok := decodeNumeric(req.input, req.pattern.YearFirst(), req.now, req.opts.EnableSmartCorrection)
	if !ok {
		return time.Time{}, false
	}
	return c.Date(r.loc), true
}

func (r *Resolver) runShortcut(req *request) (time.Time, bool) {
	return matchShortcut(req.input, req.rec, req.now)
}

func (r *Resolver) runRelative(req *request) (time.Time, bool) {
	return matchRelative(req.input, req.now)
}

func (r *Resolver) runNatural(req *request) (time.Time, bool) {
	return matchNaturalLanguage(req.input, req.rec, req.now)
}

func (r *Resolver) runTextual(req *request) (time.Time, bool) {
	c, ok := matchTextualDate(req.input, req.rec, req.now)
	if !ok {
		return time.Time{}, false
	}
	if req.opts.EnableSmartCorrection {
		return Correct(c.Year, c.Month, c.Day).Date(r.loc), true
	}
	if !validDate(c.Year, c.Month, c.Day) {
		return time.Time{}, false
	}
	return c.Date(r.loc), true
}

func (r *Resolver) runFallbackSweep(req *request) (time.Time, bool) {
	for _, f := range fallbackFormats {
		if f == req.pattern.Raw() {
			continue
		}
		if t, ok := CompilePattern(f).ParseStrict(req.input, r.loc); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

var defaultResolver = New()

// Resolve is the package-level entry point over a process-wide resolver with
// the local clock.
func Resolve(input string, opts Options) Outcome {
	return defaultResolver.Resolve(input, opts)
}
