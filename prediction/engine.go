// Package prediction produces live previews for date input while the user is
// still typing: a formatted candidate, a short human description, and a
// heuristic confidence score.
package prediction

import (
	"fmt"
	"strings"
	"time"

	"github.com/hrygo/smartdate/resolver"
)

// Kind classifies the input shape a prediction came from. The kind is
// decided by shape inspection alone, independent of which pipeline stage
// actually matched.
type Kind string

const (
	KindNumeric  Kind = "numeric"
	KindShortcut Kind = "shortcut"
	KindRelative Kind = "relative"
	KindParsed   Kind = "parsed"
)

// Result is one live preview. It is derived, never persisted, and
// recomputed on every keystroke.
type Result struct {
	Formatted   string  `json:"formatted"`
	Description string  `json:"description"`
	Confidence  float32 `json:"confidence"`
	Kind        Kind    `json:"kind"`
}

// Engine reuses the resolve pipeline to produce predictions.
type Engine struct {
	resolver *resolver.Resolver
	now      func() time.Time
}

// NewEngine creates a prediction engine over the given resolver.
func NewEngine(r *resolver.Resolver) *Engine {
	if r == nil {
		r = resolver.New()
	}
	return &Engine{resolver: r, now: time.Now}
}

// WithClock returns an engine with a fixed clock, for deterministic callers.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	return &Engine{resolver: e.resolver.WithClock(now), now: now}
}

// Predict resolves the partial input against the target format and, on
// success, attaches a description and a shape-keyed confidence.
func (e *Engine) Predict(input, format string) (*Result, bool) {
	opts := resolver.DefaultOptions()
	if format != "" {
		opts.Format = format
	}

	out := e.resolver.Resolve(input, opts)
	if !out.Resolved {
		return nil, false
	}

	kind, confidence := classify(strings.TrimSpace(input))
	return &Result{
		Formatted:   out.Formatted,
		Description: describe(out.Date, e.now()),
		Confidence:  confidence,
		Kind:        kind,
	}, true
}

// classify keys the confidence heuristic on input shape: shortcuts are a
// sure thing, digit strings rank by how much of the date they pin down,
// punctuated text is a parsed date, everything else gets the floor.
func classify(input string) (Kind, float32) {
	if resolver.IsShortcutToken(input) {
		return KindShortcut, 1.0
	}
	if resolver.IsRelativeOffset(input) {
		return KindRelative, 0.7
	}
	if isDigits(input) {
		switch len(input) {
		case 8:
			return KindNumeric, 0.95
		case 6:
			return KindNumeric, 0.9
		case 4:
			return KindNumeric, 0.85
		case 3:
			return KindNumeric, 0.8
		case 2:
			return KindNumeric, 0.75
		case 1:
			return KindNumeric, 0.6
		default:
			return KindNumeric, 0.7
		}
	}
	if strings.ContainsAny(input, "-/. ,年月日") {
		return KindParsed, 0.8
	}
	return KindParsed, 0.7
}

// describe renders a short, deliberately locale-insensitive phrase.
func describe(date, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	diff := int(date.Sub(today).Hours() / 24)

	switch {
	case diff == 0:
		return "today"
	case diff == 1:
		return "tomorrow"
	case diff == -1:
		return "yesterday"
	case diff > 1 && diff <= 60:
		return fmt.Sprintf("%d days from now", diff)
	case diff < -1 && diff >= -60:
		return fmt.Sprintf("%d days ago", -diff)
	default:
		return fmt.Sprintf("%d年%d月%d日", date.Year(), int(date.Month()), date.Day())
	}
}

func isDigits(s string) bool {
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
