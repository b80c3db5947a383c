package resolver

import (
	"strings"

	"github.com/hrygo/smartdate/cache"
)

// CachedResolver fronts a Resolver with a bounded result cache. Only the
// resolved date and winning strategy are memoized; the formatted string and
// the strict-mode reason are re-derived per call, so a cached hit is
// indistinguishable from a fresh resolve.
type CachedResolver struct {
	resolver *Resolver
	store    *cache.Store
}

// NewCached wraps a resolver with a cache store. A nil store means
// pass-through.
func NewCached(r *Resolver, store *cache.Store) *CachedResolver {
	return &CachedResolver{resolver: r, store: store}
}

// Resolve is the cache-fronted resolve path.
func (c *CachedResolver) Resolve(input string, opts Options) Outcome {
	trimmed := strings.TrimSpace(input)
	if c.store == nil || trimmed == "" {
		return c.resolver.Resolve(input, opts)
	}

	key := cache.Key{
		Input:  trimmed,
		Format: opts.Format,
		Locale: string(opts.Locale),

		NaturalLanguage: opts.EnableNaturalLanguage,
		RelativeDate:    opts.EnableRelativeDate,
		SmartCorrection: opts.EnableSmartCorrection,
	}
	v := c.store.GetOrCompute(key, func() cache.Value {
		out := c.resolver.Resolve(trimmed, opts)
		return cache.Value{Resolved: out.Resolved, Date: out.Date, Strategy: string(out.Strategy)}
	})

	if !v.Resolved {
		return unresolved(opts)
	}
	return Outcome{
		Resolved:  true,
		Date:      v.Date,
		Formatted: CompilePattern(opts.Format).Format(v.Date),
		Strategy:  StrategyID(v.Strategy),
	}
}
