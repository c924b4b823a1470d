// Package selector picks the catalog records that best match a filter
// selection.
//
// Matching runs in two stages. Exact matches must share at least one tag with
// the selection and carry the selected category. When nothing matches
// exactly, the category constraint is dropped and records are matched on tags
// alone. The tag constraint is never relaxed, so a message is only ever
// recommended when it carries a tag the user asked for.
package selector

import (
	"math/rand/v2"

	"github.com/alkime/notices/internal/catalog"
	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/pkg/collections"
)

// MaxResults is the most records a single selection returns.
const MaxResults = 5

// Outcome says which matching stage produced a result.
type Outcome int

const (
	// NoMatch means no record shares a tag with the selection.
	NoMatch Outcome = iota
	// ExactMatch means records matched both tags and category.
	ExactMatch
	// FallbackMatch means records matched tags only.
	FallbackMatch
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case ExactMatch:
		return "exact"
	case FallbackMatch:
		return "fallback"
	case NoMatch:
		return "none"
	default:
		return "unknown"
	}
}

// Result is the outcome of one selection. Records holds at most MaxResults
// distinct records and is empty for NoMatch.
type Result struct {
	Outcome Outcome
	Records []catalog.Record
}

// Rand is the random source used for sampling.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Selector filters and samples catalog records.
type Selector struct {
	rng Rand
}

// New creates a selector. A nil rng uses the process-wide random source, so
// repeated selections with the same criteria may return different samples.
func New(rng Rand) *Selector {
	if rng == nil {
		rng = globalRand{}
	}
	return &Selector{rng: rng}
}

// Select returns up to MaxResults records from cat matching c.
func (s *Selector) Select(cat *catalog.Catalog, c notice.Criteria) Result {
	tagged := collections.Filter(cat.Records(), func(r catalog.Record) bool {
		return r.HasAnyTag(c.Tags)
	})
	if len(tagged) == 0 {
		return Result{Outcome: NoMatch}
	}

	exact := collections.Filter(tagged, func(r catalog.Record) bool {
		return r.Category == c.Category
	})
	if len(exact) > 0 {
		return Result{Outcome: ExactMatch, Records: s.sample(exact, MaxResults)}
	}

	return Result{Outcome: FallbackMatch, Records: s.sample(tagged, MaxResults)}
}

// sample returns min(n, len(pool)) distinct records chosen uniformly at
// random. pool is not modified.
func (s *Selector) sample(pool []catalog.Record, n int) []catalog.Record {
	if len(pool) <= n {
		out := make([]catalog.Record, len(pool))
		copy(out, pool)
		return out
	}

	// partial Fisher-Yates over a copy
	shuffled := make([]catalog.Record, len(pool))
	copy(shuffled, pool)
	for i := range n {
		j := i + s.rng.IntN(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:n]
}
