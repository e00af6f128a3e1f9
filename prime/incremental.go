package prime

import (
	"context"
	"log/slog"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// growthMargin is added to an out-of-range queried value before expansion so
// that a run of slowly increasing queries does not trigger an expansion each.
const growthMargin = 1000

// Incremental answers primality queries over a monotonically growing domain.
//
// Queries below the current limit are plain bitmap lookups. A query at or
// beyond the limit first grows the backing set by pulling primes from an
// owned Sequence, doubling the bound so the number of expansions stays
// logarithmic in the largest value ever queried.
//
// An Incremental exclusively owns its bitmap and sieve; it is not safe for
// concurrent use.
type Incremental struct {
	set   *roaring64.Bitmap
	limit uint64
	seq   *Sequence
	log   *slog.Logger
}

// IncrementalOption configures an Incremental.
type IncrementalOption func(*Incremental)

// WithLogger sets the logger used for debug-level expansion timing. The
// default is slog.Default.
func WithLogger(log *slog.Logger) IncrementalOption {
	return func(inc *Incremental) {
		if log != nil {
			inc.log = log
		}
	}
}

// NewIncremental returns an empty membership cache. The first query triggers
// the first expansion.
func NewIncremental(optFns ...IncrementalOption) *Incremental {
	inc := &Incremental{
		set: roaring64.New(),
		seq: NewSequence(),
		log: slog.Default(),
	}
	for _, fn := range optFns {
		fn(inc)
	}
	return inc
}

// NewIncrementalWithLimit returns a membership cache pre-expanded to limit.
func NewIncrementalWithLimit(limit uint64, optFns ...IncrementalOption) *Incremental {
	inc := NewIncremental(optFns...)
	inc.Expand(limit)
	return inc
}

// Limit returns the exclusive bound below which Contains answers without
// touching the sieve.
func (inc *Incremental) Limit() uint64 {
	return inc.limit
}

// Contains reports whether v is a recorded prime. The caller must ensure
// v < Limit(); use Check for queries of unknown magnitude.
func (inc *Incremental) Contains(v uint64) bool {
	if v >= inc.limit {
		panic("prime: membership query beyond cache limit")
	}
	return inc.set.Contains(v)
}

// Check reports whether value is prime, expanding the cache first if value
// lies beyond the current limit.
func (inc *Incremental) Check(value uint64) bool {
	if value >= inc.limit {
		inc.Expand(max(value+growthMargin, 2*inc.limit))
	}
	return inc.set.Contains(value)
}

// Expand grows the cache so that every prime below limit is recorded. It is
// a no-op if the cache already covers limit.
//
// Primes are consumed from the owned sequence through a peek, so a prime at
// or beyond limit is left in place for the next expansion rather than lost.
func (inc *Incremental) Expand(limit uint64) {
	if limit <= inc.limit {
		return
	}
	oldLimit := inc.limit
	start := time.Now()

	var count uint64
	for inc.seq.Peek() < limit {
		inc.set.Add(inc.seq.Next())
		count++
	}
	inc.limit = limit

	if inc.log.Enabled(context.Background(), slog.LevelDebug) {
		inc.log.Debug("expanded prime set",
			"old_limit", oldLimit,
			"new_limit", limit,
			"found", count,
			"elapsed", time.Since(start),
		)
	}
}
