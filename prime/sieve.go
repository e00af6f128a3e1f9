package prime

const (
	// pageWords is the number of uint32 words in a page buffer.
	pageWords = 1 << 16
	// pageBits is the number of odd candidates covered by one page.
	pageBits = pageWords * 32
	// pageSpan is the numeric width of one page (odds only, so two per bit).
	pageSpan = pageBits * 2
)

// Sequence produces the infinite sequence of primes, one at a time, without
// pre-allocating space proportional to the largest prime requested.
//
// Integers are sieved in fixed-width pages covering only odd candidates. Each
// page is sieved against the base primes discovered so far; new base primes
// are pulled from an owned, recursively nested Sequence. The nesting
// terminates naturally because each level only ever needs primes below its
// own page bound.
//
// A Sequence is single-consumer state: it is not safe for concurrent use and
// cannot be rewound. Start a fresh Sequence to restart from 2.
type Sequence struct {
	started bool     // 2 has been emitted
	cursor  uint64   // next unconsumed bit in the current page; 0 means the page needs sieving
	low     uint64   // odd-index offset of the current page
	base    []uint32 // primes whose square falls before the current page bound
	nested  *Sequence
	buf     []uint32

	peeked  uint64
	hasPeek bool
}

// NewSequence returns a sieve positioned before the first prime.
func NewSequence() *Sequence {
	return &Sequence{buf: make([]uint32, pageWords)}
}

// Next returns the next prime. It never fails; each call does bounded work.
func (s *Sequence) Next() uint64 {
	if s.hasPeek {
		s.hasPeek = false
		return s.peeked
	}
	return s.next()
}

// Peek returns the prime the next call to Next will produce, without
// consuming it.
func (s *Sequence) Peek() uint64 {
	if !s.hasPeek {
		s.peeked = s.next()
		s.hasPeek = true
	}
	return s.peeked
}

// Until returns all primes strictly less than limit, consuming them from the
// sequence. The first prime at or beyond limit remains unconsumed.
func (s *Sequence) Until(limit uint64) []uint64 {
	var primes []uint64
	for s.Peek() < limit {
		primes = append(primes, s.Next())
	}
	return primes
}

func (s *Sequence) next() uint64 {
	if !s.started {
		s.started = true
		return 2
	}
	for {
		if s.cursor == 0 {
			s.sievePage()
		}
		bi := s.cursor
		for bi < pageBits && s.buf[bi>>5]&(1<<(bi&31)) != 0 {
			bi++
		}
		if bi < pageBits {
			s.cursor = bi + 1
			return 3 + ((s.low + bi) << 1)
		}
		// Page exhausted; advance and sieve the next one.
		s.cursor = 0
		s.low += pageBits
	}
}

// sievePage marks every odd composite in the current page. Set bits are
// composites; the prime at page-relative bit j has value 3 + 2*(low+j).
func (s *Sequence) sievePage() {
	// Exclusive numeric upper bound of this page.
	bound := 3 + (s.low << 1) + pageSpan

	if s.low == 0 {
		// The very first page has no base primes yet, so it discovers its
		// own: any candidate still unmarked when its square comes due is
		// prime and sieves the rest of the page.
		for i, p := uint64(0), uint64(3); p*p < bound; i, p = i+1, p+2 {
			if s.buf[i>>5]&(1<<(i&31)) == 0 {
				for j := (p*p - 3) >> 1; j < pageBits; j += p {
					s.buf[j>>5] |= 1 << (j & 31)
				}
			}
		}
		return
	}

	clear(s.buf)

	if s.nested == nil {
		s.nested = NewSequence()
	}
	if len(s.base) == 0 {
		// Skip the only even prime; odd-index arithmetic cannot express it.
		if first := s.nested.Next(); first != 2 {
			panic("prime: nested sieve did not start at 2")
		}
		s.base = append(s.base, uint32(s.nested.Next()))
	}

	// Pull base primes until one squares past the page bound.
	for p := uint64(s.base[len(s.base)-1]); p*p < bound; {
		p = s.nested.Next()
		s.base = append(s.base, uint32(p))
	}

	// The last base prime squares past the bound and contributes nothing.
	for _, bp := range s.base[:len(s.base)-1] {
		p := uint64(bp)

		// First composite odd-index position for p is (p*p-3)/2; if that
		// precedes this page, advance to the first multiple of p landing
		// at or after low.
		start := (p*p - 3) >> 1
		var j uint64
		if start >= s.low {
			j = start - s.low
		} else if r := (s.low - start) % p; r != 0 {
			j = p - r
		}

		for ; j < pageBits; j += p {
			s.buf[j>>5] |= 1 << (j & 31)
		}
	}
}
