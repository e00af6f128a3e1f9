package cfrac

import (
	"fmt"
	"iter"
	"math/big"
)

// Expansion is a simple continued fraction: an integer part followed by a
// finite sequence of positive partial quotients.
type Expansion struct {
	first uint64
	terms []uint64
}

// New returns the expansion [first; terms...].
func New(first uint64, terms []uint64) *Expansion {
	return &Expansion{first: first, terms: terms}
}

// E returns the expansion of Euler's number with at least n partial
// quotients: [2; 1, 2, 1, 1, 4, 1, 1, 6, 1, ...].
func E(n int) *Expansion {
	terms := []uint64{1}
	for k := uint64(1); len(terms) < n; k++ {
		terms = append(terms, k*2, 1, 1)
	}
	return &Expansion{first: 2, terms: terms}
}

// Sqrt2 returns the expansion of the square root of two with n partial
// quotients: [1; 2, 2, 2, ...].
func Sqrt2(n int) *Expansion {
	terms := make([]uint64, n)
	for i := range terms {
		terms[i] = 2
	}
	return &Expansion{first: 1, terms: terms}
}

// Len returns the number of partial quotients.
func (e *Expansion) Len() int {
	return len(e.terms)
}

// Convergent evaluates the index-th convergent by back-substitution.
// Convergent 0 is the integer part alone. It panics if index exceeds the
// number of partial quotients.
func (e *Expansion) Convergent(index int) *big.Rat {
	if index > len(e.terms) {
		panic(fmt.Sprintf("cfrac: convergent %d beyond %d partial quotients", index, len(e.terms)))
	}
	var val *big.Rat
	for i := index - 1; i >= 0; i-- {
		t := new(big.Rat).SetUint64(e.terms[i])
		if val == nil {
			val = t
		} else {
			val = t.Add(t, val.Inv(val))
		}
	}
	result := new(big.Rat).SetUint64(e.first)
	if val != nil {
		result.Add(result, val.Inv(val))
	}
	return result
}

// Convergents iterates every convergent in order, computed incrementally
// through the continuant recurrence, so walking all n convergents costs
// O(n) big-integer operations instead of O(n^2).
func (e *Expansion) Convergents() iter.Seq2[int, *big.Rat] {
	return func(yield func(int, *big.Rat) bool) {
		// h/k follow h_i = a_i*h_(i-1) + h_(i-2), same for k.
		hPrev, h := big.NewInt(1), new(big.Int).SetUint64(e.first)
		kPrev, k := big.NewInt(0), big.NewInt(1)

		if !yield(0, new(big.Rat).SetFrac(h, k)) {
			return
		}
		for i, a := range e.terms {
			term := new(big.Int).SetUint64(a)

			hNext := new(big.Int).Mul(term, h)
			hNext.Add(hNext, hPrev)
			hPrev, h = h, hNext

			kNext := new(big.Int).Mul(term, k)
			kNext.Add(kNext, kPrev)
			kPrev, k = k, kNext

			if !yield(i+1, new(big.Rat).SetFrac(h, k)) {
				return
			}
		}
	}
}
