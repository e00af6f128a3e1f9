package problem

import (
	"context"
	"strconv"

	"github.com/hupe1980/eulerkit/digits"
)

// LychrelNumbers counts the Lychrel candidates below Limit: values for which
// repeatedly adding the digit reversal does not reach a palindrome within
// MaxIterations steps.
type LychrelNumbers struct {
	Limit         uint64
	MaxIterations int
}

// NewLychrelNumbers returns the solver with the canonical parameters
// (values below 10000, 50 iterations).
func NewLychrelNumbers() *LychrelNumbers {
	return &LychrelNumbers{Limit: 10_000, MaxIterations: 50}
}

func (p *LychrelNumbers) Name() string { return "lychrel_numbers" }

func (p *LychrelNumbers) Solve(ctx context.Context, env *Context) (string, error) {
	count := 0
	for value := uint64(0); value < p.Limit; value++ {
		if IsLychrelCandidate(value, p.MaxIterations) {
			count++
		}
	}
	return strconv.Itoa(count), nil
}

// IsLychrelCandidate reports whether value fails to produce a palindrome
// within maxIterations rounds of n = n + reverse(n).
//
// The sums outgrow a uint64 quickly, so the iteration runs on growable
// digit vectors throughout.
func IsLychrelCandidate(value uint64, maxIterations int) bool {
	d := digits.BigFromValue(value)
	for range maxIterations {
		d.AddAssign(d.Reversed())
		if d.IsPalindrome() {
			return false
		}
	}
	return true
}
