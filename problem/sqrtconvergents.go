package problem

import (
	"context"
	"strconv"

	"github.com/hupe1980/eulerkit/cfrac"
	"github.com/hupe1980/eulerkit/intmath"
)

// SquareRootConvergents counts how many of the first Count convergents of
// the square root of two have a numerator with more decimal digits than
// their denominator.
type SquareRootConvergents struct {
	Count int
}

// NewSquareRootConvergents returns the solver over the first thousand
// convergents.
func NewSquareRootConvergents() *SquareRootConvergents {
	return &SquareRootConvergents{Count: 1000}
}

func (p *SquareRootConvergents) Name() string { return "square_root_convergents" }

func (p *SquareRootConvergents) Solve(ctx context.Context, env *Context) (string, error) {
	var hits int
	for index, conv := range cfrac.Sqrt2(p.Count).Convergents() {
		if index == 0 {
			continue
		}
		if index > p.Count {
			break
		}
		if intmath.BigDigitCount(conv.Num()) > intmath.BigDigitCount(conv.Denom()) {
			hits++
		}
	}

	return strconv.Itoa(hits), nil
}
