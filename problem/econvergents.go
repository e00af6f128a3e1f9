package problem

import (
	"context"
	"strconv"

	"github.com/hupe1980/eulerkit/cfrac"
	"github.com/hupe1980/eulerkit/digits"
)

// ConvergentsOfE sums the numerator digits of a convergent of the continued
// fraction expansion of Euler's number.
type ConvergentsOfE struct {
	// Index selects the convergent, counted from the integer part at 0.
	Index int
}

// NewConvergentsOfE returns the solver for the hundredth convergent.
func NewConvergentsOfE() *ConvergentsOfE {
	return &ConvergentsOfE{Index: 99}
}

func (p *ConvergentsOfE) Name() string { return "convergents_of_e" }

func (p *ConvergentsOfE) Solve(ctx context.Context, env *Context) (string, error) {
	conv := cfrac.E(p.Index).Convergent(p.Index)

	sum := digits.BigFromInt(conv.Num()).Sum()

	return strconv.FormatUint(sum, 10), nil
}
