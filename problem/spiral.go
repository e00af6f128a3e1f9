package problem

import (
	"context"
	"strconv"

	"github.com/hupe1980/eulerkit/prime"
)

// SpiralPrimes finds the side length of the first number spiral whose
// diagonal values are less than one in Ratio primes.
//
// A number spiral is built by writing 1 in the center and spiraling
// outward; the four corners of the ring with odd side length s are
// s*s, s*s-(s-1), s*s-2(s-1) and s*s-3(s-1), which are exactly the
// diagonal values contributed by that ring.
type SpiralPrimes struct {
	// Ratio is the exclusive denominator threshold: the solver stops once
	// fewer than 1/Ratio of the diagonal values are prime.
	Ratio uint64
}

// NewSpiralPrimes returns the solver with the canonical one-in-ten
// threshold.
func NewSpiralPrimes() *SpiralPrimes {
	return &SpiralPrimes{Ratio: 10}
}

func (p *SpiralPrimes) Name() string { return "spiral_primes" }

func (p *SpiralPrimes) Solve(ctx context.Context, env *Context) (string, error) {
	inc := prime.NewIncremental(prime.WithLogger(env.Logger()))

	primes := uint64(0)
	total := uint64(1) // the center 1
	for side := uint64(3); ; side += 2 {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		primes += ringPrimes(inc, side)
		total += 4
		if primes*p.Ratio < total {
			env.Logger().Info("diagonal prime ratio dropped below threshold",
				"side", side,
				"primes", primes,
				"total", total,
			)
			return strconv.FormatUint(side, 10), nil
		}
	}
}

// ringPrimes returns how many diagonal values of the ring with the given
// side length are prime. The largest corner is a perfect square and never
// counts; the other three are tested against the growing membership cache.
func ringPrimes(inc *prime.Incremental, side uint64) uint64 {
	last := side * side
	step := side - 1
	var n uint64
	for i := uint64(1); i <= 3; i++ {
		if inc.Check(last - i*step) {
			n++
		}
	}
	return n
}
