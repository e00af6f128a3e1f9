package problem

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/hupe1980/eulerkit/digits"
	"github.com/hupe1980/eulerkit/intmath"
	"github.com/hupe1980/eulerkit/prime"
)

// PrimeDigitReplacements finds the smallest member of a prime family
// produced by replacing some of the digits of a Digits-digit prime with
// the same value, where the family holds at least FamilySize primes.
type PrimeDigitReplacements struct {
	Digits     int
	FamilySize int
}

// NewPrimeDigitReplacements returns the solver for six-digit primes and
// eight-member families.
func NewPrimeDigitReplacements() *PrimeDigitReplacements {
	return &PrimeDigitReplacements{Digits: 6, FamilySize: 8}
}

func (p *PrimeDigitReplacements) Name() string { return "prime_digit_replacements" }

func (p *PrimeDigitReplacements) Solve(ctx context.Context, env *Context) (string, error) {
	smallest, family, err := digitReplacementFamily(ctx, p.Digits, p.FamilySize)
	if err != nil {
		return "", err
	}
	env.Logger().Info("found prime family", "smallest", smallest, "family", family)

	return strconv.FormatUint(smallest, 10), nil
}

// digitReplacementFamily scans the primes with exactly boundDigits digits in
// ascending order. For each prime it tries every non-empty proper subset of
// digit positions, rewrites those positions with each value from zero to
// nine, and collects the rewrites that stay prime and keep a nonzero leading
// digit. The first family reaching minimumSize wins; its smallest member is
// returned alongside the full family.
func digitReplacementFamily(ctx context.Context, boundDigits, minimumSize int) (uint64, []uint64, error) {
	if boundDigits < 2 {
		return 0, nil, fmt.Errorf("bound of %d digits leaves no position to replace", boundDigits)
	}
	set, err := prime.Sieve(intmath.Exp10(boundDigits))
	if err != nil {
		return 0, nil, err
	}

	var combos [][]int
	for replaced := 1; replaced < boundDigits; replaced++ {
		combos = append(combos, intmath.Combinations(boundDigits, replaced)...)
	}

	family := make([]uint64, 0, 10)
	for p := range set.All() {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		ds := digits.FromValue(p)
		if ds.Len() < boundDigits {
			continue
		}
		for _, combo := range combos {
			family = family[:0]
			work := ds
			for value := uint8(0); value < 10; value++ {
				for _, index := range combo {
					work.Insert(index, value)
				}
				if work.At(0) == 0 {
					continue
				}
				if candidate := work.Value(); set.Contains(candidate) {
					family = append(family, candidate)
				}
			}
			if len(family) >= minimumSize {
				return slices.Min(family), slices.Clone(family), nil
			}
		}
	}
	return 0, nil, fmt.Errorf("no family of %d primes among %d-digit primes", minimumSize, boundDigits)
}
