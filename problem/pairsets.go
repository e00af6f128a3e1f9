package problem

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hupe1980/eulerkit/intmath"
	"github.com/hupe1980/eulerkit/prime"
)

// PrimePairSets finds Size primes below Limit such that concatenating any
// two of them, in either order, yields another prime, minimizing the sum of
// the set.
type PrimePairSets struct {
	Size  int
	Limit uint64
}

// NewPrimePairSets returns the solver for five primes below ten thousand.
func NewPrimePairSets() *PrimePairSets {
	return &PrimePairSets{Size: 5, Limit: 10000}
}

func (p *PrimePairSets) Name() string { return "prime_pair_sets" }

func (p *PrimePairSets) Solve(ctx context.Context, env *Context) (string, error) {
	sum, set, err := minimumPairSum(ctx, p.Size, p.Limit)
	if err != nil {
		return "", err
	}
	env.Logger().Info("found concatenation-closed prime set", "sum", sum, "set", set)

	return strconv.FormatUint(sum, 10), nil
}

// concatPrimes reports whether gluing a and b together decimally, in both
// orders, produces primes.
func concatPrimes(a, b uint64) bool {
	return prime.IsPrime(a*intmath.Exp10(int(intmath.DigitCount(b)))+b) &&
		prime.IsPrime(b*intmath.Exp10(int(intmath.DigitCount(a)))+a)
}

// minimumPairSum searches for the size-element set of primes below limit
// whose members all concatenate pairwise into primes, returning the
// minimal-sum set.
//
// The primes form a graph with an edge wherever two of them concatenate
// both ways into primes; a valid set is a clique. Cliques are grown in
// ascending order, extending each member only with larger compatible
// primes, and branches whose partial sum already exceeds the best complete
// set are cut.
func minimumPairSum(ctx context.Context, size int, limit uint64) (uint64, []uint64, error) {
	if size < 2 {
		return 0, nil, fmt.Errorf("set size %d below the minimum of 2", size)
	}
	set, err := prime.Sieve(limit)
	if err != nil {
		return 0, nil, err
	}
	primes := set.Values()

	// neighbors[i] holds the indexes j > i compatible with primes[i].
	neighbors := make([][]int, len(primes))
	for i := range primes {
		for j := i + 1; j < len(primes); j++ {
			if concatPrimes(primes[i], primes[j]) {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}

	const noSum = ^uint64(0)
	bestSum := noSum
	var bestSet []uint64

	clique := make([]int, 0, size)
	var sum uint64

	var extend func(candidates []int) error
	extend = func(candidates []int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(clique) == size {
			if sum < bestSum {
				bestSum = sum
				bestSet = make([]uint64, size)
				for i, idx := range clique {
					bestSet[i] = primes[idx]
				}
			}
			return nil
		}
		for _, idx := range candidates {
			p := primes[idx]
			// Every remaining member is at least as large as this candidate.
			if sum+p*uint64(size-len(clique)) >= bestSum {
				return nil
			}
			clique = append(clique, idx)
			sum += p
			if err := extend(intersect(candidates, neighbors[idx])); err != nil {
				return err
			}
			clique = clique[:len(clique)-1]
			sum -= p
		}
		return nil
	}

	all := make([]int, len(primes))
	for i := range all {
		all[i] = i
	}
	if err := extend(all); err != nil {
		return 0, nil, err
	}
	if bestSum == noSum {
		return 0, nil, fmt.Errorf("no set of %d pairwise-concatenating primes below %d", size, limit)
	}
	return bestSum, bestSet, nil
}

// intersect returns the values present in both ascending index slices.
func intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
