// Package eulerkit provides a collection of isolated numeric puzzle solvers
// built on a small library of prime sieve and decimal digit arithmetic
// primitives.
//
// Each solver computes a single closed-form answer (a number or short string)
// from a fixed, self-contained problem definition. Solvers are invoked by
// name and are fully deterministic:
//
//	answer, err := eulerkit.Solve(ctx, "lychrel_numbers")
//
// # Core primitives
//
// The reusable pieces live in dedicated subpackages:
//
//   - prime: a bounded sieve of Eratosthenes, an unbounded page-segmented
//     sieve producing primes lazily, an incrementally growing primality
//     membership cache, and deterministic Miller-Rabin for 64-bit inputs.
//   - digits: fixed-capacity and growable decimal digit vectors with
//     elementary-school addition, reversal, padding and palindrome testing.
//   - snapshot: binary persistence of computed prime sets with checksums and
//     selectable block compression.
//   - cfrac, intmath: continued fractions and integer arithmetic helpers.
//
// # Running solvers
//
// Solve runs a single solver; SolveAll runs every registered solver
// concurrently and collects the answers:
//
//	answers, err := eulerkit.SolveAll(ctx, eulerkit.WithLogger(logger))
//
// The cmd/euler command exposes the same surface as a CLI.
package eulerkit
