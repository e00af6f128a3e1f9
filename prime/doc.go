// Package prime implements prime number generation and primality testing.
//
// Three producers cover the common access patterns:
//
//   - Sieve computes every prime below a fixed bound up front and returns a
//     Set supporting O(1)-style membership tests and iteration.
//   - Sequence produces the infinite sequence of primes lazily, one at a
//     time, using an odds-only page-segmented sieve whose memory use is
//     independent of the largest prime requested.
//   - Incremental wraps a Sequence behind a membership cache that grows its
//     bound on demand, for callers that test primality of values of unknown
//     magnitude.
//
// IsPrime answers one-off queries with a deterministic Miller-Rabin test
// valid for all 64-bit inputs.
package prime
