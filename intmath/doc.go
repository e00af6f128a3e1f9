// Package intmath provides integer arithmetic helpers shared by the solvers:
// overflow-free modular arithmetic, integer base-2 and base-10 logarithms,
// decimal digit counting, and small combinatorics (cartesian powers,
// k-permutations, index combinations).
package intmath
