// Package problem defines the solver interface and the registry of named
// puzzle solvers.
//
// Every solver is an isolated unit: it reads only its own embedded constant
// data, shares no state with other solvers, and deterministically produces a
// single short answer. Solvers are looked up by name through ByName and
// receive a Context carrying the problem name and a logger.
package problem
