// Package cfrac evaluates simple continued fractions over exact big
// rationals, with ready-made expansions for e and the square root of two.
package cfrac
