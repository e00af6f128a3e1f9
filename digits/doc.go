// Package digits implements decimal digit vector representations of
// non-negative integers, for callers that need digit-level access: indexing,
// replacement, padding, reversal and palindrome testing.
//
// Digits is a fixed-capacity form holding at most 20 digits, enough for any
// 64-bit unsigned value, stored inline with no heap allocation. Big is a
// growable form supporting elementary-school addition for values whose sum
// may exceed the fixed capacity (e.g. iterated reverse-and-add searches).
//
// Supplying a digit of 10 or more, or exceeding the fixed capacity, is a
// caller contract violation and panics. Only value reconstruction overflow
// is a recoverable condition, reported through CheckedValue.
package digits
