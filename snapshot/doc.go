// Package snapshot persists computed prime sets in a compact binary format.
//
// Recomputing a large bounded sieve is cheap but not free; solvers that are
// run repeatedly can save the sieved set once and reload it instead. A
// snapshot is a fixed header (magic, version, limit, sizes, CRC32 of the
// stored payload) followed by the set's serialized bitmap, optionally
// block-compressed with LZ4 (fast) or zstd (better ratio). Incompressible
// payloads are stored raw regardless of the requested compression.
package snapshot
