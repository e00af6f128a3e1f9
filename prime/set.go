package prime

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ErrInvalidLimit is returned when a requested sieve bound exceeds the
// addressable index range of the platform. It is rejected before any
// allocation takes place.
var ErrInvalidLimit = errors.New("sieve limit exceeds addressable range")

// Set is the set of all primes strictly below a fixed limit.
//
// It wraps a roaring bitmap, so membership tests are cheap and iteration
// yields primes in ascending order. A Set is immutable after construction.
type Set struct {
	bm    *roaring64.Bitmap
	limit uint64
}

// Sieve computes the set of all primes strictly less than limit using the
// classic sieve of Eratosthenes.
//
// A limit of 2 or less yields an empty set. Limits beyond the addressable
// range fail with ErrInvalidLimit.
func Sieve(limit uint64) (*Set, error) {
	if limit > math.MaxInt {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	s := &Set{bm: roaring64.New(), limit: limit}
	if limit <= 2 {
		return s, nil
	}

	// Bit i set means i is composite. Word-packed to keep the scratch
	// allocation at one bit per candidate.
	composite := make([]uint64, (limit+63)/64)
	for i := uint64(2); i*i < limit; i++ {
		if composite[i>>6]&(1<<(i&63)) == 0 {
			for j := i * i; j < limit; j += i {
				composite[j>>6] |= 1 << (j & 63)
			}
		}
	}

	batch := make([]uint64, 0, 4096)
	for i := uint64(2); i < limit; i++ {
		if composite[i>>6]&(1<<(i&63)) == 0 {
			batch = append(batch, i)
			if len(batch) == cap(batch) {
				s.bm.AddMany(batch)
				batch = batch[:0]
			}
		}
	}
	if len(batch) > 0 {
		s.bm.AddMany(batch)
	}
	return s, nil
}

// Primes returns all primes strictly less than limit in ascending order.
//
// It is a convenience wrapper around Sieve.
func Primes(limit uint64) ([]uint64, error) {
	s, err := Sieve(limit)
	if err != nil {
		return nil, err
	}
	return s.Values(), nil
}

// Contains reports whether v is in the set. Values at or beyond Limit are
// never members.
func (s *Set) Contains(v uint64) bool {
	return s.bm.Contains(v)
}

// Limit returns the exclusive upper bound the set was sieved to.
func (s *Set) Limit() uint64 {
	return s.limit
}

// Cardinality returns the number of primes in the set.
func (s *Set) Cardinality() uint64 {
	return s.bm.GetCardinality()
}

// Values materializes the set as a sorted slice.
func (s *Set) Values() []uint64 {
	return s.bm.ToArray()
}

// All returns an iterator over the primes in ascending order.
func (s *Set) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := s.bm.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Equal reports whether two sets have the same limit and members.
func (s *Set) Equal(o *Set) bool {
	return s.limit == o.limit && s.bm.Equals(o.bm)
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The encoding is the little-endian limit followed by the roaring bitmap's
// portable serialization.
func (s *Set) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, s.limit); err != nil {
		return nil, err
	}
	if _, err := s.bm.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Set) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.LittleEndian, &s.limit); err != nil {
		return err
	}
	s.bm = roaring64.New()
	if _, err := s.bm.ReadFrom(buf); err != nil {
		return err
	}
	return nil
}
