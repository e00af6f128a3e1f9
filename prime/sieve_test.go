package prime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceFirstPrimes(t *testing.T) {
	seq := NewSequence()

	expected := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}
	for _, want := range expected {
		assert.Equal(t, want, seq.Next())
	}
}

func TestSequencePeek(t *testing.T) {
	seq := NewSequence()

	assert.Equal(t, uint64(2), seq.Peek())
	assert.Equal(t, uint64(2), seq.Peek(), "peek must not consume")
	assert.Equal(t, uint64(2), seq.Next())
	assert.Equal(t, uint64(3), seq.Peek())
	assert.Equal(t, uint64(3), seq.Next())
	assert.Equal(t, uint64(5), seq.Next())
}

func TestSequenceUntil(t *testing.T) {
	seq := NewSequence()

	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13}, seq.Until(14))
	// The first prime past the bound stays in place for the next call.
	assert.Equal(t, []uint64{17, 19, 23, 29, 31}, seq.Until(32))
	assert.Empty(t, seq.Until(32))
	assert.Equal(t, uint64(37), seq.Next())
}

func TestSequenceMatchesBoundedSieve(t *testing.T) {
	const limit = 1_000_000

	want, err := Primes(limit)
	require.NoError(t, err)

	seq := NewSequence()
	got := seq.Until(limit)

	require.Equal(t, len(want), len(got))
	assert.Equal(t, want, got)
}

func TestSequenceCrossesPageBoundaries(t *testing.T) {
	// Walk well past the first page and verify primality independently.
	seq := NewSequence()

	var last uint64
	for range 350_000 {
		last = seq.Next()
	}
	assert.Greater(t, last, uint64(pageSpan))
	assert.True(t, IsPrime(last))

	// The 350000th prime.
	assert.Equal(t, uint64(5_023_307), last)
}

func TestSequenceIndependentInstances(t *testing.T) {
	a := NewSequence()
	b := NewSequence()

	a.Until(1000)
	assert.Equal(t, uint64(2), b.Next(), "sequences must not share state")
}
