package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSieve(t *testing.T) {
	tests := []struct {
		name     string
		limit    uint64
		expected []uint64
	}{
		{"Empty", 0, nil},
		{"BelowFirstPrime", 2, nil},
		{"Single", 3, []uint64{2}},
		{"Fourteen", 14, []uint64{2, 3, 5, 7, 11, 13}},
		{"ThirtyTwo", 32, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}},
		{"ExclusiveBound", 13, []uint64{2, 3, 5, 7, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Sieve(tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.limit, s.Limit())
			assert.Equal(t, uint64(len(tt.expected)), s.Cardinality())
			if len(tt.expected) == 0 {
				assert.Empty(t, s.Values())
			} else {
				assert.Equal(t, tt.expected, s.Values())
			}
		})
	}
}

func TestSieveInvalidLimit(t *testing.T) {
	_, err := Sieve(math.MaxUint64)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestSetContains(t *testing.T) {
	s, err := Sieve(100)
	require.NoError(t, err)

	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(97))
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(1))
	assert.False(t, s.Contains(91)) // 7 * 13
	assert.False(t, s.Contains(100))
	assert.False(t, s.Contains(101)) // prime, but beyond the limit
}

func TestSetCountsMatchPrimePi(t *testing.T) {
	tests := []struct {
		limit    uint64
		expected uint64
	}{
		{10, 4},
		{100, 25},
		{1_000, 168},
		{10_000, 1_229},
		{100_000, 9_592},
		{1_000_000, 78_498},
	}

	for _, tt := range tests {
		s, err := Sieve(tt.limit)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, s.Cardinality(), "limit %d", tt.limit)
	}
}

func TestSetAll(t *testing.T) {
	s, err := Sieve(50)
	require.NoError(t, err)

	var got []uint64
	for p := range s.All() {
		got = append(got, p)
	}
	assert.Equal(t, s.Values(), got)

	// Early break must not panic or leak.
	count := 0
	for range s.All() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestSetEqual(t *testing.T) {
	a, err := Sieve(100)
	require.NoError(t, err)
	b, err := Sieve(100)
	require.NoError(t, err)
	c, err := Sieve(101)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSetBinaryRoundTrip(t *testing.T) {
	s, err := Sieve(10_000)
	require.NoError(t, err)

	data, err := s.MarshalBinary()
	require.NoError(t, err)

	var restored Set
	require.NoError(t, restored.UnmarshalBinary(data))

	assert.True(t, s.Equal(&restored))
}

func TestPrimes(t *testing.T) {
	primes, err := Primes(30)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)
}
