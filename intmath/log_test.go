package intmath

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExp10(t *testing.T) {
	assert.Equal(t, uint64(1), Exp10(0))
	assert.Equal(t, uint64(10), Exp10(1))
	assert.Equal(t, uint64(1_000_000), Exp10(6))
	assert.Equal(t, uint64(10_000_000_000_000_000_000), Exp10(19))

	assert.Panics(t, func() { Exp10(20) })
	assert.Panics(t, func() { Exp10(-1) })
}

func TestFloorLog2(t *testing.T) {
	tests := []struct {
		value    uint64
		expected uint64
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{1023, 9},
		{1024, 10},
		{math.MaxUint64, 63},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FloorLog2(tt.value), "value %d", tt.value)
	}
	assert.Panics(t, func() { FloorLog2(0) })
}

func TestCeilLog2(t *testing.T) {
	tests := []struct {
		value    uint64
		expected uint64
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{1024, 10},
		{1025, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CeilLog2(tt.value), "value %d", tt.value)
	}
	assert.Panics(t, func() { CeilLog2(0) })
}

func TestFloorLog10(t *testing.T) {
	tests := []struct {
		value    uint64
		expected uint64
	}{
		{1, 0},
		{9, 0},
		{10, 1},
		{99, 1},
		{100, 2},
		{999_999, 5},
		{1_000_000, 6},
		{math.MaxUint64, 19},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FloorLog10(tt.value), "value %d", tt.value)
	}
	assert.Panics(t, func() { FloorLog10(0) })
}

func TestCeilLog10(t *testing.T) {
	tests := []struct {
		value    uint64
		expected uint64
	}{
		{1, 0},
		{2, 1},
		{9, 1},
		{10, 1},
		{11, 2},
		{100, 2},
		{101, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CeilLog10(tt.value), "value %d", tt.value)
	}
	assert.Panics(t, func() { CeilLog10(0) })
}

func TestFloorLog10MatchesPowers(t *testing.T) {
	// Exhaustive around every power-of-ten boundary.
	for exp := 1; exp <= 19; exp++ {
		p := Exp10(exp)
		assert.Equal(t, uint64(exp-1), FloorLog10(p-1), "below 10^%d", exp)
		assert.Equal(t, uint64(exp), FloorLog10(p), "at 10^%d", exp)
	}
}

func TestDigitCount(t *testing.T) {
	tests := []struct {
		value    uint64
		expected uint64
	}{
		{0, 1},
		{5, 1},
		{9, 1},
		{10, 2},
		{12345, 5},
		{math.MaxUint64, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DigitCount(tt.value), "value %d", tt.value)
	}
}

func TestBigDigitCount(t *testing.T) {
	tests := []struct {
		value    *big.Int
		expected int
	}{
		{big.NewInt(0), 1},
		{big.NewInt(7), 1},
		{big.NewInt(-42), 2},
		{big.NewInt(1_000_000), 7},
		{new(big.Int).Exp(big.NewInt(10), big.NewInt(100), nil), 101},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BigDigitCount(tt.value), "value %s", tt.value)
	}
}
