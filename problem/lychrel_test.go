package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLychrelCandidate(t *testing.T) {
	tests := []struct {
		name          string
		value         uint64
		maxIterations int
		expected      bool
	}{
		{"SingleIteration", 47, 1, false},  // 47 + 74 = 121
		{"ThreeIterations", 349, 3, false}, // 349 -> 1292 -> 4213 -> 7337
		{"Famous196", 196, 50, true},
		{"Palindromic4994", 4994, 50, true}, // already palindromic, but never reaches one again
		{"SlowConverger", 10677, 53, false}, // needs 53 iterations to hit a 28-digit palindrome
		{"TooFewIterations", 10677, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLychrelCandidate(tt.value, tt.maxIterations))
		})
	}
}

func TestLychrelNumbersAnswer(t *testing.T) {
	assert.Equal(t, "249", solveAnswer(t, "lychrel_numbers"))
}
