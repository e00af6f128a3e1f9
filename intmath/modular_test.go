package intmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulMod(t *testing.T) {
	tests := []struct {
		name     string
		a, b, m  uint64
		expected uint64
	}{
		{"Small", 7, 8, 5, 1},
		{"ZeroOperand", 0, 12345, 97, 0},
		{"ModulusOne", 42, 99, 1, 0},
		{"NoOverflow", 1 << 20, 1 << 20, 1<<40 + 1, 1 << 40},
		{"FullWidth", 1<<63 - 1, 1<<63 - 5, 1<<61 - 1, 2_305_843_009_213_693_948},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MulMod(tt.a, tt.b, tt.m)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMulModMatchesNaive(t *testing.T) {
	// Exhaustive against plain arithmetic in the overflow-free range.
	for a := uint64(0); a < 50; a++ {
		for b := uint64(0); b < 50; b++ {
			for m := uint64(1); m < 20; m++ {
				assert.Equal(t, a*b%m, MulMod(a, b, m), "a=%d b=%d m=%d", a, b, m)
			}
		}
	}
}

func TestModPow(t *testing.T) {
	tests := []struct {
		name                     string
		base, exponent, modulus  uint64
		expected                 uint64
	}{
		{"Identity", 5, 1, 1000, 5},
		{"ZeroExponent", 5, 0, 1000, 1},
		{"ZeroBase", 0, 10, 7, 0},
		{"ModulusOne", 10, 10, 1, 0},
		{"Fermat", 3, 100, 101, 1},
		{"Large", 2, 64, 1_000_000_007, 582_344_008},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ModPow(tt.base, tt.exponent, tt.modulus)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestModPowZeroModulusPanics(t *testing.T) {
	assert.Panics(t, func() {
		ModPow(2, 10, 0)
	})
}
