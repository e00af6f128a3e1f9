package eulerkit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblems(t *testing.T) {
	names := Problems()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "lychrel_numbers")
	assert.Contains(t, names, "spiral_primes")
	assert.IsIncreasing(t, names)
}

func TestSolve(t *testing.T) {
	answer, err := Solve(t.Context(), "lychrel_numbers")
	require.NoError(t, err)
	assert.Equal(t, "249", answer)
}

func TestSolveUnknownProblem(t *testing.T) {
	_, err := Solve(t.Context(), "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownProblem)
}

func TestSolveWithLogger(t *testing.T) {
	answer, err := Solve(t.Context(), "square_root_convergents", WithLogger(NoopLogger()))
	require.NoError(t, err)
	assert.Equal(t, "153", answer)
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := Solve(ctx, "spiral_primes")
	require.Error(t, err)

	var solveErr *ErrSolveFailed
	assert.ErrorAs(t, err, &solveErr)
	assert.Equal(t, "spiral_primes", solveErr.Problem)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSolveAll(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every solver")
	}

	answers, err := SolveAll(t.Context())
	require.NoError(t, err)
	require.Len(t, answers, len(Problems()))

	expected := map[string]string{
		"convergents_of_e":         "272",
		"lychrel_numbers":          "249",
		"poker":                    "6",
		"powerful_digit_sum":       "972",
		"prime_digit_replacements": "121313",
		"prime_pair_sets":          "26033",
		"spiral_primes":            "26241",
		"square_root_convergents":  "153",
		"xor_decryption":           "13376",
	}
	assert.Equal(t, expected, answers)
}
