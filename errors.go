package eulerkit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/eulerkit/problem"
)

var (
	// ErrUnknownProblem is returned when no solver is registered under the
	// requested name.
	ErrUnknownProblem = errors.New("unknown problem")
)

// ErrSolveFailed indicates that a solver ran but could not produce an answer.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSolveFailed struct {
	Problem string
	cause   error
}

func (e *ErrSolveFailed) Error() string {
	return fmt.Sprintf("failed to solve %s: %v", e.Problem, e.cause)
}

func (e *ErrSolveFailed) Unwrap() error { return e.cause }

func translateError(name string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, problem.ErrUnknown) {
		return fmt.Errorf("%w: %w", ErrUnknownProblem, err)
	}

	return &ErrSolveFailed{Problem: name, cause: err}
}
