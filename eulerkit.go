package eulerkit

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/eulerkit/problem"
)

// Solve runs the solver registered under name and returns its answer.
//
// The returned error is ErrUnknownProblem if no solver is registered under
// name, or an *ErrSolveFailed wrapping the solver's own error otherwise.
func Solve(ctx context.Context, name string, optFns ...Option) (string, error) {
	o := applyOptions(optFns...)

	p, err := problem.ByName(name)
	if err != nil {
		return "", translateError(name, err)
	}

	env := problem.NewContext(name, o.logger.WithProblem(name).Logger)

	answer, err := p.Solve(ctx, env)
	if err != nil {
		return "", translateError(name, err)
	}
	return answer, nil
}

// SolveAll runs every registered solver concurrently and returns a map from
// problem name to answer.
//
// The first solver error cancels the remaining solvers and is returned.
func SolveAll(ctx context.Context, optFns ...Option) (map[string]string, error) {
	o := applyOptions(optFns...)

	var mu sync.Mutex
	answers := make(map[string]string)

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range problem.Names() {
		g.Go(func() error {
			p, err := problem.ByName(name)
			if err != nil {
				return translateError(name, err)
			}
			env := problem.NewContext(name, o.logger.WithProblem(name).Logger)
			answer, err := p.Solve(ctx, env)
			if err != nil {
				return translateError(name, err)
			}
			mu.Lock()
			answers[name] = answer
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return answers, nil
}

// Problems returns the names of all registered solvers in sorted order.
func Problems() []string {
	return problem.Names()
}
