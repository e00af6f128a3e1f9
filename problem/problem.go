package problem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ErrUnknown is returned by ByName when no solver is registered under the
// requested name.
var ErrUnknown = errors.New("unknown problem")

// Context carries the environment a solver runs in.
type Context struct {
	name string
	log  *slog.Logger
}

// NewContext returns a solver environment. A nil logger falls back to
// slog.Default.
func NewContext(name string, log *slog.Logger) *Context {
	if log == nil {
		log = slog.Default()
	}
	return &Context{name: name, log: log}
}

// Name returns the name of the problem being solved.
func (c *Context) Name() string { return c.name }

// Logger returns the logger solvers should emit progress and timing to.
func (c *Context) Logger() *slog.Logger { return c.log }

// Problem is a single named puzzle solver producing one deterministic
// answer.
type Problem interface {
	// Name returns the registry name of the problem.
	Name() string
	// Solve computes the answer. ctx carries cancellation for the
	// long-running solvers; env carries the logger.
	Solve(ctx context.Context, env *Context) (string, error)
}

var registry = map[string]func() Problem{
	"convergents_of_e":         func() Problem { return NewConvergentsOfE() },
	"lychrel_numbers":          func() Problem { return NewLychrelNumbers() },
	"poker":                    func() Problem { return NewPoker() },
	"powerful_digit_sum":       func() Problem { return NewPowerfulDigitSum() },
	"prime_digit_replacements": func() Problem { return NewPrimeDigitReplacements() },
	"prime_pair_sets":          func() Problem { return NewPrimePairSets() },
	"spiral_primes":            func() Problem { return NewSpiralPrimes() },
	"square_root_convergents":  func() Problem { return NewSquareRootConvergents() },
	"xor_decryption":           func() Problem { return NewXORDecryption() },
}

// ByName returns a fresh instance of the solver registered under name.
func ByName(name string) (Problem, error) {
	create, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return create(), nil
}

// Names returns all registered solver names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
