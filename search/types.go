package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/valveflow/internal/logging"
	"github.com/katalvlaran/valveflow/internal/observability"
)

// Sentinel errors for the search driver.
var (
	// ErrNilProblem is returned when no problem is supplied.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrInvalidState is returned by SolveFrom when the root state does not
	// carry one action per agent.
	ErrInvalidState = errors.New("search: state does not match problem")

	// ErrNoSolution is returned when the search finishes without reaching a
	// single terminal state.
	ErrNoSolution = errors.New("search: no terminal state reached")

	// ErrDisjointAgents is returned by SolveDisjoint for agent counts other than two.
	ErrDisjointAgents = errors.New("search: disjoint method requires exactly two agents")

	// ErrDisjointForced is returned by SolveDisjoint for forced problems: the
	// subset table assumes every agent may stop at any idle point.
	ErrDisjointForced = errors.New("search: disjoint method requires agents that may stand down")

	// ErrUnknownMethod is returned by ParseMethod and Run for unsupported methods.
	ErrUnknownMethod = errors.New("search: unknown method")
)

// checkEvery is the pop interval between context checks (power of two).
const checkEvery = 1024

// Result reports the best reward and the work done to find it.
type Result struct {
	// Reward is the best total release over every terminal state.
	Reward int

	// Expanded counts states popped from the stack.
	Expanded int64

	// Pruned counts states discarded by the upper bound.
	Pruned int64

	// Terminals counts terminal states evaluated.
	Terminals int64

	// Method is the algorithm that produced the result.
	Method Method
}

// Options configures a search run.
type Options struct {
	// Ctx is checked every checkEvery pops. Nil means context.Background().
	Ctx context.Context

	// Prune enables upper-bound pruning (joint search only). Default true.
	Prune bool

	// Logger receives start/finish records. Without WithLogger it is the
	// logger stored on Ctx (logging.FromContext), else logging.Noop().
	Logger logging.Logger

	// Collector receives per-run metrics. Nil records nothing.
	Collector *observability.SearchCollector
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults applied before any Option.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Prune:  true,
		Logger: logging.Noop(),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPruning toggles upper-bound pruning.
func WithPruning(enabled bool) Option {
	return func(o *Options) { o.Prune = enabled }
}

// WithLogger routes search logs to l. A nil l is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCollector records run metrics on c.
func WithCollector(c *observability.SearchCollector) Option {
	return func(o *Options) { o.Collector = c }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	o.Logger = nil
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = logging.FromContext(o.Ctx)
	}

	return o
}
