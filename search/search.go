package search

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/valveflow/internal/logging"
	"github.com/katalvlaran/valveflow/internal/observability"
	"github.com/katalvlaran/valveflow/schedule"
)

const tracerName = "github.com/katalvlaran/valveflow/search"

// Solve returns the best reward over every schedule of p, starting from
// p.Initial().
//
// Errors: ErrNilProblem, ErrNoSolution, ctx.Err() on cancellation, or a
// *schedule.InvariantError if the transition code detects a broken state.
//
// Complexity: exponential in the number of rated valves in the worst case;
// memory O(depth·branching) for the explicit stack.
func Solve(p *schedule.Problem, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}

	return SolveFrom(p, p.Initial(), opts...)
}

// SolveFrom is Solve rooted at an arbitrary state s of p.
func SolveFrom(p *schedule.Problem, s schedule.State, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if len(s.Actions) != p.Agents() {
		return Result{}, fmt.Errorf("%w: %d actions for %d agents", ErrInvalidState, len(s.Actions), p.Agents())
	}
	o := buildOptions(opts)

	return instrument(o, p, Joint, func(ctx context.Context) (Result, error) {
		e := &engine{p: p, ctx: ctx, prune: o.Prune, best: -1}
		err := e.run(s)

		return e.res, err
	})
}

// engine holds the mutable state of one depth-first search.
type engine struct {
	p     *schedule.Problem
	ctx   context.Context
	prune bool

	best  int // best terminal reward so far; -1 before the first terminal
	res   Result
	stack []schedule.State
}

// run explores every state reachable from root with an explicit stack.
// Successors are pushed in reverse so the first choice is explored first.
func (e *engine) run(root schedule.State) (err error) {
	defer recoverInvariant(&err)

	e.stack = append(e.stack[:0], root)
	for len(e.stack) > 0 {
		if e.res.Expanded&(checkEvery-1) == 0 {
			if err = e.ctx.Err(); err != nil {
				return err
			}
		}
		top := len(e.stack) - 1
		s := e.stack[top]
		e.stack = e.stack[:top]
		e.res.Expanded++

		if e.p.Terminal(s) {
			e.res.Terminals++
			if s.Released > e.best {
				e.best = s.Released
			}
			continue
		}
		if e.prune && e.p.Bound(s) <= e.best {
			e.res.Pruned++
			continue
		}

		next := e.p.Successors(s)
		for i := len(next) - 1; i >= 0; i-- {
			e.stack = append(e.stack, next[i])
		}
	}

	if e.res.Terminals == 0 {
		return ErrNoSolution
	}
	e.res.Reward = e.best

	return nil
}

// recoverInvariant turns a *schedule.InvariantError panic into *err.
// Any other panic is re-raised.
func recoverInvariant(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*schedule.InvariantError); ok {
		*err = ie
		return
	}
	panic(r)
}

// instrument wraps one search run with a span, log records and metrics.
func instrument(o Options, p *schedule.Problem, m Method, fn func(ctx context.Context) (Result, error)) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(o.Ctx, "search.Solve"+spanSuffix(m),
		trace.WithAttributes(
			attribute.Int("agents", p.Agents()),
			attribute.Int("max_time", p.MaxTime()),
			attribute.String("method", m.String()),
		))
	defer span.End()

	log := o.Logger.With(logging.String("method", m.String()))
	log.Debug(ctx, "search started",
		logging.Int("agents", p.Agents()),
		logging.Int("max_time", p.MaxTime()),
		logging.Int("targets", p.Targets()),
		logging.Bool("prune", o.Prune),
	)

	start := time.Now()
	res, err := fn(ctx)
	elapsed := time.Since(start)
	res.Method = m

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn(ctx, "search failed", logging.Err(err), logging.Duration("elapsed", elapsed))

		return Result{}, err
	}

	span.SetAttributes(
		attribute.Int("reward", res.Reward),
		attribute.Int64("expanded", res.Expanded),
		attribute.Int64("pruned", res.Pruned),
	)
	log.Info(ctx, "search finished",
		logging.Int("reward", res.Reward),
		logging.Int64("expanded", res.Expanded),
		logging.Int64("pruned", res.Pruned),
		logging.Int64("terminals", res.Terminals),
		logging.Duration("elapsed", elapsed),
	)
	o.Collector.ObserveSolve(observability.SolveStats{
		Method:    m.String(),
		Reward:    res.Reward,
		Expanded:  res.Expanded,
		Pruned:    res.Pruned,
		Terminals: res.Terminals,
		Elapsed:   elapsed,
	})

	return res, nil
}

func spanSuffix(m Method) string {
	if m == Disjoint {
		return "Disjoint"
	}

	return ""
}
