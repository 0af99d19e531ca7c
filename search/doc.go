// Package search finds the maximum total release of a valve schedule.
//
// Two algorithms are provided:
//
//   - Joint (Solve, SolveFrom): a depth-first search over the synchronized
//     multi-agent state space of a schedule.Problem, driven by an explicit
//     stack. Only the best scalar reward is kept; no state is memoized.
//     With pruning enabled (the default) a state is skipped when
//     Problem.Bound(s) <= best. Bound is admissible, so pruning changes
//     only the amount of work, never the reward.
//
//   - Disjoint (SolveDisjoint, SubsetRewards): for exactly two agents.
//     One exhaustive single-agent search records, at every idle point, the
//     reward obtained by opening nothing further, keyed by the set of open
//     valves. The answer is the best sum over two subsets with no valve in
//     common.
//
// Run dispatches on a Method; ParseMethod reads "joint" or "disjoint".
//
// Cancellation:
//
//	The context given by WithContext is checked before the first pop and
//	every 1024 pops after that. A cancelled search returns ctx.Err() and
//	no partial result.
//
// Failures:
//
//	The transition code in package schedule panics with a
//	*schedule.InvariantError on a broken state; the search recovers it and
//	returns it as an error (errors.Is(err, schedule.ErrInvariant)).
//
// Observability:
//
//	Every run opens an OpenTelemetry span ("search.Solve" or
//	"search.SolveDisjoint"), logs through the logger given by WithLogger,
//	and records counters on the collector given by WithCollector.
//
// Example:
//
//	g, _ := parse.String(input)
//	idx, _ := distance.Build(ctx, g, "AA")
//	p, _ := schedule.NewProblem(g, idx, schedule.Config{Start: "AA", MaxTime: 26, Agents: 2})
//	res, err := search.Solve(p, search.WithContext(ctx))
package search
