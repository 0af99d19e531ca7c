package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/valveflow/schedule"
)

// SolveDisjoint solves a two-agent problem by splitting the valves between
// the agents: it tabulates the best single-agent reward per opened subset
// (SubsetRewards) and returns the best sum over two subsets with no valve in
// common. Pruning does not apply.
//
// Errors: ErrNilProblem, ErrDisjointAgents when p.Agents() != 2,
// ErrDisjointForced when p.Forced(), ctx.Err()
// on cancellation, or a *schedule.InvariantError.
//
// Complexity: one exhaustive single-agent search plus O(K²) over the K
// recorded subsets in the worst case; the pair scan stops once no remaining
// pair can beat the incumbent.
func SolveDisjoint(p *schedule.Problem, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if p.Agents() != 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrDisjointAgents, p.Agents())
	}
	if p.Forced() {
		return Result{}, ErrDisjointForced
	}
	o := buildOptions(opts)

	return instrument(o, p, Disjoint, func(ctx context.Context) (Result, error) {
		t := &tabulator{ctx: ctx}
		if err := t.run(p); err != nil {
			return Result{}, err
		}
		t.res.Reward = bestPair(t.table)

		return t.res, nil
	})
}

// SubsetRewards runs the exhaustive single-agent search on p and returns,
// for every set of valves the agent can have open at an idle point, the
// best reward reachable by opening nothing further. Keys are Open bitsets.
// The agent count of p is ignored.
func SubsetRewards(p *schedule.Problem, opts ...Option) (map[uint64]int, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := buildOptions(opts)
	t := &tabulator{ctx: o.Ctx}
	if err := t.run(p); err != nil {
		return nil, err
	}

	return t.table, nil
}

// tabulator walks the single-agent state space and keeps the best settled
// reward per Open set.
type tabulator struct {
	ctx   context.Context
	table map[uint64]int
	res   Result
}

func (t *tabulator) run(p *schedule.Problem) (err error) {
	defer recoverInvariant(&err)

	solo, err := p.WithAgents(1)
	if err != nil {
		return err
	}
	t.table = make(map[uint64]int)

	stack := []schedule.State{solo.Initial()}
	for len(stack) > 0 {
		if t.res.Expanded&(checkEvery-1) == 0 {
			if err = t.ctx.Err(); err != nil {
				return err
			}
		}
		top := len(stack) - 1
		s := stack[top]
		stack = stack[:top]
		t.res.Expanded++

		terminal := solo.Terminal(s)
		if terminal || s.Actions[0].Kind == schedule.Idle {
			if v := solo.Settle(s); v >= t.table[s.Open] {
				t.table[s.Open] = v
			}
		}
		if terminal {
			t.res.Terminals++
			continue
		}
		next := solo.Successors(s)
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	return nil
}

type subset struct {
	open  uint64
	value int
}

// bestPair returns the largest a.value+b.value over entries with disjoint
// open sets. The empty set pairs with itself.
func bestPair(table map[uint64]int) int {
	entries := make([]subset, 0, len(table))
	for open, v := range table {
		entries = append(entries, subset{open: open, value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].open < entries[j].open
	})

	best := 0
	for i := range entries {
		if 2*entries[i].value <= best {
			break
		}
		for j := i; j < len(entries); j++ {
			sum := entries[i].value + entries[j].value
			if sum <= best {
				break
			}
			if entries[i].open&entries[j].open == 0 {
				best = sum
				break
			}
		}
	}

	return best
}
