package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/distance"
	"github.com/katalvlaran/valveflow/parse"
	"github.com/katalvlaran/valveflow/schedule"
)

const example = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II`

// AA(0) – BB(10)
const pair = `Valve AA has flow rate=0; tunnel leads to valve BB
Valve BB has flow rate=10; tunnel leads to valve AA`

// BB(5) – AA(0) – CC(7)
const fork = `Valve AA has flow rate=0; tunnels lead to valves BB, CC
Valve BB has flow rate=5; tunnel leads to valve AA
Valve CC has flow rate=7; tunnel leads to valve AA`

func mustProblem(t testing.TB, text string, cfg schedule.Config) *schedule.Problem {
	t.Helper()
	g, err := parse.String(text)
	require.NoError(t, err)
	idx, err := distance.Build(context.Background(), g, cfg.Start)
	require.NoError(t, err)
	p, err := schedule.NewProblem(g, idx, cfg)
	require.NoError(t, err)

	return p
}

func cfg(maxTime, agents int) schedule.Config {
	return schedule.Config{Start: "AA", MaxTime: maxTime, Agents: agents}
}

// forced is cfg with idle agents required to claim any feasible target.
func forced(maxTime, agents int) schedule.Config {
	c := cfg(maxTime, agents)
	c.Forced = true

	return c
}

// bestFrom exhaustively explores s and returns the best terminal reward.
func bestFrom(p *schedule.Problem, s schedule.State) int {
	if p.Terminal(s) {
		return s.Released
	}
	best := -1
	for _, n := range p.Successors(s) {
		if v := bestFrom(p, n); v > best {
			best = v
		}
	}

	return best
}
