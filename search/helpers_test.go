package search_test

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
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

func problem(t testing.TB, text string, c schedule.Config) *schedule.Problem {
	t.Helper()
	g, err := parse.String(text)
	require.NoError(t, err)
	idx, err := distance.Build(context.Background(), g, c.Start)
	require.NoError(t, err)
	p, err := schedule.NewProblem(g, idx, c)
	require.NoError(t, err)

	return p
}

func conf(maxTime, agents int) schedule.Config {
	return schedule.Config{Start: "AA", MaxTime: maxTime, Agents: agents}
}

// chain returns AA(0) – X1 – … – X(d-1) – VV(rate), VV being d hops from AA.
func chain(d, rate int) string {
	var sb strings.Builder
	prev := "AA"
	fmt.Fprintf(&sb, "Valve AA has flow rate=0; tunnel leads to valve %s\n", next(1, d))
	for i := 1; i <= d; i++ {
		id := next(i, d)
		r := 0
		if i == d {
			r = rate
		}
		links := prev
		if i < d {
			links += ", " + next(i+1, d)
		}
		fmt.Fprintf(&sb, "Valve %s has flow rate=%d; tunnels lead to valves %s\n", id, r, links)
		prev = id
	}

	return sb.String()
}

func next(i, d int) string {
	if i == d {
		return "VV"
	}
	return fmt.Sprintf("X%d", i)
}

// randomGraph builds a connected graph of n valves (AA plus n-1 others)
// with a random spanning tree, a few extra tunnels and random rates.
func randomGraph(rng *rand.Rand, n int) string {
	ids := make([]string, n)
	ids[0] = "AA"
	for i := 1; i < n; i++ {
		ids[i] = fmt.Sprintf("V%c", 'A'+i)
	}
	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = map[int]bool{}
	}
	link := func(a, b int) {
		if a != b {
			adj[a][b], adj[b][a] = true, true
		}
	}
	for i := 1; i < n; i++ {
		link(i, rng.Intn(i))
	}
	for k := 0; k < n/2; k++ {
		link(rng.Intn(n), rng.Intn(n))
	}

	var sb strings.Builder
	for i, id := range ids {
		rate := 0
		if i > 0 && rng.Intn(4) > 0 {
			rate = 1 + rng.Intn(25)
		}
		var links []string
		for j := 0; j < n; j++ {
			if adj[i][j] {
				links = append(links, ids[j])
			}
		}
		fmt.Fprintf(&sb, "Valve %s has flow rate=%d; tunnels lead to valves %s\n", id, rate, strings.Join(links, ", "))
	}

	return sb.String()
}
