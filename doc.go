// Package valveflow plans valve openings in a tunnel network so that the
// total pressure released before a deadline is as large as possible.
//
// What is valveflow?
//
//	A small, deterministic optimizer for one or more cooperating agents
//	that walk an undirected network of valves (one tick per tunnel, one
//	tick to open a valve). Every open valve releases its rate on each
//	following tick until the deadline.
//
// Layout:
//
//	core/      — thread-safe valve graph: valves with rates, undirected tunnels
//	parse/     — text reader for "Valve AA has flow rate=0; tunnels lead to valves ..."
//	bfs/       — breadth-first traversal with functional options
//	distance/  — all-pairs hop counts built from one BFS per valve
//	schedule/  — compact problem, joint agent actions, successor states and bound
//	search/    — exhaustive depth-first search with pruning, plus the
//	             two-agent subset method
//	cmd/valveflow — command-line front end
//
// Pipeline:
//
//	g, _   := parse.Parse(r)
//	idx, _ := distance.Build(ctx, g, "AA")
//	p, _   := schedule.NewProblem(g, idx, schedule.Config{Start: "AA", MaxTime: 30, Agents: 1})
//	res, _ := search.Solve(p, search.WithContext(ctx))
//
// Quick ASCII example:
//
//	AA(0) ── BB(10)
//
//	With 5 ticks, one agent walks to BB (tick 1), opens it (tick 2) and
//	collects 10 on each of the remaining 3 ticks: 30.
package valveflow
