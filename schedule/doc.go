// Package schedule models the valve-release problem as a synchronized,
// multi-agent state machine.
//
// A Problem fixes everything that does not change during a search: the
// compact site table (the start valve plus every valve with a positive rate),
// their rates, the hop matrix between sites, the time budget and the number
// of agents. A State is an immutable snapshot of one point in time:
//
//	Time      elapsed ticks, 0 ≤ Time ≤ MaxTime
//	Actions   one Action per agent slot
//	Open      bitset of opened sites (only ever grows)
//	Rate      sum of the rates of exactly the opened sites
//	Released  reward accumulated so far (non-decreasing)
//
// Actions
//
//	Idle(at)                    no commitment; branches on the next tick
//	Travelling(from, to, n)     committed to open `to`; n ticks left (n > 0)
//	Waiting(at)                 sentinel: sits out the rest of the horizon
//
// Transitions (Problem.Successors)
//
//	Each idle agent, in slot order, picks every site that is closed, rated,
//	not targeted by any other agent and can be opened strictly before the
//	deadline (Time + d + 1 < MaxTime), plus Waiting exactly once. With
//	Config.Forced, Waiting is offered only when no such site exists. The joint choices form a Cartesian product in which target
//	exclusion is applied while the product is built, so impossible joint
//	moves are never materialized. Every candidate then advances one tick:
//	Released grows by the pre-tick Rate, countdowns shrink, and arrivals
//	open their valve; the new rate only pays from the following tick.
//	When every agent is Waiting the candidate jumps straight to MaxTime in a
//	single successor.
//
// Bound
//
//	Problem.Bound returns an admissible ceiling on the Released value of any
//	terminal state reachable from s, used by package search to prune.
//
// Invariant violations (two agents opening the same site, a countdown that
// is not positive, time running past the budget) are programming errors and
// panic with *InvariantError; package search converts the panic into a
// returned error.
package schedule
