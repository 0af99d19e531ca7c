package schedule

// Successors returns every state reachable from s in one synchronized tick,
// or nil when s is terminal.
//
// Idle agents branch in slot order; Travelling and Waiting agents carry
// their action over unchanged. Target exclusion is evaluated against the
// partially built joint move, so an agent never sees a site already claimed
// by an earlier slot in the same move.
//
// Complexity: O(B·A·S) where B is the number of joint moves produced,
// A the agent count and S the number of rated sites.
func (p *Problem) Successors(s State) []State {
	if p.Terminal(s) {
		return nil
	}

	joint := [][]Action{cloneActions(s.Actions)}
	for i := range s.Actions {
		if s.Actions[i].Kind != Idle {
			continue
		}
		next := make([][]Action, 0, len(joint))
		for _, acts := range joint {
			choices := p.choices(s, acts, i)
			last := len(choices) - 1
			for k, c := range choices {
				row := acts
				if k < last {
					row = cloneActions(acts)
				}
				row[i] = c
				next = append(next, row)
			}
		}
		joint = next
	}

	out := make([]State, 0, len(joint))
	for _, acts := range joint {
		out = append(out, p.tick(s, acts))
	}

	return out
}

// choices enumerates the options of idle agent i given the joint move built
// so far: one Travel per feasible target, then Waiting. In forced mode
// Waiting is offered only when no target is feasible.
func (p *Problem) choices(s State, acts []Action, i int) []Action {
	at := acts[i].At

	var claimed uint64
	for j, a := range acts {
		if j != i && a.Kind == Travelling {
			claimed |= 1 << uint(a.To)
		}
	}

	out := make([]Action, 0, len(p.targets)+1)
	for _, t := range p.targets {
		bit := uint64(1) << uint(t)
		if s.Open&bit != 0 || claimed&bit != 0 {
			continue
		}
		// +1: the tick spent opening the valve after arrival
		cost := p.Hops(at, t) + 1
		if s.Time+cost >= p.maxTime {
			continue
		}
		out = append(out, Travel(at, t, cost))
	}
	if len(out) == 0 || !p.forced {
		out = append(out, WaitAt(at))
	}

	return out
}

// tick advances s by one tick using the joint move acts, which it takes
// ownership of. Reward accrues at the pre-tick rate; arrivals raise the rate
// for the following tick only. A move in which every agent waits jumps to
// the deadline.
func (p *Problem) tick(s State, acts []Action) State {
	n := State{
		Time:     s.Time,
		Actions:  acts,
		Open:     s.Open,
		Rate:     s.Rate,
		Released: s.Released,
	}

	if allWaiting(acts) {
		n.Released += n.Rate * (p.maxTime - n.Time)
		n.Time = p.maxTime
		return n
	}

	n.Time++
	n.Released += n.Rate
	if n.Time > p.maxTime {
		violate("time %d past budget %d", n.Time, p.maxTime)
	}

	var claimed uint64
	for i := range acts {
		a := &acts[i]
		if a.Kind != Travelling {
			continue
		}
		bit := uint64(1) << uint(a.To)
		switch {
		case claimed&bit != 0:
			violate("two agents target %s at t=%d", p.sites[a.To], s.Time)
		case a.Remaining <= 0:
			violate("agent %d has non-positive countdown %d", i, a.Remaining)
		case s.Open&bit != 0:
			violate("agent %d targets open valve %s", i, p.sites[a.To])
		}
		claimed |= bit

		if a.Remaining > 1 {
			a.Remaining--
			continue
		}
		n.Open |= bit
		n.Rate += p.rates[a.To]
		*a = IdleAt(a.To)
	}

	return n
}

func allWaiting(acts []Action) bool {
	for _, a := range acts {
		if a.Kind != Waiting {
			return false
		}
	}

	return true
}

func cloneActions(acts []Action) []Action {
	out := make([]Action, len(acts))
	copy(out, acts)

	return out
}
