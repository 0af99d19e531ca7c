package schedule

// Bound returns an upper bound on Released for every terminal state
// reachable from s.
//
// Components:
//   - everything already open pays until the deadline;
//   - each travelling agent's target pays from its arrival;
//   - each closed, unclaimed rated site pays from the earliest tick any
//     non-waiting agent could open it: the agent's free time plus the hops
//     from its free position plus one.
//
// Every real schedule opens a site no earlier than that estimate (hop counts
// obey the triangle inequality, so detours only delay it), and the terms
// are summed independently, which can only over-count. Bound is therefore
// admissible: pruning on Bound(s) <= best never discards a strictly better
// schedule.
//
// Complexity: O(S·A).
func (p *Problem) Bound(s State) int {
	if p.Terminal(s) {
		return s.Released
	}
	b := p.Settle(s)

	var claimed uint64
	for _, a := range s.Actions {
		if a.Kind != Travelling {
			continue
		}
		claimed |= 1 << uint(a.To)
		if arrival := s.Time + a.Remaining; arrival < p.maxTime {
			b += p.rates[a.To] * (p.maxTime - arrival)
		}
	}

	for _, t := range p.targets {
		bit := uint64(1) << uint(t)
		if s.Open&bit != 0 || claimed&bit != 0 {
			continue
		}
		earliest := p.maxTime
		for _, a := range s.Actions {
			var e int
			switch a.Kind {
			case Idle:
				e = s.Time + p.Hops(a.At, t) + 1
			case Travelling:
				e = s.Time + a.Remaining + p.Hops(a.To, t) + 1
			default:
				continue
			}
			if e < earliest {
				earliest = e
			}
		}
		if earliest < p.maxTime {
			b += p.rates[t] * (p.maxTime - earliest)
		}
	}

	return b
}
