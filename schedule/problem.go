package schedule

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/distance"
)

// Problem is the read-only search context shared by every State.
//
// Sites are laid out rated valves first (sorted by ID), so bit i of
// State.Open corresponds to site i for every i < len(targets); the start
// valve is appended last when it has no rate.
type Problem struct {
	sites   []string
	rates   []int
	hops    []int // hops[a*len(sites)+b]
	start   int
	targets []int

	maxTime int
	agents  int
	forced  bool
}

// NewProblem compacts g and idx into a Problem for cfg.
//
// Errors: ErrNilInput, ErrInvalidAgents, ErrInvalidTime, ErrStartNotFound,
// ErrTooManyValves, ErrUnreachable.
//
// Complexity: O(S²) for S = rated valves + 1.
func NewProblem(g *core.Graph, idx *distance.Index, cfg Config) (*Problem, error) {
	if g == nil || idx == nil {
		return nil, ErrNilInput
	}
	if cfg.Agents < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAgents, cfg.Agents)
	}
	if cfg.MaxTime < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTime, cfg.MaxTime)
	}
	startRate, err := g.Rate(cfg.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, cfg.Start)
	}

	rated := g.RatedVertices()
	if len(rated) > MaxTargets {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(rated), MaxTargets)
	}
	sites := make([]string, 0, len(rated)+1)
	sites = append(sites, rated...)
	if startRate == 0 {
		sites = append(sites, cfg.Start)
	}

	n := len(sites)
	p := &Problem{
		sites:   sites,
		rates:   make([]int, n),
		hops:    make([]int, n*n),
		targets: make([]int, len(rated)),
		maxTime: cfg.MaxTime,
		agents:  cfg.Agents,
		forced:  cfg.Forced,
	}
	for i, id := range sites {
		if id == cfg.Start {
			p.start = i
		}
		if p.rates[i], err = g.Rate(id); err != nil {
			return nil, err
		}
		for j, other := range sites {
			d, ok := idx.Between(id, other)
			if !ok {
				return nil, fmt.Errorf("%w: %q and %q", ErrUnreachable, id, other)
			}
			p.hops[i*n+j] = d
		}
	}
	for i := range rated {
		p.targets[i] = i
	}

	return p, nil
}

// WithAgents returns a copy of p with a different agent count.
func (p *Problem) WithAgents(agents int) (*Problem, error) {
	if agents < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAgents, agents)
	}
	cp := *p
	cp.agents = agents

	return &cp, nil
}

// WithMaxTime returns a copy of p with a different time budget.
func (p *Problem) WithMaxTime(maxTime int) (*Problem, error) {
	if maxTime < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTime, maxTime)
	}
	cp := *p
	cp.maxTime = maxTime

	return &cp, nil
}

// MaxTime returns the time budget in ticks.
func (p *Problem) MaxTime() int { return p.maxTime }

// Agents returns the number of agent slots.
func (p *Problem) Agents() int { return p.agents }

// Forced reports whether idle agents must claim a feasible target.
func (p *Problem) Forced() bool { return p.forced }

// Start returns the start site index.
func (p *Problem) Start() int { return p.start }

// Sites returns a copy of the site names, indexed by site.
func (p *Problem) Sites() []string {
	out := make([]string, len(p.sites))
	copy(out, p.sites)

	return out
}

// SiteName returns the valve ID of site i.
func (p *Problem) SiteName(i int) string { return p.sites[i] }

// SiteRate returns the rate of site i.
func (p *Problem) SiteRate(i int) int { return p.rates[i] }

// Targets returns the number of rated sites.
func (p *Problem) Targets() int { return len(p.targets) }

// Hops returns the travel time between two sites.
func (p *Problem) Hops(a, b int) int { return p.hops[a*len(p.sites)+b] }

// OpenNames returns the valve IDs set in an Open bitset, sorted.
func (p *Problem) OpenNames(open uint64) []string {
	names := make([]string, 0, bits.OnesCount64(open))
	for _, t := range p.targets {
		if open&(1<<uint(t)) != 0 {
			names = append(names, p.sites[t])
		}
	}
	sort.Strings(names)

	return names
}

// Initial returns the time-zero state: every agent idle at start, nothing
// open.
func (p *Problem) Initial() State {
	acts := make([]Action, p.agents)
	for i := range acts {
		acts[i] = IdleAt(p.start)
	}

	return State{Actions: acts}
}

// Terminal reports whether s has exhausted the time budget.
func (p *Problem) Terminal(s State) bool { return s.Time >= p.maxTime }

// Settle returns the reward s reaches if no further valve is ever opened:
// Released plus the current Rate over every remaining tick. Opened valves
// and travellers still en route are treated alike: only what is open now
// counts.
func (p *Problem) Settle(s State) int {
	return s.Released + s.Rate*(p.maxTime-s.Time)
}
