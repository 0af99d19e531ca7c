package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/valveflow/schedule"
)

// Method selects the search algorithm.
type Method uint8

const (
	// Joint searches the synchronized multi-agent state space.
	Joint Method = iota
	// Disjoint combines two single-agent subset tables (two agents only).
	Disjoint
)

func (m Method) String() string {
	switch m {
	case Joint:
		return "joint"
	case Disjoint:
		return "disjoint"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// ParseMethod maps "joint" or "disjoint" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "joint", "":
		return Joint, nil
	case "disjoint":
		return Disjoint, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Run dispatches to Solve or SolveDisjoint.
func Run(p *schedule.Problem, m Method, opts ...Option) (Result, error) {
	switch m {
	case Joint:
		return Solve(p, opts...)
	case Disjoint:
		return SolveDisjoint(p, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}
}
