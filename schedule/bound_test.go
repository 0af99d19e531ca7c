package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/valveflow/schedule"
)

// TestBound_Admissible compares Bound against exhaustive search on every
// state of small problems.
func TestBound_Admissible(t *testing.T) {
	cases := []struct {
		name string
		p    *schedule.Problem
	}{
		{"one agent", mustProblem(t, example, cfg(12, 1))},
		{"two agents", mustProblem(t, example, cfg(9, 2))},
		{"fork", mustProblem(t, fork, cfg(8, 2))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var walk func(s schedule.State) int
			walk = func(s schedule.State) int {
				best := s.Released
				if !tc.p.Terminal(s) {
					best = -1
					for _, n := range tc.p.Successors(s) {
						if v := walk(n); v > best {
							best = v
						}
					}
				}
				if b := tc.p.Bound(s); b < best {
					t.Fatalf("Bound=%d < best=%d at %s", b, best, tc.p.Format(s))
				}
				return best
			}
			walk(tc.p.Initial())
		})
	}
}

func TestBound_Terminal(t *testing.T) {
	p := mustProblem(t, pair, cfg(5, 1))
	s := schedule.State{Time: 5, Actions: []schedule.Action{schedule.WaitAt(0)}, Open: 1, Rate: 10, Released: 30}
	assert.Equal(t, 30, p.Bound(s))
}

// TestBound_Exact is tight when only one valve exists.
func TestBound_Exact(t *testing.T) {
	p := mustProblem(t, pair, cfg(7, 1))
	assert.Equal(t, (7-1-1)*10, p.Bound(p.Initial()))
}
