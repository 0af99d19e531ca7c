package schedule_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/distance"
	"github.com/katalvlaran/valveflow/parse"
	"github.com/katalvlaran/valveflow/schedule"
)

func TestNewProblem_Validation(t *testing.T) {
	g, err := parse.String(pair)
	require.NoError(t, err)
	idx, err := distance.Build(context.Background(), g, "AA")
	require.NoError(t, err)

	_, err = schedule.NewProblem(nil, idx, cfg(5, 1))
	assert.ErrorIs(t, err, schedule.ErrNilInput)
	_, err = schedule.NewProblem(g, nil, cfg(5, 1))
	assert.ErrorIs(t, err, schedule.ErrNilInput)
	_, err = schedule.NewProblem(g, idx, cfg(5, 0))
	assert.ErrorIs(t, err, schedule.ErrInvalidAgents)
	_, err = schedule.NewProblem(g, idx, cfg(-1, 1))
	assert.ErrorIs(t, err, schedule.ErrInvalidTime)
	_, err = schedule.NewProblem(g, idx, schedule.Config{Start: "ZZ", MaxTime: 5, Agents: 1})
	assert.ErrorIs(t, err, schedule.ErrStartNotFound)

	p, err := schedule.NewProblem(g, idx, cfg(5, 1))
	require.NoError(t, err)
	_, err = p.WithAgents(0)
	assert.ErrorIs(t, err, schedule.ErrInvalidAgents)
	_, err = p.WithMaxTime(-3)
	assert.ErrorIs(t, err, schedule.ErrInvalidTime)
}

func TestNewProblem_TooManyValves(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("AA", 0))
	for i := 0; i <= schedule.MaxTargets; i++ {
		id := fmt.Sprintf("V%02d", i)
		require.NoError(t, g.AddVertex(id, 1))
		require.NoError(t, g.AddEdge("AA", id))
	}
	idx, err := distance.Build(context.Background(), g, "AA")
	require.NoError(t, err)

	_, err = schedule.NewProblem(g, idx, cfg(5, 1))
	assert.ErrorIs(t, err, schedule.ErrTooManyValves)
}

// TestNewProblem_Layout pins the compact site table: rated valves first in
// ID order, the zero-rate start appended last.
func TestNewProblem_Layout(t *testing.T) {
	p := mustProblem(t, example, cfg(30, 1))

	assert.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ", "AA"}, p.Sites())
	assert.Equal(t, 6, p.Start())
	assert.Equal(t, 6, p.Targets())
	assert.Equal(t, 30, p.MaxTime())
	assert.Equal(t, 1, p.Agents())
	assert.False(t, p.Forced())
	assert.Equal(t, 22, p.SiteRate(4))
	assert.Equal(t, "HH", p.SiteName(4))

	// AA→HH is five hops, JJ→HH seven
	assert.Equal(t, 5, p.Hops(6, 4))
	assert.Equal(t, 7, p.Hops(5, 4))
	assert.Equal(t, 0, p.Hops(2, 2))

	p2, err := p.WithAgents(2)
	require.NoError(t, err)
	assert.Equal(t, 2, p2.Agents())
	assert.Equal(t, 1, p.Agents(), "WithAgents must not mutate the receiver")
}

// TestNewProblem_RatedStart keeps a rated start inside the target range.
func TestNewProblem_RatedStart(t *testing.T) {
	p := mustProblem(t, `Valve AA has flow rate=4; tunnel leads to valve BB
Valve BB has flow rate=1; tunnel leads to valve AA`, cfg(5, 1))

	assert.Equal(t, []string{"AA", "BB"}, p.Sites())
	assert.Equal(t, 0, p.Start())
	assert.Equal(t, 2, p.Targets())
}

func TestProblem_InitialAndFormat(t *testing.T) {
	p := mustProblem(t, example, cfg(26, 2))
	s := p.Initial()

	assert.Zero(t, s.Time)
	assert.Zero(t, s.Open)
	assert.Zero(t, s.Rate)
	assert.Zero(t, s.Released)
	require.Len(t, s.Actions, 2)
	for _, a := range s.Actions {
		assert.Equal(t, schedule.IdleAt(p.Start()), a)
	}
	assert.False(t, p.Terminal(s))
	assert.Equal(t, "t=0/26 rate=0 released=0 open=[] agents=[idle(AA) idle(AA)]", p.Format(s))

	s2 := schedule.State{
		Time:     4,
		Actions:  []schedule.Action{schedule.Travel(2, 0, 2), schedule.WaitAt(5)},
		Open:     1<<2 | 1<<5,
		Rate:     41,
		Released: 60,
	}
	assert.Equal(t, "t=4/26 rate=41 released=60 open=[DD JJ] agents=[travelling(DD→BB,2) waiting(JJ)]", p.Format(s2))
	assert.Equal(t, []string{"DD", "JJ"}, p.OpenNames(s2.Open))
	assert.Equal(t, 2, s2.OpenCount())
	assert.True(t, s2.IsOpen(5))
	assert.False(t, s2.IsOpen(0))
	assert.Equal(t, 60+41*22, p.Settle(s2))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "idle", schedule.Idle.String())
	assert.Equal(t, "travelling", schedule.Travelling.String())
	assert.Equal(t, "waiting", schedule.Waiting.String())
	assert.Equal(t, "Kind(9)", schedule.Kind(9).String())
}
