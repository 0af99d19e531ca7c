package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSolveRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewSearchCollector(reg)
	require.NoError(t, err)

	c.ObserveSolve(SolveStats{Method: "joint", Reward: 1651, Expanded: 120, Pruned: 30, Terminals: 7, Elapsed: 20 * time.Millisecond})
	c.ObserveSolve(SolveStats{Method: "joint", Reward: 1600, Expanded: 10, Terminals: 1})

	assert.Equal(t, 130.0, testutil.ToFloat64(c.Expanded.WithLabelValues("joint")))
	assert.Equal(t, 30.0, testutil.ToFloat64(c.Pruned.WithLabelValues("joint")))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.Terminals.WithLabelValues("joint")))
	assert.Equal(t, 1600.0, testutil.ToFloat64(c.Best.WithLabelValues("joint")))
	assert.Equal(t, uint64(2), histogramSampleCount(t, reg, "valveflow_solve_duration_seconds", map[string]string{"method": "joint"}))
}

func TestObserveSolveDefaultsMethod(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewSearchCollector(reg)
	require.NoError(t, err)

	c.ObserveSolve(SolveStats{Expanded: 3})
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Expanded.WithLabelValues("unknown")))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *SearchCollector
	assert.NotPanics(t, func() { c.ObserveSolve(SolveStats{Method: "joint", Expanded: 1}) })
}

func TestNewSearchCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewSearchCollector(reg)
	require.NoError(t, err)
	second, err := NewSearchCollector(reg)
	require.NoError(t, err)

	assert.Same(t, first.Expanded, second.Expanded)
	assert.Same(t, first.Durations, second.Durations)
	assert.Same(t, first.Best, second.Best)
}

func TestNewSearchCollectorIncompatible(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "valveflow_states_expanded_total",
		Help: "Schedule states popped from the search stack, labeled by method.",
	}, []string{"method"})))

	_, err := NewSearchCollector(reg)
	assert.ErrorContains(t, err, "incompatible type")
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewSearchCollector(reg)
	require.NoError(t, err)
	c.ObserveSolve(SolveStats{Method: "disjoint", Reward: 1707, Expanded: 5})

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	out := buf.String()
	for _, metric := range []string{
		"valveflow_states_expanded_total",
		"valveflow_states_pruned_total",
		"valveflow_terminal_states_total",
		"valveflow_solve_duration_seconds",
		`valveflow_best_reward{method="disjoint"} 1707`,
	} {
		assert.Contains(t, out, metric)
	}
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string, labels map[string]string) uint64 {
	t.Helper()

	metrics, err := gatherer.Gather()
	require.NoError(t, err)
	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) && m.GetHistogram() != nil {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func matchLabels(got []*dto.LabelPair, want map[string]string) bool {
	if len(got) < len(want) {
		return false
	}
	matched := 0
	for _, lp := range got {
		if val, ok := want[lp.GetName()]; ok && val == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
