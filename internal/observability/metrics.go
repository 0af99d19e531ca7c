// Package observability holds the Prometheus collector and OpenTelemetry
// setup shared by the search driver and the valveflow command.
package observability

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// SolveStats summarizes one finished search for the collector.
type SolveStats struct {
	Method    string
	Reward    int
	Expanded  int64
	Pruned    int64
	Terminals int64
	Elapsed   time.Duration
}

// SearchCollector bundles Prometheus metrics for search runs. A nil
// *SearchCollector is valid and records nothing.
type SearchCollector struct {
	gatherer prometheus.Gatherer

	Expanded  *prometheus.CounterVec
	Pruned    *prometheus.CounterVec
	Terminals *prometheus.CounterVec
	Durations *prometheus.HistogramVec
	Best      *prometheus.GaugeVec
}

// NewSearchCollector registers search metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
// Registering twice on one registry returns the existing collectors.
func NewSearchCollector(reg prometheus.Registerer) (*SearchCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	expanded, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "valveflow_states_expanded_total",
		Help: "Schedule states popped from the search stack, labeled by method.",
	}, []string{"method"}), "valveflow_states_expanded_total")
	if err != nil {
		return nil, err
	}
	pruned, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "valveflow_states_pruned_total",
		Help: "Schedule states discarded by the upper bound, labeled by method.",
	}, []string{"method"}), "valveflow_states_pruned_total")
	if err != nil {
		return nil, err
	}
	terminals, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "valveflow_terminal_states_total",
		Help: "Terminal schedule states evaluated, labeled by method.",
	}, []string{"method"}), "valveflow_terminal_states_total")
	if err != nil {
		return nil, err
	}
	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "valveflow_solve_duration_seconds",
		Help:    "Wall-clock duration of a search run in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
	}, []string{"method"}), "valveflow_solve_duration_seconds")
	if err != nil {
		return nil, err
	}
	best, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "valveflow_best_reward",
		Help: "Reward of the most recent completed search, labeled by method.",
	}, []string{"method"}), "valveflow_best_reward")
	if err != nil {
		return nil, err
	}

	return &SearchCollector{
		gatherer:  gatherer,
		Expanded:  expanded,
		Pruned:    pruned,
		Terminals: terminals,
		Durations: durations,
		Best:      best,
	}, nil
}

// ObserveSolve records one completed search.
func (c *SearchCollector) ObserveSolve(s SolveStats) {
	if c == nil {
		return
	}
	method := s.Method
	if method == "" {
		method = "unknown"
	}
	if c.Expanded != nil {
		c.Expanded.WithLabelValues(method).Add(float64(s.Expanded))
	}
	if c.Pruned != nil {
		c.Pruned.WithLabelValues(method).Add(float64(s.Pruned))
	}
	if c.Terminals != nil {
		c.Terminals.WithLabelValues(method).Add(float64(s.Terminals))
	}
	if c.Durations != nil {
		c.Durations.WithLabelValues(method).Observe(s.Elapsed.Seconds())
	}
	if c.Best != nil {
		c.Best.WithLabelValues(method).Set(float64(s.Reward))
	}
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (c *SearchCollector) WriteText(w io.Writer) error {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
