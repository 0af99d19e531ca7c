// Package config assembles the valveflow command configuration from
// command-line flags, with environment variables supplying the defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/valveflow/schedule"
	"github.com/katalvlaran/valveflow/search"
)

// Validation errors.
var (
	ErrMissingInput  = errors.New("config: input path is required")
	ErrInvalidTime   = errors.New("config: time budget must be non-negative")
	ErrInvalidAgents = errors.New("config: agent count must be at least 1")
	ErrInvalidEnv    = errors.New("config: invalid environment value")
)

// Config is the resolved command configuration.
type Config struct {
	Input   string // path, or "-" for stdin
	Start   string
	MaxTime int
	Agents  int
	Method  search.Method
	Forced  bool
	Prune   bool
	Timeout time.Duration // 0 means no limit

	LogLevel  string
	LogFormat string
	Trace     bool
	Metrics   bool
}

// Load parses args (without the program name). getenv supplies defaults for
// VALVEFLOW_INPUT, VALVEFLOW_START, VALVEFLOW_TIME, VALVEFLOW_AGENTS,
// VALVEFLOW_METHOD, VALVEFLOW_TIMEOUT, LOG_LEVEL, LOG_FORMAT and
// VALVEFLOW_TRACING_ENABLED; explicit flags win. Usage and flag errors are
// written to out. flag.ErrHelp is returned for -h.
func Load(args []string, getenv func(string) string, out io.Writer) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	def := schedule.DefaultConfig()

	maxTime, err := envInt(getenv, "VALVEFLOW_TIME", def.MaxTime)
	if err != nil {
		return Config{}, err
	}
	agents, err := envInt(getenv, "VALVEFLOW_AGENTS", def.Agents)
	if err != nil {
		return Config{}, err
	}
	timeout, err := envDuration(getenv, "VALVEFLOW_TIMEOUT")
	if err != nil {
		return Config{}, err
	}

	var (
		cfg    Config
		method string
	)
	fs := flag.NewFlagSet("valveflow", flag.ContinueOnError)
	if out != nil {
		fs.SetOutput(out)
	}
	fs.StringVar(&cfg.Input, "input", getenv("VALVEFLOW_INPUT"), "valve description file, - for stdin")
	fs.StringVar(&cfg.Start, "start", envString(getenv, "VALVEFLOW_START", def.Start), "start valve")
	fs.IntVar(&cfg.MaxTime, "time", maxTime, "time budget in ticks")
	fs.IntVar(&cfg.Agents, "agents", agents, "number of agents")
	fs.StringVar(&method, "method", envString(getenv, "VALVEFLOW_METHOD", search.Joint.String()), "search method: joint or disjoint")
	fs.BoolVar(&cfg.Forced, "forced", false, "make idle agents claim any feasible target instead of standing down")
	fs.BoolVar(&cfg.Prune, "prune", true, "enable upper-bound pruning")
	fs.DurationVar(&cfg.Timeout, "timeout", timeout, "search time limit, 0 for none")
	fs.StringVar(&cfg.LogLevel, "log-level", envString(getenv, "LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", envString(getenv, "LOG_FORMAT", "text"), "text or json")
	fs.BoolVar(&cfg.Trace, "trace", strings.EqualFold(getenv("VALVEFLOW_TRACING_ENABLED"), "true"), "export spans to stderr")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "print Prometheus metrics to stderr after the run")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected arguments %q", fs.Args())
	}
	if cfg.Method, err = search.ParseMethod(method); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the resolved values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ErrMissingInput
	}
	if c.MaxTime < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTime, c.MaxTime)
	}
	if c.Agents < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidAgents, c.Agents)
	}
	if c.Method == search.Disjoint && c.Agents != 2 {
		return fmt.Errorf("%w: got %d", search.ErrDisjointAgents, c.Agents)
	}
	if c.Method == search.Disjoint && c.Forced {
		return search.ErrDisjointForced
	}

	return nil
}

// Schedule converts c into a schedule.Config.
func (c Config) Schedule() schedule.Config {
	return schedule.Config{
		Start:   c.Start,
		MaxTime: c.MaxTime,
		Agents:  c.Agents,
		Forced:  c.Forced,
	}
}

func envString(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, key, raw)
	}
	return v, nil
}

func envDuration(getenv func(string) string, key string) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, key, raw)
	}
	return d, nil
}
