// Command valveflow reads a valve network and prints the maximum pressure
// release achievable within the time budget.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/distance"
	"github.com/katalvlaran/valveflow/internal/config"
	"github.com/katalvlaran/valveflow/internal/logging"
	"github.com/katalvlaran/valveflow/internal/observability"
	"github.com/katalvlaran/valveflow/parse"
	"github.com/katalvlaran/valveflow/schedule"
	"github.com/katalvlaran/valveflow/search"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg, err := config.Load(args, getenv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "valveflow: %v\n", err)
		return exitUsage
	}

	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})
	ctx = logging.ContextWithLogger(ctx, log)
	log.Debug(ctx, "configuration loaded",
		logging.String("input", cfg.Input),
		logging.Any("method", cfg.Method),
		logging.Int("agents", cfg.Agents),
		logging.Int("max_time", cfg.MaxTime),
		logging.Bool("forced", cfg.Forced),
	)

	tracing := observability.TracingConfigFromEnv(getenv)
	tracing.Enabled = cfg.Trace
	tracing.Output = stderr
	shutdown, err := observability.InitTracing(ctx, tracing, log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		return exitError
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	reg := prometheus.NewRegistry()
	collector, err := observability.NewSearchCollector(reg)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.Err(err))
		return exitError
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	res, err := solve(ctx, cfg, stdin, collector)
	if err != nil {
		log.Error(ctx, "solve failed", logging.String("input", cfg.Input), logging.Err(err))
		return exitError
	}
	fmt.Fprintln(stdout, res.Reward)

	if cfg.Metrics {
		if err := collector.WriteText(stderr); err != nil {
			log.Warn(ctx, "failed to write metrics", logging.Err(err))
		}
	}

	return exitOK
}

func solve(ctx context.Context, cfg config.Config, stdin io.Reader, collector *observability.SearchCollector) (search.Result, error) {
	g, err := readGraph(cfg.Input, stdin)
	if err != nil {
		return search.Result{}, err
	}
	logging.FromContext(ctx).Debug(ctx, "graph loaded",
		logging.Int("valves", g.VertexCount()),
		logging.Int("tunnels", g.EdgeCount()),
		logging.Int("rated", len(g.RatedVertices())),
	)

	idx, err := distance.Build(ctx, g, cfg.Start)
	if err != nil {
		return search.Result{}, err
	}
	p, err := schedule.NewProblem(g, idx, cfg.Schedule())
	if err != nil {
		return search.Result{}, err
	}

	return search.Run(p, cfg.Method,
		search.WithContext(ctx),
		search.WithPruning(cfg.Prune),
		search.WithCollector(collector),
	)
}

// readGraph parses the valve description at path, or stdin for "-".
func readGraph(path string, stdin io.Reader) (*core.Graph, error) {
	if path == "-" {
		return parse.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return parse.Parse(f)
}
