package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/config"
	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/edgelist"
	"github.com/katalvlaran/salesman/internal/ctxlog"
	"github.com/katalvlaran/salesman/metrics"
	"github.com/katalvlaran/salesman/tour"
)

// Unsolvable is printed when the graph has no closed tour.
const Unsolvable = "Graph is unsolvable"

// stdinName selects standard input as the graph file.
const stdinName = "-"

// options holds the parsed command line.
type options struct {
	configPath string
	strategy   string
	tieBreak   string
	workers    int
	timeLimit  time.Duration
	precheck   bool
	listEdges  bool
	metrics    bool
	logFormat  string
	verbosity  verbosity
}

// streams are the process's standard files.
type streams struct {
	in       io.Reader
	out, err io.Writer
}

// Run executes the salesman command with args (without the program name).
// A nil error means exit status 0; otherwise the error is an *ExitError.
func Run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	cmd := newCommand(streams{in: stdin, out: stdout, err: stderr})
	cmd.SetArgs(args)

	return classify(cmd.ExecuteContext(ctx))
}

func newCommand(std streams) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "salesman [flags] <graph-file>",
		Short: "Exact minimum-cost closed tour over a small weighted graph",
		Long: `salesman - exact minimum-cost closed tour (Hamiltonian cycle).

The graph file holds one undirected edge per line:

  <id>;<weight>;<id>

where <id> is a single character and <weight> a signed integer. Any other
line is a comment. The first node read is the start and end of the tour.
Use "-" to read the graph from standard input.

Output is the tour followed by its cost, e.g. "A C B A: 6", or
"Graph is unsolvable" when no closed tour exists.

Exit codes:
  0  tour found or graph unsolvable
  1  usage or configuration error
  2  empty graph
  3  graph file could not be read
  4  search aborted (time limit)`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, std, &opts, args)
		},
	}
	cmd.SetIn(std.in)
	cmd.SetOut(std.out)
	cmd.SetErr(std.err)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(std.err, c.UsageString())

		return exitf(ExitUsage, "%v", err)
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	opts.verbosity.bind(fs)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.strategy, "strategy", "", "search strategy: exhaustive, bnb or heldkarp")
	fs.StringVar(&opts.tieBreak, "tie-break", "", "equal-cost tours: last or first")
	fs.IntVar(&opts.workers, "workers", 0, "parallel workers (0 or 1 runs sequentially)")
	fs.DurationVar(&opts.timeLimit, "time-limit", 0, "abort the search after this long (0 = no limit)")
	fs.BoolVar(&opts.precheck, "precheck", false, "reject graphs that cannot have a tour before searching")
	fs.BoolVar(&opts.listEdges, "list-edges", false, "print every node's edges before searching")
	fs.BoolVar(&opts.metrics, "metrics", false, "write Prometheus metrics to stderr after the search")
	fs.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")

	return cmd
}

// resolve layers the configuration: defaults, then --config, then flags.
func resolve(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			var pe *os.PathError
			if errors.As(err, &pe) {
				return cfg, exitf(ExitIO, "%v", err)
			}

			return cfg, exitf(ExitUsage, "%v", err)
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("strategy") {
		cfg.Solver.Strategy = opts.strategy
	}
	if fs.Changed("tie-break") {
		cfg.Solver.TieBreak = opts.tieBreak
	}
	if fs.Changed("workers") {
		cfg.Solver.Workers = opts.workers
	}
	if fs.Changed("time-limit") {
		cfg.Solver.TimeLimit = opts.timeLimit
	}
	if fs.Changed("precheck") {
		cfg.Solver.Precheck = opts.precheck
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if opts.verbosity.level != "" {
		cfg.Log.Level = opts.verbosity.level
	}

	if err := cfg.Validate(); err != nil {
		return cfg, exitf(ExitUsage, "%v", err)
	}

	return cfg, nil
}

func run(cmd *cobra.Command, std streams, opts *options, args []string) error {
	cfg, err := resolve(cmd, opts)
	if err != nil {
		return err
	}

	logger := newLogger(std.err, cfg.Log)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)
	for _, flag := range opts.verbosity.ignored {
		logger.Warn("verbosity already set, ignoring", "flag", flag)
	}
	logger.Debug("configuration resolved",
		"strategy", cfg.Solver.Strategy, "tie_break", cfg.Solver.TieBreak,
		"workers", cfg.Solver.Workers, "time_limit", cfg.Solver.TimeLimit,
		"precheck", cfg.Solver.Precheck, "level", cfg.Log.Level)

	g := core.NewGraph(core.WithLogger(logger))
	if len(args) > 0 {
		if err := readGraph(ctx, std.in, args[0], g); err != nil {
			return err
		}
	}
	for _, extra := range args[min(1, len(args)):] {
		logger.Warn("only one graph file is accepted, ignoring", "file", extra)
	}
	if g.NodeCount() == 0 {
		return exitf(ExitEmptyGraph, "graph has no nodes")
	}

	if opts.listEdges {
		for _, id := range g.Nodes() {
			line, err := g.Describe(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(std.out, line)
		}
	}

	topts := append(cfg.TourOptions(), tour.WithLogger(logger))
	var reg *prometheus.Registry
	if opts.metrics {
		reg = prometheus.NewRegistry()
		topts = append(topts, tour.WithObserver(metrics.New(reg)))
	}

	res, err := tour.SolveGraph(ctx, g, topts...)
	if reg != nil {
		if werr := metrics.WriteText(std.err, reg); werr != nil {
			logger.Error("writing metrics failed", "err", werr)
		}
	}
	if err != nil {
		return err
	}
	logger.Info("search finished", metrics.Summary(res)...)

	if res.Found {
		fmt.Fprintln(std.out, res.String())
	} else {
		fmt.Fprintln(std.out, Unsolvable)
	}

	return nil
}

// readGraph feeds the named file, or stdin for "-", into g.
func readGraph(ctx context.Context, stdin io.Reader, name string, g *core.Graph) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("reading graph", "file", name)

	r := stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return exitf(ExitIO, "failed to open %s: %v", name, err)
		}
		defer f.Close()
		r = f
	}

	st, err := edgelist.Read(ctx, r, g, edgelist.WithLogger(logger))
	if err != nil {
		if ctx.Err() != nil {
			return err
		}

		return exitf(ExitIO, "failed to read %s: %v", name, err)
	}
	logger.Info("graph read", "file", name, "lines", st.Lines,
		"edges", st.Edges, "comments", st.Comments, "nodes", g.NodeCount())

	return nil
}
