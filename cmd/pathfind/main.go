// Command pathfind reads a graph description from standard input (or a file)
// and prints shortest distances from vertex 0, computed with the sequential
// Dijkstra engine.
//
// With no argument it prints one "<vertex>:<distance>" line per vertex, '*'
// standing in for unreachable. With a single numeric argument D it prints the
// distance to vertex D only and stops the engine as soon as that distance is
// final.
//
// Exit statuses are distinct per failure class so shell callers can tell them
// apart: 1 missing/invalid vertex count or I/O failure, 2 malformed weight
// token, 4 invalid destination vertex, 5 too many weights, 6 too few weights.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathfind/adjacency"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/graphio"
)

// Exit statuses, one per failure class.
const (
	exitParse     = 1 // missing/invalid vertex count, I/O or allocation failure
	exitBadWeight = 2 // malformed weight token
	exitBadTarget = 4 // destination vertex outside [0, NV)
	exitTooMany   = 5 // more than NV×NV weight tokens
	exitTooFew    = 6 // fewer than NV×NV weight tokens
)

var (
	// Global flags
	inputPath string
	verbose   bool

	// Logger
	logger *zap.Logger
)

// exitError carries the process exit status alongside the failure it reports.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// exitCode maps a failure to its exit status via the sentinel taxonomy.
func exitCode(err error) int {
	switch {
	case errors.Is(err, graphio.ErrBadWeight):
		return exitBadWeight
	case errors.Is(err, graphio.ErrTooManyWeights):
		return exitTooMany
	case errors.Is(err, graphio.ErrTooFewWeights):
		return exitTooFew
	case errors.Is(err, dijkstra.ErrInvalidVertex):
		return exitBadTarget
	default:
		// ErrMissingVertexCount, ErrBadVertexCount, I/O and allocation failures.
		return exitParse
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfind [destination]",
	Short: "Single-source shortest paths over a textual adjacency matrix",
	Long: `pathfind computes shortest distances from vertex 0 in a directed,
positively-weighted graph using the sequential (O(V²)) Dijkstra algorithm.

The graph is read from standard input in the shared text format: the vertex
count NV followed by NV×NV whitespace-separated weights, '*' meaning no edge.

Without arguments, distances to all vertices are printed. With a single
numeric argument, only the distance to that vertex is computed and printed.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return &exitError{code: exitParse, err: err}
		}
		defer f.Close()
		in = f
	}

	m, err := graphio.Read(in)
	if err != nil {
		return &exitError{code: exitCode(err), err: err}
	}
	logger.Debug("graph loaded", zap.Int("vertices", m.NumVertices()))

	if len(args) == 0 {
		dist, derr := dijkstra.Distances(m)
		if derr != nil {
			return &exitError{code: exitCode(derr), err: derr}
		}
		logger.Debug("distances computed", zap.Int("vertices", len(dist)))

		return graphio.WriteDistances(cmd.OutOrStdout(), dist)
	}

	target, convErr := parseTarget(args[0])
	if convErr != nil {
		return &exitError{code: exitBadTarget, err: convErr}
	}
	dist, derr := dijkstra.Distances(m, dijkstra.WithTarget(target))
	if derr != nil {
		return &exitError{code: exitCode(derr), err: derr}
	}
	logger.Debug("target distance computed", zap.Int("target", target))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), graphio.FormatDistance(target, dist[target]))

	return err
}

// parseTarget converts the destination argument; non-numeric input is the
// same operator mistake as an out-of-range index.
func parseTarget(arg string) (adjacency.VertexID, error) {
	target, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("illegal destination vertex %q: %w", arg, dijkstra.ErrInvalidVertex)
	}

	return target, nil
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "read the graph from a file instead of stdin")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		code := exitParse
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		os.Exit(code)
	}
}
