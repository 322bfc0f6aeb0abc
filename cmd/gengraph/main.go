// Command gengraph writes a random graph description to standard output in
// the text format the pathfind loader consumes.
//
// Arguments: <vertices> [max-weight] [seed]. Max weight defaults to 10, the
// seed to 1; the same seed always reproduces the same graph. Diagonal cells
// are always '*' (no self-loops). By default every off-diagonal cell receives
// an edge — the historical behavior; --no-edge-prob makes the output sparse.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pathfind/gengraph"
	"github.com/katalvlaran/pathfind/graphio"
)

var (
	// Global flags
	noEdgeProb float64
	verbose    bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gengraph <vertices> [max-weight] [seed]",
	Short: "Generate a random graph in the pathfind text format",
	Long: `gengraph emits a random directed graph: the vertex count followed by an
NV×NV weight matrix, '*' marking absent edges. Off-diagonal weights are drawn
uniformly from [1, max-weight] using a seeded deterministic pseudorandom
sequence (Go's math/rand), so a given seed always reproduces the same graph.`,
	Args:         cobra.RangeArgs(1, 3),
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
	vertices, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("vertices: %q is not a number", args[0])
	}

	maxWeight := gengraph.DefaultMaxWeight
	if len(args) >= 2 {
		if maxWeight, err = strconv.ParseInt(args[1], 10, 64); err != nil {
			return fmt.Errorf("max-weight: %q is not a number", args[1])
		}
	}

	seed := gengraph.DefaultSeed
	if len(args) >= 3 {
		if seed, err = strconv.ParseInt(args[2], 10, 64); err != nil {
			return fmt.Errorf("seed: %q is not a number", args[2])
		}
	}

	m, err := gengraph.Generate(
		gengraph.WithVertices(vertices),
		gengraph.WithMaxWeight(maxWeight),
		gengraph.WithSeed(seed),
		gengraph.WithNoEdgeProbability(noEdgeProb),
	)
	if err != nil {
		return err
	}
	logger.Debug("graph generated",
		zap.Int("vertices", vertices),
		zap.Int64("max_weight", maxWeight),
		zap.Int64("seed", seed),
		zap.Float64("no_edge_prob", noEdgeProb),
	)

	return graphio.Write(cmd.OutOrStdout(), m)
}

func init() {
	rootCmd.Flags().Float64Var(&noEdgeProb, "no-edge-prob", gengraph.DefaultNoEdgeProbability,
		"probability that an off-diagonal cell gets no edge")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
