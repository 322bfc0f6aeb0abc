package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/graphio"
)

// fourVertexInput yields distances [0, 1, 3, 4] from vertex 0.
const fourVertexInput = `4
* 1 4 *
* * 2 7
* * * 1
* * * *
`

// execute runs the root command against in-memory streams.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestExitCode_PerFailureClass(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"MissingVertexCount", graphio.ErrMissingVertexCount, exitParse},
		{"BadVertexCount", graphio.ErrBadVertexCount, exitParse},
		{"BadWeight", graphio.ErrBadWeight, exitBadWeight},
		{"TooManyWeights", graphio.ErrTooManyWeights, exitTooMany},
		{"TooFewWeights", graphio.ErrTooFewWeights, exitTooFew},
		{"InvalidVertex", dijkstra.ErrInvalidVertex, exitBadTarget},
		{"WrappedInvalidVertex", fmt.Errorf("context: %w", dijkstra.ErrInvalidVertex), exitBadTarget},
		{"Unknown", errors.New("disk on fire"), exitParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Errorf("exitCode(%v) = %d; want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestRun_AllDistances(t *testing.T) {
	out, err := execute(t, fourVertexInput)
	require.NoError(t, err)
	assert.Equal(t, "0:0\n1:1\n2:3\n3:4\n", out)
}

func TestRun_UnreachableMarkedWithStar(t *testing.T) {
	// Vertex 2 has no incoming edges.
	input := "3\n* 3 *\n* * *\n1 1 *\n"
	out, err := execute(t, input)
	require.NoError(t, err)
	assert.Equal(t, "0:0\n1:3\n2:*\n", out)
}

func TestRun_SingleTarget(t *testing.T) {
	out, err := execute(t, fourVertexInput, "3")
	require.NoError(t, err)
	assert.Equal(t, "distance from 0 to 3 is 4\n", out)
}

func TestRun_SingleTargetNoPath(t *testing.T) {
	input := "2\n* *\n* *\n"
	out, err := execute(t, input, "1")
	require.NoError(t, err)
	assert.Equal(t, "no path to vertex 1\n", out)
}

func TestRun_TargetOutOfRange(t *testing.T) {
	out, err := execute(t, fourVertexInput, "4")
	require.Error(t, err)
	assert.Empty(t, out, "no partial output on failure")

	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, exitBadTarget, ee.code)
}

func TestRun_NonNumericTarget(t *testing.T) {
	_, err := execute(t, fourVertexInput, "abc")
	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, exitBadTarget, ee.code)
}

func TestRun_ParseFailureExitCodes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"EmptyInput", "", exitParse},
		{"BadWeight", "2\n1 x\n3 4\n", exitBadWeight},
		{"TooManyWeights", "2\n1 2 3 4 5\n", exitTooMany},
		{"TooFewWeights", "2\n1 2 3\n", exitTooFew},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.input)
			var ee *exitError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, tc.want, ee.code)
		})
	}
}
