package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/graphio"
)

// execute runs the root command and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestRun_OutputParsesThroughLoader(t *testing.T) {
	out, err := execute(t, "6", "25", "9")
	require.NoError(t, err)

	m, err := graphio.Read(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	assert.Equal(t, 6, m.NumVertices())
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	a, err := execute(t, "5", "10", "4")
	require.NoError(t, err)
	b, err := execute(t, "5", "10", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_RejectsNonNumericArgs(t *testing.T) {
	_, err := execute(t, "five")
	require.Error(t, err)
}

func TestRun_RejectsZeroVertices(t *testing.T) {
	_, err := execute(t, "0")
	require.Error(t, err)
}
