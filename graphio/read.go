// Package graphio - reading the textual graph format.
//
// Contract:
//   - Fail-fast: the first malformed token aborts the parse.
//   - Every error wraps exactly one package sentinel and carries "line N"
//     context, so callers can both match the class (errors.Is) and show the
//     operator where the input broke.
//   - Token order is row-major: token k describes the edge k/NV → k%NV.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfind/adjacency"
)

// noEdgeToken is the literal marking an absent edge in the text format.
const noEdgeToken = "*"

// maxLineBytes bounds a single input line; rows of large graphs are long.
const maxLineBytes = 1 << 20

// lexer walks an input stream as whitespace-separated tokens while tracking
// the current line number for error context.
type lexer struct {
	sc      *bufio.Scanner
	line    int      // 1-based line of the tokens in pending
	pending []string // tokens of the current line not yet consumed
	idx     int      // next token in pending
}

func newLexer(r io.Reader) *lexer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	return &lexer{sc: sc}
}

// next returns the next token. ok=false signals end of input; a non-nil error
// is an underlying read failure, not a format problem.
func (lx *lexer) next() (tok string, ok bool, err error) {
	for lx.idx >= len(lx.pending) {
		if !lx.sc.Scan() {
			return "", false, lx.sc.Err()
		}
		lx.line++
		lx.pending = strings.Fields(lx.sc.Text())
		lx.idx = 0
	}
	tok = lx.pending[lx.idx]
	lx.idx++

	return tok, true, nil
}

// errLine is the line reported in errors; empty input still reports line 1.
func (lx *lexer) errLine() int {
	if lx.line < 1 {
		return 1
	}

	return lx.line
}

// Read parses a graph description from r and returns the immutable weight
// matrix. The stream must hold the vertex count NV followed by exactly NV×NV
// weight tokens, row-major; '*' maps to adjacency.NoEdge.
//
// Errors: one of the package sentinels wrapped with line context, or the
// underlying read error from r.
//
// Complexity: O(NV²) time and space.
func Read(r io.Reader) (*adjacency.Matrix, error) {
	lx := newLexer(r)

	// 1) The vertex count opens the stream.
	tok, ok, err := lx.next()
	if err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("line %d: %w", lx.errLine(), ErrMissingVertexCount)
	}
	nv, convErr := strconv.Atoi(tok)
	if convErr != nil {
		return nil, fmt.Errorf("line %d: token %q: %w", lx.errLine(), tok, ErrMissingVertexCount)
	}
	if nv <= 0 {
		return nil, fmt.Errorf("line %d: NV=%d: %w", lx.errLine(), nv, ErrBadVertexCount)
	}

	b, err := adjacency.NewBuilder(nv)
	if err != nil {
		return nil, err
	}

	// 2) Exactly NV×NV weight tokens follow, row-major.
	total := nv * nv
	count := 0
	for {
		tok, ok, err = lx.next()
		if err != nil {
			return nil, fmt.Errorf("graphio: read: %w", err)
		}
		if !ok {
			break
		}
		if count >= total {
			return nil, fmt.Errorf("line %d: expecting %d*%d weights: %w",
				lx.errLine(), nv, nv, ErrTooManyWeights)
		}

		w := adjacency.NoEdge
		if tok != noEdgeToken {
			w, convErr = strconv.ParseInt(tok, 10, 64)
			if convErr != nil || w < 0 {
				return nil, fmt.Errorf("line %d: token %q: %w", lx.errLine(), tok, ErrBadWeight)
			}
		}
		if err = b.SetWeight(count/nv, count%nv, w); err != nil {
			return nil, err
		}
		count++
	}

	// 3) A short stream is as fatal as a malformed one.
	if count != total {
		return nil, fmt.Errorf("%d weights appear in the input (expected %d because NV=%d): %w",
			count, total, nv, ErrTooFewWeights)
	}

	return b.Freeze(), nil
}
