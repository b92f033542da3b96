package solver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lavaworld/adjacency"
	"github.com/katalvlaran/lavaworld/bfs"
	"github.com/katalvlaran/lavaworld/components"
	"github.com/katalvlaran/lavaworld/dfs"
	"github.com/katalvlaran/lavaworld/geometry"
	"github.com/katalvlaran/lavaworld/logger"
	"github.com/katalvlaran/lavaworld/problem"
	"github.com/katalvlaran/lavaworld/reachability"
)

// Option configures the solver.
type Option func(*options)

type options struct {
	lggr logger.Logger
}

// WithLogger attaches a logger; the pipeline logs one line per phase.
func WithLogger(lggr logger.Logger) Option {
	return func(o *options) {
		if lggr != nil {
			o.lggr = lggr
		}
	}
}

func newOptions(opts []Option) options {
	o := options{lggr: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Build computes the reachability table for rects, where rects[i] is island i+1.
func Build(ctx context.Context, rects []geometry.Rect, opts ...Option) (*reachability.Table, error) {
	o := newOptions(opts)

	b := adjacency.NewBuilder(
		adjacency.WithCapacity(len(rects)),
		adjacency.WithLogger(o.lggr.Named("adjacency")),
	)
	for _, r := range rects {
		b.Add(r)
	}
	g := b.Graph()
	o.lggr.Infow("adjacency built",
		"islands", b.Len(),
		"edges", g.EdgeCount(),
		"comparisons", b.Comparisons(),
	)

	p, err := components.Label(g,
		components.WithContext(ctx),
		components.WithLogger(o.lggr.Named("components")),
	)
	if err != nil {
		return nil, err
	}
	largest, size := p.Largest()
	o.lggr.Infow("components labeled", "components", p.Count(), "largest", largest, "largestSize", size)

	t, err := reachability.FromPartition(p)
	if err != nil {
		return nil, err
	}
	o.lggr.Infow("reachability table ready", "islands", t.N())

	return t, nil
}

// Answer looks up every query in t, in order.
func Answer(t *reachability.Table, queries []problem.Query) ([]bool, error) {
	answers := make([]bool, len(queries))
	for i, q := range queries {
		ok, err := t.Reachable(q.Row, q.Col)
		if err != nil {
			return nil, fmt.Errorf("solver: query %d: %w", i+1, err)
		}
		answers[i] = ok
	}

	return answers, nil
}

// Solve reads a problem from r and writes its answers to w.
// Nothing is written unless every query is valid.
func Solve(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) error {
	o := newOptions(opts)

	p, err := problem.Parse(r)
	if err != nil {
		return err
	}
	o.lggr.Infow("input parsed", "islands", len(p.Islands), "queries", len(p.Queries))

	t, err := Build(ctx, p.Islands, opts...)
	if err != nil {
		return err
	}
	// the table is all the query phase needs
	p.Islands = nil

	answers, err := Answer(t, p.Queries)
	if err != nil {
		return err
	}

	return problem.WriteAnswers(w, answers)
}

// search runs a BFS from a over the adjacency graph of rects after checking
// both IDs.
func search(ctx context.Context, rects []geometry.Rect, a, b int) (*bfs.BFSResult, error) {
	n := len(rects)
	if a < 1 || a > n || b < 1 || b > n {
		return nil, fmt.Errorf("%w: (%d, %d) not in [1, %d]", reachability.ErrQueryOutOfRange, a, b, n)
	}
	return bfs.BFS(adjacency.Build(rects), a, bfs.WithContext(ctx))
}

// Naive answers one query by searching from a for b, without a table.
func Naive(ctx context.Context, rects []geometry.Rect, a, b int) (bool, error) {
	res, err := search(ctx, rects, a, b)
	if err != nil {
		return false, err
	}

	return res.Reached(b), nil
}

// Path returns a shortest chain of island IDs from a to b, both included.
// It returns bfs.ErrNoPath when the islands are not connected.
func Path(ctx context.Context, rects []geometry.Rect, a, b int) ([]int, error) {
	res, err := search(ctx, rects, a, b)
	if err != nil {
		return nil, err
	}

	return res.PathTo(b)
}

// ErrMismatch reports that the table and a per-query search disagree.
var ErrMismatch = errors.New("solver: table and search disagree")

// CrossCheck answers every query of p through the table and again with a
// depth-first search per query, returning the answers when both agree.
// Queries are range-checked by the table first.
func CrossCheck(ctx context.Context, p *problem.Problem, opts ...Option) ([]bool, error) {
	t, err := Build(ctx, p.Islands, opts...)
	if err != nil {
		return nil, err
	}
	answers, err := Answer(t, p.Queries)
	if err != nil {
		return nil, err
	}

	g := adjacency.Build(p.Islands)
	for i, q := range p.Queries {
		res, err := dfs.DFS(g, q.Row, dfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		if want := res.Reached(q.Col); want != answers[i] {
			return nil, fmt.Errorf("%w: query %d (%d, %d): table=%t search=%t",
				ErrMismatch, i+1, q.Row, q.Col, answers[i], want)
		}
	}

	return answers, nil
}
