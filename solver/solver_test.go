package solver_test

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lavaworld/bfs"
	"github.com/katalvlaran/lavaworld/geometry"
	"github.com/katalvlaran/lavaworld/logger"
	"github.com/katalvlaran/lavaworld/problem"
	"github.com/katalvlaran/lavaworld/reachability"
	"github.com/katalvlaran/lavaworld/solver"
)

func solve(t *testing.T, in string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := solver.Solve(context.Background(), strings.NewReader(in), &out, solver.WithLogger(logger.Test(t)))

	return out.String(), err
}

func TestSolve_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no islands", "0 0", ""},
		{"disjoint islands", "2 1\n0 10 5 5\n100 110 105 105\n1 2\n", "NO\n"},
		{"touching islands", "2 1\n0 10 5 5\n5 10 10 5\n1 2\n", "YES\n"},
		{"transitive chain", "3 2\n0 10 5 5\n5 10 10 5\n10 10 15 5\n1 3\n3 1\n", "YES\nYES\n"},
		{"self query", "2 2\n0 10 5 5\n100 110 105 105\n1 1\n2 2\n", "YES\nYES\n"},
		{"islands without queries", "2 0\n0 10 5 5\n5 10 10 5\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := solve(t, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSolve_OutOfRangeFailsRun(t *testing.T) {
	got, err := solve(t, "2 3\n0 10 5 5\n5 10 10 5\n1 2\n1 3\n2 1\n")
	require.ErrorIs(t, err, reachability.ErrQueryOutOfRange)
	assert.Contains(t, err.Error(), "query 2")
	assert.Empty(t, got, "no partial output on failure")

	_, err = solve(t, "0 1\n1 1\n")
	require.ErrorIs(t, err, reachability.ErrQueryOutOfRange)
}

func TestSolve_ParseErrors(t *testing.T) {
	_, err := solve(t, "-1 0")
	require.ErrorIs(t, err, problem.ErrInvalidCount)

	_, err = solve(t, "1 0\n1 2 3")
	require.ErrorIs(t, err, problem.ErrMalformedRectangle)
}

func TestBuild_Logs(t *testing.T) {
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)
	_, err := solver.Build(context.Background(), []geometry.Rect{
		geometry.NewRect(0, 10, 5, 5),
		geometry.NewRect(5, 10, 10, 5),
		geometry.NewRect(100, 110, 105, 105),
	}, solver.WithLogger(lggr))
	require.NoError(t, err)

	built := logs.FilterMessage("adjacency built").All()
	require.Len(t, built, 1)
	ctx := built[0].ContextMap()
	assert.EqualValues(t, 3, ctx["islands"])
	assert.EqualValues(t, 1, ctx["edges"])
	assert.EqualValues(t, 3, ctx["comparisons"])

	labeled := logs.FilterMessage("components labeled").All()
	require.Len(t, labeled, 1)
	assert.EqualValues(t, 2, labeled[0].ContextMap()["components"])
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solver.Build(ctx, []geometry.Rect{geometry.NewRect(0, 1, 1, 0)})
	require.ErrorIs(t, err, context.Canceled)
}

// TestAnswer_AgreesWithNaive cross-checks the table against a fresh BFS per
// query on random layouts.
func TestAnswer_AgreesWithNaive(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(21))
	for round := 0; round < 10; round++ {
		n := 1 + rng.Intn(50)
		rects := make([]geometry.Rect, n)
		for i := range rects {
			x, y := rng.Intn(80), rng.Intn(80)
			rects[i] = geometry.NewRect(x, y+rng.Intn(10), x+rng.Intn(10), y)
		}
		tbl, err := solver.Build(ctx, rects)
		require.NoError(t, err)

		queries := make([]problem.Query, 40)
		for i := range queries {
			queries[i] = problem.Query{Row: 1 + rng.Intn(n), Col: 1 + rng.Intn(n)}
		}
		answers, err := solver.Answer(tbl, queries)
		require.NoError(t, err)
		for i, q := range queries {
			want, err := solver.Naive(ctx, rects, q.Row, q.Col)
			require.NoError(t, err)
			require.Equal(t, want, answers[i], fmt.Sprintf("round %d query %v", round, q))
		}
	}
}

func TestNaive_OutOfRange(t *testing.T) {
	_, err := solver.Naive(context.Background(), []geometry.Rect{geometry.NewRect(0, 1, 1, 0)}, 1, 2)
	require.ErrorIs(t, err, reachability.ErrQueryOutOfRange)
}

func TestPath(t *testing.T) {
	ctx := context.Background()
	rects := []geometry.Rect{
		geometry.NewRect(0, 10, 5, 5),
		geometry.NewRect(100, 110, 105, 105),
		geometry.NewRect(5, 10, 10, 5),
		geometry.NewRect(10, 10, 15, 5),
	}

	path, err := solver.Path(ctx, rects, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, path)

	path, err = solver.Path(ctx, rects, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, path)

	_, err = solver.Path(ctx, rects, 1, 2)
	require.ErrorIs(t, err, bfs.ErrNoPath)

	_, err = solver.Path(ctx, rects, 0, 2)
	require.ErrorIs(t, err, reachability.ErrQueryOutOfRange)
}

func TestCrossCheck(t *testing.T) {
	p := &problem.Problem{
		Islands: []geometry.Rect{
			geometry.NewRect(0, 10, 5, 5),
			geometry.NewRect(5, 10, 10, 5),
			geometry.NewRect(100, 110, 105, 105),
		},
		Queries: []problem.Query{{Row: 1, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 3}},
	}
	answers, err := solver.CrossCheck(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, answers)

	p.Queries = append(p.Queries, problem.Query{Row: 4, Col: 1})
	_, err = solver.CrossCheck(context.Background(), p)
	require.ErrorIs(t, err, reachability.ErrQueryOutOfRange)
}
