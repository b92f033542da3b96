package reachability_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lavaworld/adjacency"
	"github.com/katalvlaran/lavaworld/components"
	"github.com/katalvlaran/lavaworld/geometry"
	"github.com/katalvlaran/lavaworld/reachability"
)

// tableFor runs the full build pipeline for rects.
func tableFor(t *testing.T, rects []geometry.Rect) (*reachability.Table, *components.Partition) {
	t.Helper()
	p, err := components.Label(adjacency.Build(rects))
	require.NoError(t, err)
	tbl, err := reachability.FromPartition(p)
	require.NoError(t, err)

	return tbl, p
}

func TestNew(t *testing.T) {
	_, err := reachability.New(-1)
	require.ErrorIs(t, err, reachability.ErrInvalidSize)

	tbl, err := reachability.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.N())
	_, err = tbl.Reachable(1, 1)
	require.ErrorIs(t, err, reachability.ErrQueryOutOfRange)

	tbl, err = reachability.New(3)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			got, err := tbl.Reachable(i, j)
			require.NoError(t, err)
			assert.Equal(t, i == j, got, "(%d,%d)", i, j)
		}
	}
	assert.Equal(t, "100\n010\n001\n", tbl.String())
}

func TestFromPartition_Nil(t *testing.T) {
	_, err := reachability.FromPartition(nil)
	require.ErrorIs(t, err, reachability.ErrNilPartition)
}

func TestReachable_OutOfRange(t *testing.T) {
	tbl, _ := tableFor(t, []geometry.Rect{geometry.NewRect(0, 1, 1, 0)})

	for _, q := range [][2]int{{0, 1}, {1, 0}, {2, 1}, {1, 2}, {-5, 1}} {
		_, err := tbl.Reachable(q[0], q[1])
		require.ErrorIs(t, err, reachability.ErrQueryOutOfRange, "query %v", q)
	}
}

// TestTable_Chain is the transitive scenario: A–B, B–C, A and C apart.
func TestTable_Chain(t *testing.T) {
	tbl, _ := tableFor(t, []geometry.Rect{
		geometry.NewRect(0, 10, 5, 5),
		geometry.NewRect(5, 10, 10, 5),
		geometry.NewRect(10, 10, 15, 5),
		geometry.NewRect(100, 110, 105, 105),
	})

	ok, err := tbl.Reachable(1, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = tbl.Reachable(4, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "1110\n1110\n1110\n0001\n", tbl.String())
}

// TestTable_Properties checks reflexivity, symmetry, transitivity and
// agreement with the partition on random layouts.
func TestTable_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 15; round++ {
		n := 1 + rng.Intn(40)
		rects := make([]geometry.Rect, n)
		for i := range rects {
			x, y := rng.Intn(50), rng.Intn(50)
			rects[i] = geometry.NewRect(x, y+rng.Intn(8), x+rng.Intn(8), y)
		}
		tbl, p := tableFor(t, rects)
		require.Equal(t, n, tbl.N())

		at := func(i, j int) bool {
			v, err := tbl.Reachable(i, j)
			require.NoError(t, err)
			return v
		}
		for i := 1; i <= n; i++ {
			require.True(t, at(i, i), "reflexive %d", i)
			for j := 1; j <= n; j++ {
				require.Equal(t, at(i, j), at(j, i), "symmetric %d,%d", i, j)
				require.Equal(t, p.Same(i, j), at(i, j), "partition %d,%d", i, j)
				if !at(i, j) {
					continue
				}
				for k := 1; k <= n; k++ {
					if at(j, k) {
						require.True(t, at(i, k), "transitive %d,%d,%d", i, j, k)
					}
				}
			}
		}
	}
}
