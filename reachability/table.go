package reachability

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lavaworld/components"
)

// Table is a reflexive, symmetric reachability matrix over islands 1..N.
// stride is N+1; cells holds stride*stride flags in row-major order.
type Table struct {
	n      int
	stride int
	cells  []bool
}

// New creates an N-island table where every island reaches only itself.
// Stage 1 (Validate): n >= 0.
// Stage 2 (Prepare): allocate (n+1)² flags, all false.
// Stage 3 (Finalize): set the diagonal for 1..n.
// Complexity: O(n²) memory, O(n²) time for zeroing.
func New(n int) (*Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	stride := n + 1
	t := &Table{n: n, stride: stride, cells: make([]bool, stride*stride)}
	for i := 1; i <= n; i++ {
		t.cells[i*stride+i] = true
	}

	return t, nil
}

// FromPartition builds the table for a component partition.
// For each component [m1..mk] it sets (mi, mj) and (mj, mi) for every pair.
// Complexity: O(N + Σ k²).
func FromPartition(p *components.Partition) (*Table, error) {
	if p == nil {
		return nil, ErrNilPartition
	}
	t, err := New(p.N())
	if err != nil {
		return nil, err
	}
	for _, comp := range p.Components {
		for a, mi := range comp {
			for _, mj := range comp[a:] {
				if err := t.connect(mi, mj); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// connect marks i and j as mutually reachable.
func (t *Table) connect(i, j int) error {
	if err := t.check(i, j); err != nil {
		return err
	}
	t.cells[i*t.stride+j] = true
	t.cells[j*t.stride+i] = true

	return nil
}

// check validates 1 ≤ i, j ≤ N.
func (t *Table) check(i, j int) error {
	if i < 1 || i > t.n || j < 1 || j > t.n {
		return fmt.Errorf("%w: (%d, %d) not in [1, %d]", ErrQueryOutOfRange, i, j, t.n)
	}

	return nil
}

// Reachable reports whether islands i and j share a component.
// Returns ErrQueryOutOfRange if either ID is outside [1, N].
// Complexity: O(1).
func (t *Table) Reachable(i, j int) (bool, error) {
	if err := t.check(i, j); err != nil {
		return false, err
	}

	return t.cells[i*t.stride+j], nil
}

// N returns the number of islands covered by the table.
func (t *Table) N() int {
	return t.n
}

// String renders rows 1..N as 0/1 digits, for debugging.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 1; i <= t.n; i++ {
		for j := 1; j <= t.n; j++ {
			if t.cells[i*t.stride+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
