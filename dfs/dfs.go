package dfs

import (
	"fmt"

	"github.com/katalvlaran/lavaworld/core"
)

// frame is one entry of the explicit DFS stack: a vertex and the index of
// the next neighbor to examine.
type frame struct {
	id   int
	next int
	nbs  []int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on graph g. With WithFullTraversal it covers
// all components; otherwise it starts only from startID.
// On error the partial result is returned alongside it.
func DFS(g *core.Graph, startID int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		res: &DFSResult{
			Order:   make([]int, 0, n),
			Parent:  make(map[int]int),
			Visited: make(map[int]bool, n),
		},
	}

	if !dopts.FullTraversal {
		return w.res, w.traverse(startID)
	}
	for _, v := range g.Vertices() {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse walks the tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.discover(root); err != nil {
		return err
	}
	stack := []frame{{id: root, nbs: w.neighbors(root)}}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		if top.next == len(top.nbs) {
			// all descendants explored
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.id); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %d: %w", top.id, err)
				}
			}
			w.res.Order = append(w.res.Order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}

		nid := top.nbs[top.next]
		top.next++
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = top.id
		if err := w.discover(nid); err != nil {
			return err
		}
		stack = append(stack, frame{id: nid, nbs: w.neighbors(nid)})
	}

	return nil
}

// discover marks id visited and runs the pre-order hook.
func (w *dfsWalker) discover(id int) error {
	w.res.Visited[id] = true
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	return nil
}

// neighbors never fails for ids taken from the graph itself.
func (w *dfsWalker) neighbors(id int) []int {
	nbs, _ := w.graph.NeighborIDs(id)

	return nbs
}
