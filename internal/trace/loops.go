package trace

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// ExtractLoops decomposes the boundary graph into closed loops. Every edge
// of the graph ends up in exactly one loop, and loops are returned in the
// order their starting vertex was first inserted into the graph.
//
// ExtractLoops takes exclusive ownership of bg and consumes it: traversed
// edges are removed as the walk advances and isolated vertices are dropped.
// The graph is empty afterwards and must not be reused.
//
// Each walk starts at the earliest remaining vertex in insertion order and
// repeatedly moves to the lexicographically smallest remaining neighbour,
// excluding the vertex it just arrived from, until it returns to its start.
// At a degree-4 junction (diagonally touching pixels) this rule is applied
// as-is, so two regions meeting at a corner may come out as loops that share
// that lattice point; see the package documentation on determinism.
//
// Collinear intermediate vertices are collapsed, so every vertex in a
// returned loop is a direction change: a solid W×H rectangle yields a single
// loop of exactly four corners.
//
// Returns ErrBoundaryDecomposition if a walk dead-ends before closing, which
// can only happen on graphs that violate the even-degree invariant.
func ExtractLoops(bg *BoundaryGraph) ([]Loop, error) {
	var loops []Loop

	for _, start := range bg.order {
		// A degree-4 start vertex can seed more than one loop.
		for {
			set, ok := bg.adj[start]
			if !ok || set.Empty() {
				break
			}
			loop, err := bg.walkLoop(start)
			if err != nil {
				return nil, err
			}
			loops = append(loops, loop)
		}
	}
	return loops, nil
}

// walkLoop traces one closed walk starting and ending at start, removing
// each traversed edge from the graph.
func (bg *BoundaryGraph) walkLoop(start Vertex) (Loop, error) {
	verts := []Vertex{start}
	cur := start
	prev := start
	first := true

	for {
		set, ok := bg.adj[cur]
		if !ok {
			return Loop{}, fmt.Errorf("%w: walk stranded at vertex (%d,%d)", ErrBoundaryDecomposition, cur.X, cur.Y)
		}
		next, ok := smallestNeighbor(set, prev, first)
		if !ok {
			return Loop{}, fmt.Errorf("%w: dead end at vertex (%d,%d)", ErrBoundaryDecomposition, cur.X, cur.Y)
		}
		bg.removeEdge(cur, next)
		prev, cur = cur, next
		first = false
		if cur == start {
			break
		}
		verts = append(verts, cur)
	}
	return Loop{Vertices: collapseCollinear(verts)}, nil
}

// smallestNeighbor returns the lexicographically smallest vertex in set,
// skipping exclude unless this is the first step of a walk.
func smallestNeighbor(set *treeset.Set, exclude Vertex, first bool) (Vertex, bool) {
	it := set.Iterator()
	for it.Next() {
		v := it.Value().(Vertex)
		if !first && v == exclude {
			continue
		}
		return v, true
	}
	return Vertex{}, false
}

// collapseCollinear removes vertices that sit on a straight segment between
// their neighbours, considering the wrap from the last vertex back to the
// first. All segments are axis-aligned, so three consecutive vertices are
// collinear exactly when they share an X or a Y coordinate.
func collapseCollinear(verts []Vertex) []Vertex {
	n := len(verts)
	if n < 3 {
		return verts
	}
	out := make([]Vertex, 0, n)
	for i := 0; i < n; i++ {
		a := verts[(i+n-1)%n]
		b := verts[i]
		c := verts[(i+1)%n]
		if (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y) {
			continue
		}
		out = append(out, b)
	}
	return out
}
