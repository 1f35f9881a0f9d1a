package trace

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// BoundaryGraph is an undirected graph over lattice points whose edges are
// the exposed border segments of a mask. Neighbour sets are sorted by the
// lexicographic vertex order so that minimum extraction — the tie-break rule
// for loop walks — is deterministic. The graph additionally remembers the
// order in which vertices were first inserted; loop discovery follows that
// order.
//
// A BoundaryGraph is built once per mask by BuildBoundary and destroyed by
// ExtractLoops, which takes exclusive ownership. It is not safe for
// concurrent use.
type BoundaryGraph struct {
	adj   map[Vertex]*treeset.Set
	order []Vertex
	edges int
}

// BuildBoundary scans the mask and returns the graph of exposed pixel-border
// segments. For every true pixel, each of its four sides contributes an edge
// exactly when the neighbouring pixel on that side is false or out of
// bounds; interior borders cancel out entirely.
//
// A degenerate grid (zero width or height) yields an empty graph, not an
// error.
func BuildBoundary(g Grid) *BoundaryGraph {
	w, h := g.Size()
	bg := &BoundaryGraph{adj: make(map[Vertex]*treeset.Set)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.At(x, y) {
				continue
			}
			if y == 0 || !g.At(x, y-1) {
				bg.addEdge(Vertex{x, y}, Vertex{x + 1, y})
			}
			if y == h-1 || !g.At(x, y+1) {
				bg.addEdge(Vertex{x + 1, y + 1}, Vertex{x, y + 1})
			}
			if x == 0 || !g.At(x-1, y) {
				bg.addEdge(Vertex{x, y + 1}, Vertex{x, y})
			}
			if x == w-1 || !g.At(x+1, y) {
				bg.addEdge(Vertex{x + 1, y}, Vertex{x + 1, y + 1})
			}
		}
	}
	return bg
}

// EdgeCount returns the number of undirected edges currently in the graph.
func (bg *BoundaryGraph) EdgeCount() int { return bg.edges }

// Degree returns the number of neighbours of v, or 0 if v is not present.
func (bg *BoundaryGraph) Degree(v Vertex) int {
	set, ok := bg.adj[v]
	if !ok {
		return 0
	}
	return set.Size()
}

// Neighbors returns v's neighbours in ascending lexicographic order.
// The returned slice is a copy.
func (bg *BoundaryGraph) Neighbors(v Vertex) []Vertex {
	set, ok := bg.adj[v]
	if !ok {
		return nil
	}
	out := make([]Vertex, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Vertex))
	}
	return out
}

// Vertices returns the vertices still present in the graph, in the order
// they were first inserted.
func (bg *BoundaryGraph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(bg.adj))
	for _, v := range bg.order {
		if _, ok := bg.adj[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// addEdge inserts the undirected edge a–b, creating neighbour sets as
// needed. Insertion order of previously unseen vertices is recorded for
// deterministic loop discovery.
func (bg *BoundaryGraph) addEdge(a, b Vertex) {
	bg.neighborSet(a).Add(b)
	bg.neighborSet(b).Add(a)
	bg.edges++
}

// removeEdge deletes the undirected edge a–b and drops vertices whose
// neighbour set becomes empty.
func (bg *BoundaryGraph) removeEdge(a, b Vertex) {
	if set, ok := bg.adj[a]; ok {
		set.Remove(b)
		if set.Empty() {
			delete(bg.adj, a)
		}
	}
	if set, ok := bg.adj[b]; ok {
		set.Remove(a)
		if set.Empty() {
			delete(bg.adj, b)
		}
	}
	bg.edges--
}

func (bg *BoundaryGraph) neighborSet(v Vertex) *treeset.Set {
	set, ok := bg.adj[v]
	if !ok {
		set = treeset.NewWith(compareVertices)
		bg.adj[v] = set
		bg.order = append(bg.order, v)
	}
	return set
}
