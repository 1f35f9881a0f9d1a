package trace

// Grid is the mask view consumed by BuildBoundary. Implementations must be
// immutable for the duration of a Trace call. At reports whether the pixel
// at (x, y) belongs to the mask; coordinates outside the grid are absent
// and must report false.
type Grid interface {
	// Size returns the grid dimensions as (width, height).
	Size() (w, h int)
	// At reports mask membership of pixel (x, y).
	At(x, y int) bool
}

// Vertex is a lattice point on pixel boundaries. For an H×W mask the valid
// range is 0 ≤ X ≤ W, 0 ≤ Y ≤ H.
type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// compareVertices orders vertices lexicographically by (X, Y). It is the
// tie-break rule behind all deterministic traversal in this package and
// matches the emirpasic/gods comparator contract: negative if a < b,
// zero if equal, positive if a > b.
func compareVertices(a, b interface{}) int {
	va := a.(Vertex)
	vb := b.(Vertex)
	if va.X != vb.X {
		return va.X - vb.X
	}
	return va.Y - vb.Y
}

// Point is a 2D coordinate that may fall between lattice points.
// Loop vertices are always integral; bridge corners generally are not.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned bounding box in lattice coordinates.
// Min is inclusive top-left, Max is inclusive bottom-right.
type Rect struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// add grows the box to cover v.
func (r *Rect) add(v Vertex) {
	if v.X < r.MinX {
		r.MinX = v.X
	}
	if v.X > r.MaxX {
		r.MaxX = v.X
	}
	if v.Y < r.MinY {
		r.MinY = v.Y
	}
	if v.Y > r.MaxY {
		r.MaxY = v.Y
	}
}

// Loop is a simple closed polyline of lattice vertices: the last vertex
// connects back to the first. Consecutive vertices always share exactly one
// coordinate (all segments are axis-aligned), and collinear intermediate
// vertices have been collapsed, so every vertex is a direction change.
type Loop struct {
	Vertices []Vertex `json:"vertices"`
}

// Centroid returns the arithmetic mean of the loop's vertices. The nesting
// classifier evaluates containment at centroids rather than at vertices to
// stay clear of boundary-exact degeneracies.
func (l Loop) Centroid() Point {
	var sx, sy float64
	for _, v := range l.Vertices {
		sx += float64(v.X)
		sy += float64(v.Y)
	}
	n := float64(len(l.Vertices))
	return Point{X: sx / n, Y: sy / n}
}

// Bounds returns the loop's bounding box.
func (l Loop) Bounds() Rect {
	r := Rect{
		MinX: l.Vertices[0].X, MinY: l.Vertices[0].Y,
		MaxX: l.Vertices[0].X, MaxY: l.Vertices[0].Y,
	}
	for _, v := range l.Vertices[1:] {
		r.add(v)
	}
	return r
}

// Role classifies a loop by the parity of its nesting depth.
type Role int

const (
	// RoleOutline is a depth-0 loop: the outer silhouette of a region.
	RoleOutline Role = iota
	// RoleHole is an odd-depth loop: it bounds empty space inside a region.
	RoleHole
	// RoleIsland is an even-depth loop (depth ≥ 2): a filled region fully
	// enclosed by a hole. Islands are the only loops that receive bridges.
	RoleIsland
)

// String returns the role name for logs and test output.
func (r Role) String() string {
	switch r {
	case RoleOutline:
		return "outline"
	case RoleHole:
		return "hole"
	case RoleIsland:
		return "island"
	}
	return "unknown"
}

// roleForDepth derives a Role from a nesting depth.
func roleForDepth(depth int) Role {
	switch {
	case depth == 0:
		return RoleOutline
	case depth%2 == 1:
		return RoleHole
	default:
		return RoleIsland
	}
}

// ClassifiedLoop is a Loop annotated with its nesting depth and role.
type ClassifiedLoop struct {
	Loop
	// Depth is the number of other loops whose interior contains this
	// loop's centroid under the even-odd rule.
	Depth int `json:"depth"`
	// Role is derived from Depth parity; see roleForDepth.
	Role Role `json:"role"`
}

// Bridge is a thin connector rectangle joining an island to the material
// around it. It carries no colour semantics; it exists purely so that a
// physically cut island stays attached.
type Bridge struct {
	// Quad holds the four corners in drawing order.
	Quad [4]Point `json:"quad"`
}

// SubPath is one closed piece of a CompoundPath: a move to Points[0],
// lines through the remaining points, and an implicit close.
type SubPath struct {
	Points []Point `json:"points"`
	// Bridge marks connector geometry, which must always render filled
	// regardless of nesting parity.
	Bridge bool `json:"bridge,omitempty"`
}

// CompoundPath is the final artifact of a Trace call: an ordered list of
// closed sub-paths meant to be rendered with the even-odd fill rule, which
// recreates holes and islands without explicit clipping.
type CompoundPath struct {
	SubPaths []SubPath `json:"sub_paths"`
}

// Empty reports whether the path contains no geometry at all.
func (p CompoundPath) Empty() bool { return len(p.SubPaths) == 0 }

// BridgeOptions tunes the connector rectangles emitted for islands.
type BridgeOptions struct {
	// Span is the horizontal extent of each bridge in mask units, measured
	// outward from the island's bounding box.
	Span float64
	// HalfThickness is half the bridge height in mask units; bridges are
	// centred vertically on the island's bounding-box mid-height.
	HalfThickness float64
}

// DefaultBridgeOptions returns bridge geometry suitable for pixel-art
// stencils: 2 mask units long and 1 unit thick.
func DefaultBridgeOptions() BridgeOptions {
	return BridgeOptions{Span: 2, HalfThickness: 0.5}
}

// Options configures a Trace call.
type Options struct {
	// Bridges enables connector synthesis for islands.
	Bridges bool
	// Bridge tunes connector geometry; ignored when Bridges is false.
	Bridge BridgeOptions
}

// DefaultOptions returns Options with bridges enabled at default geometry.
func DefaultOptions() Options {
	return Options{Bridges: true, Bridge: DefaultBridgeOptions()}
}
