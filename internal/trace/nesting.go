package trace

// containEpsilon pads the slope denominator in the ray-crossing test so an
// exactly horizontal edge can never divide by zero. The worst case is a rare
// misclassification when a centroid lines up exactly with a vertex, which is
// acceptable per the error-handling contract.
const containEpsilon = 1e-9

// Contains reports whether p lies inside the loop under the even-odd rule,
// using the standard ray-crossing test against a ray extending in +X.
func (l Loop) Contains(p Point) bool {
	inside := false
	n := len(l.Vertices)
	for i := 0; i < n; i++ {
		a := l.Vertices[i]
		b := l.Vertices[(i+1)%n]
		ay, by := float64(a.Y), float64(b.Y)
		if (ay > p.Y) == (by > p.Y) {
			continue
		}
		t := (p.Y - ay) / (by - ay + containEpsilon)
		if p.X < float64(a.X)+t*float64(b.X-a.X) {
			inside = !inside
		}
	}
	return inside
}

// Classify computes the nesting depth of every loop — the number of other
// loops whose interior contains its centroid — and derives each loop's role
// from depth parity: depth 0 is an outline, odd depth a hole, even depth ≥ 2
// an island.
//
// Containment is evaluated at centroids rather than vertices to stay clear
// of boundary-exact degeneracies. The input slice is not modified; loops in
// the result keep their input order.
//
// A candidate container must also cover the loop's bounding box. The
// centroid test alone misfires on concentric shapes, where an inner loop's
// polygon happens to contain the outer loop's centroid even though it
// cannot possibly contain the outer loop.
//
// Cost is O(loops² × average loop length), which is fine at this package's
// design scale of tens of loops per mask.
func Classify(loops []Loop) []ClassifiedLoop {
	boxes := make([]Rect, len(loops))
	for i, l := range loops {
		boxes[i] = l.Bounds()
	}

	out := make([]ClassifiedLoop, len(loops))
	for i, l := range loops {
		c := l.Centroid()
		depth := 0
		for j, other := range loops {
			if j == i || !boxCovers(boxes[j], boxes[i]) {
				continue
			}
			if other.Contains(c) {
				depth++
			}
		}
		out[i] = ClassifiedLoop{Loop: l, Depth: depth, Role: roleForDepth(depth)}
	}
	return out
}

// boxCovers reports whether outer covers inner entirely.
func boxCovers(outer, inner Rect) bool {
	return outer.MinX <= inner.MinX && outer.MinY <= inner.MinY &&
		outer.MaxX >= inner.MaxX && outer.MaxY >= inner.MaxY
}
