package trace

// SynthesizeBridges emits the connector rectangles for one classified loop.
// Only islands produce bridges: a loop whose role is outline or hole returns
// nil, as does an island whose bounding box touches the canvas border (such
// a loop is part of an outer silhouette piece, not a true island).
//
// A qualifying island receives exactly two bridges, one extending left from
// its bounding box and one extending right, both centred vertically on the
// box's mid-height. Bridges are additive filled geometry: the assembler
// emits them as their own sub-paths so they render filled regardless of the
// island's nesting parity.
//
// w and h are the mask dimensions; the canvas border runs along x=0, x=w,
// y=0, and y=h in lattice coordinates.
func SynthesizeBridges(cl ClassifiedLoop, w, h int, opts BridgeOptions) []Bridge {
	if cl.Role != RoleIsland {
		return nil
	}
	box := cl.Bounds()
	if box.MinX == 0 || box.MinY == 0 || box.MaxX == w || box.MaxY == h {
		return nil
	}

	midY := (float64(box.MinY) + float64(box.MaxY)) / 2
	left := bridgeRect(float64(box.MinX)-opts.Span, float64(box.MinX), midY, opts.HalfThickness)
	right := bridgeRect(float64(box.MaxX), float64(box.MaxX)+opts.Span, midY, opts.HalfThickness)
	return []Bridge{left, right}
}

// bridgeRect builds a thin rectangle spanning [x0, x1] horizontally,
// centred on midY with the given vertical half-thickness.
func bridgeRect(x0, x1, midY, half float64) Bridge {
	return Bridge{Quad: [4]Point{
		{X: x0, Y: midY - half},
		{X: x1, Y: midY - half},
		{X: x1, Y: midY + half},
		{X: x0, Y: midY + half},
	}}
}
