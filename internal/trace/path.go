package trace

// Assemble concatenates loops and their bridges into the final compound
// path. Sub-paths appear in loop discovery order, each loop immediately
// followed by its own bridges, so output is deterministic whenever the
// inputs are. bridges must be parallel to loops; a nil entry means the loop
// has none.
//
// No coordinate transform, scaling, or colour assignment happens here; the
// serialization layer owns those. An empty loop list yields an empty path.
func Assemble(loops []ClassifiedLoop, bridges [][]Bridge) CompoundPath {
	var path CompoundPath
	for i, cl := range loops {
		pts := make([]Point, len(cl.Vertices))
		for j, v := range cl.Vertices {
			pts[j] = Point{X: float64(v.X), Y: float64(v.Y)}
		}
		path.SubPaths = append(path.SubPaths, SubPath{Points: pts})

		if i < len(bridges) {
			for _, b := range bridges[i] {
				path.SubPaths = append(path.SubPaths, SubPath{
					Points: []Point{b.Quad[0], b.Quad[1], b.Quad[2], b.Quad[3]},
					Bridge: true,
				})
			}
		}
	}
	return path
}

// Trace runs the full pipeline for one mask: boundary graph, loop
// extraction, nesting classification, bridge synthesis, and assembly.
// An empty or degenerate mask yields an empty CompoundPath and no error.
func Trace(g Grid, opts Options) (CompoundPath, error) {
	bg := BuildBoundary(g)
	loops, err := ExtractLoops(bg)
	if err != nil {
		return CompoundPath{}, err
	}
	classified := Classify(loops)

	bridges := make([][]Bridge, len(classified))
	if opts.Bridges {
		w, h := g.Size()
		for i, cl := range classified {
			bridges[i] = SynthesizeBridges(cl, w, h, opts.Bridge)
		}
	}
	return Assemble(classified, bridges), nil
}
