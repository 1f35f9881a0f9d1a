package trace

import (
	"testing"
)

// testGrid builds a Grid from rows of '#' (mask) and '.' (background).
type testGrid struct {
	rows []string
}

func gridOf(rows ...string) testGrid { return testGrid{rows: rows} }

func (g testGrid) Size() (int, int) {
	if len(g.rows) == 0 {
		return 0, 0
	}
	return len(g.rows[0]), len(g.rows)
}

func (g testGrid) At(x, y int) bool {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= len(g.rows[y]) {
		return false
	}
	return g.rows[y][x] == '#'
}

func TestBuildBoundary_SinglePixel(t *testing.T) {
	bg := BuildBoundary(gridOf("#"))

	if got := bg.EdgeCount(); got != 4 {
		t.Fatalf("EdgeCount = %d; want 4", got)
	}
	corners := []Vertex{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, v := range corners {
		if d := bg.Degree(v); d != 2 {
			t.Errorf("Degree(%v) = %d; want 2", v, d)
		}
	}
}

func TestBuildBoundary_Degenerate(t *testing.T) {
	cases := []struct {
		name string
		grid testGrid
	}{
		{"NoRows", gridOf()},
		{"EmptyRow", gridOf("")},
		{"AllBackground", gridOf("...", "...")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bg := BuildBoundary(tc.grid)
			if bg.EdgeCount() != 0 {
				t.Errorf("EdgeCount = %d; want 0", bg.EdgeCount())
			}
			loops, err := ExtractLoops(bg)
			if err != nil {
				t.Fatalf("ExtractLoops error: %v", err)
			}
			if len(loops) != 0 {
				t.Errorf("loops = %d; want 0", len(loops))
			}
		})
	}
}

// Interior borders between two mask pixels must cancel out entirely.
func TestBuildBoundary_InteriorSuppressed(t *testing.T) {
	bg := BuildBoundary(gridOf(
		"##",
		"##",
	))

	// A 2x2 block exposes only its 8 perimeter unit segments.
	if got := bg.EdgeCount(); got != 8 {
		t.Fatalf("EdgeCount = %d; want 8", got)
	}
	if d := bg.Degree(Vertex{1, 1}); d != 0 {
		t.Errorf("interior vertex (1,1) has degree %d; want 0", d)
	}
}

// Every vertex of a boundary graph has even degree: 2 normally, 4 at a
// junction formed by diagonally touching pixels.
func TestBuildBoundary_EvenDegree(t *testing.T) {
	bg := BuildBoundary(gridOf(
		"#.#",
		".#.",
		"#.#",
	))

	sawJunction := false
	for _, v := range bg.Vertices() {
		d := bg.Degree(v)
		if d != 2 && d != 4 {
			t.Errorf("Degree(%v) = %d; want 2 or 4", v, d)
		}
		if d == 4 {
			sawJunction = true
		}
	}
	if !sawJunction {
		t.Error("expected at least one degree-4 junction vertex")
	}
}

func TestBoundaryGraph_NeighborsSorted(t *testing.T) {
	bg := BuildBoundary(gridOf(
		"#.",
		".#",
	))

	// (1,1) joins both pixels; its four neighbours must come back in
	// ascending lexicographic order regardless of insertion order.
	got := bg.Neighbors(Vertex{1, 1})
	want := []Vertex{{0, 1}, {1, 0}, {1, 2}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(1,1) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors(1,1) = %v; want %v", got, want)
		}
	}
}
