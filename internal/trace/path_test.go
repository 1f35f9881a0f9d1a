package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssemble_Ordering(t *testing.T) {
	loops := []ClassifiedLoop{
		{Loop: Loop{Vertices: []Vertex{{0, 0}, {0, 2}, {2, 2}, {2, 0}}}},
		{Loop: Loop{Vertices: []Vertex{{4, 4}, {4, 6}, {6, 6}, {6, 4}}}, Depth: 2, Role: RoleIsland},
	}
	bridges := [][]Bridge{
		nil,
		{
			bridgeRect(2, 4, 5, 0.5),
			bridgeRect(6, 8, 5, 0.5),
		},
	}

	path := Assemble(loops, bridges)
	require.Len(t, path.SubPaths, 4)

	// Loop, then that loop's bridges, in discovery order.
	require.False(t, path.SubPaths[0].Bridge)
	require.False(t, path.SubPaths[1].Bridge)
	require.True(t, path.SubPaths[2].Bridge)
	require.True(t, path.SubPaths[3].Bridge)
	require.Equal(t, Point{0, 0}, path.SubPaths[0].Points[0])
	require.Equal(t, Point{4, 4}, path.SubPaths[1].Points[0])
}

func TestAssemble_Empty(t *testing.T) {
	path := Assemble(nil, nil)
	if !path.Empty() {
		t.Errorf("Assemble(nil, nil).Empty() = false; want true")
	}
}

func TestTrace_IslandPipeline(t *testing.T) {
	path, err := Trace(islandGrid(), DefaultOptions())
	require.NoError(t, err)

	// Three loops plus the island's two bridges.
	require.Len(t, path.SubPaths, 5)
	var bridgeCount int
	for _, sp := range path.SubPaths {
		if sp.Bridge {
			bridgeCount++
		}
	}
	require.Equal(t, 2, bridgeCount)
}

func TestTrace_BridgesDisabled(t *testing.T) {
	path, err := Trace(islandGrid(), Options{Bridges: false})
	require.NoError(t, err)
	require.Len(t, path.SubPaths, 3)
}

func TestTrace_HoleOnly(t *testing.T) {
	// 5x5 mask with a 1x1 hole: two loops, no island, no bridges.
	path, err := Trace(gridOf(
		"#####",
		"#####",
		"##.##",
		"#####",
		"#####",
	), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, path.SubPaths, 2)
	for i, sp := range path.SubPaths {
		require.False(t, sp.Bridge, "sub-path %d", i)
	}
}

func TestTrace_EmptyMask(t *testing.T) {
	path, err := Trace(gridOf("...", "..."), DefaultOptions())
	require.NoError(t, err)
	require.True(t, path.Empty())
}
