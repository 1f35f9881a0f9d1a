// Package trace converts a binary pixel mask into a compound vector path:
// an ordered list of closed, axis-aligned sub-paths that reproduce the
// mask's silhouette, holes, and islands under an even-odd fill rule.
//
// The pipeline runs in five strictly sequential stages per mask:
//
//  1. BuildBoundary scans the mask and collects every exposed pixel-border
//     segment into an undirected graph over lattice points.
//  2. ExtractLoops decomposes that graph into edge-disjoint closed loops,
//     destroying the graph in the process.
//  3. Classify computes each loop's nesting depth (how many other loops
//     contain its centroid) and derives its role: outline, hole, or island.
//  4. SynthesizeBridges emits small connector rectangles that keep islands
//     mechanically attached to the surrounding material when cut out.
//  5. Assemble concatenates loops and bridges into the final CompoundPath.
//
// Trace runs all five stages for one mask.
//
// # Coordinate System
//
// Loop vertices are lattice points on pixel boundaries, not pixel centres:
// for an H×W mask, valid coordinates are 0 ≤ x ≤ W and 0 ≤ y ≤ H with the
// origin at the top-left and Y increasing downward. Bridge corners may fall
// between lattice points.
//
// # Determinism
//
// Given the same mask, every stage produces byte-identical output: neighbour
// sets are sorted containers with lexicographic (x, y) ordering, walks always
// pick the smallest candidate, and loops are reported in the order their
// starting vertex was first inserted into the graph. Golden outputs in tests
// rely on this tie-break rule; do not replace it without re-validating them.
//
// # Error Handling
//
// A degenerate or empty mask is not an error and yields an empty result.
// The only failure mode is ErrBoundaryDecomposition, raised when a loop walk
// dead-ends, which indicates a malformed boundary graph (structurally
// impossible for graphs built by BuildBoundary).
//
// # Scale Assumptions
//
// Classify is quadratic in the number of loops times average loop length.
// Masks in the target use case (quantized pixel-art colour layers) produce
// tens of loops, not thousands; revisit the classifier before applying this
// package to inputs outside that envelope.
package trace
