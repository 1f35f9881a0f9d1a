package trace

import "errors"

// ErrBoundaryDecomposition indicates that loop extraction hit a vertex with
// no usable continuation before the walk closed. Boundary graphs built by
// BuildBoundary always have even vertex degree, so this error surfaces only
// for structurally malformed graphs; treat it as fatal for the affected
// layer rather than retrying.
var ErrBoundaryDecomposition = errors.New("trace: boundary decomposition failed")
