// Package scan implements the shape searches figsearch answers: longest
// horizontal run, longest vertical run, and largest fully-bordered
// square. All scanners are pure reads over an immutable bitmap and
// share one result ordering, so sequential and partitioned scans report
// the same shape.
package scan

import "figsearch/internal/bitmap"

// sizeFunc measures a shape for comparison: run length for lines, side
// length for squares.
type sizeFunc func(bitmap.Shape) uint32

// better reports whether candidate beats incumbent: larger size wins,
// then the smaller start row, then the smaller start column. Every
// scanner and every partition merge applies exactly this ordering, which
// makes the reported shape unique when several share the maximum size.
func better(candidate, incumbent bitmap.Shape, size sizeFunc) bool {
	cs, is := size(candidate), size(incumbent)
	if cs != is {
		return cs > is
	}
	if candidate.Start.Y != incumbent.Start.Y {
		return candidate.Start.Y < incumbent.Start.Y
	}
	return candidate.Start.X < incumbent.Start.X
}
