// Package render produces the tool's stdout contract. The strings here
// are consumed by scripts, so they stay byte-exact and unstyled; the
// interactive viewer has its own presentation layer.
package render

import (
	"fmt"
	"strings"

	"figsearch/internal/bitmap"
	"figsearch/internal/scan"
)

// NotFound is printed when a well-formed bitmap contains no matching
// shape. That is a successful outcome, not an error.
const NotFound = "Not found"

// Valid is printed by the validate-only operation on success.
const Valid = "Valid"

// Result renders a shape query outcome: the shape's two defining points
// as "row1 col1 row2 col2" (row before column), or NotFound.
func Result(shape bitmap.Shape, ok bool) string {
	if !ok {
		return NotFound
	}
	return shape.String()
}

// Stats renders the diagnostic record printed to stderr under --stats.
func Stats(st scan.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pixels visited:   %d\n", st.PixelsVisited)
	fmt.Fprintf(&b, "runs examined:    %d\n", st.RunsExamined)
	fmt.Fprintf(&b, "anchors probed:   %d\n", st.AnchorsProbed)
	fmt.Fprintf(&b, "borders verified: %d\n", st.BordersVerified)
	fmt.Fprintf(&b, "shrink steps:     %d\n", st.ShrinkSteps)
	fmt.Fprintf(&b, "pruned early:     %t", st.PrunedEarly)
	return b.String()
}
