package scan

import "figsearch/internal/bitmap"

// LargestSquare returns the largest axis-aligned square whose four
// border segments consist entirely of filled pixels; interior pixels
// are unconstrained. A single filled pixel is a valid 1x1 square.
// Ties go to the smaller top-left row, then the smaller top-left
// column. ok is false when no filled pixel exists.
func LargestSquare(bm *bitmap.Bitmap) (bitmap.Shape, bool) {
	return largestSquare(bm, nil)
}

// LargestSquareStats is LargestSquare with a diagnostic record.
func LargestSquareStats(bm *bitmap.Bitmap) (bitmap.Shape, bool, Stats) {
	var st Stats
	shape, ok := largestSquare(bm, &st)
	return shape, ok, st
}

// largestSquare visits candidate top-left anchors in row-major index
// order. Per anchor: probe the two orthogonal rays to bound the
// possible side, skip candidates that cannot beat the best, verify the
// remaining two sides, and shrink symmetrically on failure. The
// remaining-area prune is sound only because anchors arrive in
// increasing row order, which also means the scan stays sequential.
func largestSquare(bm *bitmap.Bitmap, st *Stats) (bitmap.Shape, bool) {
	var best bitmap.Shape
	var bestSide uint32
	found := false

	width := uint64(bm.Width())
	height := bm.Height()
	pixels := bm.Pixels()

	for i, filled := range pixels {
		if !filled {
			continue
		}
		row := uint32(uint64(i) / width)
		col := uint32(uint64(i) % width)

		// No square anchored at or below this row can span more
		// pixels than remain there.
		remaining := uint64(height-row) * width
		if uint64(bestSide)*uint64(bestSide) >= remaining {
			st.markPruned()
			return best, found
		}

		st.addAnchor()
		anchor := bitmap.Point{X: col, Y: row}
		candidate := bitmap.Shape{Start: anchor, End: diagonalProbe(bm, anchor, st)}

		// The probe is only an upper bound; not worth verifying if
		// even the bound cannot improve on the best.
		if candidate.Side() <= bestSide {
			continue
		}

		if verifyBorder(bm, candidate, st) {
			if !found || better(candidate, best, bitmap.Shape.Side) {
				best = candidate
				bestSide = candidate.Side()
				found = true
			}
			continue
		}

		// Shrink toward the anchor, keeping the candidate square,
		// until some size verifies. The 1x1 at the anchor itself
		// always does.
		for candidate.End.X > anchor.X {
			candidate.End.X--
			candidate.End.Y--
			st.addShrink()
			if verifyBorder(bm, candidate, st) {
				if !found || better(candidate, best, bitmap.Shape.Side) {
					best = candidate
					bestSide = candidate.Side()
					found = true
				}
				break
			}
		}
	}
	return best, found
}

// diagonalProbe advances one step right and one step down from the
// anchor while both the pixel directly right (on the anchor's row) and
// the pixel directly below (on the anchor's column) stay filled and in
// bounds. The stopping point is the bottom-right corner of the largest
// square the anchor's two orthogonal rays could support. The anchor
// itself must be filled.
func diagonalProbe(bm *bitmap.Bitmap, anchor bitmap.Point, st *Stats) bitmap.Point {
	x, y := anchor.X, anchor.Y
	for {
		if x >= bm.Width() || !bm.At(anchor.Y, x) {
			break
		}
		if y >= bm.Height() || !bm.At(y, anchor.X) {
			break
		}
		st.addPixels(2)
		x++
		y++
	}
	return bitmap.Point{X: x - 1, Y: y - 1}
}

// verifyBorder checks the two sides the diagonal probe did not: the
// bottom row segment and the right column segment must each be filled
// all the way to the bottom-right corner. Together with the probed top
// and left sides this covers the whole border.
func verifyBorder(bm *bitmap.Bitmap, sq bitmap.Shape, st *Stats) bool {
	st.addVerification()
	side := sq.Side()

	bottom := bm.HWalk(sq.End.Y, sq.Start.X).Run()
	st.addPixels(uint64(bottom))
	if bottom < side {
		return false
	}

	right := bm.VWalk(sq.Start.Y, sq.End.X).Run()
	st.addPixels(uint64(right))
	return right >= side
}
