package scan

import "figsearch/internal/bitmap"

// LongestHorizontal returns the longest contiguous horizontal run of
// filled pixels, or ok=false when the bitmap holds no filled pixel at
// all. Ties go to the run nearer the top, then nearer the left.
func LongestHorizontal(bm *bitmap.Bitmap) (bitmap.Shape, bool) {
	return scanRowsHorizontal(bm, 0, bm.Height(), nil)
}

// LongestHorizontalStats is LongestHorizontal with a diagnostic record.
func LongestHorizontalStats(bm *bitmap.Bitmap) (bitmap.Shape, bool, Stats) {
	var st Stats
	shape, ok := scanRowsHorizontal(bm, 0, bm.Height(), &st)
	return shape, ok, st
}

// LongestVertical is the 90-degree dual of LongestHorizontal: longest
// contiguous vertical run, ties to the smaller row, then smaller column.
func LongestVertical(bm *bitmap.Bitmap) (bitmap.Shape, bool) {
	return scanColsVertical(bm, 0, bm.Width(), nil)
}

// LongestVerticalStats is LongestVertical with a diagnostic record.
func LongestVerticalStats(bm *bitmap.Bitmap) (bitmap.Shape, bool, Stats) {
	var st Stats
	shape, ok := scanColsVertical(bm, 0, bm.Width(), &st)
	return shape, ok, st
}

// scanRowsHorizontal finds the best horizontal run in rows
// [fromRow, toRow). Within a row every column belongs to at most one
// run extension: after a run is measured the scan resumes past its end,
// and a row is abandoned once fewer columns remain than the best run
// already spans (a shorter run cannot win, and an equal one loses every
// tie-break to the earlier find).
func scanRowsHorizontal(bm *bitmap.Bitmap, fromRow, toRow uint32, st *Stats) (bitmap.Shape, bool) {
	var best bitmap.Shape
	var bestLen uint32
	found := false

	width := bm.Width()
	for row := fromRow; row < toRow; row++ {
		for col := uint32(0); col < width-bestLen; {
			st.addPixels(1)
			if !bm.At(row, col) {
				col++
				continue
			}
			length := bm.HWalk(row, col).Run()
			st.addPixels(uint64(length - 1))
			st.addRun()
			candidate := bitmap.Shape{
				Start: bitmap.Point{X: col, Y: row},
				End:   bitmap.Point{X: col + length - 1, Y: row},
			}
			if !found || better(candidate, best, bitmap.Shape.HLength) {
				best = candidate
				bestLen = length
				found = true
			}
			col += length
		}
	}
	return best, found
}

// scanColsVertical finds the best vertical run in columns
// [fromCol, toCol); structure mirrors scanRowsHorizontal with the row
// and column roles swapped.
func scanColsVertical(bm *bitmap.Bitmap, fromCol, toCol uint32, st *Stats) (bitmap.Shape, bool) {
	var best bitmap.Shape
	var bestLen uint32
	found := false

	height := bm.Height()
	for col := fromCol; col < toCol; col++ {
		for row := uint32(0); row < height-bestLen; {
			st.addPixels(1)
			if !bm.At(row, col) {
				row++
				continue
			}
			length := bm.VWalk(row, col).Run()
			st.addPixels(uint64(length - 1))
			st.addRun()
			candidate := bitmap.Shape{
				Start: bitmap.Point{X: col, Y: row},
				End:   bitmap.Point{X: col, Y: row + length - 1},
			}
			if !found || better(candidate, best, bitmap.Shape.VLength) {
				best = candidate
				bestLen = length
				found = true
			}
			row += length
		}
	}
	return best, found
}
