// Package bitmap provides the boolean pixel grid figsearch queries run
// against, the point/shape geometry model, and the loader that builds a
// validated grid from the textual bitmap format.
package bitmap

import "fmt"

// Bitmap is an immutable boolean pixel grid. Pixels are stored row-major
// in a single flat buffer (index = row*width + col). A Bitmap is only
// ever produced by a successful load, so its dimensions are always
// strictly positive and width*height always equals len(pixels).
type Bitmap struct {
	width  uint32
	height uint32
	pixels []bool
}

// Width returns the number of columns.
func (b *Bitmap) Width() uint32 { return b.width }

// Height returns the number of rows.
func (b *Bitmap) Height() uint32 { return b.height }

// Area returns the total pixel count, width*height.
func (b *Bitmap) Area() uint64 { return uint64(b.width) * uint64(b.height) }

// At reports whether the pixel at (row, col) is filled. Row and column
// must lie inside the grid; the scanners derive every index they pass
// here from the bitmap's own declared dimensions.
func (b *Bitmap) At(row, col uint32) bool {
	if row >= b.height || col >= b.width {
		panic(fmt.Sprintf("bitmap: At(%d, %d) out of bounds for %dx%d grid", row, col, b.height, b.width))
	}
	return b.pixels[uint64(row)*uint64(b.width)+uint64(col)]
}

// Pixels returns the raw row-major pixel buffer. The slice is shared
// with the bitmap and must not be mutated; it exists for bulk index
// traversals that would otherwise pay the row/col arithmetic per pixel.
func (b *Bitmap) Pixels() []bool { return b.pixels }
