package bitmap

// Walker steps through the flat pixel buffer at a fixed stride. Rows,
// columns, and square-side probes are all the same traversal over the
// row-major buffer, differing only in start index, stride, and length,
// so they share this one abstraction. A Walker is a value; copying it
// restarts the traversal from the copy's position.
type Walker struct {
	pixels    []bool
	index     uint64
	stride    uint64
	remaining uint32
}

// HWalk returns a Walker across row, starting at col and moving right
// to the row's end.
func (b *Bitmap) HWalk(row, col uint32) Walker {
	return Walker{
		pixels:    b.pixels,
		index:     uint64(row)*uint64(b.width) + uint64(col),
		stride:    1,
		remaining: b.width - col,
	}
}

// VWalk returns a Walker down column col, starting at row and moving
// to the column's bottom.
func (b *Bitmap) VWalk(row, col uint32) Walker {
	return Walker{
		pixels:    b.pixels,
		index:     uint64(row)*uint64(b.width) + uint64(col),
		stride:    uint64(b.width),
		remaining: b.height - row,
	}
}

// Next yields the next pixel sample. ok is false once the walk has
// stepped past its final sample.
func (w *Walker) Next() (filled, ok bool) {
	if w.remaining == 0 {
		return false, false
	}
	filled = w.pixels[w.index]
	w.index += w.stride
	w.remaining--
	return filled, true
}

// Run consumes the walker and returns the number of consecutive filled
// samples at its front.
func (w Walker) Run() uint32 {
	var n uint32
	for {
		filled, ok := w.Next()
		if !ok || !filled {
			return n
		}
		n++
	}
}
