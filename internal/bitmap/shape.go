package bitmap

import "fmt"

// Point addresses one pixel: X is the column index, Y the row index.
type Point struct {
	X uint32
	Y uint32
}

// Shape is a line or square located in a bitmap. For a horizontal line
// Start and End share Y; for a vertical line they share X. For a square
// Start is the top-left corner, End the bottom-right, and the X and Y
// deltas are equal. Absence of a shape is expressed by the comma-ok
// second return of the scanners, never by sentinel coordinates.
type Shape struct {
	Start Point
	End   Point
}

// HLength returns the inclusive horizontal extent, End.X - Start.X + 1.
func (s Shape) HLength() uint32 { return s.End.X - s.Start.X + 1 }

// VLength returns the inclusive vertical extent, End.Y - Start.Y + 1.
func (s Shape) VLength() uint32 { return s.End.Y - s.Start.Y + 1 }

// Side returns a square's side length. Valid squares have equal X and Y
// extents, so either axis serves.
func (s Shape) Side() uint32 { return s.HLength() }

// String renders the shape in the output contract's row-first order.
func (s Shape) String() string {
	return fmt.Sprintf("%d %d %d %d", s.Start.Y, s.Start.X, s.End.Y, s.End.X)
}
