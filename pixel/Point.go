package pixel

import "fmt"

// PxPoint2 is a signed pixel position.
type PxPoint2 struct {
	X int32
	Y int32
}

func NewPxPoint2(x int32, y int32) PxPoint2 {
	return PxPoint2{X: x, Y: y}
}

func (p PxPoint2) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// PxExtent2D is an unsigned pixel extent.
type PxExtent2D struct {
	Width  uint32
	Height uint32
}

func NewPxExtent2D(width uint32, height uint32) PxExtent2D {
	return PxExtent2D{Width: width, Height: height}
}

func (e PxExtent2D) Add(other PxExtent2D) PxExtent2D {
	return PxExtent2D{Width: e.Width + other.Width, Height: e.Height + other.Height}
}

func (e PxExtent2D) String() string {
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}

// PxSize2D is a signed pixel size. Negative sizes are representable and rejected by
// the code that consumes them.
type PxSize2D struct {
	Width  int32
	Height int32
}

func NewPxSize2D(width int32, height int32) PxSize2D {
	return PxSize2D{Width: width, Height: height}
}

func (s PxSize2D) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
