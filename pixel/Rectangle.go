package pixel

import "fmt"

// PxRectangleU is an unsigned pixel rectangle defined by its origin and size.
type PxRectangleU struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

func NewPxRectangleU(x uint32, y uint32, width uint32, height uint32) PxRectangleU {
	return PxRectangleU{X: x, Y: y, Width: width, Height: height}
}

func (r PxRectangleU) Left() uint32 {
	return r.X
}

func (r PxRectangleU) Top() uint32 {
	return r.Y
}

func (r PxRectangleU) Right() uint32 {
	return r.X + r.Width
}

func (r PxRectangleU) Bottom() uint32 {
	return r.Y + r.Height
}

func (r PxRectangleU) Extent() PxExtent2D {
	return PxExtent2D{Width: r.Width, Height: r.Height}
}

func (r PxRectangleU) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

func (r PxRectangleU) String() string {
	return fmt.Sprintf("X:%d Y:%d Width:%d Height:%d", r.X, r.Y, r.Width, r.Height)
}
