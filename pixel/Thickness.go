package pixel

import "fmt"

// PxThicknessU describes an unsigned border in each of the four directions.
type PxThicknessU struct {
	Left   uint32
	Top    uint32
	Right  uint32
	Bottom uint32
}

func NewPxThicknessU(left uint32, top uint32, right uint32, bottom uint32) PxThicknessU {
	return PxThicknessU{Left: left, Top: top, Right: right, Bottom: bottom}
}

// NewUniformPxThicknessU returns a thickness with the same value on every side.
func NewUniformPxThicknessU(value uint32) PxThicknessU {
	return PxThicknessU{Left: value, Top: value, Right: value, Bottom: value}
}

func (t PxThicknessU) SumX() uint32 {
	return t.Left + t.Right
}

func (t PxThicknessU) SumY() uint32 {
	return t.Top + t.Bottom
}

func (t PxThicknessU) Sum() PxExtent2D {
	return PxExtent2D{Width: t.SumX(), Height: t.SumY()}
}

func (t PxThicknessU) String() string {
	return fmt.Sprintf("Left:%d Top:%d Right:%d Bottom:%d", t.Left, t.Top, t.Right, t.Bottom)
}
