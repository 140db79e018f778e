package patch

import (
	"github.com/kpfaulkner/complexpatch/util"
)

// CreateGridFlags derives the transparency of every cell formed by consecutive X and Y
// slices. The result is row-major with index y*(len(slicesX)-1)+x.
//
// A cell is transparent when the X slice on its left or the Y slice on its top is marked
// transparent. The trailing slice of a cell is not consulted.
func CreateGridFlags(slicesX []Slice, slicesY []Slice) ([]GridFlags, error) {
	if len(slicesX) < 2 || len(slicesY) < 2 {
		return nil, structureError("a patch needs at least two slices per axis, got %d x %d", len(slicesX), len(slicesY))
	}

	countX := int32(len(slicesX) - 1)
	countY := int32(len(slicesY) - 1)
	grid := util.New2DMatrix[GridFlags](countY, countX)

	for x := int32(0); x < countX; x++ {
		if slicesX[x].Flags.IsFlagged(SLICE_TRANSPARENT) {
			grid.FillColumn(x, GRID_TRANSPARENT)
		}
	}
	for y := int32(0); y < countY; y++ {
		if slicesY[y].Flags.IsFlagged(SLICE_TRANSPARENT) {
			grid.FillRow(y, GRID_TRANSPARENT)
		}
	}
	return grid.Data, nil
}
