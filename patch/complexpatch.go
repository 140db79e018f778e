package patch

import (
	"encoding/binary"
	"slices"

	"github.com/kpfaulkner/complexpatch/pixel"
)

// ComplexPatch combines slices, content spans and per cell grid flags into one validated,
// immutable patch description.
type ComplexPatch struct {
	slices             *Slices
	contentSpans       *ContentSpans
	gridFlags          []GridFlags
	trimmedRectanglePx pixel.PxRectangleU
}

// NewComplexPatch validates that the parts fit together and derives the trimmed rectangle
// from the first and last slice on each axis. gridFlags is copied.
func NewComplexPatch(slices *Slices, contentSpans *ContentSpans, gridFlags []GridFlags) (*ComplexPatch, error) {
	if slices == nil || !slices.IsValid() {
		return nil, newArgumentError("slices", "must be valid")
	}
	if contentSpans == nil || !contentSpans.IsValid() {
		return nil, newArgumentError("contentSpans", "must be valid")
	}
	expectedCells := (int(slices.CountX()) - 1) * (int(slices.CountY()) - 1)
	if len(gridFlags) != expectedCells {
		err := newArgumentError("gridFlags", "must be compatible with the slices, expected %d entries got %d", expectedCells, len(gridFlags))
		err.Structural = true
		return nil, err
	}

	spanRangeX, err := slices.SliceXSpanRange()
	if err != nil {
		return nil, err
	}
	spanRangeY, err := slices.SliceYSpanRange()
	if err != nil {
		return nil, err
	}

	return &ComplexPatch{
		slices:       slices,
		contentSpans: contentSpans,
		gridFlags:    cloneGridFlags(gridFlags),
		trimmedRectanglePx: pixel.NewPxRectangleU(uint32(spanRangeX.Start), uint32(spanRangeY.Start),
			uint32(spanRangeX.Length), uint32(spanRangeY.Length)),
	}, nil
}

func cloneGridFlags(gridFlags []GridFlags) []GridFlags {
	if gridFlags == nil {
		return []GridFlags{}
	}
	return slices.Clone(gridFlags)
}

func (cp *ComplexPatch) IsValid() bool {
	return cp.slices.IsValid() && cp.contentSpans.IsValid()
}

func (cp *ComplexPatch) Slices() *Slices {
	return cp.slices
}

func (cp *ComplexPatch) ContentSpans() *ContentSpans {
	return cp.contentSpans
}

// GridFlags returns the row-major cell flags. The result must not be modified.
func (cp *ComplexPatch) GridFlags() []GridFlags {
	return cp.gridFlags[:len(cp.gridFlags):len(cp.gridFlags)]
}

func (cp *ComplexPatch) TrimmedRectanglePx() pixel.PxRectangleU {
	return cp.trimmedRectanglePx
}

// GridSize returns the number of cell columns and rows.
func (cp *ComplexPatch) GridSize() (uint32, uint32) {
	return uint32(cp.slices.CountX()) - 1, uint32(cp.slices.CountY()) - 1
}

// GridFlagAt returns the flags of the cell at column x, row y.
func (cp *ComplexPatch) GridFlagAt(x uint32, y uint32) (GridFlags, error) {
	width, height := cp.GridSize()
	if x >= width || y >= height {
		return GRID_NONE, newArgumentError("cell", "(%d,%d) outside the %dx%d grid", x, y, width, height)
	}
	return cp.gridFlags[y*width+x], nil
}

// IsCellTransparent reports whether the cell at column x, row y is transparent. Cells outside
// the grid are reported as opaque.
func (cp *ComplexPatch) IsCellTransparent(x uint32, y uint32) bool {
	flags, err := cp.GridFlagAt(x, y)
	return err == nil && flags.IsFlagged(GRID_TRANSPARENT)
}

// CalcMeshInfo is a shortcut for Slices().CalcMeshInfo().
func (cp *ComplexPatch) CalcMeshInfo() MeshInfo {
	return cp.slices.CalcMeshInfo()
}

// Equal compares every field, including each grid cell.
func (cp *ComplexPatch) Equal(other *ComplexPatch) bool {
	if cp == nil || other == nil {
		return cp == other
	}
	return cp.slices.Equal(other.slices) && cp.contentSpans.Equal(other.contentSpans) &&
		cp.trimmedRectanglePx == other.trimmedRectanglePx && gridFlagsEqual(cp.gridFlags, other.gridFlags)
}

func gridFlagsEqual(lhs []GridFlags, rhs []GridFlags) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for i := range lhs {
		if lhs[i] != rhs[i] {
			return false
		}
	}
	return true
}

func (cp *ComplexPatch) Hash() uint64 {
	buf := appendSlices(nil, cp.slices)
	buf = appendContentSpans(buf, cp.contentSpans)
	r := cp.trimmedRectanglePx
	for _, v := range []uint32{r.X, r.Y, r.Width, r.Height} {
		buf = binary.LittleEndian.AppendUint32(buf, v)
	}
	for _, f := range cp.gridFlags {
		buf = append(buf, byte(f))
	}
	return hashBytes(buf)
}
