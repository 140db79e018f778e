package patch

import (
	"slices"

	"github.com/kpfaulkner/complexpatch/pixel"
	"github.com/kpfaulkner/complexpatch/util"
)

// Slices holds the X slices followed by the Y slices of a patch in one buffer.
type Slices struct {
	slices      []Slice
	flags       Flags
	countX      uint8
	countY      uint8
	countScaleX uint8
	countScaleY uint8
}

// validateRuns checks that a buffer of length entries splits into an X run and a Y run.
func validateRuns(name string, length int, countX uint8, countY uint8) error {
	if length != 0 {
		if countX == 0 {
			return newArgumentError("countX", "can not be zero")
		}
		if countY == 0 {
			return newArgumentError("countY", "can not be zero")
		}
	}
	if int(countX)+int(countY) != length {
		return newArgumentError(name, "%d entries must match the supplied countX+countY (%d+%d)", length, countX, countY)
	}
	return nil
}

// NewSlices validates and copies the supplied slices. The last slice of each run is a pure
// boundary marker and must not carry flags.
func NewSlices(sliceArray []Slice, countX uint8, countY uint8, flags Flags) (*Slices, error) {
	if err := validateRuns("slices", len(sliceArray), countX, countY); err != nil {
		return nil, err
	}

	s := &Slices{
		slices: slices.Clone(sliceArray),
		flags:  flags,
		countX: countX,
		countY: countY,
	}
	if len(s.slices) == 0 {
		return s, nil
	}

	slicesX := s.AsSpanX()
	slicesY := s.AsSpanY()
	if slicesX[len(slicesX)-1].Flags != SLICE_NONE {
		return nil, structureError("invalid x-patch, the last element can not be marked with flags")
	}
	if slicesY[len(slicesY)-1].Flags != SLICE_NONE {
		return nil, structureError("invalid y-patch, the last element can not be marked with flags")
	}

	s.countScaleX = countScaleSlices(slicesX)
	s.countScaleY = countScaleSlices(slicesY)
	return s, nil
}

func countScaleSlices(run []Slice) uint8 {
	count := 0
	for _, s := range run {
		if s.Flags.IsFlagged(SLICE_SCALE) {
			count++
		}
	}
	// a run is at most 255 entries long
	if count > 255 {
		panic("scale slice count exceeds the byte range")
	}
	return uint8(count)
}

func (s *Slices) IsValid() bool {
	return len(s.slices) > 0
}

func (s *Slices) Flags() Flags {
	return s.flags
}

func (s *Slices) CountX() uint8 {
	return s.countX
}

func (s *Slices) CountY() uint8 {
	return s.countY
}

func (s *Slices) CountScaleX() uint8 {
	return s.countScaleX
}

func (s *Slices) CountScaleY() uint8 {
	return s.countScaleY
}

func (s *Slices) ContentAreaCount() uint16 {
	return uint16(s.countX) * uint16(s.countY)
}

// AsSpan returns every slice, X run first. The result must not be modified.
func (s *Slices) AsSpan() []Slice {
	return util.ReadOnlyView(s.slices, 0, len(s.slices))
}

// AsSpanX returns the X run. The result must not be modified.
func (s *Slices) AsSpanX() []Slice {
	return util.ReadOnlyView(s.slices, 0, int(s.countX))
}

// AsSpanY returns the Y run. The result must not be modified.
func (s *Slices) AsSpanY() []Slice {
	return util.ReadOnlyView(s.slices, int(s.countX), int(s.countY))
}

// CalcMeshInfo returns the vertex and index counts needed to render the patch as a
// grid of quads, two triangles per quad.
func (s *Slices) CalcMeshInfo() MeshInfo {
	numX := mirroredCount(s.countX, s.flags.IsFlagged(PATCH_MIRROR_X))
	numY := mirroredCount(s.countY, s.flags.IsFlagged(PATCH_MIRROR_Y))
	vertexCount := int(numX) * int(numY)
	indexCount := util.ClampToZero(int(numX)-1) * util.ClampToZero(int(numY)-1) * 2 * 3
	return NewMeshInfo(numX, numY, vertexCount, indexCount)
}

func mirroredCount(count uint8, mirror bool) uint16 {
	num := uint16(count)
	if mirror && count > 0 {
		num += uint16(count) - 1
	}
	return num
}

// SliceXSpanRange returns the range from the first to the last X slice position.
func (s *Slices) SliceXSpanRange() (pixel.SpanRangeU16, error) {
	return spanRange("slicesX", s.AsSpanX())
}

// SliceYSpanRange returns the range from the first to the last Y slice position.
func (s *Slices) SliceYSpanRange() (pixel.SpanRangeU16, error) {
	return spanRange("slicesY", s.AsSpanY())
}

func spanRange(name string, run []Slice) (pixel.SpanRangeU16, error) {
	if len(run) == 0 {
		return pixel.SpanRangeU16{}, nil
	}
	r, err := pixel.SpanRangeU16FromStartToEnd(run[0].Position, run[len(run)-1].Position)
	if err != nil {
		return pixel.SpanRangeU16{}, &ArgumentError{Param: name, Msg: "last slice precedes the first", Err: err}
	}
	return r, nil
}

// Equal compares the slices element by element along with every count and flag.
func (s *Slices) Equal(other *Slices) bool {
	if s == nil || other == nil {
		return s == other
	}
	return slices.Equal(s.slices, other.slices) && s.flags == other.flags &&
		s.countX == other.countX && s.countY == other.countY &&
		s.countScaleX == other.countScaleX && s.countScaleY == other.countScaleY
}

func (s *Slices) Hash() uint64 {
	return hashBytes(appendSlices(nil, s))
}
