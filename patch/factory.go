package patch

import (
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/complexpatch/pixel"
	"github.com/kpfaulkner/complexpatch/util"
)

// CreateComplexPatch builds a patch from flat slice and span buffers where the X run is
// followed by the Y run. Counts must fit in a byte.
func CreateComplexPatch(sliceArray []Slice, sliceCountX int, sliceCountY int,
	contentSpanArray []ContentSpan, spanCountX int, spanCountY int,
	gridFlags []GridFlags, patchFlags Flags) (*ComplexPatch, error) {

	counts, err := toByteCounts(
		namedCount{"sliceCountX", sliceCountX}, namedCount{"sliceCountY", sliceCountY},
		namedCount{"spanCountX", spanCountX}, namedCount{"spanCountY", spanCountY})
	if err != nil {
		return nil, err
	}

	finalSlices, err := NewSlices(sliceArray, counts[0], counts[1], patchFlags)
	if err != nil {
		return nil, err
	}
	finalContentSpans, err := NewContentSpans(contentSpanArray, counts[2], counts[3])
	if err != nil {
		return nil, err
	}
	return NewComplexPatch(finalSlices, finalContentSpans, gridFlags)
}

// CreateComplexPatchXY builds a patch from separate X and Y buffers.
func CreateComplexPatchXY(sliceArrayX []Slice, sliceArrayY []Slice,
	contentSpanArrayX []ContentSpan, contentSpanArrayY []ContentSpan,
	gridFlags []GridFlags, patchFlags Flags) (*ComplexPatch, error) {

	sliceArray := util.Concat(sliceArrayX, sliceArrayY)
	contentSpans := util.Concat(contentSpanArrayX, contentSpanArrayY)
	return CreateComplexPatch(sliceArray, len(sliceArrayX), len(sliceArrayY),
		contentSpans, len(contentSpanArrayX), len(contentSpanArrayY), gridFlags, patchFlags)
}

// CreateTransparentComplexPatch is CreateComplexPatch with the grid flags derived from the
// slice transparency flags.
func CreateTransparentComplexPatch(sliceArray []Slice, sliceCountX int, sliceCountY int,
	contentSpanArray []ContentSpan, spanCountX int, spanCountY int, patchFlags Flags) (*ComplexPatch, error) {

	counts, err := toByteCounts(
		namedCount{"sliceCountX", sliceCountX}, namedCount{"sliceCountY", sliceCountY},
		namedCount{"spanCountX", spanCountX}, namedCount{"spanCountY", spanCountY})
	if err != nil {
		return nil, err
	}

	finalSlices, err := NewSlices(sliceArray, counts[0], counts[1], patchFlags)
	if err != nil {
		return nil, err
	}
	finalContentSpans, err := NewContentSpans(contentSpanArray, counts[2], counts[3])
	if err != nil {
		return nil, err
	}
	gridFlags, err := CreateGridFlags(finalSlices.AsSpanX(), finalSlices.AsSpanY())
	if err != nil {
		return nil, err
	}
	return NewComplexPatch(finalSlices, finalContentSpans, gridFlags)
}

// CreateTransparentComplexPatchXY is CreateComplexPatchXY with derived grid flags.
func CreateTransparentComplexPatchXY(sliceArrayX []Slice, sliceArrayY []Slice,
	contentSpanArrayX []ContentSpan, contentSpanArrayY []ContentSpan, patchFlags Flags) (*ComplexPatch, error) {

	gridFlags, err := CreateGridFlags(sliceArrayX, sliceArrayY)
	if err != nil {
		return nil, err
	}
	return CreateComplexPatchXY(sliceArrayX, sliceArrayY, contentSpanArrayX, contentSpanArrayY, gridFlags, patchFlags)
}

// CreateExtendedTransparentComplexPatch converts a classic nine-slice into a complex patch
// with four slices per axis and a single content span per axis. Every region is marked
// transparent and only the center region scales.
func CreateExtendedTransparentComplexPatch(nineSlicePx pixel.PxThicknessU, contentMarginPx pixel.PxThicknessU,
	imageSize pixel.PxSize2D) (*ComplexPatch, error) {

	width, err := util.ToUInt32(imageSize.Width)
	if err != nil {
		return nil, &ArgumentError{Param: "imageSize", Msg: "width", Err: err}
	}
	height, err := util.ToUInt32(imageSize.Height)
	if err != nil {
		return nil, &ArgumentError{Param: "imageSize", Msg: "height", Err: err}
	}

	if nineSlicePx.SumX() > width {
		log.Errorf("nine slice SumX %d exceeds the image width of %d", nineSlicePx.SumX(), width)
		return nil, newArgumentError("nineSlicePx", "SumX %d exceeds the image width of %d", nineSlicePx.SumX(), width)
	}
	if nineSlicePx.SumY() > height {
		log.Errorf("nine slice SumY %d exceeds the image height of %d", nineSlicePx.SumY(), height)
		return nil, newArgumentError("nineSlicePx", "SumY %d exceeds the image height of %d", nineSlicePx.SumY(), height)
	}
	if contentMarginPx.SumX() > width {
		log.Errorf("content margin SumX %d exceeds the image width of %d", contentMarginPx.SumX(), width)
		return nil, newArgumentError("contentMarginPx", "SumX %d exceeds the image width of %d", contentMarginPx.SumX(), width)
	}
	if contentMarginPx.SumY() > height {
		log.Errorf("content margin SumY %d exceeds the image height of %d", contentMarginPx.SumY(), height)
		return nil, newArgumentError("contentMarginPx", "SumY %d exceeds the image height of %d", contentMarginPx.SumY(), height)
	}

	// the sum checks above keep every subtraction non negative
	positions, err := toPositions(
		namedCount{"imageSize.Width", int(width)},
		namedCount{"nineSlicePx.Left", int(nineSlicePx.Left)},
		namedCount{"nineSlicePx.Right", int(width - nineSlicePx.Right)},
		namedCount{"imageSize.Height", int(height)},
		namedCount{"nineSlicePx.Top", int(nineSlicePx.Top)},
		namedCount{"nineSlicePx.Bottom", int(height - nineSlicePx.Bottom)},
		namedCount{"contentMarginPx.Left", int(contentMarginPx.Left)},
		namedCount{"contentMarginPx.Right", int(width - contentMarginPx.Right)},
		namedCount{"contentMarginPx.Top", int(contentMarginPx.Top)},
		namedCount{"contentMarginPx.Bottom", int(height - contentMarginPx.Bottom)})
	if err != nil {
		log.Errorf("unable to convert nine slice to a complex patch: %v", err)
		return nil, err
	}
	w, left, right := positions[0], positions[1], positions[2]
	h, top, bottom := positions[3], positions[4], positions[5]

	sliceArray := []Slice{
		NewSlice(0, SLICE_TRANSPARENT),
		NewSlice(left, SLICE_TRANSPARENT|SLICE_SCALE),
		NewSlice(right, SLICE_TRANSPARENT),
		NewSlice(w, SLICE_NONE),
		NewSlice(0, SLICE_TRANSPARENT),
		NewSlice(top, SLICE_TRANSPARENT|SLICE_SCALE),
		NewSlice(bottom, SLICE_TRANSPARENT),
		NewSlice(h, SLICE_NONE),
	}

	spanX, err := NewContentSpanFromNearFar(positions[6], positions[7])
	if err != nil {
		return nil, err
	}
	spanY, err := NewContentSpanFromNearFar(positions[8], positions[9])
	if err != nil {
		return nil, err
	}

	return CreateTransparentComplexPatch(sliceArray, 4, 4, []ContentSpan{spanX, spanY}, 1, 1, PATCH_NONE)
}

type namedCount struct {
	name  string
	value int
}

func toByteCounts(counts ...namedCount) ([]uint8, error) {
	result := make([]uint8, len(counts))
	for i, c := range counts {
		v, err := util.ToUInt8(c.value)
		if err != nil {
			return nil, &ArgumentError{Param: c.name, Msg: "count must be in the range 0-255", Err: err}
		}
		result[i] = v
	}
	return result, nil
}

func toPositions(values ...namedCount) ([]uint16, error) {
	result := make([]uint16, len(values))
	for i, c := range values {
		v, err := util.ToUInt16(c.value)
		if err != nil {
			return nil, &ArgumentError{Param: c.name, Msg: "position must be in the range 0-65535", Err: err}
		}
		result[i] = v
	}
	return result, nil
}
