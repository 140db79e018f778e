package atlas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/complexpatch/patch"
	"github.com/kpfaulkner/complexpatch/pixel"
	"github.com/kpfaulkner/complexpatch/testcommon"
	"github.com/kpfaulkner/complexpatch/util"
)

func TestNewTextureInfo(t *testing.T) {

	for _, tc := range []struct {
		name           string
		trimmedRect    pixel.PxRectangleU
		trimMargin     pixel.PxThicknessU
		expectedOffset pixel.PxPoint2
		expectedExtent pixel.PxExtent2D
		expectErr      bool
	}{
		{
			name:           "untrimmed",
			trimmedRect:    pixel.NewPxRectangleU(10, 20, 30, 40),
			expectedOffset: pixel.NewPxPoint2(10, 20),
			expectedExtent: pixel.NewPxExtent2D(30, 40),
		},
		{
			name:           "trimmed",
			trimmedRect:    pixel.NewPxRectangleU(10, 20, 30, 40),
			trimMargin:     pixel.NewPxThicknessU(1, 2, 3, 4),
			expectedOffset: pixel.NewPxPoint2(9, 18),
			expectedExtent: pixel.NewPxExtent2D(34, 46),
		},
		{
			name:           "margin larger than position",
			trimmedRect:    pixel.NewPxRectangleU(0, 0, 8, 8),
			trimMargin:     pixel.NewPxThicknessU(2, 3, 0, 0),
			expectedOffset: pixel.NewPxPoint2(-2, -3),
			expectedExtent: pixel.NewPxExtent2D(10, 11),
		},
		{
			name:        "position out of range",
			trimmedRect: pixel.NewPxRectangleU(math.MaxInt32+1, 0, 8, 8),
			expectErr:   true,
		},
		{
			name:        "margin out of range",
			trimmedRect: pixel.NewPxRectangleU(0, 0, 8, 8),
			trimMargin:  pixel.NewPxThicknessU(0, math.MaxInt32+1, 0, 0),
			expectErr:   true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ti, err := NewTextureInfo(tc.trimmedRect, tc.trimMargin, 160)
			if tc.expectErr {
				assert.ErrorIs(t, err, util.ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedOffset, ti.OffsetPx)
			assert.Equal(t, tc.expectedExtent, ti.ExtentPx)
			assert.Equal(t, tc.trimmedRect, ti.TrimmedRectPx)
			assert.Equal(t, tc.trimMargin, ti.TrimMarginPx)
			assert.Equal(t, uint32(160), ti.Dpi)
		})
	}
}

func TestTextureInfoEquality(t *testing.T) {
	a, err := NewTextureInfo(pixel.NewPxRectangleU(1, 2, 3, 4), pixel.NewUniformPxThicknessU(1), 96)
	require.NoError(t, err)
	b, err := NewTextureInfo(pixel.NewPxRectangleU(1, 2, 3, 4), pixel.NewUniformPxThicknessU(1), 96)
	require.NoError(t, err)
	c, err := NewTextureInfo(pixel.NewPxRectangleU(1, 2, 3, 4), pixel.NewUniformPxThicknessU(1), 160)
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.False(t, a == c)
	assert.Contains(t, a.String(), "Dpi:96")
}

func TestNineSliceFlags(t *testing.T) {
	flags := SLICE0_TRANSPARENT | SLICE4_TRANSPARENT | SLICE8_TRANSPARENT
	assert.True(t, flags.IsFlagged(SLICE4_TRANSPARENT))
	assert.False(t, flags.IsFlagged(SLICE1_TRANSPARENT))
	assert.True(t, flags.IsSliceTransparent(0))
	assert.False(t, flags.IsSliceTransparent(3))
	assert.True(t, flags.IsSliceTransparent(8))
	assert.False(t, flags.IsSliceTransparent(9))
	assert.False(t, flags.IsSliceTransparent(-1))
}

func TestNineSliceInfoToComplexPatch(t *testing.T) {
	nsi := NewNineSliceInfo(pixel.NewUniformPxThicknessU(10), pixel.NewUniformPxThicknessU(5), NINE_SLICE_NONE)
	size := pixel.NewPxSize2D(100, 50)

	cp, err := nsi.ToComplexPatch(size)
	require.NoError(t, err)

	expected := testcommon.MustExtendedPatch(t, nsi.NineSlicePx, nsi.ContentMarginPx, size)
	assert.True(t, expected.Equal(cp))
	assert.Equal(t, []uint16{0, 10, 90, 100}, testcommon.SlicePositions(cp.Slices().AsSpanX()))

	_, err = nsi.ToComplexPatch(pixel.NewPxSize2D(15, 50))
	assert.ErrorIs(t, err, patch.ErrInvalidArgument)
}

func TestCreateComplexPatch(t *testing.T) {
	ti, err := NewTextureInfo(pixel.NewPxRectangleU(4, 4, 24, 24), pixel.NewUniformPxThicknessU(4), 96)
	require.NoError(t, err)
	nsi := NewNineSliceInfo(pixel.NewUniformPxThicknessU(8), pixel.NewUniformPxThicknessU(6), SLICE4_TRANSPARENT)

	cp, err := CreateComplexPatch(ti, nsi)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 8, 24, 32}, testcommon.SlicePositions(cp.Slices().AsSpanX()))
	assert.Equal(t, []uint16{0, 8, 24, 32}, testcommon.SlicePositions(cp.Slices().AsSpanY()))
	assert.Equal(t, pixel.NewPxRectangleU(0, 0, 32, 32), cp.TrimmedRectanglePx())
	testcommon.AssertContentSpan(t, cp.ContentSpans().AsSpanX()[0], 6, 20)

	huge := ti
	huge.ExtentPx = pixel.NewPxExtent2D(math.MaxInt32+1, 10)
	_, err = CreateComplexPatch(huge, nsi)
	assert.ErrorIs(t, err, util.ErrOutOfRange)
}
