package testcommon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/complexpatch/patch"
	"github.com/kpfaulkner/complexpatch/pixel"
)

// MustExtendedPatch builds the extended transparent patch for a nine-slice and fails the
// test if that is not possible.
func MustExtendedPatch(t *testing.T, nineSlicePx pixel.PxThicknessU, contentMarginPx pixel.PxThicknessU, imageSize pixel.PxSize2D) *patch.ComplexPatch {
	t.Helper()
	cp, err := patch.CreateExtendedTransparentComplexPatch(nineSlicePx, contentMarginPx, imageSize)
	require.NoError(t, err)
	require.NotNil(t, cp)
	return cp
}

// SlicePositions extracts just the positions of a slice run.
func SlicePositions(slices []patch.Slice) []uint16 {
	positions := make([]uint16, len(slices))
	for i, s := range slices {
		positions[i] = s.Position
	}
	return positions
}

func AssertContentSpan(t *testing.T, span patch.ContentSpan, start uint16, length uint16) {
	t.Helper()
	assert.Equal(t, start, span.Start, "content span start")
	assert.Equal(t, length, span.Length, "content span length")
}
