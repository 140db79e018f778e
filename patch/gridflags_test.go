package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	n = GRID_NONE
	T = GRID_TRANSPARENT
)

func TestCreateGridFlags(t *testing.T) {

	for _, tc := range []struct {
		name           string
		slicesX        []Slice
		slicesY        []Slice
		expectedResult []GridFlags
		expectErr      bool
	}{
		{
			name:           "leading column and row",
			slicesX:        threeSlices(),
			slicesY:        threeSlices(),
			expectedResult: []GridFlags{T, T, T, n},
		},
		{
			name:    "interior column and last row",
			slicesX: []Slice{NewSlice(0, SLICE_NONE), NewSlice(3, SLICE_TRANSPARENT), NewSlice(6, SLICE_SCALE), NewSlice(9, SLICE_NONE)},
			slicesY: []Slice{NewSlice(0, SLICE_NONE), NewSlice(4, SLICE_NONE), NewSlice(8, SLICE_TRANSPARENT), NewSlice(12, SLICE_NONE)},
			expectedResult: []GridFlags{
				n, T, n,
				n, T, n,
				T, T, T,
			},
		},
		{
			name:    "non square grid",
			slicesX: []Slice{NewSlice(0, SLICE_NONE), NewSlice(1, SLICE_NONE), NewSlice(2, SLICE_TRANSPARENT), NewSlice(3, SLICE_NONE)},
			slicesY: []Slice{NewSlice(0, SLICE_TRANSPARENT), NewSlice(1, SLICE_NONE), NewSlice(2, SLICE_NONE)},
			expectedResult: []GridFlags{
				T, T, T,
				n, n, T,
			},
		},
		{
			name:           "trailing slice is not consulted",
			slicesX:        []Slice{NewSlice(0, SLICE_NONE), NewSlice(5, SLICE_TRANSPARENT)},
			slicesY:        []Slice{NewSlice(0, SLICE_NONE), NewSlice(5, SLICE_TRANSPARENT)},
			expectedResult: []GridFlags{n},
		},
		{
			name:           "scale does not imply transparency",
			slicesX:        []Slice{NewSlice(0, SLICE_SCALE), NewSlice(5, SLICE_NONE)},
			slicesY:        []Slice{NewSlice(0, SLICE_SCALE), NewSlice(5, SLICE_NONE)},
			expectedResult: []GridFlags{n},
		},
		{
			name:      "too few x slices",
			slicesX:   []Slice{NewSlice(0, SLICE_NONE)},
			slicesY:   threeSlices(),
			expectErr: true,
		},
		{
			name:      "too few y slices",
			slicesX:   threeSlices(),
			slicesY:   nil,
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			gridFlags, err := CreateGridFlags(tc.slicesX, tc.slicesY)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidStructure)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedResult, gridFlags)
			assert.Len(t, gridFlags, (len(tc.slicesX)-1)*(len(tc.slicesY)-1))
		})
	}
}
