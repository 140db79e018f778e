package atlas

// NineSliceFlags mark which of the nine classic slices are transparent.
type NineSliceFlags uint32

const (
	NINE_SLICE_NONE    NineSliceFlags = 0
	SLICE0_TRANSPARENT NineSliceFlags = 0x1
	SLICE1_TRANSPARENT NineSliceFlags = 0x2
	SLICE2_TRANSPARENT NineSliceFlags = 0x4
	SLICE3_TRANSPARENT NineSliceFlags = 0x8
	SLICE4_TRANSPARENT NineSliceFlags = 0x10
	SLICE5_TRANSPARENT NineSliceFlags = 0x20
	SLICE6_TRANSPARENT NineSliceFlags = 0x40
	SLICE7_TRANSPARENT NineSliceFlags = 0x80
	SLICE8_TRANSPARENT NineSliceFlags = 0x100
)

func (f NineSliceFlags) IsFlagged(flags NineSliceFlags) bool {
	return f&flags == flags
}

// IsSliceTransparent reports whether slice index (0-8, row-major) is flagged transparent.
func (f NineSliceFlags) IsSliceTransparent(index int) bool {
	if index < 0 || index > 8 {
		return false
	}
	return f.IsFlagged(SLICE0_TRANSPARENT << uint(index))
}
