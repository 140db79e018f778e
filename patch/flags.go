package patch

import (
	"strings"
)

// SliceFlags describe the region that follows a slice.
type SliceFlags uint8

const (
	SLICE_NONE        SliceFlags = 0
	SLICE_SCALE       SliceFlags = 0x1
	SLICE_TRANSPARENT SliceFlags = 0x2
)

// IsFlagged reports whether every bit in flags is set.
func (f SliceFlags) IsFlagged(flags SliceFlags) bool {
	return f&flags == flags
}

func (f SliceFlags) String() string {
	if f == SLICE_NONE {
		return "None"
	}
	var parts []string
	if f.IsFlagged(SLICE_SCALE) {
		parts = append(parts, "Scale")
	}
	if f.IsFlagged(SLICE_TRANSPARENT) {
		parts = append(parts, "Transparent")
	}
	return strings.Join(parts, "|")
}

// Flags apply to the patch as a whole.
type Flags uint8

const (
	PATCH_NONE     Flags = 0
	PATCH_MIRROR_X Flags = 0x1
	PATCH_MIRROR_Y Flags = 0x2
)

func (f Flags) IsFlagged(flags Flags) bool {
	return f&flags == flags
}

func (f Flags) String() string {
	if f == PATCH_NONE {
		return "None"
	}
	var parts []string
	if f.IsFlagged(PATCH_MIRROR_X) {
		parts = append(parts, "MirrorX")
	}
	if f.IsFlagged(PATCH_MIRROR_Y) {
		parts = append(parts, "MirrorY")
	}
	return strings.Join(parts, "|")
}

// GridFlags hold the per cell metadata of a complex patch.
type GridFlags uint8

const (
	GRID_NONE        GridFlags = 0
	GRID_TRANSPARENT GridFlags = 0x1
)

func (f GridFlags) IsFlagged(flags GridFlags) bool {
	return f&flags == flags
}
