package options

import (
	"fmt"

	"github.com/kpfaulkner/complexpatch/patch"
	"github.com/kpfaulkner/complexpatch/pixel"
	"github.com/kpfaulkner/complexpatch/util"
)

const (
	PROFILE_NONE = ""
	PROFILE_CPU  = "cpu"
	PROFILE_MEM  = "mem"
)

// PatchInfoOptions configure the patch inspection tools.
type PatchInfoOptions struct {
	Verbose bool
	Profile string

	ImageWidth  int32
	ImageHeight int32

	// left, top, right, bottom
	NineSlice     []uint
	ContentMargin []uint

	MirrorX bool
	MirrorY bool
}

func NewPatchInfoOptions(options *PatchInfoOptions) *PatchInfoOptions {

	opt := &PatchInfoOptions{
		NineSlice:     []uint{0, 0, 0, 0},
		ContentMargin: []uint{0, 0, 0, 0},
	}
	if options != nil {
		opt.Verbose = options.Verbose
		opt.Profile = options.Profile
		opt.ImageWidth = options.ImageWidth
		opt.ImageHeight = options.ImageHeight
		if options.NineSlice != nil {
			opt.NineSlice = append([]uint(nil), options.NineSlice...)
		}
		if options.ContentMargin != nil {
			opt.ContentMargin = append([]uint(nil), options.ContentMargin...)
		}
		opt.MirrorX = options.MirrorX
		opt.MirrorY = options.MirrorY
	}
	return opt
}

func (o *PatchInfoOptions) Validate() error {
	switch o.Profile {
	case PROFILE_NONE, PROFILE_CPU, PROFILE_MEM:
	default:
		return fmt.Errorf("unknown profile mode %q", o.Profile)
	}
	if o.ImageWidth <= 0 || o.ImageHeight <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", o.ImageWidth, o.ImageHeight)
	}
	if _, err := toThickness("nine-slice", o.NineSlice); err != nil {
		return err
	}
	if _, err := toThickness("content-margin", o.ContentMargin); err != nil {
		return err
	}
	return nil
}

func (o *PatchInfoOptions) ImageSize() pixel.PxSize2D {
	return pixel.NewPxSize2D(o.ImageWidth, o.ImageHeight)
}

func (o *PatchInfoOptions) NineSlicePx() (pixel.PxThicknessU, error) {
	return toThickness("nine-slice", o.NineSlice)
}

func (o *PatchInfoOptions) ContentMarginPx() (pixel.PxThicknessU, error) {
	return toThickness("content-margin", o.ContentMargin)
}

func (o *PatchInfoOptions) PatchFlags() patch.Flags {
	flags := patch.PATCH_NONE
	flags |= util.IfThenElse(o.MirrorX, patch.PATCH_MIRROR_X, patch.PATCH_NONE)
	flags |= util.IfThenElse(o.MirrorY, patch.PATCH_MIRROR_Y, patch.PATCH_NONE)
	return flags
}

func toThickness(name string, values []uint) (pixel.PxThicknessU, error) {
	if len(values) != 4 {
		return pixel.PxThicknessU{}, fmt.Errorf("%s needs 4 values (left,top,right,bottom), got %d", name, len(values))
	}
	var sides [4]uint32
	for i, v := range values {
		side, err := util.ToUInt32(v)
		if err != nil {
			return pixel.PxThicknessU{}, fmt.Errorf("%s: %w", name, err)
		}
		sides[i] = side
	}
	return pixel.NewPxThicknessU(sides[0], sides[1], sides[2], sides[3]), nil
}
