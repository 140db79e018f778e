package atlas

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/complexpatch/patch"
	"github.com/kpfaulkner/complexpatch/pixel"
	"github.com/kpfaulkner/complexpatch/util"
)

// TextureInfo describes where a trimmed texture lives inside its untrimmed image.
type TextureInfo struct {
	OffsetPx      pixel.PxPoint2
	ExtentPx      pixel.PxExtent2D
	TrimmedRectPx pixel.PxRectangleU
	TrimMarginPx  pixel.PxThicknessU
	Dpi           uint32
}

// NewTextureInfo derives the offset and untrimmed extent from the trimmed rectangle and
// the margin that was trimmed away.
func NewTextureInfo(trimmedRectPx pixel.PxRectangleU, trimMarginPx pixel.PxThicknessU, dpi uint32) (TextureInfo, error) {
	x, err := util.ToInt32(trimmedRectPx.X)
	if err != nil {
		return TextureInfo{}, err
	}
	y, err := util.ToInt32(trimmedRectPx.Y)
	if err != nil {
		return TextureInfo{}, err
	}
	left, err := util.ToInt32(trimMarginPx.Left)
	if err != nil {
		return TextureInfo{}, err
	}
	top, err := util.ToInt32(trimMarginPx.Top)
	if err != nil {
		return TextureInfo{}, err
	}

	return TextureInfo{
		OffsetPx:      pixel.NewPxPoint2(x-left, y-top),
		ExtentPx:      trimmedRectPx.Extent().Add(trimMarginPx.Sum()),
		TrimmedRectPx: trimmedRectPx,
		TrimMarginPx:  trimMarginPx,
		Dpi:           dpi,
	}, nil
}

// ImageSize is the untrimmed size of the texture.
func (ti TextureInfo) ImageSize() (pixel.PxSize2D, error) {
	width, err := util.ToInt32(ti.ExtentPx.Width)
	if err != nil {
		return pixel.PxSize2D{}, err
	}
	height, err := util.ToInt32(ti.ExtentPx.Height)
	if err != nil {
		return pixel.PxSize2D{}, err
	}
	return pixel.NewPxSize2D(width, height), nil
}

func (ti TextureInfo) String() string {
	return fmt.Sprintf("OffsetPx:%s ExtentPx:%s TrimmedRectPx:%s TrimMarginPx:%s Dpi:%d",
		ti.OffsetPx, ti.ExtentPx, ti.TrimmedRectPx, ti.TrimMarginPx, ti.Dpi)
}

// CreateComplexPatch builds the complex patch for a nine-slice texture over its untrimmed size.
func CreateComplexPatch(textureInfo TextureInfo, nineSlice NineSliceInfo) (*patch.ComplexPatch, error) {
	imageSize, err := textureInfo.ImageSize()
	if err != nil {
		log.Errorf("texture %s is too large for a patch: %v", textureInfo, err)
		return nil, err
	}
	return nineSlice.ToComplexPatch(imageSize)
}
