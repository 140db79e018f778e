package atlas

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/complexpatch/patch"
	"github.com/kpfaulkner/complexpatch/pixel"
)

// NineSliceInfo is the classic nine-slice description stored alongside an atlas texture.
type NineSliceInfo struct {
	NineSlicePx     pixel.PxThicknessU
	ContentMarginPx pixel.PxThicknessU
	Flags           NineSliceFlags
}

func NewNineSliceInfo(nineSlicePx pixel.PxThicknessU, contentMarginPx pixel.PxThicknessU, flags NineSliceFlags) NineSliceInfo {
	return NineSliceInfo{
		NineSlicePx:     nineSlicePx,
		ContentMarginPx: contentMarginPx,
		Flags:           flags,
	}
}

// ToComplexPatch converts the nine-slice to a transparent complex patch covering imageSize.
func (nsi NineSliceInfo) ToComplexPatch(imageSize pixel.PxSize2D) (*patch.ComplexPatch, error) {
	cp, err := patch.CreateExtendedTransparentComplexPatch(nsi.NineSlicePx, nsi.ContentMarginPx, imageSize)
	if err != nil {
		log.Errorf("unable to convert nine slice %s for image %s: %v", nsi, imageSize, err)
		return nil, err
	}
	return cp, nil
}

func (nsi NineSliceInfo) String() string {
	return fmt.Sprintf("NineSlice:%s ContentMargin:%s Flags: %d", nsi.NineSlicePx, nsi.ContentMarginPx, nsi.Flags)
}
