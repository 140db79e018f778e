package patch

import (
	"slices"

	"github.com/kpfaulkner/complexpatch/util"
)

// ContentSpans holds the X content spans followed by the Y content spans in one buffer.
type ContentSpans struct {
	spans  []ContentSpan
	countX uint8
	countY uint8
}

func NewContentSpans(spans []ContentSpan, countX uint8, countY uint8) (*ContentSpans, error) {
	if err := validateRuns("spans", len(spans), countX, countY); err != nil {
		return nil, err
	}
	return &ContentSpans{
		spans:  slices.Clone(spans),
		countX: countX,
		countY: countY,
	}, nil
}

func (cs *ContentSpans) IsValid() bool {
	return len(cs.spans) > 0
}

func (cs *ContentSpans) CountX() uint8 {
	return cs.countX
}

func (cs *ContentSpans) CountY() uint8 {
	return cs.countY
}

// ContentAreaCount is the number of content areas formed by crossing the X and Y spans.
func (cs *ContentSpans) ContentAreaCount() uint16 {
	return uint16(cs.countX) * uint16(cs.countY)
}

func (cs *ContentSpans) AsSpan() []ContentSpan {
	return util.ReadOnlyView(cs.spans, 0, len(cs.spans))
}

func (cs *ContentSpans) AsSpanX() []ContentSpan {
	return util.ReadOnlyView(cs.spans, 0, int(cs.countX))
}

func (cs *ContentSpans) AsSpanY() []ContentSpan {
	return util.ReadOnlyView(cs.spans, int(cs.countX), int(cs.countY))
}

func (cs *ContentSpans) Equal(other *ContentSpans) bool {
	if cs == nil || other == nil {
		return cs == other
	}
	return slices.Equal(cs.spans, other.spans) && cs.countX == other.countX && cs.countY == other.countY
}

func (cs *ContentSpans) Hash() uint64 {
	return hashBytes(appendContentSpans(nil, cs))
}
