package patch

import (
	"fmt"

	"github.com/kpfaulkner/complexpatch/util"
)

// ContentSpan is one content placement interval along an axis.
type ContentSpan struct {
	Start  uint16
	Length uint16
}

func NewContentSpan(start uint16, length uint16) ContentSpan {
	return ContentSpan{Start: start, Length: length}
}

// NewContentSpanFromNearFar builds the span [near, far).
func NewContentSpanFromNearFar(near uint16, far uint16) (ContentSpan, error) {
	if far < near {
		return ContentSpan{}, newArgumentError("far", "far (%d) must be larger than near (%d)", far, near)
	}
	return ContentSpan{Start: near, Length: util.UncheckedToUInt16(int(far) - int(near))}, nil
}

func (cs ContentSpan) End() int {
	return int(cs.Start) + int(cs.Length)
}

func (cs ContentSpan) String() string {
	return fmt.Sprintf("(%d:%d)", cs.Start, cs.Length)
}
