package pixel

import (
	"errors"
	"fmt"
)

var ErrReversedRange = errors.New("range end precedes start")

// SpanRangeU16 is a half open range [Start, Start+Length) along one axis.
type SpanRangeU16 struct {
	Start  uint16
	Length uint16
}

func NewSpanRangeU16(start uint16, length uint16) SpanRangeU16 {
	return SpanRangeU16{Start: start, Length: length}
}

// SpanRangeU16FromStartToEnd builds the range covering start up to end.
func SpanRangeU16FromStartToEnd(start uint16, end uint16) (SpanRangeU16, error) {
	if end < start {
		return SpanRangeU16{}, fmt.Errorf("%w: start %d end %d", ErrReversedRange, start, end)
	}
	return SpanRangeU16{Start: start, Length: end - start}, nil
}

func (r SpanRangeU16) End() uint32 {
	return uint32(r.Start) + uint32(r.Length)
}

func (r SpanRangeU16) IsEmpty() bool {
	return r.Length == 0
}

func (r SpanRangeU16) String() string {
	return fmt.Sprintf("[%d..%d)", r.Start, r.End())
}
