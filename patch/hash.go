package patch

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

func hashBytes(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}

func appendSlices(buf []byte, s *Slices) []byte {
	buf = append(buf, byte(s.flags), s.countX, s.countY, s.countScaleX, s.countScaleY)
	for _, slice := range s.slices {
		buf = binary.LittleEndian.AppendUint16(buf, slice.Position)
		buf = append(buf, byte(slice.Flags))
	}
	return buf
}

func appendContentSpans(buf []byte, cs *ContentSpans) []byte {
	buf = append(buf, cs.countX, cs.countY)
	for _, span := range cs.spans {
		buf = binary.LittleEndian.AppendUint16(buf, span.Start)
		buf = binary.LittleEndian.AppendUint16(buf, span.Length)
	}
	return buf
}
