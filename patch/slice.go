package patch

import (
	"fmt"
)

// Slice is a cut position along one axis. Flags describe the region that starts at it.
type Slice struct {
	Position uint16
	Flags    SliceFlags
}

func NewSlice(position uint16, flags SliceFlags) Slice {
	return Slice{Position: position, Flags: flags}
}

func (s Slice) String() string {
	return fmt.Sprintf("(%d:%s)", s.Position, s.Flags)
}
