package util

import (
	"io"
)

// RangeIterator walks a width x height grid in row-major order, returning io.EOF once
// every cell has been visited. An empty grid returns io.EOF immediately.
func RangeIterator(width uint32, height uint32) func() (uint32, uint32, error) {
	var x, y uint32
	return func() (uint32, uint32, error) {
		if width == 0 || y >= height {
			return 0, 0, io.EOF
		}
		cx, cy := x, y
		x++
		if x >= width {
			x = 0
			y++
		}
		return cx, cy, nil
	}
}
