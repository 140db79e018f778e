package util

import (
	"golang.org/x/exp/constraints"
)

// Make 1D slice appear as 2D slice and helper functions

type Matrix[T constraints.Ordered] struct {
	Width  int32
	Height int32
	Data   []T
}

// New2DMatrix creates a new 2D matrix with the given dimensions
// Note height is the first dimension, width is the second
func New2DMatrix[T constraints.Ordered](height int32, width int32) *Matrix[T] {
	matrix := make([]T, width*height)
	return &Matrix[T]{Width: width, Height: height, Data: matrix}
}

// Note y is first param...  just for compatibility
func (s *Matrix[T]) Get(y int32, x int32) T {
	return s.Data[y*s.Width+x]
}

func (s *Matrix[T]) Set(y int32, x int32, value T) {
	s.Data[y*s.Width+x] = value
}

func (s *Matrix[T]) GetRow(y int32) []T {
	return s.Data[y*s.Width : (y+1)*s.Width]
}

// FillRow sets every cell in row y to value.
func (s *Matrix[T]) FillRow(y int32, value T) {
	row := s.GetRow(y)
	for i := range row {
		row[i] = value
	}
}

// FillColumn sets every cell in column x to value.
func (s *Matrix[T]) FillColumn(x int32, value T) {
	for idx := x; idx < int32(len(s.Data)); idx += s.Width {
		s.Data[idx] = value
	}
}

// Equal compares dimensions and contents element by element.
func (s *Matrix[T]) Equal(other *Matrix[T]) bool {
	if s.Width != other.Width || s.Height != other.Height || len(s.Data) != len(other.Data) {
		return false
	}
	for i := range s.Data {
		if s.Data[i] != other.Data[i] {
			return false
		}
	}
	return true
}
