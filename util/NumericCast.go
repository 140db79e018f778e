package util

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var ErrOutOfRange = errors.New("value out of range")

// checkedCast narrows value to T, failing if the value does not survive the round trip
// or changes sign.
func checkedCast[T constraints.Integer, V constraints.Integer](value V) (T, error) {
	result := T(value)
	if V(result) != value || (value < 0) != (result < 0) {
		return result, fmt.Errorf("%w: %d does not fit in %T", ErrOutOfRange, value, result)
	}
	return result, nil
}

func ToUInt8[V constraints.Integer](value V) (uint8, error) {
	return checkedCast[uint8](value)
}

func ToUInt16[V constraints.Integer](value V) (uint16, error) {
	return checkedCast[uint16](value)
}

func ToUInt32[V constraints.Integer](value V) (uint32, error) {
	return checkedCast[uint32](value)
}

func ToInt32[V constraints.Integer](value V) (int32, error) {
	return checkedCast[int32](value)
}

// UncheckedToUInt16 truncates value. Only use it where the caller has already bounded the value.
func UncheckedToUInt16[V constraints.Integer](value V) uint16 {
	return uint16(value)
}
