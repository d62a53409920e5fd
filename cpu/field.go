package cpu

import (
	"strconv"
)

// Uint3 is a 3-bit unsigned operand field.
type Uint3 uint8

// MakeUint3 truncates a byte to its low three bits.
func MakeUint3(value uint8) Uint3 {
	return Uint3(value & 0b111)
}

func (u Uint3) String() string {
	return strconv.Itoa(int(u))
}

// Uint4 is a 4-bit unsigned operand field.
type Uint4 uint8

// MakeUint4 truncates a byte to its low four bits.
func MakeUint4(value uint8) Uint4 {
	return Uint4(value & 0b1111)
}

func (u Uint4) String() string {
	return strconv.Itoa(int(u))
}
