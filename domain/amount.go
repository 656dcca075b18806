package domain

import (
	"cosmossdk.io/math"
)

const uint128BitLen = 128

// CheckUint128 returns an error if amount does not fit into 128 bits.
func CheckUint128(amount math.Uint) error {
	if amount.BigInt().BitLen() > uint128BitLen {
		return Uint128OverflowError{Amount: amount}
	}
	return nil
}

// CheckedSub returns a - b, or ArithmeticUnderflowError if b > a.
func CheckedSub(a, b math.Uint) (math.Uint, error) {
	if a.LT(b) {
		return math.Uint{}, ArithmeticUnderflowError{Minuend: a, Subtrahend: b}
	}
	return a.Sub(b), nil
}
