// Package m64 holds the unsigned 64-bit arithmetic used by the seeded generator.
//
// Words are native uint64; Split and Join expose the (high, low) 32-bit pair view
// where a caller needs one half of a word.
package m64

import "math/bits"

// --- Pair view ---

// Split returns the high and low 32-bit halves of v.
func Split(v uint64) (hi, lo uint32) { return uint32(v >> 32), uint32(v) }

// Join assembles a word from its halves.
func Join(hi, lo uint32) uint64 { return uint64(hi)<<32 | uint64(lo) }

// --- Arithmetic ---

// Add returns a+b mod 2^64.
func Add(a, b uint64) uint64 {
	sum, _ := bits.Add64(a, b, 0)
	return sum
}

// Mul32 returns the full 64-bit product of two 32-bit operands.
func Mul32(a, b uint32) uint64 { return uint64(a) * uint64(b) }

// IMul32 returns the low 32 bits of a*b (32-bit wraparound multiply).
func IMul32(a, b uint32) uint32 { return a * b }

// Mul returns the 128-bit product of a and b as hi*2^64 + lo.
func Mul(a, b uint64) (hi, lo uint64) { return bits.Mul64(a, b) }

// IMul returns the low 64 bits of a*b.
func IMul(a, b uint64) uint64 {
	_, lo := bits.Mul64(a, b)
	return lo
}

// Xor returns a^b.
func Xor(a, b uint64) uint64 { return a ^ b }

// Shift is a logical shift: positive amount shifts right, negative shifts left.
// Shifting by 64 or more in either direction yields 0.
func Shift(a uint64, amount int) uint64 {
	switch {
	case amount > 0:
		return a >> uint(amount)
	case amount < 0:
		return a << uint(-amount)
	}
	return a
}

// Rotl32 rotates v left by k bits.
func Rotl32(v uint32, k int) uint32 { return bits.RotateLeft32(v, k) }

// DivMod is floored integer division on host ints, so the remainder takes the
// sign of y. Used for coordinate-to-tile mapping. Panics when y is zero.
func DivMod(x, y int) (q, r int) {
	if y == 0 {
		panic("m64: divmod by zero")
	}
	q, r = x/y, x%y
	if r != 0 && (r < 0) != (y < 0) {
		q--
		r += y
	}
	return q, r
}
