// Package prng is a string-seeded xorshift128+ generator.
//
// Rand is a plain value: assigning or Clone-ing it forks the stream, so every
// owner evolves its own copy without locks. Not for cryptographic use.
package prng

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"
	"unicode/utf16"

	"github.com/lixenwraith/roomgen/m64"
)

// Hash mixing constants
const (
	hashInit   = 1779033703
	hashMul    = 3432918353
	hashRotate = 13
	finalMulA  = 2246822507
	finalMulB  = 3266489909
)

// Substituted for s1 when seeding hashes both words to zero
const zeroGuard = 0x9E3779B97F4A7C15

// Rand holds 128 bits of xorshift128+ state
type Rand struct {
	s0, s1 uint64
}

// --- Seeding ---

// Hash32 mixes the UTF-16 code units of text into 32 bits
func Hash32(text string) uint32 {
	units := utf16.Encode([]rune(text))
	h := uint32(hashInit) ^ uint32(len(units))
	for _, c := range units {
		h = m64.IMul32(h^uint32(c), hashMul)
		h = m64.Rotl32(h, hashRotate)
	}
	h = m64.IMul32(h^h>>16, finalMulA)
	h = m64.IMul32(h^h>>13, finalMulB)
	return h ^ h>>16
}

// Hash64 widens Hash32: the high half re-hashes text prefixed with the decimal low half
func Hash64(text string) uint64 {
	lo := Hash32(text)
	hi := Hash32(strconv.FormatUint(uint64(lo), 10) + text)
	return m64.Join(hi, lo)
}

// New seeds a generator from text. Identical text yields identical streams.
func New(text string) Rand {
	s0 := Hash64(text)
	s1 := Hash64(fmt.Sprintf("%016x", s0) + text)
	if s0 == 0 && s1 == 0 {
		s1 = zeroGuard
	}
	return Rand{s0: s0, s1: s1}
}

// NewTime seeds from the wall clock and returns the seed text used
func NewTime() (Rand, string) {
	text := strconv.FormatInt(time.Now().UnixNano(), 10)
	return New(text), text
}

// FromState rebuilds a generator from words returned by State
func FromState(s0, s1 uint64) Rand {
	if s0 == 0 && s1 == 0 {
		panic("prng: all-zero state")
	}
	return Rand{s0: s0, s1: s1}
}

// State returns the raw state words for persistence
func (r Rand) State() (s0, s1 uint64) { return r.s0, r.s1 }

// Clone returns an independent copy
func (r Rand) Clone() Rand { return r }

// --- Draws ---

// Next advances the state one step and returns the 64-bit output
func (r *Rand) Next() uint64 {
	s1 := r.s1
	x := r.s0
	x = m64.Xor(x, m64.Shift(x, 23))
	next := m64.Xor(m64.Xor(m64.Xor(x, s1), m64.Shift(x, -17)), m64.Shift(s1, -26))
	r.s0 = s1
	r.s1 = next
	return m64.Add(next, s1)
}

// Uint32 returns the low half of one output word
func (r *Rand) Uint32() uint32 {
	_, lo := m64.Split(r.Next())
	return lo
}

// Float64 returns Uint32 scaled by 0xFFFFFFFF; 1.0 is reachable once in 2^32 draws
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / 0xFFFFFFFF
}

// Intn returns Uint32 mod n. Panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("prng: Intn(%d)", n))
	}
	return int(uint64(r.Uint32()) % uint64(n))
}

// Hex renders one output word as 16 lowercase hex digits
func (r *Rand) Hex() string {
	return fmt.Sprintf("%016x", r.Next())
}

// --- Collection draws ---

// PickRemove removes and returns a random element of *s.
// The last element fills the hole, so order is not preserved.
func PickRemove[T any](r *Rand, s *[]T) T {
	n := len(*s)
	if n == 0 {
		panic("prng: PickRemove on empty slice")
	}
	i := r.Intn(n)
	last := n - 1
	v := (*s)[i]
	if i != last {
		(*s)[i] = (*s)[last]
	}
	var zero T
	(*s)[last] = zero
	*s = (*s)[:last]
	return v
}

// SelectRemove removes and returns a random entry of m.
// Keys are ranked in sorted order so the pick is reproducible.
func SelectRemove[K cmp.Ordered, V any](r *Rand, m map[K]V) (K, V) {
	if len(m) == 0 {
		panic("prng: SelectRemove on empty map")
	}
	keys := slices.Sorted(maps.Keys(m))
	k := PickRemove(r, &keys)
	v := m[k]
	delete(m, k)
	return k, v
}
