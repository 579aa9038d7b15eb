// Package randutil centralises how RNGs are seeded so every shuffle in the
// engine is reproducible from a single recorded int64.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// All call sites derive the two 64-bit PCG seeds the same way, so a recorded
// seed replays the exact card sequence of a hand.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed draws a fresh nonzero seed from the OS entropy source.
func Seed() int64 {
	var buf [8]byte
	for range 256 {
		if _, err := crand.Read(buf[:]); err != nil {
			panic("reading from the os entropy source failed: " + err.Error())
		}
		if seed := int64(binary.LittleEndian.Uint64(buf[:])); seed != 0 {
			return seed
		}
	}
	panic("os entropy source returned zero 256 times in a row")
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
