package faker

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
	"strconv"
)

// NewSeeded returns a PCG-backed generator with a fixed seed. The same seed
// always yields the same draw sequence across runs and restarts.
func NewSeeded(seed int64) *mathrand.Rand {
	return mathrand.New(mathrand.NewPCG(uint64(seed), 0))
}

// NewEntropy returns a generator seeded from process entropy.
func NewEntropy() *mathrand.Rand {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return mathrand.New(mathrand.NewPCG(
		binary.LittleEndian.Uint64(b[0:8]),
		binary.LittleEndian.Uint64(b[8:16]),
	))
}

// NewRNG builds the request generator from a raw seed parameter.
// A value that parses as an integer produces a deterministic generator;
// anything else (including empty) is silently ignored and an entropy-seeded
// generator is returned instead.
func NewRNG(seedParam string) *mathrand.Rand {
	if seedParam != "" {
		if seed, err := strconv.ParseInt(seedParam, 10, 64); err == nil {
			return NewSeeded(seed)
		}
	}
	return NewEntropy()
}

// pick returns a uniformly chosen element of choices.
func pick[T any](rng *mathrand.Rand, choices []T) T {
	return choices[rng.IntN(len(choices))]
}

// digits returns n random decimal digits.
func digits(rng *mathrand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + rng.IntN(10))
	}
	return string(b)
}

// letters returns n random uppercase letters.
func letters(rng *mathrand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + rng.IntN(26))
	}
	return string(b)
}
