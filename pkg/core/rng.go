package core

import (
	"encoding/binary"
	"math"
)

// DefaultSeed is the state a fresh RNG starts from.
const DefaultSeed uint32 = 777

const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// RNG is a 32-bit linear congruential generator. Each draw yields only the top
// eight bits of the state, so wider values are composed one byte at a time.
// It is not safe for concurrent use.
type RNG struct {
	state uint32
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Seed resets the generator state.
func (r *RNG) Seed(seed uint32) { r.state = seed }

// State reports the raw generator state.
func (r *RNG) State() uint32 { return r.state }

// Uint32 advances the generator and returns the top byte of the new state.
func (r *RNG) Uint32() uint32 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return r.state >> 24
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.Uint32()%2 == 0
}

// Byte returns a random byte in [0, 255).
func (r *RNG) Byte() uint8 {
	return uint8(r.Uint32() % 255)
}

// Fill draws len(buf) bytes.
func (r *RNG) Fill(buf []byte) {
	for i := range buf {
		buf[i] = r.Byte()
	}
}

// Float32 reinterprets four drawn bytes as a little-endian IEEE-754 value. The
// result can be any float32 bit pattern, including NaN and infinities.
func (r *RNG) Float32() float32 {
	var b [4]byte
	r.Fill(b[:])
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:]))
}

// Float32Mod returns a Float32 draw reduced into [0, dim). Non-finite draws
// collapse to zero.
func (r *RNG) Float32Mod(dim float32) float32 {
	v := r.Float32()
	if dim <= 0 {
		return 0
	}
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(f, float64(dim))
	if m < 0 {
		m += float64(dim)
	}
	out := float32(m)
	if out >= dim {
		out = 0
	}
	return out
}
