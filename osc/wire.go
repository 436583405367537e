package osc

import (
	"encoding/binary"
	"math"
)

// bundleTag is the 8-byte literal that introduces every OSC bundle on the wire.
const bundleTag = "#bundle\x00"

// Immediate is the reserved time tag value meaning "execute as soon as possible". The codec
// treats a TimeTag as an opaque 64-bit value; it never interprets this constant itself.
const Immediate TimeTag = 1

// paddedStringLen returns the on-wire length of a NUL-terminated, zero-padded string of the given
// unterminated length: round_up_to_4(len+1), with a minimum of 4.
func paddedStringLen(n int) int {
	return (n+1+3)/4*4
}

// paddedTagLen returns the total on-wire length of a type-tag field, comma included, for a tag
// body (the characters after the comma) of the given length. The type-tag field is simply a
// NUL-terminated, zero-padded string whose content happens to start with ',': its total length is
// therefore paddedStringLen of the comma-inclusive length. Equivalently, round_up_to_4(len+2)-1
// bytes follow the comma itself.
func paddedTagLen(n int) int {
	return paddedStringLen(n + 1)
}

// paddedBlobLen returns the on-wire length of a blob payload of the given size, including its
// 4-byte size prefix: 4 + round_up_to_4(size).
func paddedBlobLen(size int) int {
	return 4 + (size+3)/4*4
}

func encodeInt32(v int32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return b
}

func decodeInt32(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}

func encodeFloat32(v float32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(v))
	return b
}

func decodeFloat32(b []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

func encodeInt64(v int64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return b
}

func decodeInt64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}

func encodeFloat64(v float64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	return b
}

func decodeFloat64(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

func encodeUint64(v uint64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b
}

func decodeUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
