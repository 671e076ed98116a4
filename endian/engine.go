// Package endian provides byte order utilities for reading polyline payloads.
//
// Polyline record payloads are undocumented, so the decoder reads the same bytes
// under several numeric interpretations at once. This package combines the
// ByteOrder and AppendByteOrder interfaces of encoding/binary into EndianEngine and
// adds whole-element slice readers on top of it:
//
//	le := endian.GetLittleEndianEngine()
//	be := endian.GetBigEndianEngine()
//
//	f64le := endian.Float64s(le, payload) // 8 bytes per element
//	f64be := endian.Float64s(be, payload)
//	f32le := endian.Float32s(le, payload) // 4 bytes per element
//	i32le := endian.Int32s(le, payload)
//
// Each reader decodes the longest whole-element prefix of its input and ignores
// trailing partial bytes. An input shorter than one element yields nil.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Float64s decodes the longest prefix of data that holds whole IEEE 754 float64 values.
//
// Parameters:
//   - engine: Byte order of the values
//   - data: Raw bytes, len(data)%8 trailing bytes are ignored
//
// Returns:
//   - []float64: Decoded values, nil when len(data) < 8
func Float64s(engine EndianEngine, data []byte) []float64 {
	n := len(data) / 8
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(engine.Uint64(data[i*8:]))
	}

	return out
}

// Float32s decodes the longest prefix of data that holds whole IEEE 754 float32 values.
//
// Returns nil when len(data) < 4.
func Float32s(engine EndianEngine, data []byte) []float32 {
	n := len(data) / 4
	if n == 0 {
		return nil
	}

	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(engine.Uint32(data[i*4:]))
	}

	return out
}

// Int32s decodes the longest prefix of data that holds whole two's complement int32 values.
//
// Returns nil when len(data) < 4.
func Int32s(engine EndianEngine, data []byte) []int32 {
	n := len(data) / 4
	if n == 0 {
		return nil
	}

	out := make([]int32, n)
	for i := range out {
		out[i] = int32(engine.Uint32(data[i*4:])) //nolint:gosec // bit reinterpretation
	}

	return out
}

// AppendFloat64s appends values to dst in the byte order of engine.
func AppendFloat64s(engine EndianEngine, dst []byte, values ...float64) []byte {
	for _, v := range values {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}
