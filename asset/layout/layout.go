// Package layout defines the binary contract shared by every structure that is
// uploaded to the GPU.
//
// Each structure encodes itself into a fixed-length sequence of 32-bit floats
// whose slot offsets mirror the std430 layout of the matching WGSL struct.
// Padding slots are always zero. Homogeneous lists are concatenated at a fixed
// per-element stride so that kernels can address element i at i * stride.
package layout

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Integers up to this magnitude survive a round-trip through float32.
const MaxExactInteger = 1<<24 - 1

// Size of a single encoded slot in bytes.
const SlotSize = 4

var (
	ErrInexactInteger = errors.New("layout: integer value cannot be represented exactly as float32")
)

// The Encoder interface is implemented by all types that cross the GPU boundary.
type Encoder interface {
	// Encode to a sequence of 32-bit floats. Implementations must be free of
	// side-effects and always return the same number of slots.
	Encode() []float32
}

// Layout describes the alignment and size (both in bytes) of an encoded struct.
type Layout struct {
	Align int
	Size  int
}

// Get the number of float slots occupied by one element, including the tail
// padding needed to keep the next element aligned. A non-positive Align is
// treated as slot alignment.
func (l Layout) Stride() int {
	align := l.Align
	if align <= 0 {
		align = SlotSize
	}

	size := l.Size
	if rem := size % align; rem != 0 {
		size += align - rem
	}
	return size / SlotSize
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	return fmt.Sprintf("align(%d) size(%d)", l.Align, l.Size)
}

// Layout contracts for the leaf value types.
var (
	Vec3Layout     = Layout{Align: 16, Size: 12}
	IntervalLayout = Layout{Align: 4, Size: 8}
	AABBLayout     = Layout{Align: 4, Size: 24}
	RayLayout      = Layout{Align: 16, Size: 32}
	ScalarLayout   = Layout{Align: 4, Size: 4}
)

// Concatenate the encodings of items at a fixed stride. Elements that encode
// to fewer slots than stride are zero-padded; an element that encodes to more
// slots than stride indicates a layout bug and causes a panic.
func EncodeArray[T Encoder](items []T, stride int) []float32 {
	out := make([]float32, len(items)*stride)
	for index, item := range items {
		data := item.Encode()
		if len(data) > stride {
			panic(fmt.Sprintf("layout: element %d encodes to %d slots; stride is %d", index, len(data), stride))
		}
		copy(out[index*stride:], data)
	}
	return out
}

// Pack a float slice into a little-endian byte slice ready for upload.
func Bytes(data []float32) []byte {
	out := make([]byte, len(data)*SlotSize)
	for index, v := range data {
		binary.LittleEndian.PutUint32(out[index*SlotSize:], math.Float32bits(v))
	}
	return out
}

// Unpack a little-endian byte slice produced by Bytes.
func Floats(data []byte) []float32 {
	out := make([]float32, len(data)/SlotSize)
	for index := range out {
		out[index] = math.Float32frombits(binary.LittleEndian.Uint32(data[index*SlotSize:]))
	}
	return out
}

// Verify that an integer value can be stored in a float slot without loss.
func CheckExactInteger(v int) error {
	if v > MaxExactInteger || v < -MaxExactInteger {
		return fmt.Errorf("%w: %d", ErrInexactInteger, v)
	}
	return nil
}
