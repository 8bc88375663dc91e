// Package bitutil implements the bit-order helpers shared by the CRC strategies.
package bitutil

import (
	"github.com/pkg/errors"
)

// ErrInvalidElement is returned when an integer sequence holds a value that
// does not fit in a byte.
var ErrInvalidElement = errors.New("invalid message element")

// ReflectByte reverses the bit order of b.
func ReflectByte(b byte) (ref byte) {
	for bit := 0; bit < 8; bit++ {
		ref = ref<<1 | b&1
		b >>= 1
	}
	return
}

// ReflectWidth reverses the low width bits of x. Bits above width are
// discarded before reflecting.
func ReflectWidth(x uint64, width int) (ref uint64) {
	x &= Mask(width)
	for bit := 0; bit < width; bit++ {
		ref = ref<<1 | x&1
		x >>= 1
	}
	return
}

// Mask returns a value with the low width bits set. Width is clamped to 64.
func Mask(width int) uint64 {
	if width <= 0 {
		return 0
	}
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// ReflectBytes returns a new slice holding each byte of p reflected.
func ReflectBytes(p []byte) []byte {
	ref := make([]byte, len(p))
	for idx, b := range p {
		ref[idx] = ReflectByte(b)
	}
	return ref
}

// ReflectValues reflects a sequence of integers, each of which must be a
// byte value. Nothing is returned if any element is out of range.
func ReflectValues(values []int) ([]byte, error) {
	p, err := ToBytes(values)
	if err != nil {
		return nil, err
	}
	for idx := range p {
		p[idx] = ReflectByte(p[idx])
	}
	return p, nil
}

// ToBytes converts a sequence of integers to bytes, rejecting anything
// outside 0-255 instead of truncating it.
func ToBytes(values []int) ([]byte, error) {
	p := make([]byte, len(values))
	for idx, v := range values {
		if v < 0 || v > 0xFF {
			return nil, errors.Wrapf(ErrInvalidElement, "element %d: %d is not a byte value", idx, v)
		}
		p[idx] = byte(v)
	}
	return p, nil
}

// UnpackBits expands each byte of data to eight single-bit bytes, most
// significant bit first.
func UnpackBits(data []byte) []byte {
	bits := make([]byte, len(data)<<3)

	for idx, b := range data {
		offset := idx << 3
		for bit := 7; bit >= 0; bit-- {
			bits[offset+(7-bit)] = (b >> uint8(bit)) & 0x01
		}
	}

	return bits
}
