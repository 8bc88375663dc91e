package crc

import (
	"github.com/bemasher/crcengine/bitutil"
)

// bitSerial is the simple shift register: the message followed by Width zero
// bits is shifted in one bit at a time, and the polynomial is XORed in
// whenever a 1 falls out of the top of the register.
//
// The register starts at zero and Init is XORed into the first Width bits of
// the stream. Since the stream is always at least Width bits long, this is
// the same as starting a direct register at Init, for any polynomial.
func bitSerial(p Params, msg []byte) uint64 {
	mask := p.Mask()
	top := uint(p.Width - 1)

	data := msg
	if p.RefIn {
		data = bitutil.ReflectBytes(msg)
	}

	bits := append(bitutil.UnpackBits(data), make([]byte, p.Width)...)
	for idx := 0; idx < p.Width; idx++ {
		bits[idx] ^= byte(p.Init>>(top-uint(idx))) & 1
	}

	var reg uint64
	for _, bit := range bits {
		hibit := reg >> top & 1
		reg = (reg<<1 | uint64(bit)) & mask
		if hibit == 1 {
			reg ^= p.Poly
		}
	}

	return p.finalize(reg)
}
