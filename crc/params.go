package crc

import (
	"fmt"

	"github.com/bemasher/crcengine/bitutil"
)

// Params is the parameter set of a CRC algorithm. Poly, Init and XorOut are
// masked to Width bits before use.
type Params struct {
	Poly   uint64
	Width  int
	Init   uint64
	RefIn  bool
	RefOut bool
	XorOut uint64
}

// Validate checks the width. It is the only parameter that can be invalid.
func (p Params) Validate() error {
	return checkWidth(p.Width)
}

// Mask returns the register mask for p.Width.
func (p Params) Mask() uint64 {
	return bitutil.Mask(p.Width)
}

// Normalize returns a copy of p with Poly, Init and XorOut masked to Width bits.
func (p Params) Normalize() Params {
	mask := p.Mask()
	p.Poly &= mask
	p.Init &= mask
	p.XorOut &= mask
	return p
}

func (p Params) String() string {
	digits := p.Width / 4
	return fmt.Sprintf("{Width:%d Poly:0x%0*X Init:0x%0*X RefIn:%t RefOut:%t XorOut:0x%0*X}",
		p.Width, digits, p.Poly, digits, p.Init, p.RefIn, p.RefOut, digits, p.XorOut,
	)
}

// finalize applies the output reflection and the XOR-out mask to a register
// kept in direct (MSB first) order.
func (p Params) finalize(reg uint64) uint64 {
	if p.RefOut {
		reg = bitutil.ReflectWidth(reg, p.Width)
	}
	return (reg ^ p.XorOut) & p.Mask()
}

// inputByte returns b as the direct algorithms consume it.
func (p Params) inputByte(b byte) byte {
	if p.RefIn {
		return bitutil.ReflectByte(b)
	}
	return b
}

// FormatHex renders a checksum as Width/4 upper case hex digits.
func FormatHex(sum uint64, width int) string {
	return fmt.Sprintf("%0*X", width/4, sum)
}
