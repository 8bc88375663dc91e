package crc

import (
	"github.com/bemasher/crcengine/bitutil"
)

// reflectedTable runs the direct algorithm on a mirrored register. The
// register holds the bit reversal of the direct register, so it shifts right
// and is indexed by its low byte. A direct step consumes ReflectByte(b) when
// RefIn is set, so the mirrored step consumes b itself and reflected-input
// CRCs never reflect message bytes.
func reflectedTable(p Params, msg []byte, t *Table) uint64 {
	reg := bitutil.ReflectWidth(p.Init, p.Width)
	for _, b := range msg {
		if !p.RefIn {
			b = bitutil.ReflectByte(b)
		}
		reg = reg>>8 ^ t[byte(reg)^b]
	}

	if !p.RefOut {
		reg = bitutil.ReflectWidth(reg, p.Width)
	}

	return (reg ^ p.XorOut) & p.Mask()
}
