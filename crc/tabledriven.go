package crc

// tableDriven is the byte-wise equivalent of bitSerial. Each step shifts the
// next stream byte into the bottom of the register and XORs in the mask for
// the byte shifted out of the top. The stream is the message followed by
// Width/8 zero bytes, with Init folded into its first Width/8 bytes.
func tableDriven(p Params, msg []byte, t *Table) uint64 {
	mask := p.Mask()
	nbytes := p.Width / 8
	shift := uint(p.Width - 8)

	var reg uint64
	for idx := 0; idx < len(msg)+nbytes; idx++ {
		var b byte
		if idx < len(msg) {
			b = p.inputByte(msg[idx])
		}
		if idx < nbytes {
			b ^= byte(p.Init >> (shift - uint(idx)*8))
		}

		hireg := reg >> shift
		reg = (reg<<8)&mask | uint64(b)
		reg ^= t[hireg]
	}

	return p.finalize(reg)
}

// optimizedTable is the direct algorithm: the register starts at Init and
// each message byte is folded into the table index, so no augmentation is
// needed.
func optimizedTable(p Params, msg []byte, t *Table) uint64 {
	mask := p.Mask()
	shift := uint(p.Width - 8)

	reg := p.Init
	for _, b := range msg {
		idx := byte(reg>>shift) ^ p.inputByte(b)
		reg = (reg<<8)&mask ^ t[idx]
	}

	return p.finalize(reg)
}
