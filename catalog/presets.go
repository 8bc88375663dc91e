package catalog

import (
	"github.com/bemasher/crcengine/crc"
)

func init() {
	Register(Preset{
		Name:   "crc8-1wire",
		Params: crc.Params{Poly: 0x31, Width: 8, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00},
		Check:  0xA1,
	})
	Register(Preset{
		Name:   "crc8-smbus",
		Params: crc.Params{Poly: 0x07, Width: 8},
		Check:  0xF4,
	})
	Register(Preset{
		Name:   "crc16-arc",
		Params: crc.Params{Poly: 0x8005, Width: 16, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000},
		Check:  0xBB3D,
	})
	Register(Preset{
		Name:   "crc16-ccitt",
		Params: crc.Params{Poly: 0x1021, Width: 16, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0x0000},
		Check:  0x29B1,
	})
	// Bit reversed form of the XMODEM polynomial run through a reflected
	// register.
	Register(Preset{
		Name:   "crc16-xmodem",
		Params: crc.Params{Poly: 0x8408, Width: 16, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000},
		Check:  0x0C73,
	})
	Register(Preset{
		Name:   "crc24-openpgp",
		Params: crc.Params{Poly: 0x864CFB, Width: 24, Init: 0xB704CE},
		Check:  0x21CF02,
	})
	Register(Preset{
		Name:   "crc32",
		Params: crc.Params{Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF},
		Check:  0xCBF43926,
	})
	// Castagnoli with reflected input and output and an all ones XOR-out.
	// The unreflected form with no XOR-out checks as 0xFABBF0EA.
	Register(Preset{
		Name:   "crc32c",
		Params: crc.Params{Poly: 0x1EDC6F41, Width: 32, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF},
		Check:  0xE3069283,
	})
	Register(Preset{
		Name:   "crc64-xz",
		Params: crc.Params{Poly: 0x42F0E1EBA9EA3693, Width: 64, Init: ^uint64(0), RefIn: true, RefOut: true, XorOut: ^uint64(0)},
		Check:  0x995DC9BBDF1939FA,
	})
}
