package crc

import (
	"encoding/binary"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bemasher/crcengine/bitutil"
)

// CRC is a named, validated parameter set.
type CRC struct {
	Name string
	Params

	tbl    *Table
	refTbl *Table
}

// NewCRC validates p and builds both lookup tables for it.
func NewCRC(name string, p Params) (crc CRC, err error) {
	if err = p.Validate(); err != nil {
		return crc, err
	}

	crc.Name = name
	crc.Params = p.Normalize()

	crc.tbl, err = defaultCache.Get(crc.Poly, crc.Width, false)
	if err != nil {
		return crc, err
	}
	crc.refTbl, err = defaultCache.Get(crc.Poly, crc.Width, true)

	return crc, err
}

func (crc CRC) String() string {
	return fmt.Sprintf("{Name:%s %s}", crc.Name, crc.Params)
}

// Log writes the parameter set to l at debug level.
func (crc CRC) Log(l logrus.FieldLogger) {
	digits := crc.Width / 4
	l.WithFields(logrus.Fields{
		"name":    crc.Name,
		"width":   crc.Width,
		"poly":    fmt.Sprintf("0x%0*X", digits, crc.Poly),
		"init":    fmt.Sprintf("0x%0*X", digits, crc.Init),
		"refin":   crc.RefIn,
		"refout":  crc.RefOut,
		"xorout":  fmt.Sprintf("0x%0*X", digits, crc.XorOut),
		"residue": fmt.Sprintf("0x%0*X", digits, crc.Residue()),
	}).Debug("crc parameters")
}

// Checksum computes the checksum of data with the optimized table algorithm.
// crc must come from NewCRC.
func (crc CRC) Checksum(data []byte) uint64 {
	return optimizedTable(crc.Params, data, crc.tbl)
}

// ChecksumWith computes the checksum of data using alg. A CRC not built by
// NewCRC is validated and computed through the shared table cache.
func (crc CRC) ChecksumWith(alg Algorithm, data []byte) (uint64, error) {
	if crc.tbl == nil || crc.refTbl == nil {
		return compute(crc.Params, data, alg, defaultCache)
	}

	switch alg {
	case BitSerial:
		return bitSerial(crc.Params, data), nil
	case TableDriven:
		return tableDriven(crc.Params, data, crc.tbl), nil
	case OptimizedTable:
		return optimizedTable(crc.Params, data, crc.tbl), nil
	case ReflectedTable:
		return reflectedTable(crc.Params, data, crc.refTbl), nil
	}
	return 0, ErrInvalidAlgorithm
}

// Append returns a copy of data followed by its checksum, least significant
// byte first when RefOut is set and most significant byte first otherwise.
// When RefIn == RefOut the register ends at Residue after the codeword.
func (crc CRC) Append(data []byte) []byte {
	sum := crc.Checksum(data)
	n := crc.Width / 8

	codeword := make([]byte, len(data), len(data)+n)
	copy(codeword, data)

	var buf [8]byte
	if crc.RefOut {
		binary.LittleEndian.PutUint64(buf[:], sum)
		return append(codeword, buf[:n]...)
	}

	binary.BigEndian.PutUint64(buf[:], sum)
	return append(codeword, buf[8-n:]...)
}

// Residue is the register, before XorOut and in output bit order, left by
// any codeword produced by Append. The checksum of such a codeword is
// Residue ^ XorOut.
func (crc CRC) Residue() uint64 {
	tail := crc.XorOut
	if crc.RefOut {
		tail = bitutil.ReflectWidth(tail, crc.Width)
	}

	top := uint(crc.Width - 1)
	mask := crc.Mask()

	var reg uint64
	for bit := crc.Width - 1; bit >= 0; bit-- {
		hibit := (reg>>top ^ tail>>uint(bit)) & 1
		reg = reg << 1 & mask
		if hibit == 1 {
			reg ^= crc.Poly
		}
	}

	if crc.RefOut {
		reg = bitutil.ReflectWidth(reg, crc.Width)
	}
	return reg
}
