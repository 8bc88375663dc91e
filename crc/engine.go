package crc

import (
	"github.com/pkg/errors"

	"github.com/bemasher/crcengine/bitutil"
)

// Compute returns the checksum of msg under p using alg. msg is only read.
// Tables come from a process-wide cache keyed by polynomial, width and
// orientation.
func Compute(p Params, msg []byte, alg Algorithm) (uint64, error) {
	return compute(p, msg, alg, defaultCache)
}

// ComputeValues is Compute for a message given as integers, each of which
// must be a byte value.
func ComputeValues(p Params, values []int, alg Algorithm) (uint64, error) {
	msg, err := MessageFromInts(values)
	if err != nil {
		return 0, err
	}
	return Compute(p, msg, alg)
}

// MessageFromInts converts integers to a message, failing on the first
// element outside 0-255.
func MessageFromInts(values []int) ([]byte, error) {
	return bitutil.ToBytes(values)
}

func compute(p Params, msg []byte, alg Algorithm, cache *TableCache) (uint64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if !alg.valid() {
		return 0, errors.Wrapf(ErrInvalidAlgorithm, "%d", int(alg))
	}

	p = p.Normalize()

	switch alg {
	case BitSerial:
		return bitSerial(p, msg), nil
	case ReflectedTable:
		t, err := cache.Get(p.Poly, p.Width, true)
		if err != nil {
			return 0, err
		}
		return reflectedTable(p, msg, t), nil
	}

	t, err := cache.Get(p.Poly, p.Width, false)
	if err != nil {
		return 0, err
	}
	if alg == TableDriven {
		return tableDriven(p, msg, t), nil
	}
	return optimizedTable(p, msg, t), nil
}
