package crc

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Algorithm selects the strategy used to compute a checksum. All strategies
// produce identical results.
type Algorithm int

const (
	// BitSerial shifts the augmented message through the register one bit at a time.
	BitSerial Algorithm = iota
	// TableDriven is the byte-wise form of BitSerial using the direct lookup table.
	TableDriven
	// OptimizedTable folds each message byte into the table index and needs no
	// zero augmentation.
	OptimizedTable
	// ReflectedTable keeps the register reflected and shifts it right using the
	// reflected lookup table.
	ReflectedTable
)

var algorithmNames = [...]string{
	BitSerial:      "bitserial",
	TableDriven:    "table",
	OptimizedTable: "optimized",
	ReflectedTable: "reflected",
}

// Algorithms returns every strategy in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BitSerial, TableDriven, OptimizedTable, ReflectedTable}
}

func (a Algorithm) valid() bool {
	return a >= BitSerial && a <= ReflectedTable
}

func (a Algorithm) String() string {
	if !a.valid() {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// ParseAlgorithm looks up an algorithm by name, case insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidAlgorithm, "%q", name)
}

// Set implements flag.Value.
func (a *Algorithm) Set(value string) error {
	alg, err := ParseAlgorithm(value)
	if err != nil {
		return err
	}
	*a = alg
	return nil
}
