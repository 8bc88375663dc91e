package crc

import (
	"hash/crc32"
	"hash/crc64"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	kcrc32 "github.com/klauspost/crc32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkInput = []byte("123456789")

var knownAnswers = []struct {
	Name   string
	Params Params
	Check  uint64
}{
	{"CRC-8/1-Wire", Params{Poly: 0x31, Width: 8, RefIn: true, RefOut: true}, 0xA1},
	{"CRC-8/SMBus", Params{Poly: 0x07, Width: 8}, 0xF4},
	{"CRC-16/ARC", Params{Poly: 0x8005, Width: 16, RefIn: true, RefOut: true}, 0xBB3D},
	{"CRC-16/CCITT", Params{Poly: 0x1021, Width: 16, Init: 0xFFFF}, 0x29B1},
	{"CRC-16/XMODEM", Params{Poly: 0x1021, Width: 16}, 0x31C3},
	{"CRC-24/OpenPGP", Params{Poly: 0x864CFB, Width: 24, Init: 0xB704CE}, 0x21CF02},
	{"CRC-32", Params{Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}, 0xCBF43926},
	{"CRC-32C", Params{Poly: 0x1EDC6F41, Width: 32, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}, 0xE3069283},
	{"CRC-32C/unreflected", Params{Poly: 0x1EDC6F41, Width: 32, Init: 0xFFFFFFFF}, 0xFABBF0EA},
	{"CRC-64/XZ", Params{Poly: 0x42F0E1EBA9EA3693, Width: 64, Init: ^uint64(0), RefIn: true, RefOut: true, XorOut: ^uint64(0)}, 0x995DC9BBDF1939FA},
	{"CRC-64/ECMA-182", Params{Poly: 0x42F0E1EBA9EA3693, Width: 64}, 0x6C40DF5F0B497347},
}

func TestKnownAnswers(t *testing.T) {
	for _, ka := range knownAnswers {
		t.Run(ka.Name, func(t *testing.T) {
			for _, alg := range Algorithms() {
				sum, err := Compute(ka.Params, checkInput, alg)
				require.NoError(t, err)
				assert.Equalf(t, ka.Check, sum, "%s: expected 0x%X got 0x%X", alg, ka.Check, sum)
			}
		})
	}
}

// randParams generates a valid parameter set with any byte aligned width.
type randParams Params

func (randParams) Generate(rand *rand.Rand, size int) reflect.Value {
	width := (rand.Intn(MaxWidth/8) + 1) * 8
	return reflect.ValueOf(randParams{
		Poly:   rand.Uint64(),
		Width:  width,
		Init:   rand.Uint64(),
		RefIn:  rand.Intn(2) == 1,
		RefOut: rand.Intn(2) == 1,
		XorOut: rand.Uint64(),
	})
}

func TestCrossAlgorithmAgreement(t *testing.T) {
	err := quick.Check(func(rp randParams, msg []byte) bool {
		p := Params(rp)

		expt, err := Compute(p, msg, BitSerial)
		if err != nil {
			return false
		}
		for _, alg := range Algorithms()[1:] {
			sum, err := Compute(p, msg, alg)
			if err != nil || sum != expt {
				t.Logf("%s %s: expected 0x%X got 0x%X (%v)\n", p, alg, expt, sum, err)
				return false
			}
		}
		return true
	}, &quick.Config{MaxCount: 500})

	if err != nil {
		t.Fatal("Error testing agreement:", err)
	}
}

func TestShortMessages(t *testing.T) {
	// Messages shorter than the register exercise the zero augmentation of
	// the bit-serial and table-driven algorithms.
	p := Params{Poly: 0x42F0E1EBA9EA3693, Width: 64, Init: 0x0123456789ABCDEF, XorOut: 0x55}
	for length := 0; length <= 9; length++ {
		msg := make([]byte, length)
		for idx := range msg {
			msg[idx] = byte(0xA5 + idx)
		}

		expt, err := Compute(p, msg, OptimizedTable)
		require.NoError(t, err)
		for _, alg := range Algorithms() {
			sum, err := Compute(p, msg, alg)
			require.NoError(t, err)
			require.Equalf(t, expt, sum, "%s length %d", alg, length)
		}
	}
}

func TestEvenPolyNonzeroInit(t *testing.T) {
	p := Params{Poly: 0x8408, Width: 16, Init: 0x1234, RefOut: true, XorOut: 0x55}
	for _, alg := range Algorithms() {
		sum, err := Compute(p, checkInput, alg)
		require.NoError(t, err)
		assert.Equalf(t, uint64(0x121B), sum, "%s", alg)
	}
}

func TestStdlibOracles(t *testing.T) {
	crc32Params := Params{Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}
	crc32cParams := crc32Params
	crc32cParams.Poly = 0x1EDC6F41
	crc64Params := Params{Poly: 0x42F0E1EBA9EA3693, Width: 64, Init: ^uint64(0), RefIn: true, RefOut: true, XorOut: ^uint64(0)}

	castagnoli := kcrc32.MakeTable(kcrc32.Castagnoli)
	ecma := crc64.MakeTable(crc64.ECMA)

	err := quick.Check(func(msg []byte) bool {
		for _, alg := range Algorithms() {
			sum32, _ := Compute(crc32Params, msg, alg)
			sum32c, _ := Compute(crc32cParams, msg, alg)
			sum64, _ := Compute(crc64Params, msg, alg)

			if sum32 != uint64(crc32.ChecksumIEEE(msg)) ||
				sum32c != uint64(kcrc32.Checksum(msg, castagnoli)) ||
				sum64 != crc64.Checksum(msg, ecma) {
				return false
			}
		}
		return true
	}, nil)

	if err != nil {
		t.Fatal("Error testing against standard library:", err)
	}
}

func TestEmptyMessage(t *testing.T) {
	cases := []struct {
		Params Params
		Expt   uint64
	}{
		{Params{Poly: 0x1021, Width: 16, Init: 0xFFFF}, 0xFFFF},
		{Params{Poly: 0x1021, Width: 16, Init: 0x1234, RefOut: true}, 0x2C48},
		{Params{Poly: 0x1021, Width: 16, Init: 0x1234, XorOut: 0x00FF}, 0x12CB},
		{Params{Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}, 0},
		{Params{Poly: 0x31, Width: 8, Init: 0x01, RefOut: true}, 0x80},
	}

	for _, c := range cases {
		for _, alg := range Algorithms() {
			for _, msg := range [][]byte{nil, {}} {
				sum, err := Compute(c.Params, msg, alg)
				require.NoError(t, err)
				assert.Equalf(t, c.Expt, sum, "%s %s", c.Params, alg)
			}
		}
	}
}

func TestWidthMasking(t *testing.T) {
	// Parameters wider than the register are masked, and results never
	// exceed the width.
	wide := Params{Poly: 0xFF31, Width: 8, Init: 0xFF00, RefIn: true, RefOut: true, XorOut: 0xAB00}
	narrow := Params{Poly: 0x31, Width: 8, RefIn: true, RefOut: true}

	for _, alg := range Algorithms() {
		sum, err := Compute(wide, checkInput, alg)
		require.NoError(t, err)
		assert.Equal(t, uint64(0xA1), sum)

		sum, err = Compute(narrow, []byte{0xFF, 0xFF, 0xFF}, alg)
		require.NoError(t, err)
		assert.LessOrEqual(t, sum, uint64(0xFF))
	}

	err := quick.Check(func(rp randParams, msg []byte) bool {
		p := Params(rp)
		for _, alg := range Algorithms() {
			sum, err := Compute(p, msg, alg)
			if err != nil || sum&^p.Mask() != 0 {
				return false
			}
		}
		return true
	}, nil)
	require.NoError(t, err)
}

func TestIdempotent(t *testing.T) {
	p := Params{Poly: 0x1EDC6F41, Width: 32, Init: 0xFFFFFFFF}
	other := Params{Poly: 0x8005, Width: 16, RefIn: true, RefOut: true}

	for _, alg := range Algorithms() {
		first, err := Compute(p, checkInput, alg)
		require.NoError(t, err)

		// Interleave a computation with different parameters.
		_, err = Compute(other, checkInput, alg)
		require.NoError(t, err)

		second, err := Compute(p, checkInput, alg)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestMessageUnmodified(t *testing.T) {
	p := Params{Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}
	msg := []byte("123456789")

	for _, alg := range Algorithms() {
		sum, err := Compute(p, msg, alg)
		require.NoError(t, err)
		assert.Equal(t, uint64(0xCBF43926), sum)
		assert.Equal(t, checkInput, msg)
	}
}

func TestInvalidWidth(t *testing.T) {
	for _, width := range []int{0, 7, 9, 15, 72, -16} {
		p := Params{Poly: 0x07, Width: width}
		for _, alg := range Algorithms() {
			sum, err := Compute(p, checkInput, alg)
			assert.Zero(t, sum)
			assert.Truef(t, errors.Is(err, ErrInvalidWidth), "width %d %s: %+v", width, alg, err)
		}
	}
}

func TestInvalidAlgorithm(t *testing.T) {
	p := Params{Poly: 0x07, Width: 8}
	for _, alg := range []Algorithm{-1, 4, 100} {
		_, err := Compute(p, checkInput, alg)
		assert.True(t, errors.Is(err, ErrInvalidAlgorithm), "%+v", err)
	}

	// Width is validated first.
	_, err := Compute(Params{Width: 7}, checkInput, Algorithm(100))
	assert.True(t, errors.Is(err, ErrInvalidWidth), "%+v", err)
}

func TestComputeValues(t *testing.T) {
	p := Params{Poly: 0x8005, Width: 16, RefIn: true, RefOut: true}
	values := []int{'1', '2', '3', '4', '5', '6', '7', '8', '9'}

	for _, alg := range Algorithms() {
		sum, err := ComputeValues(p, values, alg)
		require.NoError(t, err)
		assert.Equal(t, uint64(0xBB3D), sum)
	}

	for _, values := range [][]int{{0x31, 256}, {-1}, {1 << 16}} {
		sum, err := ComputeValues(p, values, OptimizedTable)
		assert.Zero(t, sum)
		assert.True(t, errors.Is(err, ErrInvalidMessageElement), "%v: %+v", values, err)
	}

	// Elements are converted before the parameters are checked.
	_, err := ComputeValues(Params{Width: 0}, []int{1, 2, 3}, OptimizedTable)
	assert.True(t, errors.Is(err, ErrInvalidWidth), "%+v", err)
}

func benchmarkAlgorithm(b *testing.B, alg Algorithm) {
	p := Params{Poly: 0x04C11DB7, Width: 32, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}
	msg := make([]byte, 4096)
	rand.New(rand.NewSource(1)).Read(msg)

	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Compute(p, msg, alg)
	}
}

func BenchmarkBitSerial(b *testing.B)      { benchmarkAlgorithm(b, BitSerial) }
func BenchmarkTableDriven(b *testing.B)    { benchmarkAlgorithm(b, TableDriven) }
func BenchmarkOptimizedTable(b *testing.B) { benchmarkAlgorithm(b, OptimizedTable) }
func BenchmarkReflectedTable(b *testing.B) { benchmarkAlgorithm(b, ReflectedTable) }
