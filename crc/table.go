package crc

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/bemasher/crcengine/bitutil"
)

// Table holds the mask XORed into the register for each control byte.
type Table [256]uint64

type slotState uint8

const (
	unresolved slotState = iota
	inProgress
	resolved
)

type slot struct {
	state slotState
	mask  uint64
}

// A snapshot of the register taken when its top byte entered the chain. The
// mask for that control byte is known 8 iterations later.
type snapshot struct {
	reg   uint64
	valid bool
}

// BuildTable computes the lookup table for poly and width. If reflected is
// true the table is indexed by reflected control bytes and holds reflected
// masks, for use by the reflected-table algorithm.
func BuildTable(poly uint64, width int, reflected bool) (*Table, error) {
	if !ValidWidth(width) {
		return nil, errors.Wrapf(ErrInvalidTableRequest, "width %d", width)
	}

	table := buildDirect(poly, width)
	if !reflected {
		return table, nil
	}

	return table.reflect(width), nil
}

// buildDirect resolves table entries by following chains of control values
// through the shift register. Each control byte seeds a register; every
// iteration the top byte names another control value, and while that value is
// unresolved it joins the chain. After 8 more shifts the byte has left the
// register and the accumulated XOR pattern is its mask. A chain ends once it
// reaches a control value that is already resolved or in flight.
func buildDirect(poly uint64, width int) *Table {
	mask := bitutil.Mask(width)
	shift := uint(width - 8)
	poly &= mask

	var slots [256]slot
	slots[0] = slot{state: resolved}

	for control := 1; control < 256; control++ {
		if slots[control].state != unresolved {
			continue
		}

		reg := uint64(control) << shift

		// pending[i] holds the register as it was at iteration i-8.
		pending := make([]snapshot, 8, 32)

		done := false
		endOfChain := 8

		for iter := 0; iter <= endOfChain; iter++ {
			if s := pending[iter]; s.valid {
				slots[s.reg>>shift] = slot{
					state: resolved,
					mask:  (s.reg<<8)&mask ^ reg,
				}
			}

			idx := reg >> shift
			if slots[idx].state == unresolved && !done {
				pending = append(pending, snapshot{reg: reg, valid: true})
				slots[idx].state = inProgress
				endOfChain = iter + 8
			} else {
				pending = append(pending, snapshot{})
				done = true
			}

			reg = shiftBit(reg, poly, width, mask)
		}
	}

	table := new(Table)
	for idx, s := range slots {
		table[idx] = s.mask
	}

	return table
}

// shiftBit advances the register by one zero bit.
func shiftBit(reg, poly uint64, width int, mask uint64) uint64 {
	hibit := reg >> uint(width-1) & 1
	reg = reg << 1 & mask
	if hibit == 1 {
		reg ^= poly
	}
	return reg
}

func (t *Table) reflect(width int) *Table {
	ref := new(Table)
	for idx, mask := range t {
		ref[bitutil.ReflectByte(byte(idx))] = bitutil.ReflectWidth(mask, width)
	}
	return ref
}

// Format writes the table as ncols hex values per row, each padded to width/4
// digits.
func (t *Table) Format(w io.Writer, width, ncols int) error {
	if err := checkWidth(width); err != nil {
		return err
	}
	if ncols <= 0 || 256%ncols != 0 {
		return errors.Errorf("column count %d must divide 256", ncols)
	}

	digits := width / 4
	row := make([]string, ncols)
	for start := 0; start < len(t); start += ncols {
		for col := range row {
			row[col] = fmt.Sprintf("%0*X", digits, t[start+col])
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return errors.Wrap(err, "write table row")
		}
	}

	return nil
}
