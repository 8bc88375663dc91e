package crc

import (
	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/bemasher/crcengine/bitutil"
)

var (
	// ErrInvalidWidth is returned for widths that are not a multiple of 8
	// between MinWidth and MaxWidth.
	ErrInvalidWidth = errors.New("invalid width")

	// ErrInvalidMessageElement is returned when an integer message holds a
	// value outside 0-255.
	ErrInvalidMessageElement = bitutil.ErrInvalidElement

	// ErrInvalidTableRequest is returned by BuildTable for an invalid width.
	// It also matches ErrInvalidWidth.
	ErrInvalidTableRequest = xerrors.Errorf("invalid table request: %w", ErrInvalidWidth)

	// ErrInvalidAlgorithm is returned for an unknown Algorithm value or name.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")
)

const (
	MinWidth = 8
	MaxWidth = 64
)

// ValidWidth reports whether width is usable by the engine.
func ValidWidth(width int) bool {
	return width >= MinWidth && width <= MaxWidth && width%8 == 0
}

func checkWidth(width int) error {
	if !ValidWidth(width) {
		return errors.Wrapf(ErrInvalidWidth, "width %d must be a multiple of 8 in [%d, %d]", width, MinWidth, MaxWidth)
	}
	return nil
}
