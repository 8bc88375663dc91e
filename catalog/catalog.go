// Package catalog holds named CRC parameter sets.
//
// Presets register themselves at init time the same way protocol parsers do,
// so tools can offer them by name without the engine knowing any of them.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/bemasher/crcengine/crc"
)

// CheckInput is the message every preset's Check value is computed over.
const CheckInput = "123456789"

// ErrUnknownPreset is returned by Lookup for an unregistered name.
var ErrUnknownPreset = errors.New("unknown preset")

var (
	presetMutex sync.Mutex
	presets     = make(map[string]Preset)
)

// Preset is a named parameter set and its check value.
type Preset struct {
	Name   string
	Params crc.Params
	Check  uint64
}

func (p Preset) String() string {
	return fmt.Sprintf("{Name:%s %s Check:0x%s}", p.Name, p.Params, crc.FormatHex(p.Check, p.Params.Width))
}

// Verify computes the checksum of CheckInput with every algorithm and
// compares it to p.Check.
func (p Preset) Verify() error {
	for _, alg := range crc.Algorithms() {
		sum, err := crc.Compute(p.Params, []byte(CheckInput), alg)
		if err != nil {
			return errors.Wrapf(err, "%s: %s", p.Name, alg)
		}
		if sum != p.Check {
			return errors.Errorf("%s: %s: expected 0x%s got 0x%s", p.Name, alg,
				crc.FormatHex(p.Check, p.Params.Width), crc.FormatHex(sum, p.Params.Width),
			)
		}
	}
	return nil
}

// CRC returns a ready to use CRC for the preset.
func (p Preset) CRC() (crc.CRC, error) {
	return crc.NewCRC(p.Name, p.Params)
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register makes a preset available by name. It panics if the name is empty,
// the parameters are invalid or the name is already registered.
func Register(p Preset) {
	presetMutex.Lock()
	defer presetMutex.Unlock()

	k := key(p.Name)
	if k == "" {
		panic("catalog: preset name is empty")
	}
	if err := p.Params.Validate(); err != nil {
		panic(fmt.Sprintf("catalog: preset %s: %v", p.Name, err))
	}
	if _, dup := presets[k]; dup {
		panic(fmt.Sprintf("catalog: preset already registered (%s)", p.Name))
	}
	presets[k] = p
}

// Lookup returns the preset registered under name, case insensitive.
func Lookup(name string) (Preset, error) {
	presetMutex.Lock()
	defer presetMutex.Unlock()

	if p, exists := presets[key(name)]; exists {
		return p, nil
	}
	return Preset{}, errors.Wrapf(ErrUnknownPreset, "%q", name)
}

// Names returns the registered preset names in sorted order.
func Names() (names []string) {
	presetMutex.Lock()
	defer presetMutex.Unlock()

	for _, p := range presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)

	return
}

// All returns every registered preset sorted by name.
func All() []Preset {
	names := Names()

	all := make([]Preset, 0, len(names))
	for _, name := range names {
		p, _ := Lookup(name)
		all = append(all, p)
	}
	return all
}
