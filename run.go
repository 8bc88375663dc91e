package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bemasher/crcengine/catalog"
	"github.com/bemasher/crcengine/crc"
)

// ErrDisagree is returned when selected algorithms produce different
// checksums for the same message.
var ErrDisagree = errors.New("algorithms disagree")

// Run executes the mode selected by cfg, writing output to w.
func Run(cfg Config, w io.Writer, args []string) error {
	switch {
	case cfg.List:
		return ListPresets(cfg.Encoder)
	case cfg.SelfTest:
		return SelfTest()
	case cfg.DumpTable:
		return DumpTable(cfg, w)
	}

	msgs, err := ReadMessages(cfg.Input, args, stdin)
	if err != nil {
		return err
	}

	results, err := Checksums(cfg, msgs)
	return writeResults(cfg.Encoder, results, err)
}

// writeResults encodes results and returns err. Disagreeing results are
// still written so they can be compared.
func writeResults(enc Encoder, results []Result, err error) error {
	if err != nil && !errors.Is(err, ErrDisagree) {
		return err
	}

	for _, r := range results {
		if encErr := enc.Encode(r); encErr != nil {
			return errors.Wrap(encErr, "encode result")
		}
	}

	return err
}

// Checksums computes every message with every selected algorithm. Messages
// are processed concurrently; results keep argument order.
func Checksums(cfg Config, msgs []Message) ([]Result, error) {
	if len(cfg.Algorithms) == 0 {
		return nil, errors.Wrap(crc.ErrInvalidAlgorithm, "no algorithm selected")
	}

	results := make([]Result, len(msgs)*len(cfg.Algorithms))

	g, ctx := errgroup.WithContext(context.Background())
	for idx := range msgs {
		idx := idx
		g.Go(func() error {
			msg := msgs[idx]
			for algIdx, alg := range cfg.Algorithms {
				if err := ctx.Err(); err != nil {
					return err
				}

				sum, err := cfg.CRC.ChecksumWith(alg, msg.Data)
				if err != nil {
					return errors.Wrapf(err, "%s", msg.Name)
				}

				results[idx*len(cfg.Algorithms)+algIdx] = Result{
					Input:     msg.Name,
					Name:      cfg.CRC.Name,
					Algorithm: alg.String(),
					Width:     cfg.CRC.Width,
					CRC:       crc.FormatHex(sum, cfg.CRC.Width),
					Length:    len(msg.Data),
					sum:       sum,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, compareResults(results, len(cfg.Algorithms))
}

// compareResults checks that each consecutive group of nalgs results, one
// message computed with every selected algorithm, holds a single checksum.
func compareResults(results []Result, nalgs int) error {
	for start := 0; start+nalgs <= len(results); start += nalgs {
		row := results[start : start+nalgs]
		for _, r := range row[1:] {
			if r.sum != row[0].sum {
				return errors.Wrapf(ErrDisagree, "%s: %s=0x%s %s=0x%s",
					r.Input, row[0].Algorithm, row[0].CRC, r.Algorithm, r.CRC,
				)
			}
		}
	}
	return nil
}

// DumpTable prints the direct lookup table, or the reflected one when the
// first selected algorithm is ReflectedTable.
func DumpTable(cfg Config, w io.Writer) error {
	reflected := len(cfg.Algorithms) > 0 && cfg.Algorithms[0] == crc.ReflectedTable

	tbl, err := crc.BuildTable(cfg.CRC.Poly, cfg.CRC.Width, reflected)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"name":      cfg.CRC.Name,
		"reflected": reflected,
	}).Debug("dumping table")

	return tbl.Format(w, cfg.CRC.Width, cfg.NCols)
}

// ListPresets encodes every registered preset.
func ListPresets(enc Encoder) error {
	for _, p := range catalog.All() {
		if err := enc.Encode(PresetInfo{p}); err != nil {
			return errors.Wrap(err, "encode preset")
		}
	}
	return nil
}

// PresetInfo adapts a catalog preset for the output encoders.
type PresetInfo struct {
	catalog.Preset
}

func (pi PresetInfo) Header() []string {
	return []string{"name", "width", "poly", "init", "refin", "refout", "xorout", "check"}
}

func (pi PresetInfo) Record() []string {
	p := pi.Params
	return []string{
		pi.Name,
		fmt.Sprint(p.Width),
		"0x" + crc.FormatHex(p.Poly, p.Width),
		"0x" + crc.FormatHex(p.Init, p.Width),
		fmt.Sprint(p.RefIn),
		fmt.Sprint(p.RefOut),
		"0x" + crc.FormatHex(p.XorOut, p.Width),
		"0x" + crc.FormatHex(pi.Check, p.Width),
	}
}

// SelfTest verifies every preset with every algorithm.
func SelfTest() error {
	failed := 0
	for _, p := range catalog.All() {
		entry := log.WithField("preset", p.Name)
		if err := p.Verify(); err != nil {
			entry.WithError(err).Error("check failed")
			failed++
			continue
		}
		entry.WithField("check", "0x"+crc.FormatHex(p.Check, p.Params.Width)).Info("ok")
	}

	if failed > 0 {
		return errors.Errorf("%d presets failed", failed)
	}
	return nil
}
