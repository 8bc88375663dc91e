// CRCENGINE - A configurable, width-generic CRC calculator.
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/bemasher/crcengine/catalog"
	"github.com/bemasher/crcengine/crc"
	"github.com/bemasher/crcengine/csv"
)

var presetName = flag.String("preset", "crc32", "named parameter set, see -list")

var poly = flag.Uint64("poly", 0, "generator polynomial, overrides the preset")
var width = flag.Int("width", 0, "register width in bits, a multiple of 8 up to 64, overrides the preset")
var initVal = flag.Uint64("init", 0, "initial register value, overrides the preset")
var refIn = flag.Bool("refin", false, "reflect input bytes, overrides the preset")
var refOut = flag.Bool("refout", false, "reflect the final register, overrides the preset")
var xorOut = flag.Uint64("xorout", 0, "final XOR mask, overrides the preset")

var algorithms = AlgorithmList{crc.OptimizedTable}

var inputMode = flag.String("input", "text", "how positional arguments are read: text, hex or file")
var format = flag.String("format", "plain", "output format: plain, csv, json, or xml")

var dumpTable = flag.Bool("table", false, "print the lookup table instead of computing checksums")
var ncols = flag.Int("ncols", 8, "values per row when printing the lookup table")

var selfTest = flag.Bool("selftest", false, "verify every preset against its check value with all algorithms")
var list = flag.Bool("list", false, "list the available presets")

var verbose = flag.Bool("verbose", false, "enable debug logging")
var version = flag.Bool("version", false, "display build date and commit hash")

// Config is everything a run needs, resolved from the command line.
type Config struct {
	CRC        crc.CRC
	Algorithms []crc.Algorithm
	Input      string
	Encoder    Encoder
	DumpTable  bool
	NCols      int
	SelfTest   bool
	List       bool
}

func RegisterFlags() {
	flag.Var(&algorithms, "algorithm", "comma-separated algorithms: bitserial, table, optimized, reflected or all")

	paramFlags := map[string]bool{
		"preset": true,
		"poly":   true,
		"width":  true,
		"init":   true,
		"refin":  true,
		"refout": true,
		"xorout": true,
	}

	printDefaults := func(validFlags map[string]bool, inclusion bool) {
		flag.CommandLine.VisitAll(func(f *flag.Flag) {
			if validFlags[f.Name] != inclusion {
				return
			}

			format := "  -%s=%s: %s\n"
			fmt.Fprintf(os.Stderr, format, f.Name, f.Value, f.Usage)
		})
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s: [flags] [message ...]\n", os.Args[0])
		printDefaults(paramFlags, false)

		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "crc parameters:")
		printDefaults(paramFlags, true)
	}
}

func EnvOverride() {
	flag.VisitAll(func(f *flag.Flag) {
		envName := "CRCENGINE_" + strings.ToUpper(f.Name)
		flagValue := os.Getenv(envName)
		if flagValue != "" {
			prev := f.Value.String()
			if err := flag.Set(f.Name, flagValue); err != nil {
				// Numeric flags store 0 before reporting a parse error.
				f.Value.Set(prev)
				log.Warnf(
					"Environment variable %q failed to override flag %q with value %q: %q",
					envName, f.Name, flagValue, err,
				)
			} else {
				log.Infof("Environment variable %q overrides flag %q with %q", envName, f.Name, flagValue)
			}
		}
	})
}

// HandleFlags resolves the parsed flags into a Config. Parameter flags that
// were set explicitly override the fields of the selected preset.
func HandleFlags(w io.Writer) (cfg Config, err error) {
	preset, err := catalog.Lookup(*presetName)
	if err != nil {
		return cfg, err
	}

	params := preset.Params
	name := preset.Name
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "poly":
			params.Poly = *poly
		case "width":
			params.Width = *width
		case "init":
			params.Init = *initVal
		case "refin":
			params.RefIn = *refIn
		case "refout":
			params.RefOut = *refOut
		case "xorout":
			params.XorOut = *xorOut
		default:
			return
		}
		name = "custom"
	})

	cfg.CRC, err = crc.NewCRC(name, params)
	if err != nil {
		return cfg, err
	}

	cfg.Encoder, err = NewEncoder(*format, w)
	if err != nil {
		return cfg, err
	}

	cfg.Input = strings.ToLower(*inputMode)
	switch cfg.Input {
	case InputText, InputHex, InputFile:
	default:
		return cfg, errors.Errorf("invalid input mode: %q", *inputMode)
	}

	cfg.Algorithms = algorithms
	cfg.DumpTable = *dumpTable
	cfg.NCols = *ncols
	cfg.SelfTest = *selfTest
	cfg.List = *list

	return cfg, nil
}

// JSON, XML and CSV all implement this interface so we can simplify output
// formatting.
type Encoder interface {
	Encode(interface{}) error
}

func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch strings.ToLower(format) {
	case "plain":
		return PlainEncoder{w}, nil
	case "csv":
		return csv.NewEncoder(w), nil
	case "json":
		return json.NewEncoder(w), nil
	case "xml":
		return LineEncoder{xml.NewEncoder(w), w}, nil
	}
	return nil, errors.Errorf("invalid output format: %q", format)
}

type PlainEncoder struct {
	w io.Writer
}

func (pe PlainEncoder) Encode(v interface{}) (err error) {
	_, err = fmt.Fprintln(pe.w, v)
	return
}

// LineEncoder terminates each encoded element with a newline.
type LineEncoder struct {
	Encoder
	w io.Writer
}

func (le LineEncoder) Encode(v interface{}) error {
	if err := le.Encoder.Encode(v); err != nil {
		return err
	}
	_, err := fmt.Fprintln(le.w)
	return err
}

// AlgorithmList is a flag.Value holding one or more algorithms.
type AlgorithmList []crc.Algorithm

func (l AlgorithmList) String() string {
	names := make([]string, len(l))
	for idx, alg := range l {
		names[idx] = alg.String()
	}
	return strings.Join(names, ",")
}

func (l *AlgorithmList) Set(value string) error {
	var algs AlgorithmList
	for _, name := range strings.Split(value, ",") {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			algs = append(algs, crc.Algorithms()...)
			continue
		}

		alg, err := crc.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		algs = append(algs, alg)
	}

	*l = algs
	return nil
}
