package main

import (
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/bemasher/crcengine/crc"
)

const (
	InputText = "text"
	InputHex  = "hex"
	InputFile = "file"
)

var stdin io.Reader = os.Stdin

// Message is one positional argument and the bytes it names.
type Message struct {
	Name string
	Data []byte
}

// ReadMessages converts positional arguments to messages according to mode.
// With no arguments the whole of stdin is one message.
func ReadMessages(mode string, args []string, stdin io.Reader) ([]Message, error) {
	if len(args) == 0 {
		data, err := ioutil.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		if mode == InputHex {
			data, err = ParseValues(string(data))
			if err != nil {
				return nil, err
			}
		}
		return []Message{{Name: "-", Data: data}}, nil
	}

	msgs := make([]Message, len(args))
	for idx, arg := range args {
		msgs[idx].Name = arg

		var err error
		switch mode {
		case InputText:
			msgs[idx].Data = []byte(arg)
		case InputHex:
			msgs[idx].Data, err = ParseValues(arg)
		case InputFile:
			msgs[idx].Data, err = ioutil.ReadFile(arg)
		default:
			err = errors.Errorf("invalid input mode: %q", mode)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", idx)
		}
	}

	return msgs, nil
}

// ParseValues parses a list of byte values separated by commas or white
// space. Values may be decimal, 0x hex, 0o octal or 0b binary. Anything that
// is not an integer in 0-255 fails with crc.ErrInvalidMessageElement.
func ParseValues(s string) ([]byte, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	values := make([]int, len(fields))
	for idx, field := range fields {
		v, err := strconv.ParseInt(field, 0, 0)
		if err != nil {
			return nil, errors.Wrapf(crc.ErrInvalidMessageElement, "element %d: %q is not an integer", idx, field)
		}
		values[idx] = int(v)
	}

	return crc.MessageFromInts(values)
}
