package main

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Result is the checksum of one message computed with one algorithm.
type Result struct {
	XMLName   xml.Name `json:"-" xml:"Result"`
	Input     string   `json:"input" xml:",attr"`
	Name      string   `json:"name" xml:",attr"`
	Algorithm string   `json:"algorithm" xml:",attr"`
	Width     int      `json:"width" xml:",attr"`
	CRC       string   `json:"crc" xml:",attr"`
	Length    int      `json:"length" xml:",attr"`

	sum uint64
}

func (r Result) String() string {
	return fmt.Sprintf("{Input:%q Length:%d %s:%s CRC:0x%s}", r.Input, r.Length, r.Name, r.Algorithm, r.CRC)
}

func (r Result) Header() []string {
	return []string{"input", "name", "algorithm", "width", "length", "crc"}
}

func (r Result) Record() []string {
	return []string{
		r.Input,
		r.Name,
		r.Algorithm,
		strconv.Itoa(r.Width),
		strconv.Itoa(r.Length),
		"0x" + r.CRC,
	}
}
