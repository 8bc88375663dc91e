/*
CRCENGINE is a configurable, width-generic CRC calculator. Every checksum can be
computed with four interchangeable algorithms which must agree: a bit-serial
long division, an augmented table-driven division, a non-augmented table-driven
division and a reflected (LSB-first) table-driven division.

Usage:

	crcengine [flags] [message ...]

Each positional argument is one message. With no arguments all of stdin is
read as a single message.

Command-line Flags:

	-preset="crc32"

Selects a named parameter set. Any explicitly given parameter flag overrides
the corresponding preset field, the result is then reported as "custom".

	-poly=0 -width=0 -init=0 -refin=false -refout=false -xorout=0

Override the generator polynomial, register width, initial register value,
input reflection, output reflection and final XOR mask of the preset. Widths
must be a multiple of 8 between 8 and 64. Values accept decimal, 0x hex, 0o
octal and 0b binary notation.

	-algorithm="optimized"

Comma separated list of algorithms to compute with: bitserial, table,
optimized, reflected or all. When more than one algorithm is selected the
results for each message are compared and a disagreement is an error.

	-input="text"

Sets how positional arguments are read. Text uses the argument's bytes
directly, hex parses the argument as a list of byte values separated by commas
or spaces and file reads the named file.

	crcengine -input=hex "0x31 0x32 0x33"

	-format="plain"

Sets the output format: plain, csv, json or xml. Plain text is formatted using
the following format string:

	{Input:%q Length:%d %s:%s CRC:0x%s}

For json and xml output each line is an element, there is no root node. Csv
output begins with a header row.

	-table=false

Prints the 256 entry lookup table for the selected parameters instead of
computing checksums. The reflected table is printed when the first selected
algorithm is reflected.

	-ncols=8

Number of table entries per row, must divide 256.

	-list=false

Lists every preset with its parameters and check value.

	-selftest=false

Verifies every preset against the checksum of "123456789" with all algorithms.

	-verbose=false

Enables debug logging, including the resolved parameters and residue.

	-version=false

Displays build tag, build date and commit hash.

Every flag may also be given as an environment variable named CRCENGINE_ followed
by the upper case flag name, such as CRCENGINE_PRESET=crc16-arc. Flags given on
the command line take precedence.
*/
package main
