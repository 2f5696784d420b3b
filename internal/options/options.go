// Package options contains the program options.
package options

// Program options of the DPCD dump decoder.
type Program struct {
	Inputs []string // dump files to decode, empty means stdin
	Output string   // output file, empty means stdout

	ExpandFields bool // show the named bitfields of each register value
	Strict       bool // abort on the first malformed line

	Debug bool
	Quiet bool
}
