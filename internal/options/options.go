// Package options contains the program options.
package options

// Defaults for options that are not given on the command line.
const (
	DefaultInput  = "ROM1.bin"
	DefaultLayout = "r180"
)

// Program options of the decoder.
type Program struct {
	Input  string // firmware image to decode
	Output string // report file, stdout if empty
	Layout string // name of the firmware layout

	Debug bool
	Quiet bool
}
