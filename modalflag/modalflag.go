// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"io"
	"strings"
)

// separates the modes in the string returned by Path()
const pathSeparator = "/"

// Modes handles command line arguments that are divided into modes. Each
// mode has its own set of flags and can select a sub-mode from the first
// argument that is not a flag.
//
// Help messages are written to Output. Nothing is printed if Output is nil.
type Modes struct {
	Output io.Writer

	args []string

	// index of the first argument that belongs to the current mode
	argsIdx int

	// flags for the current mode. replaced by NewMode()
	flags *flag.FlagSet

	// sub-modes for the current mode. the first entry is the default
	subModes []string

	// every mode selected since NewArgs()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. Empty if no mode has been
// selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, pathSeparator)
}

// NewArgs starts processing of a new argument list. The first mode begins
// immediately.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode begins a new mode. Flags and sub-modes added after this call apply
// to the remaining arguments.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = nil
}

// AdditionalHelp is printed after the flag and sub-mode information when help
// is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// the caller should continue. if sub-modes were added then Mode() says
	// which one was selected
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error value returned by Parse() says what went wrong
	ParseError
)

// Parse the arguments for the current mode. Usage:
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// If sub-modes have been added, a flag that is not recognised is not an
// error. The default sub-mode is selected and the flags are left for the next
// mode.
func (md *Modes) Parse() (ParseResult, error) {
	u := &usage{}
	md.flags.SetOutput(u)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err == flag.ErrHelp {
		if md.Output != nil {
			u.write(md.Output, md.Path(), md.subModes, md.additionalHelp)
		}
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	if err != nil {
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	// arguments consumed as flags belong to this mode
	md.argsIdx = len(md.args) - md.flags.NArg()

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			md.argsIdx++
			break // for loop
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments after the flags of the current mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes adds to the list of sub-modes for the current mode. The first
// sub-mode added is the default. Sub-modes are not case sensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
