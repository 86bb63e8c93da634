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

// Command gopherdmg is the host tool for the emulator core. It has three
// modes:
//
//	RUN     run the cartridge until a breakpoint, an instruction limit or
//	        an interrupt signal and print the CPU state
//	STEP    step through the cartridge one instruction at a time. in a real
//	        terminal every key is a command
//	SCRIPT  drive the debugger with a Lua script
//
// The default mode is RUN.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gopherdmg/gopherdmg/debugger/govern"
	"github.com/gopherdmg/gopherdmg/modalflag"
)

const additionalHelp = `gopherdmg [mode] [flags] <cartridge> [script]

Preferences can be overridden with the -prefs flag:

	-prefs "cpu.strict::true; mmu.blocksize::0x40"`

// exit values
const (
	exitOK          = 0
	exitParseError  = 10
	exitModeError   = 20
	exitInterrupted = 30
)

func main() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout, intChan))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program
func launch(args []string, input io.Reader, output io.Writer, intChan chan os.Signal) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes(govern.ModeRun.String(), govern.ModeStep.String(), govern.ModeScript.String())
	md.AdditionalHelp(additionalHelp)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	mode, err := govern.ParseMode(md.Mode())
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	var interrupted bool

	switch mode {
	case govern.ModeRun:
		interrupted, err = runMode(md, intChan)
	case govern.ModeStep:
		interrupted, err = stepMode(md, input, intChan)
	case govern.ModeScript:
		err = scriptMode(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	if interrupted {
		return exitInterrupted
	}

	return exitOK
}
