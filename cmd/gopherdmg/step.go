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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger"
	"github.com/gopherdmg/gopherdmg/debugger/govern"
	"github.com/gopherdmg/gopherdmg/debugger/script"
	"github.com/gopherdmg/gopherdmg/debugger/terminal"
	"github.com/gopherdmg/gopherdmg/debugger/terminal/easyterm"
	"github.com/gopherdmg/gopherdmg/debugger/terminal/plainterm"
	"github.com/gopherdmg/gopherdmg/disassembly"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/modalflag"
	"golang.org/x/term"
)

const stepHelp = `s or enter  step one instruction
r           run until a breakpoint
b           toggle breakpoint at the program counter
l           list the next instructions
x           reset the console
q           quit`

// number of instructions between checks for an interrupt signal while running
// in step mode
const runChunk = 10000

func stepMode(md *modalflag.Modes, input io.Reader, intChan chan os.Signal) (bool, error) {
	md.NewMode()
	c := addCommon(md)
	plain := md.AddBool("plain", false, "use the line based terminal even if a key terminal is available")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return false, err
	}

	if len(md.RemainingArgs()) != 1 {
		return false, fmt.Errorf("one cartridge required")
	}

	dbg, err := c.createDebugger(md.GetArg(0))
	if err != nil {
		return false, err
	}

	t := selectTerminal(input, md.Output, *plain)
	if err := t.Initialise(); err != nil {
		return false, err
	}
	defer t.CleanUp()

	st := &stepper{
		dbg:     dbg,
		term:    t,
		intChan: intChan,
	}

	interrupted, err := st.loop()
	if err != nil {
		return interrupted, err
	}

	return interrupted, c.cleanUp(dbg)
}

// the key terminal is used if the input is stdin and stdin is a terminal
func selectTerminal(input io.Reader, output io.Writer, plain bool) terminal.Terminal {
	if f, ok := input.(*os.File); ok && f == os.Stdin && !plain {
		if term.IsTerminal(int(f.Fd())) {
			return &easyterm.KeyTerminal{}
		}
	}
	return plainterm.NewPlainTerminal(input, output)
}

type stepper struct {
	dbg     *debugger.Debugger
	term    terminal.Terminal
	intChan chan os.Signal
	queue   script.Queue
}

func (st *stepper) pc() uint16 {
	return st.dbg.Console().CPU.Reg.GetRegister16(registers.PC)
}

func (st *stepper) loop() (bool, error) {
	events := &terminal.ReadEvents{
		Signal: st.intChan,
		SignalHandler: func(_ os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}

	for {
		var cmd string

		if ln, ok := st.queue.Next(); ok {
			cmd = ln.Entry
		} else {
			e := st.dbg.Disasm.Decode(st.pc())
			prompt := terminal.Prompt{
				Content:  fmt.Sprintf("%04x %s", e.Address, e),
				Stepping: isKeyTerminal(st.term),
			}

			s, err := st.term.TermRead(prompt, events)
			if err != nil {
				if curated.Is(err, terminal.UserInterrupt) {
					return true, nil
				}
				if curated.Is(err, terminal.UserAbort) {
					return false, nil
				}
				return false, err
			}

			st.term.TermPrintLine(terminal.StyleEcho, s)

			// an empty line or a single key press of the enter key steps
			if strings.TrimSpace(s) == "" {
				cmd = "s"
			} else {
				ln, err := st.queue.Push(s)
				if err != nil {
					continue // for loop
				}
				cmd = ln.Entry
			}
		}

		quit, interrupted, err := st.command(cmd)
		if err != nil {
			st.term.TermPrintLine(terminal.StyleError, err.Error())
		}
		if quit {
			return interrupted, nil
		}
	}
}

func isKeyTerminal(t terminal.Terminal) bool {
	_, ok := t.(*easyterm.KeyTerminal)
	return ok
}

// command runs a single command. commands are identified by their first letter
func (st *stepper) command(cmd string) (quit bool, interrupted bool, err error) {
	switch strings.ToLower(cmd[:1]) {
	case "s":
		if err := st.dbg.Step(); err != nil {
			return false, false, err
		}
		st.state()

	case "r":
		h, interrupted, err := st.run()
		if err != nil {
			return false, false, err
		}
		if interrupted {
			st.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%s after %d instructions", govern.Ended, h.Instructions))
		} else {
			st.term.TermPrintLine(terminal.StyleFeedback, h.String())
		}
		st.state()

	case "b":
		pc := st.pc()
		set := !st.dbg.HasBreakpoint(pc)
		st.dbg.SetBreakpoint(pc, set)
		if set {
			st.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint set at %04x", pc))
		} else {
			st.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint cleared at %04x", pc))
		}

	case "l":
		s := &strings.Builder{}
		if err := st.dbg.Disasm.Write(s, disassembly.WriteAttr{ByteCode: true, Cycles: true}, st.pc(), 8); err != nil {
			return false, false, err
		}
		st.term.TermPrintLine(terminal.StyleInstrument, strings.TrimSuffix(s.String(), "\n"))

	case "x":
		st.dbg.Reset()
		st.state()

	case "q":
		return true, false, nil

	case "h", "?":
		st.term.TermPrintLine(terminal.StyleFeedback, stepHelp)

	default:
		return false, false, fmt.Errorf("unknown command: %s", cmd)
	}

	return false, false, nil
}

// run the emulation in chunks, checking for an interrupt signal between each
// chunk. the returned Halt covers every chunk
func (st *stepper) run() (debugger.Halt, bool, error) {
	var total debugger.Halt

	for {
		h, err := st.dbg.Run(runChunk)
		total.Instructions += h.Instructions
		total.Address = h.Address
		total.Reason = h.Reason
		total.Handles = h.Handles
		if err != nil {
			return total, false, err
		}

		if h.Reason != govern.Limit {
			return total, false, nil
		}

		// a chunk that ends on a breakpoint address would step over the
		// breakpoint at the start of the next chunk
		if st.dbg.HasBreakpoint(h.Address) {
			total.Reason = govern.Breakpoint
			total.Handles = st.dbg.Breakpoints.GetExecutionBreakpoints(h.Address)
			return total, false, nil
		}

		select {
		case <-st.intChan:
			return total, true, nil
		default:
		}
	}
}

func (st *stepper) state() {
	st.term.TermPrintLine(terminal.StyleInstrument, st.dbg.Console().CPU.String())
}
