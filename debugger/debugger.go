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

package debugger

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger/govern"
	"github.com/gopherdmg/gopherdmg/disassembly"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/notifications"
)

// Halt describes why Run() returned.
type Halt struct {
	Reason govern.Reason

	// the breakpoints that were matched. only for the Breakpoint reason
	Handles []Handle

	// the number of instructions executed by the call to Run()
	Instructions int

	// the program counter when the emulation stopped
	Address uint16
}

func (h Halt) String() string {
	if h.Reason == govern.Breakpoint {
		return fmt.Sprintf("%s at %04x after %d instructions %v", h.Reason, h.Address, h.Instructions, h.Handles)
	}
	return fmt.Sprintf("%s at %04x after %d instructions", h.Reason, h.Address, h.Instructions)
}

// Debugger is the debugger host. It owns the breakpoint store and installs
// traps in the console's memory for every Execution condition.
type Debugger struct {
	con *hardware.Console

	Breakpoints *Breakpoints
	Disasm      *disassembly.Disassembly

	traps *traps

	// events that happened during the most recent step
	events []Event
}

// NewDebugger creates a debugger for the console. The debugger receives all
// hardware notifications from the console.
func NewDebugger(con *hardware.Console) *Debugger {
	dbg := &Debugger{
		con:         con,
		Breakpoints: NewBreakpoints(),
		Disasm:      disassembly.NewDisassembly(con.Mem),
		traps:       newTraps(con.Mem),
	}

	dbg.Breakpoints.SetHooks(dbg.breakpointCreated, dbg.breakpointDestroyed)
	con.SetNotify(dbg)

	return dbg
}

func (dbg *Debugger) breakpointCreated(_ Handle, desc Description) {
	for _, c := range desc {
		if c.Kind == Execution {
			dbg.traps.add(c.Address)
		}
	}
}

func (dbg *Debugger) breakpointDestroyed(_ Handle, desc Description) {
	for _, c := range desc {
		if c.Kind == Execution {
			dbg.traps.remove(c.Address)
		}
	}
}

// Notify implements the notifications.Notify interface.
func (dbg *Debugger) Notify(notice notifications.Notice) error {
	ev, ok := noticeEvents[notice]
	if !ok {
		return curated.Errorf("debugger: unexpected notification (%s)", notice)
	}

	// the memory mapped to a trapped address has changed
	if ev == EventBankSwitch {
		dbg.traps.sync()
	}

	dbg.events = append(dbg.events, ev)

	return nil
}

// Console returns the console being debugged.
func (dbg *Debugger) Console() *hardware.Console {
	return dbg.con
}

// IsValidAddress returns false if the address is the second byte of a
// prefixed instruction.
func (dbg *Debugger) IsValidAddress(address uint16) bool {
	return dbg.Disasm.IsValidAddress(address)
}

// GetInstructionSize returns the number of bytes in the instruction at the
// address.
func (dbg *Debugger) GetInstructionSize(address uint16) int {
	return dbg.Disasm.GetInstructionSize(address)
}

// GetInstructionName returns the mnemonic of the instruction at the address.
func (dbg *Debugger) GetInstructionName(address uint16) string {
	return dbg.Disasm.GetInstructionName(address)
}

// Load8 reads the address without side effects. Traps are not visible, the
// replaced value is returned instead.
func (dbg *Debugger) Load8(address uint16) uint8 {
	v, err := dbg.con.Mem.Peek(address)
	if err != nil {
		return 0xff
	}
	if dbg.traps.isTrap(address) {
		if orig, ok := dbg.con.Mem.GetReplaced8(address); ok {
			return orig
		}
	}
	return v
}

// Poke8 writes the value to the address without side effects. A trap at the
// address is kept and the value becomes the byte it replaces.
func (dbg *Debugger) Poke8(address uint16, value uint8) error {
	if dbg.traps.isTrap(address) {
		dbg.traps.suspend(address)
		defer dbg.traps.sync()
	}
	return dbg.con.Mem.Poke(address, value)
}

// HasBreakpoint returns true if there is at least one breakpoint with an
// Execution condition for the address.
func (dbg *Debugger) HasBreakpoint(address uint16) bool {
	return len(dbg.Breakpoints.GetExecutionBreakpoints(address)) > 0
}

// SetBreakpoint creates a breakpoint for the address if set is true and there
// is no breakpoint for the address. If set is false every breakpoint with an
// Execution condition for the address is destroyed.
func (dbg *Debugger) SetBreakpoint(address uint16, set bool) {
	if set {
		if !dbg.HasBreakpoint(address) {
			dbg.Breakpoints.CreateBreakpoint(Description{ExecutionAt(address)})
		}
		return
	}

	for _, h := range dbg.Breakpoints.GetExecutionBreakpoints(address) {
		dbg.Breakpoints.DestroyBreakpoint(h)
	}
}

// step executes one instruction. a trap at the program counter is suspended
// for the duration of the instruction
func (dbg *Debugger) step() error {
	dbg.events = dbg.events[:0]

	pc := dbg.con.CPU.Reg.GetRegister16(registers.PC)
	if dbg.traps.isTrap(pc) {
		dbg.traps.suspend(pc)
		defer dbg.traps.sync()
	}

	return dbg.con.Step(nil)
}

// Step executes exactly one instruction. Breakpoints at the current address
// are ignored.
func (dbg *Debugger) Step() error {
	err := dbg.step()
	if curated.Is(err, cpu.UnimplementedInstruction) {
		return nil
	}
	return err
}

// Run the emulation until a breakpoint is matched or until limit
// instructions have been executed. A limit of zero or less means no limit.
// The breakpoint at the current address, if any, is not matched by the first
// instruction.
//
// Reaching an unimplemented instruction also stops the emulation. This is
// not an error.
func (dbg *Debugger) Run(limit int) (Halt, error) {
	var h Halt

	for limit <= 0 || h.Instructions < limit {
		var err error
		if h.Instructions == 0 {
			err = dbg.step()
		} else {
			dbg.events = dbg.events[:0]
			err = dbg.con.Step(nil)
		}

		h.Address = dbg.con.CPU.Reg.GetRegister16(registers.PC)

		if err != nil {
			if curated.Is(err, cpu.Trapped) {
				h.Reason = govern.Breakpoint
				h.Handles = dbg.Breakpoints.GetExecutionBreakpoints(h.Address)
				return h, nil
			}
			if curated.Is(err, cpu.UnimplementedInstruction) {
				h.Reason = govern.Unimplemented
				h.Handles = dbg.eventBreakpoints()
				h.Instructions++
				return h, nil
			}
			return h, err
		}

		h.Instructions++

		if hs := dbg.eventBreakpoints(); len(hs) > 0 {
			h.Reason = govern.Breakpoint
			h.Handles = hs
			return h, nil
		}
	}

	h.Reason = govern.Limit
	return h, nil
}

// the breakpoints matched by the events of the most recent step
func (dbg *Debugger) eventBreakpoints() []Handle {
	var hs []Handle
	for _, ev := range dbg.events {
		hs = append(hs, dbg.Breakpoints.GetEventBreakpoints(ev)...)
	}
	return hs
}

// Reset the console. Breakpoints are not changed.
func (dbg *Debugger) Reset() {
	dbg.traps.restoreVisible()
	dbg.con.Reset()
	dbg.traps.sync()
	dbg.events = dbg.events[:0]
	logger.Log(logger.Allow, "debugger", "console reset")
}

// DumpGraph writes a graphviz representation of the breakpoint store to the
// io.Writer.
func (dbg *Debugger) DumpGraph(w io.Writer) {
	memviz.Map(w, dbg.Breakpoints)
}
