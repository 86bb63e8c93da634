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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/debugger"
	"github.com/gopherdmg/gopherdmg/debugger/govern"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/test"
)

// the program used by the tests. an MBC1 cartridge with four banks. the
// program calls the routine at 0x4000 in bank 2 and then in bank 1
var program = []uint8{
	0x3e, 0x02, // 0150 LD A,2
	0xea, 0x00, 0x20, // 0152 LD (0x2000),A
	0xcd, 0x00, 0x40, // 0155 CALL 0x4000
	0x3e, 0x01, // 0158 LD A,1
	0xea, 0x00, 0x20, // 015a LD (0x2000),A
	0xcd, 0x00, 0x40, // 015d CALL 0x4000
	0x18, 0xfe, // 0160 JR -2
}

func rom() []byte {
	data := make([]byte, 0x10000)
	copy(data[0x100:], []uint8{0x00, 0xc3, 0x50, 0x01})
	copy(data[0x134:], "DEBUGGER")
	data[0x147] = 0x01
	data[0x148] = 0x01
	copy(data[0x150:], program)

	// bank 1: INC A; RET
	copy(data[0x4000:], []uint8{0x3c, 0xc9})

	// bank 2: INC B; RET
	copy(data[0x8000:], []uint8{0x04, 0xc9})

	return data
}

func newDebugger(t *testing.T, data []byte) *debugger.Debugger {
	t.Helper()
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.StrictOpcodes.Set(false))
	con, err := hardware.NewConsole(prefs)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, con.Insert(data))
	return debugger.NewDebugger(con)
}

func TestRunLimit(t *testing.T) {
	dbg := newDebugger(t, rom())
	h, err := dbg.Run(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Limit)
	test.ExpectEquality(t, h.Instructions, 3)
	test.ExpectEquality(t, h.Address, uint16(0x0152))
}

func TestExecutionBreakpoint(t *testing.T) {
	dbg := newDebugger(t, rom())
	con := dbg.Console()

	dbg.SetBreakpoint(0x0158, true)
	test.ExpectEquality(t, dbg.HasBreakpoint(0x0158), true)

	// the trap is in memory but is not visible through the debugger
	test.ExpectEquality(t, con.Mem.Load8(0x0158), instructions.TrapOpcode)
	test.ExpectEquality(t, dbg.Load8(0x0158), uint8(0x3e))
	test.ExpectEquality(t, dbg.GetInstructionName(0x0158), "LD A,d8")
	test.ExpectEquality(t, dbg.GetInstructionSize(0x0158), 2)

	h, err := dbg.Run(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Breakpoint)
	test.ExpectEquality(t, h.Address, uint16(0x0158))
	test.DemandEquality(t, len(h.Handles), 1)

	// NOP, JP, LD, LD, CALL, INC B, RET
	test.ExpectEquality(t, h.Instructions, 7)

	// setting a breakpoint twice does not create a second breakpoint
	dbg.SetBreakpoint(0x0158, true)
	test.ExpectEquality(t, dbg.Breakpoints.GetBreakpointCount(), 1)

	// the breakpoint at the current address is stepped over
	test.ExpectSuccess(t, dbg.Step())
	test.ExpectEquality(t, con.CPU.Reg.GetRegister8(registers.A), uint8(0x01))
	test.ExpectEquality(t, con.Mem.Load8(0x0158), instructions.TrapOpcode)

	dbg.SetBreakpoint(0x0158, false)
	test.ExpectEquality(t, dbg.HasBreakpoint(0x0158), false)
	test.ExpectEquality(t, con.Mem.Load8(0x0158), uint8(0x3e))
	test.ExpectEquality(t, con.Mem.NumReplaced(), 0)
}

func TestTrapsAcrossBanks(t *testing.T) {
	dbg := newDebugger(t, rom())
	con := dbg.Console()

	// bank 1 is mapped at the start
	dbg.SetBreakpoint(0x4000, true)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 1)

	// the trap is installed in bank 2 when it is switched in
	h, err := dbg.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Breakpoint)
	test.ExpectEquality(t, h.Address, uint16(0x4000))
	test.ExpectEquality(t, h.Instructions, 5)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 2)
	test.ExpectEquality(t, dbg.Load8(0x4000), uint8(0x04))
	test.ExpectEquality(t, dbg.GetInstructionName(0x4000), "INC B")

	// stepping over the trap runs the real instruction
	h, err = dbg.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Breakpoint)
	test.ExpectEquality(t, h.Address, uint16(0x4000))
	test.ExpectEquality(t, h.Instructions, 5)
	test.ExpectEquality(t, con.CPU.Reg.GetRegister8(registers.B), uint8(0x01))
	test.ExpectEquality(t, dbg.Load8(0x4000), uint8(0x3c))

	// removing the breakpoint while bank 1 is mapped leaves the trap in bank
	// 2 until it is mapped again
	dbg.SetBreakpoint(0x4000, false)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 1)
	test.ExpectEquality(t, con.Mem.Load8(0x4000), uint8(0x3c))

	// INC A, RET, JR. the program loops without switching bank
	h, err = dbg.Run(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Limit)
	test.ExpectEquality(t, con.CPU.Reg.GetRegister8(registers.A), uint8(0x02))
	test.ExpectEquality(t, h.Address, uint16(0x0160))
}

func TestOrphanedTrapRestored(t *testing.T) {
	dbg := newDebugger(t, rom())
	con := dbg.Console()

	// install traps in bank 1 and bank 2
	dbg.SetBreakpoint(0x4000, true)
	_, err := dbg.Run(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 2)

	// remove while bank 2 is mapped. the trap in bank 1 is not visible
	dbg.SetBreakpoint(0x4000, false)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 1)
	test.ExpectEquality(t, con.Mem.Load8(0x4000), uint8(0x04))

	// INC B, RET, LD, LD. the switch to bank 1 restores the orphaned trap
	h, err := dbg.Run(4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Limit)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 0)
	test.ExpectEquality(t, con.Mem.Load8(0x4000), uint8(0x3c))

	// CALL. no breakpoint
	h, err = dbg.Run(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Limit)
	test.ExpectEquality(t, h.Address, uint16(0x4001))
}

func TestEventBreakpoint(t *testing.T) {
	dbg := newDebugger(t, rom())

	bk := dbg.Breakpoints.CreateBreakpoint(debugger.Description{debugger.EventOf(debugger.EventBankSwitch)})

	h, err := dbg.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Breakpoint)
	test.ExpectEquality(t, h.Instructions, 4)
	test.ExpectEquality(t, h.Address, uint16(0x0155))
	test.DemandEquality(t, len(h.Handles), 1)
	test.ExpectEquality(t, h.Handles[0], bk)
}

func TestUnimplemented(t *testing.T) {
	data := rom()
	data[0x150] = 0xdb
	dbg := newDebugger(t, data)

	h, err := dbg.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Unimplemented)
	test.ExpectEquality(t, h.Instructions, 3)
}

func TestReset(t *testing.T) {
	dbg := newDebugger(t, rom())
	con := dbg.Console()

	con.Mem.Store8(0xc000, 0x00)
	dbg.SetBreakpoint(0xc000, true)
	dbg.SetBreakpoint(0x0150, true)
	test.ExpectEquality(t, con.Mem.Load8(0xc000), instructions.TrapOpcode)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 2)

	_, err := dbg.Run(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, con.CPU.Reg.GetRegister16(registers.PC), uint16(0x0150))

	dbg.Reset()
	test.ExpectEquality(t, con.CPU.Reg.GetRegister16(registers.PC), uint16(0x0100))
	test.ExpectEquality(t, con.Mem.Load8(0xc000), instructions.TrapOpcode)
	test.ExpectEquality(t, dbg.Load8(0xc000), uint8(0x00))
	test.ExpectEquality(t, con.Mem.NumReplaced(), 2)

	h, err := dbg.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Address, uint16(0x0150))
}

func TestDumpGraph(t *testing.T) {
	dbg := newDebugger(t, rom())
	dbg.SetBreakpoint(0x0150, true)

	w := &test.CompareWriter{}
	dbg.DumpGraph(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}

func TestTrapInWrittenRAM(t *testing.T) {
	data := rom()
	copy(data[0x150:], []uint8{
		0x3e, 0xc9, // 0150 LD A,0xc9
		0xea, 0x00, 0xc0, // 0152 LD (0xc000),A
		0xcd, 0x00, 0xc0, // 0155 CALL 0xc000
		0x18, 0xfe, // 0158 JR -2
	})
	dbg := newDebugger(t, data)
	con := dbg.Console()

	dbg.SetBreakpoint(0xc000, true)
	test.ExpectEquality(t, con.Mem.Load8(0xc000), instructions.TrapOpcode)

	// the program copies a RET to the trapped address and calls it
	h, err := dbg.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Breakpoint)
	test.ExpectEquality(t, h.Address, uint16(0xc000))
	test.ExpectEquality(t, h.Instructions, 5)
	test.ExpectEquality(t, con.Mem.Load8(0xc000), instructions.TrapOpcode)
	test.ExpectEquality(t, dbg.Load8(0xc000), uint8(0xc9))
	test.ExpectEquality(t, dbg.GetInstructionName(0xc000), "RET")

	// removing the breakpoint leaves the stored value
	dbg.SetBreakpoint(0xc000, false)
	test.ExpectEquality(t, con.Mem.Load8(0xc000), uint8(0xc9))
	test.ExpectEquality(t, con.Mem.NumReplaced(), 0)

	// RET, JR
	h, err = dbg.Run(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, govern.Limit)
	test.ExpectEquality(t, h.Address, uint16(0x0158))
}

func TestNoTrapInRegisters(t *testing.T) {
	dbg := newDebugger(t, rom())
	con := dbg.Console()

	ie := con.Mem.Load8(0xffff)
	iflag := con.Mem.Load8(0xff0f)

	dbg.SetBreakpoint(0xffff, true)
	dbg.SetBreakpoint(0xff0f, true)

	// the breakpoints exist but the registers are untouched
	test.ExpectEquality(t, dbg.HasBreakpoint(0xffff), true)
	test.ExpectEquality(t, dbg.HasBreakpoint(0xff0f), true)
	test.ExpectEquality(t, con.Mem.Load8(0xffff), ie)
	test.ExpectEquality(t, con.Mem.Load8(0xff0f), iflag)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 0)

	// HRAM is not a register area
	dbg.SetBreakpoint(0xff80, true)
	test.ExpectEquality(t, con.Mem.Load8(0xff80), instructions.TrapOpcode)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 1)

	dbg.SetBreakpoint(0xffff, false)
	dbg.SetBreakpoint(0xff0f, false)
	test.ExpectEquality(t, dbg.Breakpoints.GetBreakpointCount(), 1)
	test.ExpectEquality(t, con.Mem.NumReplaced(), 1)
}
