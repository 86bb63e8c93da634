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

package hardware_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger/govern"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/notifications"
	"github.com/gopherdmg/gopherdmg/test"
)

// rom returns a two bank cartridge image of the specified type. the entry
// point jumps to the program, which is placed at 0x0150
func rom(typ uint8, program ...uint8) []byte {
	data := make([]byte, 0x8000)
	copy(data[0x100:], []uint8{0x00, 0xc3, 0x50, 0x01})
	copy(data[0x134:], "CONSOLE")
	data[0x147] = typ
	copy(data[0x150:], program)
	return data
}

func newConsole(t *testing.T) *hardware.Console {
	t.Helper()
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	con, err := hardware.NewConsole(prefs)
	test.DemandSuccess(t, err)
	return con
}

func TestConsoleStep(t *testing.T) {
	con := newConsole(t)
	test.DemandSuccess(t, con.Insert(rom(0x00,
		0x3e, 0x42, // LD A,0x42
		0xea, 0x00, 0xc0, // LD (0xc000),A
		0x18, 0xfe, // JR -2
	)))

	test.ExpectEquality(t, con.CPU.Reg.GetRegister16(registers.PC), uint16(0x0100))

	n := 0
	for i := 0; i < 4; i++ {
		test.DemandSuccess(t, con.Step(func() error {
			n++
			return nil
		}))
	}
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, con.Mem.Load8(0xc000), uint8(0x42))
	test.ExpectEquality(t, con.Mem.Load8(0xe000), uint8(0x42))
	test.ExpectEquality(t, con.CPU.Reg.GetRegister16(registers.PC), uint16(0x0155))
}

func TestConsoleRun(t *testing.T) {
	con := newConsole(t)
	test.DemandSuccess(t, con.Insert(rom(0x00, 0x3c, 0x18, 0xfd))) // INC A; JR -3

	n := 0
	err := con.Run(func() (govern.State, error) {
		n++
		if n >= 100 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 100)

	// the first two instructions are the entry point
	test.ExpectEquality(t, con.CPU.Reg.GetRegister8(registers.A), uint8(0x01+49))
}

func TestConsoleRunForInstructionCount(t *testing.T) {
	con := newConsole(t)
	test.DemandSuccess(t, con.Insert(rom(0x00, 0x3c, 0x18, 0xfd)))
	test.ExpectSuccess(t, con.RunForInstructionCount(12, nil))
	test.ExpectEquality(t, con.CPU.Reg.GetRegister8(registers.A), uint8(0x01+5))
}

func TestConsoleRunError(t *testing.T) {
	con := newConsole(t)
	test.DemandSuccess(t, con.Prefs.StrictOpcodes.Set(false))
	test.DemandSuccess(t, con.Insert(rom(0x00, 0x00, 0xdb)))

	err := con.Run(nil)
	test.ExpectEquality(t, curated.Is(err, cpu.UnimplementedInstruction), true)
	test.ExpectEquality(t, con.CPU.Reg.GetRegister16(registers.PC), uint16(0x0152))
}

func TestConsoleNotify(t *testing.T) {
	con := newConsole(t)

	var received []notifications.Notice
	con.SetNotify(notifications.NotifyFunc(func(notice notifications.Notice) error {
		received = append(received, notice)
		return nil
	}))

	// MBC1 cartridge switching to bank 2 and halting
	data := append(rom(0x01,
		0x3e, 0x02, // LD A,0x02
		0xea, 0x00, 0x20, // LD (0x2000),A
		0x76, // HALT
	), make([]byte, 0x8000)...)
	data[0x148] = 0x01
	test.DemandSuccess(t, con.Insert(data))

	// reset of the cartridge may notify a bank switch. discard anything
	// received so far
	received = received[:0]

	test.DemandSuccess(t, con.RunForInstructionCount(5, nil))
	test.DemandEquality(t, len(received), 2)
	test.ExpectEquality(t, received[0], notifications.NotifyBankSwitched)
	test.ExpectEquality(t, received[1], notifications.NotifyHaltEntered)
	test.ExpectEquality(t, con.Mem.Cart.GetBank(0x4000).Number, 2)
}

func TestConsoleInterrupt(t *testing.T) {
	con := newConsole(t)
	test.DemandSuccess(t, con.Insert(rom(0x00,
		0xfb, // EI
		0x76, // HALT
	)))
	con.Mem.Store8(memorymap.AddressIE, 0x10)

	test.DemandSuccess(t, con.RunForInstructionCount(6, nil))
	test.ExpectEquality(t, con.CPU.Halted, true)

	con.RaiseInterrupt(cpu.Joypad)
	test.DemandSuccess(t, con.Step(nil))
	test.ExpectEquality(t, con.CPU.LastResult.Interrupt, true)
	test.ExpectEquality(t, con.CPU.Reg.GetRegister16(registers.PC), uint16(0x0060))
	test.ExpectEquality(t, con.Mem.Load8(memorymap.AddressIF), uint8(0xe0))
}

func TestConsoleEject(t *testing.T) {
	con := newConsole(t)
	test.DemandSuccess(t, con.Insert(rom(0x00)))
	test.ExpectEquality(t, con.Mem.Load8(0x0101), uint8(0xc3))
	test.DemandSuccess(t, con.Eject())
	test.ExpectEquality(t, con.Mem.Load8(0x0101), uint8(0xff))
	test.ExpectSuccess(t, con.Eject())
}
