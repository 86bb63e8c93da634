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

package cpu

import (
	"math/bits"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/execution"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/notifications"
)

// Sentinel error patterns.
const (
	UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"
	Trapped                  = "cpu: trap at (%#04x)"
)

// Memory defines the memory operations required by the CPU. The bus.Space
// type satisfies this interface.
type Memory interface {
	bus.Memory
	Load16(address uint16) uint16
	Store16(address uint16, data uint16)
}

// Interrupt is the bit number of an interrupt source in the IE and IF
// registers. Lower numbers have higher priority.
type Interrupt int

// List of valid Interrupt values.
const (
	VBlank Interrupt = iota
	LCDStat
	Timer
	Serial
	Joypad
	NumInterrupts
)

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Vector returns the address of the interrupt handler.
func (i Interrupt) Vector() uint16 {
	return 0x0040 + uint16(i)*8
}

// the number of cycles taken to service an interrupt
const interruptCycles = 20

// the number of cycles taken by a step while halted
const haltedCycles = 4

// the mask for the five interrupt bits of the IE and IF registers
const interruptMask = 0x1f

// an operation is a single entry in one of the dispatch tables
type operation func(mc *CPU) error

// CPU implements the processor found in the console. Register logic is
// implemented by the File type in the registers sub-package.
type CPU struct {
	prefs  *preferences.Preferences
	mem    Memory
	notify notifications.Notify

	Reg *registers.File

	// Interrupt master enable
	IME bool

	// the number of steps until IME is set. set by the EI instruction
	eiDelay int

	// the CPU has executed HALT and is waiting for an interrupt
	Halted bool

	// running total of cycles
	Cycles uint64

	// LastResult is the result of the most recent call to Step()
	LastResult execution.Result

	defs     *instructions.Definitions
	base     [256]operation
	extended [256]operation

	// operand data fetched by the current instruction
	data8  uint8
	data16 uint16
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// notify argument can be nil.
func NewCPU(prefs *preferences.Preferences, mem Memory, notify notifications.Notify) *CPU {
	mc := &CPU{
		prefs:  prefs,
		mem:    mem,
		notify: notify,
		Reg:    registers.NewFile(prefs.MaskFlagNibble.Get().(bool)),
		defs:   instructions.GetDefinitions(),
	}
	mc.buildBase()
	mc.buildExtended()
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return mc.Reg.String()
}

// Reset the CPU to its power-on state. Memory is not changed.
func (mc *CPU) Reset() {
	mc.Reg.MaskNibble(mc.prefs.MaskFlagNibble.Get().(bool))
	mc.Reg.Reset()
	mc.IME = false
	mc.eiDelay = 0
	mc.Halted = false
	mc.Cycles = 0
	mc.LastResult.Reset()
}

// Definitions returns the instruction definitions used by the CPU.
func (mc *CPU) Definitions() *instructions.Definitions {
	return mc.defs
}

func (mc *CPU) notice(n notifications.Notice) error {
	if mc.notify == nil {
		return nil
	}
	return mc.notify.Notify(n)
}

// fetch the next byte through the program counter
func (mc *CPU) fetch8() uint8 {
	pc := mc.Reg.GetRegister16(registers.PC)
	v := mc.mem.Load8(pc)
	mc.Reg.SetRegister16(registers.PC, pc+1)
	mc.LastResult.ByteCount++
	return v
}

// fetch the next two bytes through the program counter. the first byte is the
// least significant
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push16(v uint16) {
	sp := mc.Reg.GetRegister16(registers.SP) - 2
	mc.Reg.SetRegister16(registers.SP, sp)
	mc.mem.Store16(sp, v)
}

func (mc *CPU) pop16() uint16 {
	sp := mc.Reg.GetRegister16(registers.SP)
	v := mc.mem.Load16(sp)
	mc.Reg.SetRegister16(registers.SP, sp+2)
	return v
}

// pendingInterrupts returns the interrupts that are both enabled and
// requested
func (mc *CPU) pendingInterrupts() uint8 {
	return mc.mem.Load8(memorymap.AddressIE) & mc.mem.Load8(memorymap.AddressIF) & interruptMask
}

// RaiseInterrupt requests the interrupt by setting its bit in the IF register.
func (mc *CPU) RaiseInterrupt(i Interrupt) {
	v := mc.mem.Load8(memorymap.AddressIF)
	mc.mem.Store8(memorymap.AddressIF, v|(0x01<<i))
}

// serviceInterrupt returns true if an interrupt was serviced.
func (mc *CPU) serviceInterrupt() (bool, error) {
	pending := mc.pendingInterrupts()
	if pending == 0 {
		return false, nil
	}

	// a pending interrupt always ends a halt, even if the interrupt will not
	// be serviced
	mc.Halted = false

	if !mc.IME {
		return false, nil
	}

	i := Interrupt(bits.TrailingZeros8(pending))

	mc.IME = false
	mc.eiDelay = 0
	v := mc.mem.Load8(memorymap.AddressIF)
	mc.mem.Store8(memorymap.AddressIF, v&^(0x01<<i))

	pc := mc.Reg.GetRegister16(registers.PC)
	mc.push16(pc)
	mc.Reg.SetRegister16(registers.PC, i.Vector())

	mc.LastResult.Address = pc
	mc.LastResult.Interrupt = true
	mc.LastResult.Cycles = interruptCycles
	mc.Cycles += interruptCycles

	return true, mc.notice(notifications.NotifyInterruptServiced)
}

// Step executes exactly one instruction, services exactly one interrupt or, if
// the CPU is halted, idles for one machine cycle.
//
// Errors are returned for unimplemented instructions when StrictOpcodes is
// false and for the trap opcode. In both cases the cycle counter is not
// advanced.
func (mc *CPU) Step() error {
	mc.LastResult.Reset()

	serviced, err := mc.serviceInterrupt()
	if serviced {
		mc.LastResult.Final = true
		return err
	}

	if mc.Halted {
		mc.LastResult.Address = mc.Reg.GetRegister16(registers.PC)
		mc.LastResult.Halted = true
		mc.LastResult.Cycles = haltedCycles
		mc.LastResult.Final = true
		mc.Cycles += haltedCycles
		return nil
	}

	mc.LastResult.Address = mc.Reg.GetRegister16(registers.PC)
	opcode := mc.fetch8()
	mc.LastResult.Defn = mc.defs.Base[opcode]

	if err := mc.base[opcode](mc); err != nil {
		return err
	}

	// EI takes effect after the instruction that follows it
	if mc.eiDelay > 0 {
		mc.eiDelay--
		if mc.eiDelay == 0 {
			mc.IME = true
		}
	}

	mc.LastResult.Cycles = mc.LastResult.Defn.Cycles
	mc.Cycles += uint64(mc.LastResult.Defn.Cycles)
	mc.LastResult.Final = true

	if mc.Halted {
		return mc.notice(notifications.NotifyHaltEntered)
	}

	return nil
}

// trap is the operation for the trap opcode. the program counter is left
// pointing at the trap
func trap(mc *CPU) error {
	mc.Reg.SetRegister16(registers.PC, mc.LastResult.Address)
	return curated.Errorf(Trapped, mc.LastResult.Address)
}

// unimplemented returns the operation for an opcode with no implementation
func unimplemented(opcode uint8) operation {
	return func(mc *CPU) error {
		err := curated.Errorf(UnimplementedInstruction, opcode, mc.LastResult.Address)
		if mc.prefs.StrictOpcodes.Get().(bool) {
			panic(err)
		}
		logger.Log(logger.Allow, "cpu", err)
		if nerr := mc.notice(notifications.NotifyUnimplementedOpcode); nerr != nil {
			logger.Log(logger.Allow, "cpu", nerr)
		}
		return err
	}
}
