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
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
)

// The dispatch tables are built once, when the CPU is created, by composing
// the small set of steps in this file. Each opcode is described by its
// operands and the operation applied to them.

// operand8 is an 8bit location. a nil store indicates that the operand can
// only be read
type operand8 struct {
	load  func(mc *CPU) uint8
	store func(mc *CPU, v uint8)
}

// reg8 is an 8bit register.
func reg8(id registers.ID) operand8 {
	return operand8{
		load: func(mc *CPU) uint8 {
			return mc.Reg.GetRegister8(id)
		},
		store: func(mc *CPU, v uint8) {
			mc.Reg.SetRegister8(id, v)
		},
	}
}

// at is memory addressed by a register pair. the register pair is adjusted
// by delta after the access.
func at(slot registers.Slot, delta int) operand8 {
	adjust := func(mc *CPU, addr uint16) {
		if delta != 0 {
			mc.Reg.SetRegister16(slot, addr+uint16(delta))
		}
	}
	return operand8{
		load: func(mc *CPU) uint8 {
			addr := mc.Reg.GetRegister16(slot)
			v := mc.mem.Load8(addr)
			adjust(mc, addr)
			return v
		},
		store: func(mc *CPU, v uint8) {
			addr := mc.Reg.GetRegister16(slot)
			mc.mem.Store8(addr, v)
			adjust(mc, addr)
		},
	}
}

// imm8 is the byte following the opcode.
var imm8 = operand8{
	load: func(mc *CPU) uint8 {
		mc.data8 = mc.fetch8()
		mc.LastResult.InstructionData = uint16(mc.data8)
		return mc.data8
	},
}

// atImm16 is memory addressed by the two bytes following the opcode.
var atImm16 = operand8{
	load: func(mc *CPU) uint8 {
		return mc.mem.Load8(mc.readImm16())
	},
	store: func(mc *CPU, v uint8) {
		mc.mem.Store8(mc.readImm16(), v)
	},
}

// high is memory in the last page of the address space, offset by the operand.
func high(offset operand8) operand8 {
	return operand8{
		load: func(mc *CPU) uint8 {
			return mc.mem.Load8(0xff00 | uint16(offset.load(mc)))
		},
		store: func(mc *CPU, v uint8) {
			mc.mem.Store8(0xff00|uint16(offset.load(mc)), v)
		},
	}
}

// the operands encoded by the low three bits of many opcodes
var operands8 = [8]operand8{
	reg8(registers.B), reg8(registers.C),
	reg8(registers.D), reg8(registers.E),
	reg8(registers.H), reg8(registers.L),
	at(registers.HL, 0), reg8(registers.A),
}

func (mc *CPU) readImm16() uint16 {
	mc.data16 = mc.fetch16()
	mc.LastResult.InstructionData = mc.data16
	return mc.data16
}

// readImm8 is the step that fetches the byte following the opcode.
func readImm8(mc *CPU) error {
	imm8.load(mc)
	return nil
}

// readImm16 is the step that fetches the two bytes following the opcode.
func readImm16(mc *CPU) error {
	mc.readImm16()
	return nil
}

// ld copies the src operand to the dst operand.
func ld(dst operand8, src operand8) operation {
	return func(mc *CPU) error {
		dst.store(mc, src.load(mc))
		return nil
	}
}

// alu applies the binary function to the accumulator and the operand. the
// result is stored in the accumulator if store is true.
func alu(fn binaryFunc, src operand8, store bool) operation {
	return func(mc *CPU) error {
		a := mc.Reg.GetRegister8(registers.A)
		r := fn(mc, a, src.load(mc))
		if store {
			mc.Reg.SetRegister8(registers.A, r)
		}
		return nil
	}
}

// unary applies the function to the operand and stores the result in the
// same operand.
func unary(fn unaryFunc, target operand8) operation {
	return func(mc *CPU) error {
		target.store(mc, fn(mc, target.load(mc)))
		return nil
	}
}

// test applies the function to the operand without storing the result.
func test(fn unaryFunc, target operand8) operation {
	return func(mc *CPU) error {
		fn(mc, target.load(mc))
		return nil
	}
}

// condition is a flag and the value the flag must have.
type condition struct {
	flag   registers.Flag
	expect bool
}

// the four conditions in the order they are encoded in opcodes
var conditions = [4]condition{
	{registers.Zero, false},
	{registers.Zero, true},
	{registers.Carry, false},
	{registers.Carry, true},
}

// when runs the operation only if the condition is met.
func when(c condition, op operation) operation {
	return func(mc *CPU) error {
		if mc.Reg.GetFlag(c.flag) == c.expect {
			return op(mc)
		}
		return nil
	}
}

// seq runs the operations in order. stops at the first error.
func seq(ops ...operation) operation {
	return func(mc *CPU) error {
		for _, op := range ops {
			if err := op(mc); err != nil {
				return err
			}
		}
		return nil
	}
}

func nop(_ *CPU) error {
	return nil
}

// jumpAbsolute sets the program counter to the fetched address.
func jumpAbsolute(mc *CPU) error {
	mc.Reg.SetRegister16(registers.PC, mc.data16)
	return nil
}

// jumpRelative adds the fetched signed offset to the program counter.
func jumpRelative(mc *CPU) error {
	pc := mc.Reg.GetRegister16(registers.PC)
	mc.Reg.SetRegister16(registers.PC, pc+uint16(int16(int8(mc.data8))))
	return nil
}

func pushPC(mc *CPU) error {
	mc.push16(mc.Reg.GetRegister16(registers.PC))
	return nil
}

func popPC(mc *CPU) error {
	mc.Reg.SetRegister16(registers.PC, mc.pop16())
	return nil
}

func push(slot registers.Slot) operation {
	return func(mc *CPU) error {
		mc.push16(mc.Reg.GetRegister16(slot))
		return nil
	}
}

// pop into the register pair. the low nibble of F is masked by the register
// file if required
func pop(slot registers.Slot) operation {
	return func(mc *CPU) error {
		mc.Reg.SetRegister16(slot, mc.pop16())
		return nil
	}
}

// ld16 loads the fetched word into the register pair.
func ld16(slot registers.Slot) operation {
	return seq(readImm16, func(mc *CPU) error {
		mc.Reg.SetRegister16(slot, mc.data16)
		return nil
	})
}

func inc16(slot registers.Slot) operation {
	return func(mc *CPU) error {
		mc.Reg.SetRegister16(slot, mc.Reg.GetRegister16(slot)+1)
		return nil
	}
}

func dec16(slot registers.Slot) operation {
	return func(mc *CPU) error {
		mc.Reg.SetRegister16(slot, mc.Reg.GetRegister16(slot)-1)
		return nil
	}
}

func addHL(slot registers.Slot) operation {
	return func(mc *CPU) error {
		hl := mc.Reg.GetRegister16(registers.HL)
		mc.Reg.SetRegister16(registers.HL, mc.add16(hl, mc.Reg.GetRegister16(slot)))
		return nil
	}
}

func rst(vector uint16) operation {
	return seq(pushPC, func(mc *CPU) error {
		mc.Reg.SetRegister16(registers.PC, vector)
		return nil
	})
}

// the register pairs in the order they are encoded in opcodes 0x01, 0x11, etc.
var pairs = [4]registers.Slot{registers.BC, registers.DE, registers.HL, registers.SP}

// the register pairs used by PUSH and POP
var stackPairs = [4]registers.Slot{registers.BC, registers.DE, registers.HL, registers.AF}

func (mc *CPU) buildBase() {
	var t [256]operation

	// 0x40 to 0x7f: load register to register. 0x76 is HALT and is dealt
	// with below
	for op := 0x40; op <= 0x7f; op++ {
		t[op] = ld(operands8[(op>>3)&0x07], operands8[op&0x07])
	}

	// 0x80 to 0xbf: arithmetic and logic with the accumulator
	for op := 0x80; op <= 0xbf; op++ {
		b := binaryOps[(op>>3)&0x07]
		t[op] = alu(b.fn, operands8[op&0x07], b.store)
	}

	// 0xc6 to 0xfe: arithmetic and logic with an immediate value
	for i, b := range binaryOps {
		t[0xc6+i*8] = alu(b.fn, imm8, b.store)
	}

	for i := 0; i < 8; i++ {
		r := operands8[i]

		// 0x04, 0x0c, ... 0x3c: increment
		t[0x04+i*8] = unary(inc, r)

		// 0x05, 0x0d, ... 0x3d: decrement
		t[0x05+i*8] = unary(dec, r)

		// 0x06, 0x0e, ... 0x3e: load immediate
		t[0x06+i*8] = ld(r, imm8)

		// 0xc7, 0xcf, ... 0xff: restart
		t[0xc7+i*8] = rst(uint16(i * 8))
	}

	for i := 0; i < 4; i++ {
		p := pairs[i]
		c := conditions[i]

		// 0x01, 0x11, 0x21, 0x31: load immediate into register pair
		t[0x01+i*0x10] = ld16(p)

		// 0x03, 0x13, 0x23, 0x33: increment register pair
		t[0x03+i*0x10] = inc16(p)

		// 0x0b, 0x1b, 0x2b, 0x3b: decrement register pair
		t[0x0b+i*0x10] = dec16(p)

		// 0x09, 0x19, 0x29, 0x39: add register pair to HL
		t[0x09+i*0x10] = addHL(p)

		// 0xc1, 0xd1, 0xe1, 0xf1: pop
		t[0xc1+i*0x10] = pop(stackPairs[i])

		// 0xc5, 0xd5, 0xe5, 0xf5: push
		t[0xc5+i*0x10] = push(stackPairs[i])

		// 0x20, 0x28, 0x30, 0x38: conditional relative jump
		t[0x20+i*8] = seq(readImm8, when(c, jumpRelative))

		// 0xc0, 0xc8, 0xd0, 0xd8: conditional return
		t[0xc0+i*8] = when(c, popPC)

		// 0xc2, 0xca, 0xd2, 0xda: conditional absolute jump
		t[0xc2+i*8] = seq(readImm16, when(c, jumpAbsolute))

		// 0xc4, 0xcc, 0xd4, 0xdc: conditional call
		t[0xc4+i*8] = seq(readImm16, when(c, seq(pushPC, jumpAbsolute)))
	}

	a := reg8(registers.A)

	t[0x00] = nop
	t[0x02] = ld(at(registers.BC, 0), a)
	t[0x12] = ld(at(registers.DE, 0), a)
	t[0x22] = ld(at(registers.HL, 1), a)
	t[0x32] = ld(at(registers.HL, -1), a)
	t[0x0a] = ld(a, at(registers.BC, 0))
	t[0x1a] = ld(a, at(registers.DE, 0))
	t[0x2a] = ld(a, at(registers.HL, 1))
	t[0x3a] = ld(a, at(registers.HL, -1))

	t[0x07] = unary(clearZero(rlc), a)
	t[0x0f] = unary(clearZero(rrc), a)
	t[0x17] = unary(clearZero(rl), a)
	t[0x1f] = unary(clearZero(rr), a)
	t[0x27] = unary(daa, a)
	t[0x2f] = unary(cpl, a)

	t[0x37] = func(mc *CPU) error {
		mc.Reg.SetFlag(registers.Subtract, false)
		mc.Reg.SetFlag(registers.HalfCarry, false)
		mc.Reg.SetFlag(registers.Carry, true)
		return nil
	}
	t[0x3f] = func(mc *CPU) error {
		mc.Reg.SetFlag(registers.Subtract, false)
		mc.Reg.SetFlag(registers.HalfCarry, false)
		mc.Reg.SetFlag(registers.Carry, !mc.carry())
		return nil
	}

	// LD (a16),SP
	t[0x08] = seq(readImm16, func(mc *CPU) error {
		mc.mem.Store16(mc.data16, mc.Reg.GetRegister16(registers.SP))
		return nil
	})

	// STOP. the second byte is consumed but otherwise STOP is treated as a NOP
	t[0x10] = readImm8

	t[0x18] = seq(readImm8, jumpRelative)

	t[0x76] = func(mc *CPU) error {
		mc.Halted = true
		return nil
	}

	t[0xc3] = seq(readImm16, jumpAbsolute)
	t[0xc9] = popPC
	t[0xcd] = seq(readImm16, pushPC, jumpAbsolute)
	t[0xd9] = seq(popPC, func(mc *CPU) error {
		mc.IME = true
		mc.eiDelay = 0
		return nil
	})
	t[0xe9] = func(mc *CPU) error {
		mc.Reg.SetRegister16(registers.PC, mc.Reg.GetRegister16(registers.HL))
		return nil
	}

	t[0xe0] = ld(high(imm8), a)
	t[0xf0] = ld(a, high(imm8))
	t[0xe2] = ld(high(reg8(registers.C)), a)
	t[0xf2] = ld(a, high(reg8(registers.C)))
	t[0xea] = ld(atImm16, a)
	t[0xfa] = ld(a, atImm16)

	// ADD SP,r8
	t[0xe8] = seq(readImm8, func(mc *CPU) error {
		mc.Reg.SetRegister16(registers.SP, mc.addSigned(mc.Reg.GetRegister16(registers.SP), mc.data8))
		return nil
	})

	// LD HL,SP+r8
	t[0xf8] = seq(readImm8, func(mc *CPU) error {
		mc.Reg.SetRegister16(registers.HL, mc.addSigned(mc.Reg.GetRegister16(registers.SP), mc.data8))
		return nil
	})

	t[0xf9] = func(mc *CPU) error {
		mc.Reg.SetRegister16(registers.SP, mc.Reg.GetRegister16(registers.HL))
		return nil
	}

	t[0xf3] = func(mc *CPU) error {
		mc.IME = false
		mc.eiDelay = 0
		return nil
	}
	t[0xfb] = func(mc *CPU) error {
		if !mc.IME && mc.eiDelay == 0 {
			mc.eiDelay = 2
		}
		return nil
	}

	t[instructions.PrefixOpcode] = func(mc *CPU) error {
		ext := mc.fetch8()
		mc.LastResult.Defn = mc.defs.Extended[ext]
		return mc.extended[ext](mc)
	}

	t[instructions.TrapOpcode] = trap

	// any opcode still without an operation is not implemented
	for op := range t {
		if t[op] == nil {
			t[op] = unimplemented(uint8(op))
		}
	}

	mc.base = t
}

func (mc *CPU) buildExtended() {
	for op := 0; op <= 0xff; op++ {
		r := operands8[op&0x07]
		n := uint8((op >> 3) & 0x07)

		switch op >> 6 {
		case 0:
			mc.extended[op] = unary(shiftOps[n], r)
		case 1:
			mc.extended[op] = test(bit(n), r)
		case 2:
			mc.extended[op] = unary(res(n), r)
		case 3:
			mc.extended[op] = unary(set(n), r)
		}
	}
}
