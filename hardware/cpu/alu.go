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

import "github.com/gopherdmg/gopherdmg/hardware/cpu/registers"

// Add8 adds b to a, with an additional one if carryIn is true. The half-carry
// result is the carry out of bit 3 and the carry result is the carry out of
// bit 7.
func Add8(a, b uint8, carryIn bool) (r uint8, half bool, carry bool) {
	var c uint16
	if carryIn {
		c = 1
	}
	sum := uint16(a) + uint16(b) + c
	half = uint16(a&0x0f)+uint16(b&0x0f)+c > 0x0f
	carry = sum > 0xff
	return uint8(sum), half, carry
}

// Sub8 subtracts b from a, with an additional one if borrowIn is true.
//
// The subtraction is an addition of the two's complement of b. The one of the
// two's complement is supplied as the carry-in of the addition, less any
// borrow. The half-carry and carry results of the addition are inverted to
// give the borrow out of bit 4 and the borrow out of bit 8.
func Sub8(a, b uint8, borrowIn bool) (r uint8, half bool, carry bool) {
	r, half, carry = Add8(a, ^b, !borrowIn)
	return r, !half, !carry
}

// Inc8 increments v. The half-carry result is the carry out of bit 3.
func Inc8(v uint8) (r uint8, half bool) {
	return v + 1, v&0x0f == 0x0f
}

// Dec8 decrements v. The half-carry result is the borrow out of bit 4.
func Dec8(v uint8) (r uint8, half bool) {
	return v - 1, v&0x0f == 0x00
}

func (mc *CPU) setFlags(zero, subtract, half, carry bool) {
	mc.Reg.SetFlag(registers.Zero, zero)
	mc.Reg.SetFlag(registers.Subtract, subtract)
	mc.Reg.SetFlag(registers.HalfCarry, half)
	mc.Reg.SetFlag(registers.Carry, carry)
}

func (mc *CPU) carry() bool {
	return mc.Reg.GetFlag(registers.Carry)
}

// binary operations with the accumulator. the first argument is always the
// value of the accumulator. the returned value is stored in the accumulator
// unless the operation is a comparison
type binaryFunc func(mc *CPU, a uint8, b uint8) uint8

func add(mc *CPU, a uint8, b uint8) uint8 {
	r, h, c := Add8(a, b, false)
	mc.setFlags(r == 0, false, h, c)
	return r
}

func adc(mc *CPU, a uint8, b uint8) uint8 {
	r, h, c := Add8(a, b, mc.carry())
	mc.setFlags(r == 0, false, h, c)
	return r
}

func sub(mc *CPU, a uint8, b uint8) uint8 {
	r, h, c := Sub8(a, b, false)
	mc.setFlags(r == 0, true, h, c)
	return r
}

func sbc(mc *CPU, a uint8, b uint8) uint8 {
	r, h, c := Sub8(a, b, mc.carry())
	mc.setFlags(r == 0, true, h, c)
	return r
}

func and(mc *CPU, a uint8, b uint8) uint8 {
	r := a & b
	mc.setFlags(r == 0, false, true, false)
	return r
}

func xor(mc *CPU, a uint8, b uint8) uint8 {
	r := a ^ b
	mc.setFlags(r == 0, false, false, false)
	return r
}

func or(mc *CPU, a uint8, b uint8) uint8 {
	r := a | b
	mc.setFlags(r == 0, false, false, false)
	return r
}

// binary operations in the order they appear in the opcode table. compare is
// subtract without the store
var binaryOps = [8]struct {
	fn    binaryFunc
	store bool
}{
	{add, true}, {adc, true}, {sub, true}, {sbc, true},
	{and, true}, {xor, true}, {or, true}, {sub, false},
}

// unary operations on a single operand. the returned value is stored in the
// operand
type unaryFunc func(mc *CPU, v uint8) uint8

// increment and decrement never affect the carry flag
func inc(mc *CPU, v uint8) uint8 {
	r, h := Inc8(v)
	mc.Reg.SetFlag(registers.Zero, r == 0)
	mc.Reg.SetFlag(registers.Subtract, false)
	mc.Reg.SetFlag(registers.HalfCarry, h)
	return r
}

func dec(mc *CPU, v uint8) uint8 {
	r, h := Dec8(v)
	mc.Reg.SetFlag(registers.Zero, r == 0)
	mc.Reg.SetFlag(registers.Subtract, true)
	mc.Reg.SetFlag(registers.HalfCarry, h)
	return r
}

func rlc(mc *CPU, v uint8) uint8 {
	r := v<<1 | v>>7
	mc.setFlags(r == 0, false, false, v&0x80 == 0x80)
	return r
}

func rrc(mc *CPU, v uint8) uint8 {
	r := v>>1 | v<<7
	mc.setFlags(r == 0, false, false, v&0x01 == 0x01)
	return r
}

func rl(mc *CPU, v uint8) uint8 {
	r := v << 1
	if mc.carry() {
		r |= 0x01
	}
	mc.setFlags(r == 0, false, false, v&0x80 == 0x80)
	return r
}

func rr(mc *CPU, v uint8) uint8 {
	r := v >> 1
	if mc.carry() {
		r |= 0x80
	}
	mc.setFlags(r == 0, false, false, v&0x01 == 0x01)
	return r
}

func sla(mc *CPU, v uint8) uint8 {
	r := v << 1
	mc.setFlags(r == 0, false, false, v&0x80 == 0x80)
	return r
}

func sra(mc *CPU, v uint8) uint8 {
	r := v>>1 | v&0x80
	mc.setFlags(r == 0, false, false, v&0x01 == 0x01)
	return r
}

func swap(mc *CPU, v uint8) uint8 {
	r := v<<4 | v>>4
	mc.setFlags(r == 0, false, false, false)
	return r
}

func srl(mc *CPU, v uint8) uint8 {
	r := v >> 1
	mc.setFlags(r == 0, false, false, v&0x01 == 0x01)
	return r
}

// shift and rotate operations in the order they appear in the extended table
var shiftOps = [8]unaryFunc{rlc, rrc, rl, rr, sla, sra, swap, srl}

// the accumulator rotates of the base table always clear the zero flag
func clearZero(fn unaryFunc) unaryFunc {
	return func(mc *CPU, v uint8) uint8 {
		r := fn(mc, v)
		mc.Reg.SetFlag(registers.Zero, false)
		return r
	}
}

func bit(n uint8) unaryFunc {
	return func(mc *CPU, v uint8) uint8 {
		mc.Reg.SetFlag(registers.Zero, v&(0x01<<n) == 0)
		mc.Reg.SetFlag(registers.Subtract, false)
		mc.Reg.SetFlag(registers.HalfCarry, true)
		return v
	}
}

func res(n uint8) unaryFunc {
	return func(_ *CPU, v uint8) uint8 {
		return v &^ (0x01 << n)
	}
}

func set(n uint8) unaryFunc {
	return func(_ *CPU, v uint8) uint8 {
		return v | (0x01 << n)
	}
}

func cpl(mc *CPU, v uint8) uint8 {
	mc.Reg.SetFlag(registers.Subtract, true)
	mc.Reg.SetFlag(registers.HalfCarry, true)
	return ^v
}

// decimal adjust of the accumulator after a BCD addition or subtraction
func daa(mc *CPU, v uint8) uint8 {
	carry := mc.carry()
	half := mc.Reg.GetFlag(registers.HalfCarry)

	var adj uint8
	if mc.Reg.GetFlag(registers.Subtract) {
		if carry {
			adj |= 0x60
		}
		if half {
			adj |= 0x06
		}
		v -= adj
	} else {
		if carry || v > 0x99 {
			adj |= 0x60
			carry = true
		}
		if half || v&0x0f > 0x09 {
			adj |= 0x06
		}
		v += adj
	}

	mc.Reg.SetFlag(registers.Zero, v == 0)
	mc.Reg.SetFlag(registers.HalfCarry, false)
	mc.Reg.SetFlag(registers.Carry, carry)
	return v
}

// add16 adds b to a. flags are set as for ADD HL,rr: the zero flag is
// unaffected, half-carry is the carry out of bit 11 and carry is the carry
// out of bit 15
func (mc *CPU) add16(a uint16, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	mc.Reg.SetFlag(registers.Subtract, false)
	mc.Reg.SetFlag(registers.HalfCarry, (a&0x0fff)+(b&0x0fff) > 0x0fff)
	mc.Reg.SetFlag(registers.Carry, sum > 0xffff)
	return uint16(sum)
}

// addSigned adds the signed offset to the stack pointer value. flags are set
// from the unsigned addition of the low byte of the stack pointer and the
// offset
func (mc *CPU) addSigned(sp uint16, e uint8) uint16 {
	_, h, c := Add8(uint8(sp), e, false)
	mc.setFlags(false, false, h, c)
	return sp + uint16(int16(int8(e)))
}
