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

package registers_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestIDOrdering(t *testing.T) {
	test.ExpectEquality(t, registers.A, registers.MakeID(registers.AF, registers.High))
	test.ExpectEquality(t, registers.F, registers.MakeID(registers.AF, registers.Low))
	test.ExpectEquality(t, registers.H.Slot(), registers.HL)
	test.ExpectEquality(t, registers.L.Half(), registers.Low)
	test.ExpectEquality(t, registers.C.Sibling(), registers.B)
}

func TestRegister8RoundTrip(t *testing.T) {
	r := registers.NewFile(false)

	for id := registers.ID(0); id < registers.NumIDs; id++ {
		for v := 0; v <= 0xff; v++ {
			r.SetRegister16(id.Slot(), 0xa55a)
			sibling := r.GetRegister8(id.Sibling())

			r.SetRegister8(id, uint8(v))
			test.ExpectEquality(t, r.GetRegister8(id), uint8(v), id, v)
			test.ExpectEquality(t, r.GetRegister8(id.Sibling()), sibling, id, v)
		}
	}
}

func TestRegister16RoundTrip(t *testing.T) {
	r := registers.NewFile(false)

	for s := registers.AF; s < registers.NumSlots; s++ {
		for _, v := range []uint16{0x0000, 0x00ff, 0xff00, 0x1234, 0xffff, 0x8001} {
			r.SetRegister16(s, v)
			test.ExpectEquality(t, r.GetRegister16(s), v, s)
		}
	}
}

func TestHalves(t *testing.T) {
	r := registers.NewFile(false)
	r.SetRegister16(registers.BC, 0x1234)
	test.ExpectEquality(t, r.GetRegister8(registers.B), uint8(0x12))
	test.ExpectEquality(t, r.GetRegister8(registers.C), uint8(0x34))

	r.SetRegister8(registers.H, 0xab)
	r.SetRegister8(registers.L, 0xcd)
	test.ExpectEquality(t, r.GetRegister16(registers.HL), uint16(0xabcd))
}

func TestFlags(t *testing.T) {
	r := registers.NewFile(true)
	r.SetRegister8(registers.F, 0x00)

	r.SetFlag(registers.Zero, true)
	test.ExpectEquality(t, r.GetRegister8(registers.F), uint8(0x80))
	r.SetFlag(registers.Carry, true)
	test.ExpectEquality(t, r.GetRegister8(registers.F), uint8(0x90))
	test.ExpectEquality(t, r.Flags(), "ZnhC")

	r.SetFlag(registers.Zero, false)
	test.ExpectEquality(t, r.GetFlag(registers.Zero), false)
	test.ExpectEquality(t, r.GetFlag(registers.Carry), true)

	// flags do not disturb the A register
	r.SetRegister8(registers.A, 0x42)
	r.SetFlag(registers.HalfCarry, true)
	test.ExpectEquality(t, r.GetRegister8(registers.A), uint8(0x42))
}

func TestFlagNibbleMask(t *testing.T) {
	r := registers.NewFile(true)
	r.SetRegister16(registers.AF, 0x12ff)
	test.ExpectEquality(t, r.GetRegister16(registers.AF), uint16(0x12f0))
	r.SetRegister8(registers.F, 0x0f)
	test.ExpectEquality(t, r.GetRegister8(registers.F), uint8(0x00))

	// other slots are never masked
	r.SetRegister16(registers.BC, 0x12ff)
	test.ExpectEquality(t, r.GetRegister16(registers.BC), uint16(0x12ff))

	r.MaskNibble(false)
	r.SetRegister8(registers.F, 0x0f)
	test.ExpectEquality(t, r.GetRegister8(registers.F), uint8(0x0f))
}

func TestReset(t *testing.T) {
	r := registers.NewFile(true)
	r.Reset()
	test.ExpectEquality(t, r.GetRegister16(registers.AF), uint16(0x01b0))
	test.ExpectEquality(t, r.GetRegister16(registers.BC), uint16(0x0013))
	test.ExpectEquality(t, r.GetRegister16(registers.DE), uint16(0x00d8))
	test.ExpectEquality(t, r.GetRegister16(registers.HL), uint16(0x014d))
	test.ExpectEquality(t, r.GetRegister16(registers.SP), uint16(0xfffe))
	test.ExpectEquality(t, r.GetRegister16(registers.PC), uint16(0x0100))
	test.ExpectEquality(t, r.String(), "AF=01b0 BC=0013 DE=00d8 HL=014d SP=fffe PC=0100 ZnHC")
}
