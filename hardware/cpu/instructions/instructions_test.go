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

package instructions_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestBaseTable(t *testing.T) {
	defs := instructions.GetDefinitions()

	undefined := 0
	for i, d := range defs.Base {
		test.ExpectEquality(t, d.OpCode, uint8(i))
		test.ExpectEquality(t, d.Prefixed, false)
		if !d.IsDefined() {
			undefined++
		}
	}
	test.ExpectEquality(t, undefined, 10)

	test.ExpectEquality(t, defs.Base[0x00].Mnemonic, "NOP")
	test.ExpectEquality(t, defs.Base[0x00].Cycles, 4)
	test.ExpectEquality(t, defs.Base[0x76].Mnemonic, "HALT")
	test.ExpectEquality(t, defs.Base[0x41].Mnemonic, "LD B,C")
	test.ExpectEquality(t, defs.Base[0x46].Cycles, 8)
	test.ExpectEquality(t, defs.Base[0x77].Category, instructions.Write)
	test.ExpectEquality(t, defs.Base[0x9e].Mnemonic, "SBC A,(HL)")
	test.ExpectEquality(t, defs.Base[0xbf].Mnemonic, "CP A")
	test.ExpectEquality(t, defs.Base[0xcd].Bytes, 3)
	test.ExpectEquality(t, defs.Base[0xcd].Cycles, 24)
	test.ExpectEquality(t, defs.Base[instructions.TrapOpcode].Category, instructions.Trap)
	test.ExpectEquality(t, defs.Base[instructions.PrefixOpcode].Category, instructions.Prefix)
	test.ExpectEquality(t, defs.Base[0xdd].IsDefined(), false)
}

func TestExtendedTable(t *testing.T) {
	defs := instructions.GetDefinitions()

	for i, d := range defs.Extended {
		test.ExpectEquality(t, d.OpCode, uint8(i))
		test.ExpectEquality(t, d.Prefixed, true)
		test.ExpectEquality(t, d.Bytes, 2)
		test.ExpectSuccess(t, d.IsDefined())
	}

	test.ExpectEquality(t, defs.Extended[0x00].Mnemonic, "RLC B")
	test.ExpectEquality(t, defs.Extended[0x37].Mnemonic, "SWAP A")
	test.ExpectEquality(t, defs.Extended[0x7c].Mnemonic, "BIT 7,H")
	test.ExpectEquality(t, defs.Extended[0x46].Cycles, 12)
	test.ExpectEquality(t, defs.Extended[0x86].Cycles, 16)
	test.ExpectEquality(t, defs.Extended[0xff].Mnemonic, "SET 7,A")
	test.ExpectEquality(t, defs.Extended[0xff].Cycles, 8)
}

func TestLookup(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.ExpectEquality(t, defs.Lookup(0x3e, 0x00).Mnemonic, "LD A,d8")
	test.ExpectEquality(t, defs.Lookup(instructions.PrefixOpcode, 0x11).Mnemonic, "RL C")
}
