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

package disassembly

import (
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

// Disassembly decodes instructions from memory.
type Disassembly struct {
	mem  Memory
	defs *instructions.Definitions
}

// NewDisassembly is the preferred method of initialisation for the Disassembly
// type.
func NewDisassembly(mem Memory) *Disassembly {
	return &Disassembly{
		mem:  mem,
		defs: instructions.GetDefinitions(),
	}
}

// IsValidAddress returns false if the address is the second byte of a
// prefixed instruction. Any other address is a possible instruction start.
//
// Note that only the immediately preceding byte is checked, so the address
// following an immediate value equal to the prefix opcode is also rejected.
func (dsm *Disassembly) IsValidAddress(address uint16) bool {
	if address == 0x0000 {
		return true
	}
	v, _ := dsm.read(address - 1)
	return v != instructions.PrefixOpcode
}

// definition returns the definition of the instruction at the address.
func (dsm *Disassembly) definition(address uint16) instructions.Definition {
	opcode, _ := dsm.read(address)
	if opcode == instructions.PrefixOpcode {
		ext, _ := dsm.read(address + 1)
		return dsm.defs.Extended[ext]
	}
	return dsm.defs.Base[opcode]
}

// GetInstructionSize returns the number of bytes in the instruction at the
// address, including any prefix. Undefined opcodes have a size of one.
func (dsm *Disassembly) GetInstructionSize(address uint16) int {
	return dsm.definition(address).Bytes
}

// GetInstructionName returns the mnemonic of the instruction at the address.
// Operand placeholders are not replaced. Use Decode() for the full instruction.
func (dsm *Disassembly) GetInstructionName(address uint16) string {
	return dsm.definition(address).Mnemonic
}

// Decode the single instruction at the address.
func (dsm *Disassembly) Decode(address uint16) Entry {
	e := Entry{
		Address: address,
		Defn:    dsm.definition(address),
	}

	e.Bytes = make([]uint8, e.Defn.Bytes)
	for i := range e.Bytes {
		v, trapped := dsm.read(address + uint16(i))
		e.Bytes[i] = v
		if i == 0 {
			e.Trapped = trapped
		}
	}

	e.Operator, e.Operand = formatOperands(e)

	return e
}
