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

package instructions

import "fmt"

// PrefixOpcode is the opcode that redirects decoding to the extended table.
const PrefixOpcode = uint8(0xcb)

// TrapOpcode is the opcode reserved for breakpoint traps. It is one of the
// opcodes that has no function on the real hardware.
const TrapOpcode = uint8(0xd3)

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode   uint8
	Prefixed bool
	Mnemonic string

	// number of bytes, including the prefix byte for prefixed instructions
	Bytes int

	// number of cycles. for conditional instructions this is the number of
	// cycles when the condition is not met. for prefixed instructions, it
	// includes the cycles for the prefix byte
	Cycles int

	Category Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Category == Undefined {
		return fmt.Sprintf("%02x undefined instruction", defn.OpCode)
	}
	if defn.Prefixed {
		return fmt.Sprintf("%02x %02x %s +%dbytes (%d cycles) [%s]", PrefixOpcode, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Category)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Category)
}

// IsDefined returns false if the instruction is not part of the instruction
// set.
func (defn Definition) IsDefined() bool {
	return defn.Category != Undefined
}

// Table is a complete set of definitions for every opcode value.
type Table [256]Definition

// Definitions contains both instruction tables.
type Definitions struct {
	Base     Table
	Extended Table
}

// the definitions never change so we only create them once
var definitions *Definitions

func init() {
	definitions = &Definitions{}
	buildBase(&definitions.Base)
	buildExtended(&definitions.Extended)
}

// GetDefinitions returns the instruction definitions. The tables are shared
// and must not be modified.
func GetDefinitions() *Definitions {
	return definitions
}

// Lookup returns the definition for the opcode. For the prefix opcode, the
// extended opcode is used to look up the extended table.
func (d *Definitions) Lookup(opcode uint8, extended uint8) Definition {
	if opcode == PrefixOpcode {
		return d.Extended[extended]
	}
	return d.Base[opcode]
}
