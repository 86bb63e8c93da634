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
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

// Entry is a single decoded instruction.
type Entry struct {
	Address uint16
	Defn    instructions.Definition

	// the bytes of the instruction, including the opcode and any prefix. the
	// value replaced by a trap is used if the opcode is a trap
	Bytes []uint8

	// the opcode at the address is a trap installed by the debugger
	Trapped bool

	// the mnemonic split into operator and operands. placeholders in the
	// operands are replaced with the values found in memory
	Operator string
	Operand  string
}

func (e Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// Bytecode returns the bytes of the instruction as a hex string.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// the operand value of the instruction. the prefix byte is not an operand
func (e Entry) value() (uint8, uint16) {
	data := e.Bytes[1:]
	if e.Defn.Prefixed {
		data = nil
	}
	switch len(data) {
	case 1:
		return data[0], uint16(data[0])
	case 2:
		return data[0], uint16(data[1])<<8 | uint16(data[0])
	}
	return 0, 0
}

// formatOperands splits the mnemonic and replaces the operand placeholders.
func formatOperands(e Entry) (string, string) {
	operator, operand, _ := strings.Cut(e.Defn.Mnemonic, " ")
	if operand == "" {
		return operator, ""
	}

	lo, word := e.value()

	switch {
	case strings.Contains(operand, "d16"):
		operand = strings.Replace(operand, "d16", fmt.Sprintf("$%04x", word), 1)
	case strings.Contains(operand, "a16"):
		operand = strings.Replace(operand, "a16", fmt.Sprintf("$%04x", word), 1)
	case strings.Contains(operand, "d8"):
		operand = strings.Replace(operand, "d8", fmt.Sprintf("$%02x", lo), 1)
	case strings.Contains(operand, "a8"):
		operand = strings.Replace(operand, "a8", fmt.Sprintf("$ff%02x", lo), 1)
	case strings.Contains(operand, "SP+r8"):
		operand = strings.Replace(operand, "+r8", fmt.Sprintf("%+d", int8(lo)), 1)
	case strings.Contains(operand, "r8"):
		if e.Defn.Category == instructions.Flow {
			// relative jumps are shown as the destination address
			dest := e.Address + uint16(e.Defn.Bytes) + uint16(int16(int8(lo)))
			operand = strings.Replace(operand, "r8", fmt.Sprintf("$%04x", dest), 1)
		} else {
			operand = strings.Replace(operand, "r8", fmt.Sprintf("%d", int8(lo)), 1)
		}
	}

	return operator, operand
}
