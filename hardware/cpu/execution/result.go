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

package execution

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU step.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction definition. for prefixed instructions this is the
	// definition in the extended table
	Defn instructions.Definition

	// the number of bytes read through the program counter during the
	// instruction, including the opcode and any prefix
	ByteCount int

	// the operand data, if any. the low byte is used for single byte operands
	InstructionData uint16

	// number of cycles charged for the step
	Cycles int

	// the step serviced an interrupt rather than executing an instruction
	Interrupt bool

	// the step idled because the CPU is halted
	Halted bool

	// whether this data has been finalised. Step() sets this to true just
	// before returning
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	switch {
	case r.Interrupt:
		return fmt.Sprintf("%04x interrupt (%d cycles)", r.Address, r.Cycles)
	case r.Halted:
		return fmt.Sprintf("%04x halted (%d cycles)", r.Address, r.Cycles)
	}

	switch r.Defn.Bytes - r.prefixBytes() {
	case 2:
		return fmt.Sprintf("%04x %s [%02x] (%d cycles)", r.Address, r.Defn.Mnemonic, uint8(r.InstructionData), r.Cycles)
	case 3:
		return fmt.Sprintf("%04x %s [%04x] (%d cycles)", r.Address, r.Defn.Mnemonic, r.InstructionData, r.Cycles)
	}
	return fmt.Sprintf("%04x %s (%d cycles)", r.Address, r.Defn.Mnemonic, r.Cycles)
}

func (r Result) prefixBytes() int {
	if r.Defn.Prefixed {
		return 1
	}
	return 0
}
