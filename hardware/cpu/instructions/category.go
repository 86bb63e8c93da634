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

// Category of an instruction describes its effect
type Category int

// List of valid categories.
const (
	// the opcode is not part of the instruction set
	Undefined Category = iota

	Read
	Write
	Modify
	Flow
	Subroutine
	Interrupt

	// the prefix opcode that selects the extended table
	Prefix

	// opcode reserved for breakpoint traps. it is not part of the instruction
	// set of the real hardware
	Trap
)

func (e Category) String() string {
	switch e {
	case Undefined:
		return "Undefined"
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	case Prefix:
		return "Prefix"
	case Trap:
		return "Trap"
	}
	return "unknown effect"
}
