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

// Memory defines the memory operations required by the disassembly. Peek()
// must not have any side effects.
type Memory interface {
	Peek(address uint16) (uint8, error)
	GetReplaced8(address uint16) (uint8, bool)
}

// read the byte at the address. unmapped addresses are read as 0xff. a trap
// is replaced by the value it replaced
func (dsm *Disassembly) read(address uint16) (uint8, bool) {
	v, err := dsm.mem.Peek(address)
	if err != nil {
		return 0xff, false
	}

	if v == instructions.TrapOpcode {
		if orig, ok := dsm.mem.GetReplaced8(address); ok {
			return orig, true
		}
	}

	return v, false
}
