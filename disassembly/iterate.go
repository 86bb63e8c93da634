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

// Range decodes count instructions starting at the address. Each instruction
// begins at the address following the previous instruction. The range stops
// early if the end of the address space is reached.
func (dsm *Disassembly) Range(from uint16, count int) []Entry {
	entries := make([]Entry, 0, count)

	address := int(from)
	for i := 0; i < count && address <= 0xffff; i++ {
		e := dsm.Decode(uint16(address))
		entries = append(entries, e)
		address += e.Defn.Bytes
	}

	return entries
}
