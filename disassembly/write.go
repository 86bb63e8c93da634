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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the range of instructions to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr, from uint16, count int) error {
	for _, e := range dsm.Range(from, count) {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single instruction to io.Writer. Instructions with a
// trap are marked with an asterisk.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	marker := ' '
	if e.Trapped {
		marker = '*'
	}

	s := fmt.Sprintf("%c %04x ", marker, e.Address)
	if attr.ByteCode {
		s = fmt.Sprintf("%s%-9s ", s, e.Bytecode())
	}
	s = fmt.Sprintf("%s%-5s %s", s, e.Operator, e.Operand)
	if attr.Cycles {
		s = fmt.Sprintf("%-32s (%d)", s, e.Defn.Cycles)
	}

	_, err := io.WriteString(output, s+"\n")
	return err
}
