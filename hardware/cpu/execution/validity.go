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
	"github.com/gopherdmg/gopherdmg/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	// interrupt servicing and halted steps do not execute an instruction
	if r.Interrupt || r.Halted {
		if r.ByteCount != 0 {
			return curated.Errorf("cpu: unexpected bytes read during interrupt or halt (%d)", r.ByteCount)
		}
		return nil
	}

	if !r.Defn.IsDefined() {
		return curated.Errorf("cpu: undefined instruction %#02x", r.Defn.OpCode)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d) for opcode %#02x [%s]",
			r.ByteCount,
			r.Defn.Bytes,
			r.Defn.OpCode,
			r.Defn.Mnemonic)
	}

	if r.Cycles != r.Defn.Cycles {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Mnemonic,
			r.Cycles,
			r.Defn.Cycles)
	}

	return nil
}
