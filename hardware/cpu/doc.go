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

// Package cpu emulates the SM83 processor found in the console. The processor
// executes instructions according to the single byte value read from the
// address pointed to by the program counter. This single byte is the opcode
// and is used to index one of two dispatch tables. The opcode 0xcb is a prefix
// and the byte following it indexes the extended table.
//
// The dispatch tables are built once, when the CPU is created, by composing a
// small number of operand and operation functions. For example, the 64 load
// instructions between 0x40 and 0x7f are all the same operation applied to
// different pairs of operands.
//
// The CPU type requires an implementation of the Memory interface. The Space
// type in the bus package satisfies this interface.
//
//	mc := cpu.NewCPU(prefs, mem, nil)
//
//	for {
//		if err := mc.Step(); err != nil {
//			return err
//		}
//	}
//
// The LastResult field can be probed for information about the most recent
// step. See the execution package for more information. Very useful for
// debuggers.
//
// The opcode 0xd3 is not defined by the processor and is used as a trap by the
// debugger package. Executing the trap opcode returns an error that can be
// checked with curated.Is() against the Trapped pattern. The program counter
// is left pointing at the trap.
package cpu
