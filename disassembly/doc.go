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

// Package disassembly is the inspection service for the console's memory. It
// decodes single instructions and linear ranges of instructions without
// changing the state of the emulation.
//
// The disassembly is transparent to the traps installed by the debugger. When
// the trap opcode is found at an address that has a replaced value recorded,
// the recorded value is used in place of the trap. The instruction presented
// is therefore the real instruction of the program and not the trap.
//
// Instances of Disassembly are created with NewDisassembly(), which requires
// an implementation of the Memory interface. The Space type in the bus
// package satisfies the interface.
package disassembly
