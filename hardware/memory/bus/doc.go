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

// Package bus defines the memory bus concept. Every area of memory, from the
// cartridge to the single byte IE register, implements the Memory interface.
// The interface is deliberately small: only 8bit loads and stores are
// required.
//
// Wider accesses are provided by the Space type, which wraps any Memory
// implementation and composes 16, 32 and 64bit accesses from 8bit accesses in
// a byte order fixed at construction. The Space type also maintains the
// replaced-byte map used by the debugger to patch memory without losing the
// original content.
//
// Implementations of Memory can optionally implement the PhysicalMapper
// interface. The physical address of a memory cell is the same regardless of
// which logical address (or which bank) is currently used to reach it. The
// replaced-byte map is keyed by physical address.
//
// The DebuggerBus interface is for the exclusive use of debuggers and the
// replaced-byte map. A Poke() will write to memory that cannot be written to
// with Store8(), for example cartridge ROM.
package bus
