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

// Package debugger implements the debugger host for the console emulation.
//
// Breakpoints are kept by the Breakpoints type. Each breakpoint is a list of
// conditions and is identified by a Handle. A breakpoint is matched when any
// of its conditions is matched. Execution conditions match when the CPU is
// about to execute the instruction at an address. OnEvent conditions match
// when a hardware event is notified by the console.
//
// Execution conditions are implemented by replacing the byte at the address
// with the trap opcode. The real byte is kept by the memory and is presented
// by the disassembly and by the Load8() function in place of the trap. The
// trap is suspended for one instruction when stepping from a trapped address.
//
// Traps survive bank switching. When the cartridge changes the bank mapped to
// a trapped address, the newly mapped memory also receives a trap.
package debugger
