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

// Package registers implements the register file of the CPU. There are six
// 16bit slots: AF, BC, DE, HL, SP and PC. Every slot can also be accessed as
// two 8bit halves.
//
// An 8bit register is identified by combining the slot with a half selector:
//
//	id = (slot << 1) | half
//
// Half zero is the high byte of the slot and half one is the low byte. So the
// A register is the high byte of AF and the F register is the low byte. The F
// register holds the flags, which can be accessed individually with the
// GetFlag() and SetFlag() functions.
//
// Storage of the slots does not rely on the memory layout of the host. Each
// slot is held as a pair of bytes and packed/unpacked into a 16bit value with
// a declared byte order. Writing one half of a slot always recombines the
// sibling half into a single 16bit write, so the sibling is never disturbed.
package registers
