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

// Package memory assembles the address space of the console. The different
// areas of memory are mapped to an address router (see the mmu package) and
// the router is wrapped in a bus.Space with little-endian byte order, which is
// the byte order of the CPU.
//
//	0x0000 to 0x7fff	cartridge ROM window
//	0x8000 to 0x9fff	video RAM
//	0xa000 to 0xbfff	cartridge RAM window
//	0xc000 to 0xdfff	work RAM
//	0xe000 to 0xfdff	echo of work RAM
//	0xfe00 to 0xfe9f	object attribute memory
//	0xfea0 to 0xfeff	unusable
//	0xff00 to 0xff7f	IO registers
//	0xff80 to 0xfffe	high RAM
//	0xffff				interrupt enable register
//
// Until a cartridge is attached the cartridge windows are unmapped and will
// read as 0xff.
package memory
