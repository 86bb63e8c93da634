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

// Package cartridge implements loading and mapping of cartridge memory. The
// cartridge header decides which bank controller is used. Supported
// controllers:
//
//	ROM			no banking. 32KB of ROM and optional RAM of up to 8KB
//	MBC1		up to 2MB of ROM and up to 32KB of RAM
//	MBC2		up to 256KB of ROM and 512 cells of four bit RAM
//
// A header with any other controller type code causes NewCartridge() to fail
// with the UnsupportedController error.
//
// The Cartridge type implements the bus.Memory interface and should be mapped
// to both the ROM window and the RAM window of the address space. Writes to
// the ROM window are writes to the controller registers.
//
// Physical addresses reported by the cartridge are unique for every cell of
// ROM and RAM, regardless of the bank that is currently mapped.
package cartridge
