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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case Cartridge:
		return "Cartridge"
	case VRAM:
		return "VRAM"
	case CartridgeRAM:
		return "CartridgeRAM"
	case WRAM:
		return "WRAM"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case IE:
		return "IE"
	}

	return "undefined"
}

// The different memory areas in the console
const (
	Undefined Area = iota
	Cartridge
	VRAM
	CartridgeRAM
	WRAM
	OAM
	Unusable
	IO
	HRAM
	IE
)

// The origin and memory top for each area of memory.
//
// Implementations of the different memory areas may need to drag the address
// down into the the range of an array. For areas that start on a suitable
// boundary, this can be done with (address^origin) rather than subtraction.
const (
	OriginCart    = uint16(0x0000)
	MemtopCart    = uint16(0x7fff)
	OriginVRAM    = uint16(0x8000)
	MemtopVRAM    = uint16(0x9fff)
	OriginCartRAM = uint16(0xa000)
	MemtopCartRAM = uint16(0xbfff)
	OriginWRAM    = uint16(0xc000)
	MemtopWRAM    = uint16(0xdfff)
	OriginEcho    = uint16(0xe000)
	MemtopEcho    = uint16(0xfdff)
	OriginOAM     = uint16(0xfe00)
	MemtopOAM     = uint16(0xfe9f)
	OriginUnused  = uint16(0xfea0)
	MemtopUnused  = uint16(0xfeff)
	OriginIO      = uint16(0xff00)
	MemtopIO      = uint16(0xff7f)
	OriginHRAM    = uint16(0xff80)
	MemtopHRAM    = uint16(0xfffe)
	AddressIE     = uint16(0xffff)
)

// Cartridge ROM is split into two windows. The lower window always maps to
// the first bank.
const (
	OriginROMFixed    = uint16(0x0000)
	MemtopROMFixed    = uint16(0x3fff)
	OriginROMSwitched = uint16(0x4000)
	MemtopROMSwitched = uint16(0x7fff)
)

// Registers in the IO area that are used outside of the IO area
// implementation.
const (
	AddressIF = uint16(0xff0f)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// the areas in address order. the echo area is listed as WRAM
var areas = []struct {
	origin uint16
	memtop uint16
	area   Area
	base   uint16
}{
	{OriginCart, MemtopCart, Cartridge, OriginCart},
	{OriginVRAM, MemtopVRAM, VRAM, OriginVRAM},
	{OriginCartRAM, MemtopCartRAM, CartridgeRAM, OriginCartRAM},
	{OriginWRAM, MemtopWRAM, WRAM, OriginWRAM},
	{OriginEcho, MemtopEcho, WRAM, OriginEcho},
	{OriginOAM, MemtopOAM, OAM, OriginOAM},
	{OriginUnused, MemtopUnused, Unusable, OriginUnused},
	{OriginIO, MemtopIO, IO, OriginIO},
	{OriginHRAM, MemtopHRAM, HRAM, OriginHRAM},
	{AddressIE, AddressIE, IE, AddressIE},
}

// MapAddress returns the area of the address and the address relative to the
// origin of the area. Echo addresses are reported as WRAM.
func MapAddress(address uint16) (uint16, Area) {
	for _, a := range areas {
		if address >= a.origin && address <= a.memtop {
			return address - a.base, a.area
		}
	}

	// unreachable because the list of areas covers the entire address space
	return address, Undefined
}

// IsArea returns true if the address is in the specificied area
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

// IsEcho returns true if the address is in the echo area.
func IsEcho(address uint16) bool {
	return address >= OriginEcho && address <= MemtopEcho
}
