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

package memory

import (
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
)

// the IF register only has five bits. the unused bits always read as one
const maskIF = 0xe0

// HighPage services the last page of the address space. The page is shared by
// the IO registers, high RAM and the IE register.
type HighPage struct {
	io   [memorymap.MemtopIO - memorymap.OriginIO + 1]uint8
	hram *RAM
	ie   uint8
}

// NewHighPage is the preferred method of initialisation for the HighPage type.
func NewHighPage() *HighPage {
	return &HighPage{
		hram: NewRAM("HRAM", memorymap.OriginHRAM, int(memorymap.MemtopHRAM-memorymap.OriginHRAM+1), false),
	}
}

func (hp *HighPage) String() string {
	return "IO/HRAM/IE"
}

// Reset contents of the page.
func (hp *HighPage) Reset() {
	for i := range hp.io {
		hp.io[i] = 0
	}
	hp.hram.Reset()
	hp.ie = 0
}

// Load8 implements the bus.Memory interface.
func (hp *HighPage) Load8(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.IO:
		if address == memorymap.AddressIF {
			return hp.io[ma] | maskIF
		}
		return hp.io[ma]
	case memorymap.HRAM:
		return hp.hram.Load8(address)
	case memorymap.IE:
		return hp.ie
	}
	return 0xff
}

// Store8 implements the bus.Memory interface.
func (hp *HighPage) Store8(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.IO:
		if address == memorymap.AddressIF {
			data &^= maskIF
		}
		hp.io[ma] = data
	case memorymap.HRAM:
		hp.hram.Store8(address, data)
	case memorymap.IE:
		hp.ie = data
	}
}

// Peek implements the bus.DebuggerBus interface.
func (hp *HighPage) Peek(address uint16) (uint8, error) {
	return hp.Load8(address), nil
}

// Poke implements the bus.DebuggerBus interface.
func (hp *HighPage) Poke(address uint16, value uint8) error {
	hp.Store8(address, value)
	return nil
}
