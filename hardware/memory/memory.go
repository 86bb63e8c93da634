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
	"encoding/binary"

	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/hardware/memory/mmu"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
)

// Memory is the complete address space of the console.
type Memory struct {
	*bus.Space

	router *mmu.Router

	// nil if no cartridge is attached
	Cart *cartridge.Cartridge

	VRAM *RAM
	WRAM *RAM
	OAM  *RAM
	High *HighPage
}

// the mappings for the areas of memory that are always present
var (
	mappingVRAM    = mmu.Mapping{Start: memorymap.OriginVRAM, Size: 0x2000, Access: mmu.ReadWrite}
	mappingWRAM    = mmu.Mapping{Start: memorymap.OriginWRAM, Size: 0x2000, Access: mmu.ReadWrite}
	mappingEcho    = mmu.Mapping{Start: memorymap.OriginEcho, Size: 0x1e00, Access: mmu.ReadWrite}
	mappingOAM     = mmu.Mapping{Start: memorymap.OriginOAM, Size: 0x100, Access: mmu.ReadWrite}
	mappingHigh    = mmu.Mapping{Start: memorymap.OriginIO, Size: 0x100, Access: mmu.ReadWrite}
	mappingROM     = mmu.Mapping{Start: memorymap.OriginCart, Size: 0x8000, Access: mmu.ReadWrite}
	mappingCartRAM = mmu.Mapping{Start: memorymap.OriginCartRAM, Size: 0x2000, Access: mmu.ReadWrite}
)

// NewMemory is the preferred method of initialisation for the Memory type.
// The block size of the address router is taken from the preferences.
func NewMemory(prefs *preferences.Preferences) (*Memory, error) {
	router, err := mmu.NewRouter(prefs.RouterBlockSize.Get().(int))
	if err != nil {
		return nil, err
	}

	mem := &Memory{
		Space:  bus.NewSpace(router, binary.LittleEndian),
		router: router,
		VRAM:   NewRAM("VRAM", memorymap.OriginVRAM, 0x2000, false),
		WRAM:   NewRAM("WRAM", memorymap.OriginWRAM, 0x2000, true),
		OAM:    NewRAM("OAM", memorymap.OriginOAM, int(memorymap.MemtopOAM-memorymap.OriginOAM+1), false),
		High:   NewHighPage(),
	}

	for _, m := range []struct {
		mem     bus.Memory
		mapping mmu.Mapping
	}{
		{mem.VRAM, mappingVRAM},
		{mem.WRAM, mappingWRAM},
		{mem.WRAM, mappingEcho},
		{mem.OAM, mappingOAM},
		{mem.High, mappingHigh},
	} {
		if err := router.Map(m.mem, m.mapping); err != nil {
			return nil, err
		}
	}

	return mem, nil
}

// Router returns the address router.
func (mem *Memory) Router() *mmu.Router {
	return mem.router
}

// Attach the cartridge to the cartridge windows. Any previously attached
// cartridge is replaced.
func (mem *Memory) Attach(cart *cartridge.Cartridge) error {
	if err := mem.router.Map(cart, mappingROM); err != nil {
		return err
	}
	if err := mem.router.Map(cart, mappingCartRAM); err != nil {
		return err
	}
	mem.Cart = cart
	return nil
}

// Eject the cartridge. The cartridge windows will read as 0xff.
func (mem *Memory) Eject() error {
	if err := mem.router.Unmap(mappingROM); err != nil {
		return err
	}
	if err := mem.router.Unmap(mappingCartRAM); err != nil {
		return err
	}
	mem.Cart = nil
	return nil
}

// Reset contents of all RAM areas and the cartridge registers. Cartridge RAM
// is not changed.
func (mem *Memory) Reset() {
	mem.VRAM.Reset()
	mem.WRAM.Reset()
	mem.OAM.Reset()
	mem.High.Reset()
	if mem.Cart != nil {
		mem.Cart.Reset()
	}
}
