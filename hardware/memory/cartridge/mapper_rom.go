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

package cartridge

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge/mapper"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
)

// romOnly cartridges have 32KB of ROM mapped directly into the ROM window. An
// optional RAM of up to 8KB is mapped directly into the RAM window.
//
// Writes to the ROM window are ignored.
type romOnly struct {
	mappingID   string
	description string

	banks [2][]uint8
	ram   []uint8
}

func newROMOnly(data []byte, ramSize int) (mapper.CartMapper, error) {
	cart := &romOnly{
		mappingID:   "ROM",
		description: "no banking",
	}

	if len(data) != romBankSize*len(cart.banks) {
		return nil, curated.Errorf("ROM: %v", fmt.Errorf("wrong number of bytes in the cartridge data (%d)", len(data)))
	}

	if ramSize > ramBankSize {
		return nil, curated.Errorf("ROM: %v", fmt.Errorf("too much RAM for cartridge (%d)", ramSize))
	}

	for k := range cart.banks {
		cart.banks[k] = make([]uint8, romBankSize)
		copy(cart.banks[k], data[k*romBankSize:])
	}

	cart.ram = make([]uint8, ramSize)

	return cart, nil
}

func (cart romOnly) String() string {
	return fmt.Sprintf("%s [%s] RAM: %d bytes", cart.mappingID, cart.description, len(cart.ram))
}

// ID implements the mapper.CartMapper interface.
func (cart romOnly) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface.
func (cart *romOnly) Reset() {
}

// Access implements the mapper.CartMapper interface.
func (cart *romOnly) Access(addr uint16) uint8 {
	if addr <= memorymap.MemtopCart {
		return cart.banks[addr>>14][addr&(romBankSize-1)]
	}

	if idx, ok := cart.ramIndex(addr); ok {
		return cart.ram[idx]
	}

	return 0xff
}

// AccessVolatile implements the mapper.CartMapper interface.
func (cart *romOnly) AccessVolatile(addr uint16, data uint8, poke bool) {
	if addr <= memorymap.MemtopCart {
		if poke {
			cart.banks[addr>>14][addr&(romBankSize-1)] = data
		}
		return
	}

	if idx, ok := cart.ramIndex(addr); ok {
		cart.ram[idx] = data
	}
}

func (cart *romOnly) ramIndex(addr uint16) (int, bool) {
	if addr < memorymap.OriginCartRAM || addr > memorymap.MemtopCartRAM {
		return 0, false
	}
	idx := int(addr - memorymap.OriginCartRAM)
	return idx, idx < len(cart.ram)
}

// NumBanks implements the mapper.CartMapper interface.
func (cart romOnly) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *romOnly) GetBank(addr uint16) mapper.BankInfo {
	if addr <= memorymap.MemtopCart {
		return mapper.BankInfo{Number: int(addr >> 14)}
	}
	if _, ok := cart.ramIndex(addr); ok {
		return mapper.BankInfo{IsRAM: true}
	}
	return mapper.BankInfo{NonCart: true}
}

// PhysicalAddress implements the mapper.CartMapper interface.
func (cart *romOnly) PhysicalAddress(addr uint16) uint64 {
	if addr <= memorymap.MemtopCart {
		return mapper.PhysicalROM | uint64(addr)
	}
	if idx, ok := cart.ramIndex(addr); ok {
		return mapper.PhysicalRAM | uint64(idx)
	}
	return uint64(addr)
}

// Registers implements the mapper.CartMapper interface.
func (cart *romOnly) Registers() string {
	return "no registers"
}
