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

// the number of four bit cells in the built-in RAM of the mbc2 controller
const mbc2RAMCells = 512

// mbc2 cartridges have up to 256KB of ROM and 512 cells of four bit RAM built
// into the controller. The first ROM bank is always mapped to 0x0000 to 0x3fff.
//
// The controller registers are written to through 0x0000 to 0x3fff. Bit 8 of
// the address decides which register is written to:
//
//	bit 8 clear		ROM bank. four bits, zero is treated as one
//	bit 8 set		RAM enable. enabled if low nibble is 0x0a
//
// RAM is mapped to 0xa000 to 0xa1ff and mirrored through to 0xbfff. Two cells
// are packed into each byte of storage. The cell at an even offset is the low
// nibble and the cell at an odd offset is the high nibble.
type mbc2 struct {
	mappingID   string
	description string

	banks [][]uint8
	ram   [mbc2RAMCells / 2]uint8

	// called whenever the ROM bank register changes
	onBankSwitch func()

	ramEnabled bool
	romBank    int
}

func newMBC2(data []byte, onBankSwitch func()) (mapper.CartMapper, error) {
	cart := &mbc2{
		mappingID:    "MBC2",
		description:  "controller B",
		onBankSwitch: onBankSwitch,
	}

	if len(data) == 0 || len(data)%romBankSize != 0 {
		return nil, curated.Errorf("MBC2: %v", fmt.Errorf("wrong number of bytes in the cartridge data (%d)", len(data)))
	}

	numBanks := len(data) / romBankSize
	if numBanks > 16 {
		return nil, curated.Errorf("MBC2: %v", fmt.Errorf("too many ROM banks (%d)", numBanks))
	}

	cart.banks = make([][]uint8, numBanks)
	for k := range cart.banks {
		cart.banks[k] = make([]uint8, romBankSize)
		offset := k * romBankSize
		copy(cart.banks[k], data[offset:offset+romBankSize])
	}

	cart.Reset()

	return cart, nil
}

func (cart mbc2) String() string {
	return fmt.Sprintf("%s [%s] %s", cart.mappingID, cart.description, cart.Registers())
}

// ID implements the mapper.CartMapper interface.
func (cart mbc2) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc2) Reset() {
	cart.ramEnabled = false
	cart.romBank = 1
}

func (cart *mbc2) activeBank() int {
	return cart.romBank % len(cart.banks)
}

// the byte of storage and the shift for the nibble of the RAM cell
func (cart *mbc2) ramCell(addr uint16) (int, int) {
	offset := int(addr-memorymap.OriginCartRAM) % mbc2RAMCells
	return offset >> 1, (offset & 0x01) * 4
}

func (cart *mbc2) isRAM(addr uint16) bool {
	return addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM
}

// Access implements the mapper.CartMapper interface.
func (cart *mbc2) Access(addr uint16) uint8 {
	if addr <= memorymap.MemtopROMFixed {
		return cart.banks[0][addr]
	}
	if addr <= memorymap.MemtopROMSwitched {
		return cart.banks[cart.activeBank()][addr&(romBankSize-1)]
	}
	if cart.isRAM(addr) && cart.ramEnabled {
		idx, shift := cart.ramCell(addr)
		return (cart.ram[idx] >> shift) & 0x0f
	}
	return 0xff
}

// AccessVolatile implements the mapper.CartMapper interface.
func (cart *mbc2) AccessVolatile(addr uint16, data uint8, poke bool) {
	if addr <= memorymap.MemtopROMFixed {
		if poke {
			cart.banks[0][addr] = data
			return
		}
		cart.registers(addr, data)
		return
	}

	if addr <= memorymap.MemtopROMSwitched {
		if poke {
			cart.banks[cart.activeBank()][addr&(romBankSize-1)] = data
		}
		return
	}

	if cart.isRAM(addr) && (cart.ramEnabled || poke) {
		idx, shift := cart.ramCell(addr)
		cart.ram[idx] = (cart.ram[idx] &^ (0x0f << shift)) | (data&0x0f)<<shift
	}
}

// write to the controller registers
func (cart *mbc2) registers(addr uint16, data uint8) {
	if addr&0x0100 == 0x0100 {
		cart.ramEnabled = data&0x0f == 0x0a
		return
	}

	prevBank := cart.activeBank()

	cart.romBank = int(data & 0x0f)
	if cart.romBank == 0 {
		cart.romBank = 1
	}

	if prevBank != cart.activeBank() && cart.onBankSwitch != nil {
		cart.onBankSwitch()
	}
}

// NumBanks implements the mapper.CartMapper interface.
func (cart mbc2) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *mbc2) GetBank(addr uint16) mapper.BankInfo {
	if addr <= memorymap.MemtopROMFixed {
		return mapper.BankInfo{Number: 0}
	}
	if addr <= memorymap.MemtopROMSwitched {
		return mapper.BankInfo{Number: cart.activeBank()}
	}
	if cart.isRAM(addr) && cart.ramEnabled {
		return mapper.BankInfo{IsRAM: true}
	}
	return mapper.BankInfo{NonCart: true}
}

// PhysicalAddress implements the mapper.CartMapper interface. Each RAM cell
// has its own physical address even though two cells share a byte of storage.
func (cart *mbc2) PhysicalAddress(addr uint16) uint64 {
	if addr <= memorymap.MemtopROMFixed {
		return mapper.PhysicalROM | uint64(addr)
	}
	if addr <= memorymap.MemtopROMSwitched {
		return mapper.PhysicalROM | uint64(cart.activeBank()*romBankSize+int(addr&(romBankSize-1)))
	}
	if cart.isRAM(addr) {
		return mapper.PhysicalRAM | uint64(int(addr-memorymap.OriginCartRAM)%mbc2RAMCells)
	}
	return uint64(addr)
}

// Registers implements the mapper.CartMapper interface.
func (cart *mbc2) Registers() string {
	return fmt.Sprintf("ROM bank: %d RAM enabled: %v", cart.activeBank(), cart.ramEnabled)
}
