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

// mbc1 cartridges have up to 2MB of ROM and up to 32KB of RAM. The first ROM
// bank is always mapped to 0x0000 to 0x3fff. Any other bank can be mapped to
// 0x4000 to 0x7fff.
//
// The controller registers are written to through the ROM window:
//
//	0x0000 to 0x1fff	RAM enable. enabled if low nibble is 0x0a
//	0x2000 to 0x3fff	lower five bits of ROM bank. zero is treated as one
//	0x4000 to 0x5fff	RAM bank or upper two bits of ROM bank (see mode)
//	0x6000 to 0x7fff	mode. zero selects ROM banking, one selects RAM banking
type mbc1 struct {
	mappingID   string
	description string

	banks [][]uint8
	ram   [][]uint8

	// called whenever the ROM bank register changes
	onBankSwitch func()

	ramEnabled bool

	// full ROM bank number. the lower five bits are never zero
	romBank int

	ramBank int

	// RAM banking mode. when false the 0x4000 register selects the upper
	// bits of the ROM bank
	ramMode bool
}

func newMBC1(data []byte, ramSize int, onBankSwitch func()) (mapper.CartMapper, error) {
	cart := &mbc1{
		mappingID:    "MBC1",
		description:  "controller A",
		onBankSwitch: onBankSwitch,
	}

	if len(data) == 0 || len(data)%romBankSize != 0 {
		return nil, curated.Errorf("MBC1: %v", fmt.Errorf("wrong number of bytes in the cartridge data (%d)", len(data)))
	}

	numBanks := len(data) / romBankSize
	if numBanks > 128 {
		return nil, curated.Errorf("MBC1: %v", fmt.Errorf("too many ROM banks (%d)", numBanks))
	}

	cart.banks = make([][]uint8, numBanks)
	for k := range cart.banks {
		cart.banks[k] = make([]uint8, romBankSize)
		offset := k * romBankSize
		copy(cart.banks[k], data[offset:offset+romBankSize])
	}

	if ramSize > 4*ramBankSize {
		return nil, curated.Errorf("MBC1: %v", fmt.Errorf("too much RAM for cartridge (%d)", ramSize))
	}

	// RAM smaller than a bank is still a single bank
	if ramSize > 0 {
		n := (ramSize + ramBankSize - 1) / ramBankSize
		cart.ram = make([][]uint8, n)
		for k := range cart.ram {
			sz := ramBankSize
			if ramSize < sz {
				sz = ramSize
			}
			cart.ram[k] = make([]uint8, sz)
		}
	}

	cart.Reset()

	return cart, nil
}

func (cart mbc1) String() string {
	return fmt.Sprintf("%s [%s] %s", cart.mappingID, cart.description, cart.Registers())
}

// ID implements the mapper.CartMapper interface.
func (cart mbc1) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc1) Reset() {
	cart.ramEnabled = false
	cart.romBank = 1
	cart.ramBank = 0
	cart.ramMode = false
}

// the bank mapped into the switchable ROM window
func (cart *mbc1) activeBank() int {
	return cart.romBank % len(cart.banks)
}

// the bank mapped into the RAM window. returns false if no RAM is accessible
func (cart *mbc1) activeRAM(addr uint16) (int, int, bool) {
	if !cart.ramEnabled || len(cart.ram) == 0 {
		return 0, 0, false
	}
	bank := cart.ramBank % len(cart.ram)
	idx := int(addr-memorymap.OriginCartRAM) % len(cart.ram[bank])
	return bank, idx, true
}

// Access implements the mapper.CartMapper interface.
func (cart *mbc1) Access(addr uint16) uint8 {
	if addr <= memorymap.MemtopROMFixed {
		return cart.banks[0][addr]
	}
	if addr <= memorymap.MemtopROMSwitched {
		return cart.banks[cart.activeBank()][addr&(romBankSize-1)]
	}
	if addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM {
		if bank, idx, ok := cart.activeRAM(addr); ok {
			return cart.ram[bank][idx]
		}
	}
	return 0xff
}

// AccessVolatile implements the mapper.CartMapper interface.
func (cart *mbc1) AccessVolatile(addr uint16, data uint8, poke bool) {
	if addr <= memorymap.MemtopCart {
		if poke {
			if addr <= memorymap.MemtopROMFixed {
				cart.banks[0][addr] = data
			} else {
				cart.banks[cart.activeBank()][addr&(romBankSize-1)] = data
			}
			return
		}
		cart.registers(addr, data)
		return
	}

	if addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM {
		if poke && len(cart.ram) > 0 && !cart.ramEnabled {
			bank := cart.ramBank % len(cart.ram)
			cart.ram[bank][int(addr-memorymap.OriginCartRAM)%len(cart.ram[bank])] = data
			return
		}
		if bank, idx, ok := cart.activeRAM(addr); ok {
			cart.ram[bank][idx] = data
		}
	}
}

// write to the controller registers
func (cart *mbc1) registers(addr uint16, data uint8) {
	prevBank := cart.activeBank()

	switch {
	case addr <= 0x1fff:
		cart.ramEnabled = data&0x0f == 0x0a

	case addr <= 0x3fff:
		lo := int(data & 0x1f)
		if lo == 0 {
			lo = 1
		}
		cart.romBank = (cart.romBank &^ 0x1f) | lo

	case addr <= 0x5fff:
		if cart.ramMode {
			cart.ramBank = int(data & 0x03)
		} else {
			cart.romBank = (cart.romBank & 0x1f) | int(data&0x03)<<5
		}

	default:
		cart.ramMode = data&0x01 == 0x01
		if !cart.ramMode {
			cart.ramBank = 0
		}
	}

	if prevBank != cart.activeBank() && cart.onBankSwitch != nil {
		cart.onBankSwitch()
	}
}

// NumBanks implements the mapper.CartMapper interface.
func (cart mbc1) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *mbc1) GetBank(addr uint16) mapper.BankInfo {
	if addr <= memorymap.MemtopROMFixed {
		return mapper.BankInfo{Number: 0}
	}
	if addr <= memorymap.MemtopROMSwitched {
		return mapper.BankInfo{Number: cart.activeBank()}
	}
	if addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM {
		if bank, _, ok := cart.activeRAM(addr); ok {
			return mapper.BankInfo{Number: bank, IsRAM: true}
		}
	}
	return mapper.BankInfo{NonCart: true}
}

// PhysicalAddress implements the mapper.CartMapper interface.
func (cart *mbc1) PhysicalAddress(addr uint16) uint64 {
	if addr <= memorymap.MemtopROMFixed {
		return mapper.PhysicalROM | uint64(addr)
	}
	if addr <= memorymap.MemtopROMSwitched {
		return mapper.PhysicalROM | uint64(cart.activeBank()*romBankSize+int(addr&(romBankSize-1)))
	}
	if addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM && len(cart.ram) > 0 {
		bank := cart.ramBank % len(cart.ram)
		idx := int(addr-memorymap.OriginCartRAM) % len(cart.ram[bank])
		return mapper.PhysicalRAM | uint64(bank*ramBankSize+idx)
	}
	return uint64(addr)
}

// Registers implements the mapper.CartMapper interface.
func (cart *mbc1) Registers() string {
	mode := "ROM"
	if cart.ramMode {
		mode = "RAM"
	}
	return fmt.Sprintf("ROM bank: %d RAM bank: %d RAM enabled: %v mode: %s", cart.activeBank(), cart.ramBank, cart.ramEnabled, mode)
}
