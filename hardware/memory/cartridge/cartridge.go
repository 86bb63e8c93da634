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
	"crypto/sha1"
	"fmt"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge/mapper"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/notifications"
)

// controller describes the controller type codes found in the header.
type controller struct {
	name    string
	ram     bool
	battery bool
}

var controllers = map[uint8]controller{
	0x00: {name: "ROM"},
	0x01: {name: "MBC1"},
	0x02: {name: "MBC1+RAM", ram: true},
	0x03: {name: "MBC1+RAM+BATTERY", ram: true, battery: true},
	0x05: {name: "MBC2"},
	0x06: {name: "MBC2+BATTERY", battery: true},
	0x08: {name: "ROM+RAM", ram: true},
	0x09: {name: "ROM+RAM+BATTERY", ram: true, battery: true},
}

// Cartridge defines the information and operations for a cartridge. The
// cartridge services addresses in the ROM window (0x0000 to 0x7fff) and the
// RAM window (0xa000 to 0xbfff).
type Cartridge struct {
	Filename string
	Hash     string

	Header Header

	// cartridge RAM is battery backed
	Battery bool

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.CartMapper

	notify notifications.Notify
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The controller is chosen according to the type code in the header. An
// unsupported type code is an error. The notify argument can be nil.
func NewCartridge(data []byte, notify notifications.Notify) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	ctrl, ok := controllers[h.Type]
	if !ok {
		return nil, curated.Errorf(UnsupportedController, h.Type)
	}

	cart := &Cartridge{
		Hash:    fmt.Sprintf("%x", sha1.Sum(data)),
		Header:  h,
		Battery: ctrl.battery,
		notify:  notify,
	}

	if !h.ChecksumValid() {
		logger.Logf(logger.Allow, "cartridge", "header checksum mismatch (%#02x instead of %#02x)", h.CalculatedChecksum, h.Checksum)
	}

	// the amount of ROM in the data should match the amount specified by the
	// header. pad or truncate the data as required
	romSize := h.GetROMSize()
	if len(data) != romSize {
		logger.Logf(logger.Allow, "cartridge", "ROM data is %d bytes but header specifies %d bytes", len(data), romSize)
		rom := make([]byte, romSize)
		for i := range rom {
			rom[i] = 0xff
		}
		copy(rom, data)
		data = rom
	}

	ramSize := 0
	if ctrl.ram {
		ramSize = h.GetRAMSize()
	}

	switch ctrl.name {
	case "ROM", "ROM+RAM", "ROM+RAM+BATTERY":
		cart.mapper, err = newROMOnly(data, ramSize)
	case "MBC1", "MBC1+RAM", "MBC1+RAM+BATTERY":
		cart.mapper, err = newMBC1(data, ramSize, cart.bankSwitched)
	case "MBC2", "MBC2+BATTERY":
		cart.mapper, err = newMBC2(data, cart.bankSwitched)
	}
	if err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}

	logger.Logf(logger.Allow, "cartridge", "%s (%s) %d ROM banks", h.Title, ctrl.name, cart.mapper.NumBanks())

	return cart, nil
}

func (cart *Cartridge) bankSwitched() {
	if cart.notify == nil {
		return
	}
	if err := cart.notify.Notify(notifications.NotifyBankSwitched); err != nil {
		logger.Log(logger.Allow, "cartridge", err)
	}
}

func (cart *Cartridge) String() string {
	return cart.mapper.ID()
}

// Summary returns brief information about the cartridge. Two lines: first line
// is the header information and the second line is information about the
// controller, including bank information.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s", cart.Header, cart.mapper)
}

// ID returns the controller ID.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Reset the controller registers.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Load8 implements the bus.Memory interface.
func (cart *Cartridge) Load8(address uint16) uint8 {
	return cart.mapper.Access(address)
}

// Store8 implements the bus.Memory interface.
func (cart *Cartridge) Store8(address uint16, data uint8) {
	cart.mapper.AccessVolatile(address, data, false)
}

// Peek implements the bus.DebuggerBus interface.
func (cart *Cartridge) Peek(address uint16) (uint8, error) {
	return cart.mapper.Access(address), nil
}

// Poke implements the bus.DebuggerBus interface. Poke writes to the currently
// mapped bank, including ROM, and does not change the controller registers.
func (cart *Cartridge) Poke(address uint16, data uint8) error {
	cart.mapper.AccessVolatile(address, data, true)
	return nil
}

// PhysicalAddress implements the bus.PhysicalMapper interface.
func (cart *Cartridge) PhysicalAddress(address uint16) uint64 {
	return cart.mapper.PhysicalAddress(address)
}

// NumBanks returns the number of ROM banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// GetBank returns the bank currently mapped to the address.
func (cart *Cartridge) GetBank(address uint16) mapper.BankInfo {
	return cart.mapper.GetBank(address)
}

type registers string

func (r registers) String() string {
	return string(r)
}

// GetRegisters implements the bus.CartDebugBus interface.
func (cart *Cartridge) GetRegisters() bus.CartRegisters {
	return registers(cart.mapper.Registers())
}
