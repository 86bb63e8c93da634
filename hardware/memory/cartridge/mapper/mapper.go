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

// Package mapper contains the interface that every cartridge bank controller
// implements, along with helper types shared by the cartridge and debugging
// packages.
package mapper

import "fmt"

// CartMapper implementations hold the actual data from the loaded ROM and keep
// track of which banks are mapped to individual addresses. Addresses are
// logical addresses in either the ROM window (0x0000 to 0x7fff) or the RAM
// window (0xa000 to 0xbfff).
type CartMapper interface {
	// ID returns a short identifier of the controller type
	ID() string

	// reset controller registers to their power-on state. does not clear RAM
	Reset()

	// Access reads the address. reads have no side effects on any of the
	// supported controllers
	Access(addr uint16) uint8

	// AccessVolatile writes to the address. If poke is true then the
	// underlying storage is changed directly, including ROM, and the
	// controller registers are left untouched
	AccessVolatile(addr uint16, data uint8, poke bool)

	// the number of ROM banks
	NumBanks() int

	// GetBank returns the bank information for the address
	GetBank(addr uint16) BankInfo

	// PhysicalAddress returns an identifier for the storage cell that the
	// address currently reaches. The identifier does not change when other
	// banks are switched in
	PhysicalAddress(addr uint16) uint64

	// Registers returns a summary of the controller registers
	Registers() string
}

// BankInfo is used to identify a cartridge bank.
type BankInfo struct {
	Number int

	// bank is cartridge RAM
	IsRAM bool

	// the address is not mapped to storage. for example, cartridge RAM that
	// has not been enabled
	NonCart bool
}

func (b BankInfo) String() string {
	if b.NonCart {
		return "-"
	}
	if b.IsRAM {
		return fmt.Sprintf("%dR", b.Number)
	}
	return fmt.Sprintf("%d", b.Number)
}

// Base values of physical addresses. The bank controllers add the offset of
// the storage cell to these values. The values are outside of the range used
// by memory that is not banked.
const (
	PhysicalROM = uint64(0x1) << 32
	PhysicalRAM = uint64(0x2) << 32
)
