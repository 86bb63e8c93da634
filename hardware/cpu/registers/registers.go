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

package registers

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Slot identifies one of the 16bit registers.
type Slot int

// List of valid Slot values.
const (
	AF Slot = iota
	BC
	DE
	HL
	SP
	PC
	NumSlots
)

func (s Slot) String() string {
	switch s {
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	case PC:
		return "PC"
	}
	return "??"
}

// Half selects one byte of a slot.
type Half int

// List of valid Half values. The ordering is important. See package
// documentation.
const (
	High Half = 0
	Low  Half = 1
)

// ID identifies an 8bit register. See package documentation.
type ID uint8

// MakeID combines a slot and half into an ID.
func MakeID(slot Slot, half Half) ID {
	return ID(slot)<<1 | ID(half)
}

// Slot returns the slot of the 8bit register.
func (id ID) Slot() Slot {
	return Slot(id >> 1)
}

// Half returns which half of the slot the 8bit register occupies.
func (id ID) Half() Half {
	return Half(id & 0x01)
}

// Sibling returns the ID of the other half of the same slot.
func (id ID) Sibling() ID {
	return id ^ 0x01
}

// List of 8bit register IDs.
const (
	A = ID(AF)<<1 | ID(High)
	F = ID(AF)<<1 | ID(Low)
	B = ID(BC)<<1 | ID(High)
	C = ID(BC)<<1 | ID(Low)
	D = ID(DE)<<1 | ID(High)
	E = ID(DE)<<1 | ID(Low)
	H = ID(HL)<<1 | ID(High)
	L = ID(HL)<<1 | ID(Low)
	S = ID(SP)<<1 | ID(High)
	P = ID(SP)<<1 | ID(Low)

	PCHigh = ID(PC)<<1 | ID(High)
	PCLow  = ID(PC)<<1 | ID(Low)

	NumIDs = ID(NumSlots) << 1
)

var idNames = [NumIDs]string{"A", "F", "B", "C", "D", "E", "H", "L", "S", "P", "PCh", "PCl"}

func (id ID) String() string {
	if id >= NumIDs {
		return "?"
	}
	return idNames[id]
}

// Power-on values of each slot.
const (
	PowerOnAF = uint16(0x01b0)
	PowerOnBC = uint16(0x0013)
	PowerOnDE = uint16(0x00d8)
	PowerOnHL = uint16(0x014d)
	PowerOnSP = uint16(0xfffe)
	PowerOnPC = uint16(0x0100)
)

// the bits of the F register that are always zero when the nibble is masked.
const flagNibbleMask = 0x0f

// File is the register file for the CPU.
type File struct {
	slots [NumSlots][2]byte

	// the byte order used to pack and unpack the slots. half zero of a slot
	// is the first byte in this order. for the ordering of halves described
	// in the package documentation this must be big-endian
	order binary.ByteOrder

	// mask the lower nibble of the F register when it is written to
	maskNibble bool
}

// NewFile is the preferred method of initialisation for the File type. The
// maskNibble argument controls whether the lower four bits of the F register
// are forced to zero when written.
func NewFile(maskNibble bool) *File {
	return &File{
		order:      binary.BigEndian,
		maskNibble: maskNibble,
	}
}

// MaskNibble changes whether the lower four bits of the F register are forced
// to zero when written. Does not affect the current value of F.
func (r *File) MaskNibble(mask bool) {
	r.maskNibble = mask
}

// Reset loads the power-on values into every slot.
func (r *File) Reset() {
	r.SetRegister16(AF, PowerOnAF)
	r.SetRegister16(BC, PowerOnBC)
	r.SetRegister16(DE, PowerOnDE)
	r.SetRegister16(HL, PowerOnHL)
	r.SetRegister16(SP, PowerOnSP)
	r.SetRegister16(PC, PowerOnPC)
}

// GetRegister16 returns the value of the slot.
func (r *File) GetRegister16(slot Slot) uint16 {
	return r.order.Uint16(r.slots[slot][:])
}

// SetRegister16 sets the value of the slot.
func (r *File) SetRegister16(slot Slot, v uint16) {
	if slot == AF && r.maskNibble {
		v &^= flagNibbleMask
	}
	r.order.PutUint16(r.slots[slot][:], v)
}

// GetRegister8 returns the value of the 8bit register.
func (r *File) GetRegister8(id ID) uint8 {
	return r.slots[id.Slot()][id.Half()]
}

// SetRegister8 sets the value of the 8bit register. The sibling half of the
// slot is preserved.
func (r *File) SetRegister8(id ID, v uint8) {
	var b [2]byte
	b[id.Half()] = v
	b[id.Sibling().Half()] = r.slots[id.Slot()][id.Sibling().Half()]
	r.SetRegister16(id.Slot(), r.order.Uint16(b[:]))
}

// GetFlag returns the state of the flag.
func (r *File) GetFlag(f Flag) bool {
	return r.GetRegister8(F)&f.mask() != 0
}

// SetFlag sets the state of the flag. Other flags are unaffected.
func (r *File) SetFlag(f Flag, v bool) {
	fl := r.GetRegister8(F)
	if v {
		fl |= f.mask()
	} else {
		fl &^= f.mask()
	}
	r.SetRegister8(F, fl)
}

// Flags returns the four flags as a string. See Flag.Label() for the
// symbols used.
func (r *File) Flags() string {
	s := strings.Builder{}
	for _, f := range []Flag{Zero, Subtract, HalfCarry, Carry} {
		if r.GetFlag(f) {
			s.WriteString(strings.ToUpper(f.Label()))
		} else {
			s.WriteString(f.Label())
		}
	}
	return s.String()
}

func (r *File) String() string {
	s := strings.Builder{}
	for sl := AF; sl < NumSlots; sl++ {
		s.WriteString(fmt.Sprintf("%s=%04x ", sl, r.GetRegister16(sl)))
	}
	s.WriteString(r.Flags())
	return s.String()
}
