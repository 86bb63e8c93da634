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
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
)

// Sentinel error patterns.
const (
	HeaderTooShort        = "cartridge: header: data too short (%d bytes)"
	UnknownROMSize        = "cartridge: header: unknown ROM size code (%#02x)"
	UnknownRAMSize        = "cartridge: header: unknown RAM size code (%#02x)"
	UnsupportedController = "cartridge: unsupported controller type (%#02x)"
)

// Header layout. The offsets are relative to HeaderOrigin.
const (
	HeaderOrigin = 0x0100
	HeaderSize   = 0x50

	offsetTitle    = 0x34
	lenTitle       = 16
	offsetCGB      = 0x43
	offsetType     = 0x47
	offsetROMSize  = 0x48
	offsetRAMSize  = 0x49
	offsetChecksum = 0x4d
)

// the size of a single ROM bank
const romBankSize = 0x4000

// the size of a single RAM bank
const ramBankSize = 0x2000

// ROM sizes indexed by ROM size code.
var romSizes = map[uint8]int{
	0x00: 0x8000,
	0x01: 0x10000,
	0x02: 0x20000,
	0x03: 0x40000,
	0x04: 0x80000,
	0x05: 0x100000,
	0x06: 0x200000,
	0x07: 0x400000,
	0x08: 0x800000,

	// sizes that are not a power of two
	0x52: 72 * romBankSize,
	0x53: 80 * romBankSize,
	0x54: 96 * romBankSize,
}

// RAM sizes indexed by RAM size code.
var ramSizes = map[uint8]int{
	0x00: 0,
	0x01: 0x800,
	0x02: 0x2000,
	0x03: 0x8000,
	0x04: 0x20000,
	0x05: 0x10000,
}

// Header is a copy of the information found in the cartridge header.
type Header struct {
	Title string

	// the CGB flag. values of 0x80 or 0xc0 indicate that the last byte of the
	// title area is used for the flag and is not part of the title
	CGB uint8

	Type        uint8
	ROMSizeCode uint8
	RAMSizeCode uint8

	// the checksum recorded in the header and the checksum calculated from
	// the header data
	Checksum           uint8
	CalculatedChecksum uint8
}

// ParseHeader reads the header from the first bank of the cartridge data.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < HeaderOrigin+HeaderSize {
		return h, curated.Errorf(HeaderTooShort, len(data))
	}

	hdr := data[HeaderOrigin : HeaderOrigin+HeaderSize]

	h.CGB = hdr[offsetCGB]
	h.Type = hdr[offsetType]
	h.ROMSizeCode = hdr[offsetROMSize]
	h.RAMSizeCode = hdr[offsetRAMSize]
	h.Checksum = hdr[offsetChecksum]

	if _, ok := romSizes[h.ROMSizeCode]; !ok {
		return h, curated.Errorf(UnknownROMSize, h.ROMSizeCode)
	}
	if _, ok := ramSizes[h.RAMSizeCode]; !ok {
		return h, curated.Errorf(UnknownRAMSize, h.RAMSizeCode)
	}

	title := hdr[offsetTitle : offsetTitle+lenTitle]
	if h.CGB&0x80 == 0x80 {
		title = title[:lenTitle-1]
	}
	for i, c := range title {
		if c == 0x00 {
			title = title[:i]
			break
		}
	}
	h.Title = strings.TrimSpace(string(title))

	// checksum covers the title to the version number inclusive
	for _, v := range hdr[offsetTitle:offsetChecksum] {
		h.CalculatedChecksum = h.CalculatedChecksum - v - 1
	}

	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s [type %#02x] ROM: %dKB RAM: %dKB", h.Title, h.Type, h.GetROMSize()/1024, h.GetRAMSize()/1024)
}

// GetROMSize returns the number of bytes of ROM specified by the header.
// Returns zero if the ROM size code is not recognised.
func (h Header) GetROMSize() int {
	return romSizes[h.ROMSizeCode]
}

// GetRAMSize returns the number of bytes of RAM specified by the header.
// Returns zero if the RAM size code is not recognised.
func (h Header) GetRAMSize() int {
	return ramSizes[h.RAMSizeCode]
}

// ChecksumValid returns true if the checksum in the header matches the
// checksum calculated from the header data.
func (h Header) ChecksumValid() bool {
	return h.Checksum == h.CalculatedChecksum
}
