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

// Flag is the bit position of a flag in the F register.
type Flag uint8

// List of flags.
const (
	Carry     Flag = 4
	HalfCarry Flag = 5
	Subtract  Flag = 6
	Zero      Flag = 7
)

func (f Flag) mask() uint8 {
	return 0x01 << f
}

// Label returns the lower case symbol of the flag.
func (f Flag) Label() string {
	switch f {
	case Zero:
		return "z"
	case Subtract:
		return "n"
	case HalfCarry:
		return "h"
	case Carry:
		return "c"
	}
	return "?"
}

func (f Flag) String() string {
	switch f {
	case Zero:
		return "Zero"
	case Subtract:
		return "Subtract"
	case HalfCarry:
		return "HalfCarry"
	case Carry:
		return "Carry"
	}
	return "unknown flag"
}
