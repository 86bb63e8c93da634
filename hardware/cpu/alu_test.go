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

package cpu_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestAdd8(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for _, cin := range []bool{false, true} {
				c := 0
				if cin {
					c = 1
				}
				r, half, carry := cpu.Add8(uint8(a), uint8(b), cin)
				test.ExpectEquality(t, r, uint8(a+b+c), a, b, cin)
				test.ExpectEquality(t, half, (a&0x0f)+(b&0x0f)+c > 0x0f, a, b, cin)
				test.ExpectEquality(t, carry, a+b+c > 0xff, a, b, cin)
			}
		}
	}
}

// subtraction must give the same result as adding the complement with the
// carry-in inverted, with the half-carry and carry results inverted
func TestSub8(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for _, bin := range []bool{false, true} {
				c := 0
				if bin {
					c = 1
				}

				r, half, carry := cpu.Sub8(uint8(a), uint8(b), bin)
				ar, ahalf, acarry := cpu.Add8(uint8(a), ^uint8(b), !bin)

				test.ExpectEquality(t, r, ar, a, b, bin)
				test.ExpectEquality(t, half, !ahalf, a, b, bin)
				test.ExpectEquality(t, carry, !acarry, a, b, bin)

				test.ExpectEquality(t, r, uint8(a-b-c), a, b, bin)
				test.ExpectEquality(t, half, (a&0x0f)-(b&0x0f)-c < 0, a, b, bin)
				test.ExpectEquality(t, carry, a-b-c < 0, a, b, bin)
			}
		}
	}
}

func TestIncDec8(t *testing.T) {
	for v := 0; v <= 0xff; v++ {
		r, half := cpu.Inc8(uint8(v))
		ar, ahalf, _ := cpu.Add8(uint8(v), 1, false)
		test.ExpectEquality(t, r, ar, v)
		test.ExpectEquality(t, half, ahalf, v)

		r, half = cpu.Dec8(uint8(v))
		sr, shalf, _ := cpu.Sub8(uint8(v), 1, false)
		test.ExpectEquality(t, r, sr, v)
		test.ExpectEquality(t, half, shalf, v)
	}
}
