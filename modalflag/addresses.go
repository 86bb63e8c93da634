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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// Addresses is the value of a flag added with AddAddresses().
type Addresses []uint16

func (a *Addresses) String() string {
	if a == nil {
		return ""
	}
	s := make([]string, len(*a))
	for i, v := range *a {
		s[i] = fmt.Sprintf("%04x", v)
	}
	return strings.Join(s, ",")
}

// Set implements the flag.Value interface. Addresses are hexadecimal with
// an optional $ or 0x prefix.
func (a *Addresses) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue // for loop
		}

		f = strings.TrimPrefix(f, "$")
		f = strings.TrimPrefix(strings.ToLower(f), "0x")

		v, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return fmt.Errorf("invalid address (%s)", f)
		}
		*a = append(*a, uint16(v))
	}
	return nil
}

// AddAddresses flag for next call to Parse(). The flag can be specified more
// than once.
func (md *Modes) AddAddresses(name string, usage string) *Addresses {
	a := &Addresses{}
	md.flags.Var(a, name, usage)
	return a
}
