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

package preferences

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware packages. An instance is created by the host and passed to the
// console when it is created. There is no package level instance.
type Preferences struct {
	group *prefs.Group

	// an opcode with no implementation causes a panic rather than an error
	// being returned from the CPU. defaults to true in debug builds
	StrictOpcodes *prefs.Bool

	// the lower nibble of the F register always reads as zero on real
	// hardware. when false, the register file stores all eight bits
	MaskFlagNibble *prefs.Bool

	// the size of the blocks used by the address router. must be a power of
	// two between 0x10 and 0x100
	RouterBlockSize *prefs.Int
}

// preference keys used by the command line stack.
const (
	KeyStrictOpcodes   = "cpu.strict"
	KeyMaskFlagNibble  = "cpu.masknibble"
	KeyRouterBlockSize = "mmu.blocksize"
)

func (p *Preferences) String() string {
	return p.group.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values found in the most recent command line group are
// applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		group:           prefs.NewGroup(),
		StrictOpcodes:   prefs.NewBool(defaultStrictOpcodes),
		MaskFlagNibble:  prefs.NewBool(true),
		RouterBlockSize: prefs.NewInt(0x100),
	}

	p.RouterBlockSize.SetHookPre(func(v prefs.Value) error {
		sz := v.(int)
		if sz < 0x10 || sz > 0x100 || sz&(sz-1) != 0 {
			return fmt.Errorf("router block size must be a power of two between 0x10 and 0x100 (%#x)", sz)
		}
		return nil
	})

	if err := p.group.Add(KeyStrictOpcodes, p.StrictOpcodes); err != nil {
		return nil, err
	}
	if err := p.group.Add(KeyMaskFlagNibble, p.MaskFlagNibble); err != nil {
		return nil, err
	}
	if err := p.group.Add(KeyRouterBlockSize, p.RouterBlockSize); err != nil {
		return nil, err
	}

	if err := p.group.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.group.Reset()
}
