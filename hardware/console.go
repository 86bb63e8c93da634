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

package hardware

import (
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/notifications"
)

// Console struct is the main container for the emulated components.
type Console struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Memory

	// notifications from the CPU and the cartridge are forwarded to this
	// instance. can be nil
	notify notifications.Notify
}

// NewConsole creates a new console with no cartridge attached. The Console
// will be created with the supplied preferences. The host is responsible for
// creating the preferences instance.
func NewConsole(prefs *preferences.Preferences) (*Console, error) {
	con := &Console{Prefs: prefs}

	var err error

	con.Mem, err = memory.NewMemory(prefs)
	if err != nil {
		return nil, err
	}

	con.CPU = cpu.NewCPU(prefs, con.Mem, con)

	return con, nil
}

// SetNotify changes where hardware notifications are forwarded to. A nil
// value will cause notifications to be ignored.
func (con *Console) SetNotify(notify notifications.Notify) {
	con.notify = notify
}

// Notify implements the notifications.Notify interface.
func (con *Console) Notify(notice notifications.Notice) error {
	if con.notify == nil {
		return nil
	}
	return con.notify.Notify(notice)
}

// Insert creates a cartridge from the data and attaches it to the console.
// The console is reset.
func (con *Console) Insert(data []byte) error {
	cart, err := cartridge.NewCartridge(data, con)
	if err != nil {
		return err
	}
	return con.Attach(cart)
}

// Attach the cartridge to the console. The console is reset.
func (con *Console) Attach(cart *cartridge.Cartridge) error {
	if err := con.Mem.Attach(cart); err != nil {
		return err
	}
	con.Reset()
	return nil
}

// Eject the cartridge. The console is reset.
func (con *Console) Eject() error {
	if con.Mem.Cart == nil {
		return nil
	}
	if err := con.Mem.Eject(); err != nil {
		return err
	}
	con.Reset()
	return nil
}

// Reset emulates the reset switch on the console panel.
func (con *Console) Reset() {
	con.Mem.Reset()
	con.CPU.Reset()
}

// RaiseInterrupt is the signal used by peripherals to request an interrupt.
// The interrupt will be serviced by the CPU when it is enabled.
func (con *Console) RaiseInterrupt(i cpu.Interrupt) {
	con.CPU.RaiseInterrupt(i)
}
