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

package notifications

// Notice describes events that happen in the hardware that might be of
// interest to the emulation instance.
type Notice string

// List of defined notifications.
const (
	// the CPU has serviced an interrupt
	NotifyInterruptServiced Notice = "NotifyInterruptServiced"

	// the cartridge has switched the ROM bank mapped to the switchable
	// window
	NotifyBankSwitched Notice = "NotifyBankSwitched"

	// the CPU has executed a HALT instruction
	NotifyHaltEntered Notice = "NotifyHaltEntered"

	// the CPU has encountered an opcode with no implementation
	NotifyUnimplementedOpcode Notice = "NotifyUnimplementedOpcode"
)

// Notify is used for direct communication between the hardware and the
// emulation instance.
type Notify interface {
	Notify(notice Notice) error
}

// NotifyFunc adapts an ordinary function to the Notify interface.
type NotifyFunc func(notice Notice) error

// Notify implements the Notify interface.
func (f NotifyFunc) Notify(notice Notice) error {
	return f(notice)
}
