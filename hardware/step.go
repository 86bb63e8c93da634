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

// Step the emulator state one CPU instruction. An instruction is also one
// interrupt being serviced or one idle cycle while the CPU is halted.
//
// The stepCallback function is called after the instruction has completed
// successfully. It can be nil.
func (con *Console) Step(stepCallback func() error) error {
	if err := con.CPU.Step(); err != nil {
		return err
	}

	if stepCallback != nil {
		return stepCallback()
	}

	return nil
}
