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

//go:build windows
// +build windows

// Package easyterm is not available under windows.
package easyterm

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/debugger/terminal"
)

// KeyTerminal is not available under windows.
type KeyTerminal struct {
}

// Initialise implements the terminal.Terminal interface.
func (kt *KeyTerminal) Initialise() error {
	return fmt.Errorf("easyterm: key terminal not available on windows")
}

// CleanUp implements the terminal.Terminal interface.
func (kt *KeyTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (kt *KeyTerminal) Silence(silenced bool) {
}

// IsRealTerminal implements the terminal.Input interface.
func (kt *KeyTerminal) IsRealTerminal() bool {
	return false
}

// TermRead implements the terminal.Input interface.
func (kt *KeyTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	return "", nil
}

// TermPrintLine implements the terminal.Output interface.
func (kt *KeyTerminal) TermPrintLine(style terminal.Style, s string) {
}
