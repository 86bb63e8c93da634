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

package govern

import (
	"fmt"
	"strings"
)

// Mode indicates the broad condition of the host. Currently defined to be
// run, step and script.
type Mode int

func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "RUN"
	case ModeStep:
		return "STEP"
	case ModeScript:
		return "SCRIPT"
	}

	return ""
}

// List of defined modes.
const (
	ModeNone Mode = iota
	ModeRun
	ModeStep
	ModeScript
)

// ParseMode returns the Mode named by the string. The comparison is not case
// sensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "RUN":
		return ModeRun, nil
	case "STEP":
		return ModeStep, nil
	case "SCRIPT":
		return ModeScript, nil
	}
	return ModeNone, fmt.Errorf("unknown mode: %s", s)
}
