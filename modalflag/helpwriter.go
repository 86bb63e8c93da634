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
	"io"
	"strings"
)

// usage collects the output of the flag package so that it can be
// supplemented with the mode and sub-mode information.
type usage struct {
	strings.Builder
}

// the flag package output when there are no flags
const emptyUsage = "Usage:\n"

func (u *usage) write(output io.Writer, mode string, subModes []string, additionalHelp string) {
	s := u.String()

	if s == emptyUsage && len(subModes) == 0 {
		if mode == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", mode)
		}
		return
	}

	header, defaults, _ := strings.Cut(s, "\n")
	if mode != "" {
		header = fmt.Sprintf("%s for %s mode", header, mode)
	}
	fmt.Fprintln(output, header)
	io.WriteString(output, defaults)

	if len(subModes) > 0 {
		if defaults != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
