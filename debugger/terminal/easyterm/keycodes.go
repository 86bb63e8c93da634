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

package easyterm

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt = 3  // end-of-text character
	KeySuspend   = 26 // substitute character
	KeyEsc       = 27
	KeyReturn    = 13
	KeyLineFeed  = 10
	KeySpace     = 32
)

// ansi sequences used to style the output.
const (
	penReset    = "\033[0m"
	penBold     = "\033[1m"
	penRed      = "\033[31m"
	penCyan     = "\033[36m"
	penDimWhite = "\033[2;37m"
)
