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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are set with NewArgs() and flags are added in the same way as
// the flag package. Parse() is called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	limit := md.AddInt("limit", 0, "maximum number of instructions")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation. Modes are added with AddSubModes(). The first
// mode in the list is the default mode. Comparisons are case insensitive.
//
//	md.AddSubModes("run", "step", "script")
//	md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		breaks := md.AddAddresses("break", "breakpoint addresses")
//		md.Parse()
//		...
//	}
//
// The second call to Parse() processes the arguments that follow the mode
// selector. Modes can be nested as deeply as required.
//
// The AddAddresses() function adds a flag that collects 16bit addresses.
// The flag can be repeated and each value can be a comma separated list.
package modalflag
