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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages export their patterns as const strings so that
// callers can test for them. For example, from the cartridge package:
//
//	const UnsupportedController = "cartridge: unsupported controller type (%#02x)"
//
//	if curated.Is(err, cartridge.UnsupportedController) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is formed by passing a curated error as one of the
// placeholder values of another curated error:
//
//	e := curated.Errorf("loader: %v", curated.Errorf(cartridge.HeaderTooShort, n))
//	curated.Has(e, cartridge.HeaderTooShort) == true
//	curated.Is(e, cartridge.HeaderTooShort) == false
//
// The Error() function normalises the message so that duplicate adjacent
// parts are removed. Parts are separated by the sub-string ": ". This means
// that code does not need to worry about whether an error has already been
// prefixed with the package name:
//
//	cartridge: cartridge: header too short
//
// becomes:
//
//	cartridge: header too short
//
// Curated errors also work with the errors package in the standard library.
// The Unwrap() function returns the first wrapped error value, if any.
package curated
