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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions record a test error if the condition is not met but
// allow the test to continue. The Demand functions are fatal to the test.
//
// ExpectSuccess and ExpectFailure test for success and failure under generic
// conditions:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// It is worth describing how nil is handled because it is not obvious. The nil
// type is considered a success and consequently will cause ExpectFailure to
// fail and ExpectSuccess to succeed. This is because of how errors usually
// work, nil indicating no error.
//
// ExpectEquality and DemandEquality compare values of the same comparable
// type. The optional tags arguments are printed as a prefix to the failure
// message, which is useful when testing in a loop:
//
//	for i := range 256 {
//		test.ExpectEquality(t, r.Value(), i, "id", i)
//	}
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The Compare() function can then be used to test for
// equality.
package test
