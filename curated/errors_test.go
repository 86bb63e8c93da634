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

package curated_test

import (
	"errors"
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/test"
)

const testPattern = "test: %d"
const wrapPattern = "wrap: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, e.Error(), "test: 10")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(wrapPattern, curated.Errorf(testPattern, 10))
	test.ExpectEquality(t, e.Error(), "wrap: test: 10")
	test.ExpectFailure(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.Has(e, testPattern))
	test.ExpectSuccess(t, curated.Has(e, wrapPattern))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("cartridge: %v", curated.Errorf("cartridge: header too short"))
	test.ExpectEquality(t, e.Error(), "cartridge: header too short")
}

func TestUnwrap(t *testing.T) {
	base := errors.New("base")
	e := curated.Errorf(wrapPattern, base)
	test.ExpectSuccess(t, errors.Is(e, base))
}
