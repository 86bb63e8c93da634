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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/test"
)

var data = []byte{0x00, 0xc3, 0x50, 0x01, 0xce, 0xed, 0x66, 0x66}

func TestLoadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o600))

	cl := cartridgeloader.NewLoader(filename)
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectSuccess(t, cl.HasRecognisedExtension())
	test.ExpectFailure(t, cl.HasLoaded())

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, string(cl.Data), string(data))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
}

func TestLoadHash(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.GBC")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o600))

	cl := cartridgeloader.NewLoader(filename)
	test.ExpectSuccess(t, cl.HasRecognisedExtension())
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectFailure(t, cl.HasLoaded())

	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	test.ExpectSuccess(t, cl.Load())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	cl := cartridgeloader.NewLoader(filepath.Join(dir, "missing.gb"))
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))

	empty := filepath.Join(dir, "empty.txt")
	test.DemandSuccess(t, os.WriteFile(empty, nil, 0o600))
	cl = cartridgeloader.NewLoader(empty)
	test.ExpectFailure(t, cl.HasRecognisedExtension())
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.LoadError))

	cl = cartridgeloader.NewLoader("ftp://example.com/test.gb")
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.LoadError))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.gb" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/test.gb")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), string(data))

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.gb")
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.LoadError))
}
