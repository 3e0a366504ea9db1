// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/test"
)

func writeFile(t *testing.T, name string, size int) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, size), 0600))
	return fn
}

func TestLoadBIOS(t *testing.T) {
	_, status := cartridgeloader.LoadBIOS(filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectEquality(t, status, cartridgeloader.BIOSNotFound)

	_, status = cartridgeloader.LoadBIOS(writeFile(t, "short.bin", 100))
	test.ExpectEquality(t, status, cartridgeloader.BIOSWrongSize)

	data, status := cartridgeloader.LoadBIOS(writeFile(t, "gba_bios.bin", cartridgeloader.BIOSSize))
	test.ExpectEquality(t, status, cartridgeloader.Ok)
	test.ExpectEquality(t, len(data), cartridgeloader.BIOSSize)
}

func TestLoadGame(t *testing.T) {
	_, status := cartridgeloader.LoadGame(filepath.Join(t.TempDir(), "missing.gba"))
	test.ExpectEquality(t, status, cartridgeloader.GameNotFound)

	_, status = cartridgeloader.LoadGame(writeFile(t, "empty.gba", 0))
	test.ExpectEquality(t, status, cartridgeloader.GameWrongSize)

	data, status := cartridgeloader.LoadGame(writeFile(t, "game.gba", 192))
	test.ExpectEquality(t, status, cartridgeloader.Ok)
	test.ExpectEquality(t, len(data), 192)
}

func TestStatusString(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.Ok.String(), "ok")
	test.ExpectEquality(t, cartridgeloader.GameWrongSize.String(), "game is the wrong size")
}

func TestHash(t *testing.T) {
	fn := writeFile(t, "game.gba", 16)
	cl := cartridgeloader.NewLoader(fn)
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(make([]byte, 16))))
	test.ExpectEquality(t, cl.ShortName(), "game")
	test.ExpectSuccess(t, cl.HasLoaded())

	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.gba" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{1, 2, 3, 4})
	}))
	defer srv.Close()

	data, status := cartridgeloader.LoadGame(srv.URL + "/game.gba")
	test.ExpectEquality(t, status, cartridgeloader.Ok)
	test.ExpectEquality(t, len(data), 4)

	_, status = cartridgeloader.LoadGame(srv.URL + "/missing.gba")
	test.ExpectEquality(t, status, cartridgeloader.GameNotFound)
}

func TestIsGameFile(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.IsGameFile("foo.gba"))
	test.ExpectSuccess(t, cartridgeloader.IsGameFile("FOO.Gba"))
	test.ExpectFailure(t, cartridgeloader.IsGameFile("foo.txt"))
}
