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

package regression

import (
	"bufio"
	"os"
	"strings"

	"github.com/gopheradvance/gopheradvance/curated"
)

// Load entries from the database file. Empty lines and lines beginning with
// a # are ignored.
func Load(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}
	defer f.Close()

	var entries []Entry

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		ent, err := deserialise(s)
		if err != nil {
			return nil, curated.Errorf("regression: line %d: %v", line, err)
		}
		entries = append(entries, ent)
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}

	return entries, nil
}

// Save entries to the database file, replacing the previous contents.
func Save(filename string, entries []Entry) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("regression: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	for _, ent := range entries {
		if strings.Contains(ent.Name, fieldSep) || strings.Contains(ent.Game, fieldSep) || strings.Contains(ent.Script, fieldSep) {
			return curated.Errorf("regression: entry fields cannot contain '%s' (%s)", fieldSep, ent.Name)
		}
		w.WriteString(ent.serialise())
		w.WriteString("\n")
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("regression: %v", err)
	}
	return nil
}
