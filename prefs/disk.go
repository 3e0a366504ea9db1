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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gopheradvance/gopheradvance/curated"
)

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// KeySep separates the key from the value in a preferences file. It is also
// used on the command line.
const KeySep = "::"

// Sentinal error patterns.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	PrefsFileError = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]Pref

	// keys set from the command line stack. these are not changed by Load()
	commandLine map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:        path,
		entries:     make(map[string]Pref),
		commandLine: make(map[string]bool),
	}
	return dsk, nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s %s %s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to list of values to store/load from Disk. The key value
// is used to identify the value in the file. If the command line stack holds a
// value for the key then the preference is set to that value immediately.
func (dsk *Disk) Add(key string, p Pref) error {
	if strings.Contains(key, KeySep) {
		return curated.Errorf(PrefsFileError, fmt.Sprintf("key contains separator (%s)", key))
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
		dsk.commandLine[key] = true
	}

	return nil
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data := make(map[string]string)

	err := dsk.read(func(k, v string) error {
		data[k] = v
		return nil
	})
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsFileError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s %s %s\n", k, KeySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	return nil
}

// Load preference values from disk. Keys in the file that have not been added
// to this Disk instance are ignored, as are keys that were set from the
// command line. A missing file is not an error.
func (dsk *Disk) Load() error {
	err := dsk.read(func(k, v string) error {
		if dsk.commandLine[k] {
			return nil
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
		}
		return nil
	})
	if curated.Is(err, NoPrefsFile) {
		return nil
	}
	return err
}

func (dsk *Disk) read(f func(k, v string) error) error {
	fh, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf(PrefsFileError, err)
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)

	// check validity of file by checking the first line
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return curated.Errorf(PrefsFileError, fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), KeySep)
		if !ok {
			continue
		}
		if err := f(strings.TrimSpace(k), strings.TrimSpace(v)); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	return nil
}
