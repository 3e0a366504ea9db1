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
	"fmt"
	"strconv"
	"strings"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/digest"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/hardware/preferences"
	"github.com/gopheradvance/gopheradvance/script"
)

const fieldSep = ","

// the number of fields in a serialised entry.
const numFields = 6

// Entry is a single regression test.
type Entry struct {
	Name string

	// the game to load. can be empty, in which case the console runs without
	// a cartridge
	Game string

	// Lua script run before the frames. can be empty
	Script string

	Mode   DigestMode
	Frames int

	// the expected digest. empty when the entry is being created
	Digest string
}

func (ent Entry) String() string {
	s := fmt.Sprintf("[%s] %s frames=%d", ent.Mode, ent.Name, ent.Frames)
	if ent.Script != "" {
		s = fmt.Sprintf("%s script=%s", s, ent.Script)
	}
	return s
}

func (ent Entry) serialise() string {
	return strings.Join([]string{
		ent.Name,
		ent.Game,
		ent.Script,
		ent.Mode.String(),
		strconv.Itoa(ent.Frames),
		ent.Digest,
	}, fieldSep)
}

func deserialise(line string) (Entry, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != numFields {
		return Entry{}, curated.Errorf("regression: entry has %d fields", len(fields))
	}

	mode, err := ParseDigestMode(fields[3])
	if err != nil {
		return Entry{}, err
	}

	frames, err := strconv.Atoi(fields[4])
	if err != nil || frames < 0 {
		return Entry{}, curated.Errorf("regression: invalid frame count (%s)", fields[4])
	}

	return Entry{
		Name:   fields[0],
		Game:   fields[1],
		Script: fields[2],
		Mode:   mode,
		Frames: frames,
		Digest: fields[5],
	}, nil
}

// regress runs the entry on a new console and returns the digest of the
// output.
func (ent Entry) regress() (string, error) {
	gba, err := hardware.NewGBA(preferences.NewDefaultPreferences())
	if err != nil {
		return "", err
	}

	if ent.Game != "" {
		if status := gba.LoadGame(ent.Game); status != cartridgeloader.Ok {
			return "", curated.Errorf("regression: %s: %s", ent.Game, status)
		}
	}

	vid := digest.NewVideo()
	aud := digest.NewAudio()
	gba.AddFrameRenderer(vid)
	gba.AddAudioMixer(aud)

	if ent.Script != "" {
		scr := script.NewScript(gba, nil)
		defer scr.Close()
		if err := scr.RunFile(ent.Script); err != nil {
			return "", err
		}
	}

	if err := gba.RunForFrameCount(ent.Frames, nil); err != nil {
		return "", err
	}

	if err := gba.APU.EndMixing(); err != nil {
		return "", err
	}

	switch ent.Mode {
	case DigestAudioOnly:
		return aud.Hash(), nil
	case DigestBoth:
		return vid.Hash() + aud.Hash(), nil
	}
	return vid.Hash(), nil
}
