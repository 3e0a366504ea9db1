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

package preferences

import (
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/prefs"
	"github.com/gopheradvance/gopheradvance/resources"
)

// NoDisk is the error pattern returned by Load() and Save() for preferences
// that were created with NewDefaultPreferences().
const NoDisk = "preferences: not backed by a file"

// Preferences for the hardware.
type Preferences struct {
	dsk *prefs.Disk

	// rate at which the APU produces samples
	SampleRate prefs.Int

	// multiplier applied to the native resolution when the frame is shown or
	// saved
	Scale prefs.Float

	// size of the audio ring in stereo frames
	AudioBufferLength prefs.Int

	// request HBlank DMA during the hblank of vertical blank lines
	HBlankDMAInVBlank prefs.Bool

	// whether the hardware is allowed to add entries to the log
	Logging prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := NewDefaultPreferences()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key  string
		pref prefs.Pref
	}{
		{"hardware.apu.sampleRate", &p.SampleRate},
		{"hardware.video.scale", &p.Scale},
		{"hardware.apu.bufferLength", &p.AudioBufferLength},
		{"hardware.dma.hblankInVBlank", &p.HBlankDMAInVBlank},
		{"hardware.logging", &p.Logging},
	} {
		if err := p.dsk.Add(e.key, e.pref); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences returns preferences with default values that are not
// backed by a file.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.SampleRate.Set(48000)
	p.Scale.Set(3.0)
	p.AudioBufferLength.Set(4096)
	p.HBlankDMAInVBlank.Set(false)
	p.Logging.Set(true)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NoDisk)
	}
	return p.dsk.Load()
}

// Save hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NoDisk)
	}
	return p.dsk.Save()
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Logging.Get().(bool)
}
