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

package otoaudio

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/hardware/apu"
	"github.com/gopheradvance/gopheradvance/logger"
)

// Player owns the oto context and the player reading from the APU.
type Player struct {
	ctx    *oto.Context
	player *oto.Player

	crit    sync.Mutex
	started bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The context is created at the sample rate of the APU. Only one oto context
// can exist for the lifetime of the program.
func NewPlayer(a *apu.APU) (*Player, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   a.SampleRate(),
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	ply := &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(NewReader(a.Ring)),
	}

	logger.Logf(logger.Allow, "otoaudio", "sample rate %d", a.SampleRate())

	return ply, nil
}

// Start playback.
func (ply *Player) Start() {
	ply.crit.Lock()
	defer ply.crit.Unlock()

	if !ply.started {
		ply.player.Play()
		ply.started = true
	}
}

// Close stops playback and releases the player.
func (ply *Player) Close() error {
	ply.crit.Lock()
	defer ply.crit.Unlock()

	ply.started = false
	if err := ply.player.Close(); err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}
