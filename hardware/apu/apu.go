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

package apu

import (
	"github.com/gopheradvance/gopheradvance/hardware/clocks"
	"github.com/gopheradvance/gopheradvance/hardware/dma"
	"github.com/gopheradvance/gopheradvance/hardware/scheduler"
	"github.com/gopheradvance/gopheradvance/logger"
)

// number of stereo frames collected before they are sent to the ring and
// the mixers.
const batchFrames = 128

// Scheduler is the part of the scheduler used by the APU.
type Scheduler interface {
	Add(delay int, tag scheduler.Tag, payload int) scheduler.Handle
	Cancel(h scheduler.Handle)
}

// DMA is the part of the DMA controller used by the APU.
type DMA interface {
	Request(occasion dma.Occasion)
}

// AudioMixer implementations receive every batch of mixed samples. Samples are
// interleaved stereo in the range -1.0 to 1.0. The slice is reused so
// implementations must copy anything they want to keep.
type AudioMixer interface {
	SetAudio(samples []float32) error

	// the mixer should be considered unusable after EndMixing() has been
	// called
	EndMixing() error
}

// DirectSound is one of the two direct sound channels.
type DirectSound struct {
	FIFO FIFO

	// the sample currently being output
	Latch int8

	FullVolume bool
	Right      bool
	Left       bool

	// the timer that clocks the FIFO
	Timer int
}

// APU is the direct sound part of the audio processing unit.
type APU struct {
	log   logger.Permission
	sched Scheduler
	dma   DMA

	Ring *Ring

	Channels [2]DirectSound

	// SOUNDCNT_H bits 0-1
	PSGVolume int

	MasterEnable bool

	// SOUNDBIAS
	Bias       uint16
	Resolution int

	// SOUNDCNT_L and the tone/noise channel registers are stored but not
	// acted upon
	soundcntL [2]uint8
	psg       [0x20]uint8
	waveRAM   [0x10]uint8

	sampleRate int
	period     int
	event      scheduler.Handle

	batch  []float32
	mixers []AudioMixer
}

// NewAPU is the preferred method of initialisation for the APU type. The
// sample rate is in Hz and the ring size in stereo frames.
func NewAPU(log logger.Permission, sched Scheduler, dma DMA, sampleRate int, ringFrames int) *APU {
	apu := &APU{
		log:        log,
		sched:      sched,
		dma:        dma,
		Ring:       NewRing(ringFrames),
		sampleRate: max(sampleRate, 1),
		batch:      make([]float32, 0, batchFrames*2),
	}
	apu.period = max(clocks.CyclesPerSecond/apu.sampleRate, 1)
	apu.Reset()
	return apu
}

// Reset the APU. Queued samples are discarded and the sample event is added
// to the scheduler. The scheduler should be reset before the APU.
func (apu *APU) Reset() {
	for i := range apu.Channels {
		apu.Channels[i] = DirectSound{}
	}
	apu.PSGVolume = 0
	apu.MasterEnable = false
	apu.Bias = 0x200
	apu.Resolution = 0
	apu.soundcntL = [2]uint8{}
	clear(apu.psg[:])
	clear(apu.waveRAM[:])
	apu.batch = apu.batch[:0]
	apu.Ring.Reset()

	apu.sched.Cancel(apu.event)
	apu.event = apu.sched.Add(apu.period, scheduler.TagAPU, 0)
}

// SampleRate returns the rate at which samples are produced.
func (apu *APU) SampleRate() int {
	return apu.sampleRate
}

// AddAudioMixer adds a mixer to the list of mixers.
func (apu *APU) AddAudioMixer(m AudioMixer) {
	apu.mixers = append(apu.mixers, m)
}

// EndMixing flushes the current batch and calls EndMixing() on every mixer.
// Mixers are removed from the APU.
func (apu *APU) EndMixing() error {
	apu.Flush()

	var err error
	for _, m := range apu.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	apu.mixers = apu.mixers[:0]
	return err
}

// WriteFIFO adds a sample to one of the direct sound FIFOs.
func (apu *APU) WriteFIFO(channel int, value uint8) {
	apu.Channels[channel].FIFO.Push(int8(value))
}

// OnTimerOverflow implements the timer.OverflowListener interface.
func (apu *APU) OnTimerOverflow(id int) {
	if !apu.MasterEnable {
		return
	}

	for i := range apu.Channels {
		ch := &apu.Channels[i]
		if ch.Timer != id {
			continue
		}

		if v, ok := ch.FIFO.Pop(); ok {
			ch.Latch = v
		}

		if ch.FIFO.Len() <= fifoRefill {
			if i == 0 {
				apu.dma.Request(dma.OccasionFIFO0)
			} else {
				apu.dma.Request(dma.OccasionFIFO1)
			}
		}
	}
}

// HandleEvent implements the scheduler.Handler interface. A sample is mixed
// every time the event fires.
func (apu *APU) HandleEvent(_ int, cyclesLate int) {
	left, right := apu.mix()
	apu.batch = append(apu.batch, left, right)
	if len(apu.batch) >= batchFrames*2 {
		apu.Flush()
	}
	apu.event = apu.sched.Add(apu.period-cyclesLate, scheduler.TagAPU, 0)
}

// Flush sends mixed samples that are waiting in the current batch to the ring
// and the mixers.
func (apu *APU) Flush() {
	if len(apu.batch) == 0 {
		return
	}

	apu.Ring.Write(apu.batch)
	for _, m := range apu.mixers {
		if err := m.SetAudio(apu.batch); err != nil {
			logger.Log(apu.log, "apu", err)
		}
	}
	apu.batch = apu.batch[:0]
}

// mix the direct sound latches into a stereo sample.
func (apu *APU) mix() (float32, float32) {
	if !apu.MasterEnable {
		return 0, 0
	}

	var left, right float32
	for i := range apu.Channels {
		ch := &apu.Channels[i]
		s := float32(ch.Latch) / 128
		if !ch.FullVolume {
			s /= 2
		}
		if ch.Left {
			left += s
		}
		if ch.Right {
			right += s
		}
	}

	return clamp(left), clamp(right)
}

func clamp(v float32) float32 {
	return min(max(v, -1), 1)
}
