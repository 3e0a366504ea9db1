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

package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/govern"
	"github.com/gopheradvance/gopheradvance/gui/otoaudio"
	"github.com/gopheradvance/gopheradvance/gui/sdlplay"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/hardware/clocks"
	"github.com/gopheradvance/gopheradvance/hardware/preferences"
	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/gopheradvance/gopheradvance/modalflag"
	"github.com/gopheradvance/gopheradvance/performance"
	"github.com/gopheradvance/gopheradvance/performance/limiter"
	"github.com/gopheradvance/gopheradvance/prefs"
	"github.com/gopheradvance/gopheradvance/regression"
	"github.com/gopheradvance/gopheradvance/resources"
	"github.com/gopheradvance/gopheradvance/screenshot"
	"github.com/gopheradvance/gopheradvance/script"
	"github.com/gopheradvance/gopheradvance/statsview"
	"github.com/gopheradvance/gopheradvance/version"
	"github.com/gopheradvance/gopheradvance/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including creation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

func init() {
	// SDL calls must be made from the thread that initialised SDL
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy()
				gui = nil
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	if gui != nil {
		gui.Destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "REGRESS", "SCRIPT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "REGRESS":
		err = regress(md)

	case "SCRIPT":
		err = runScript(md)

	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// newMachine creates the console with preferences from disk, overridden by
// the command line preferences string, and loads the BIOS and game.
func newMachine(md *modalflag.Modes, cmdlinePrefs string, bios string, game string) (*hardware.GBA, error) {
	prefs.PushCommandLineStack(cmdlinePrefs)
	p, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(md.Output, "* unused preferences: %s\n", unused)
	}
	if err != nil {
		return nil, err
	}

	gba, err := hardware.NewGBA(p)
	if err != nil {
		return nil, err
	}

	if bios != "" {
		if status := gba.LoadBIOS(bios); status != cartridgeloader.Ok {
			return nil, curated.Errorf("%s: %s", bios, status)
		}
	}

	if game != "" {
		if status := gba.LoadGame(game); status != cartridgeloader.Ok {
			return nil, curated.Errorf("%s: %s", game, status)
		}
	}

	return gba, nil
}

// window wraps the SDL window so that it satisfies the GuiCreator interface.
// the emulation goroutine polls the closed flag.
type window struct {
	scr    *sdlplay.SdlPlay
	closed atomic.Bool
}

func (win *window) Destroy() {
	win.scr.Destroy()
}

func (win *window) Service() {
	running, err := win.scr.Service()
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
	if !running {
		win.closed.Store(true)
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image")
	wav := md.AddString("wav", "", "record audio to wav file")
	shot := md.AddString("screenshot", "", "save the final frame to a PNG file")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until the window is closed")
	mute := md.AddBool("mute", false, "do not play audio")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "* statsview not available in this build")
		}
	}

	gba, err := newMachine(md, *cmdlinePrefs, *bios, md.GetArg(0))
	if err != nil {
		return err
	}

	scale := gba.Prefs.Scale.Get().(float64)

	win := &window{}
	sync.creator <- func() (GuiCreator, error) {
		scr, err := sdlplay.NewSdlPlay(version.Title(), scale)
		if err != nil {
			return nil, err
		}
		win.scr = scr
		return win, nil
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	gba.AddFrameRenderer(win.scr)

	if !*mute {
		ply, err := otoaudio.NewPlayer(gba.APU)
		if err != nil {
			logger.Log(logger.Allow, "run", err)
		} else {
			ply.Start()
			defer ply.Close()
		}
	}

	if *wav != "" {
		ww, err := wavwriter.New(*wav, gba.APU.SampleRate())
		if err != nil {
			return err
		}
		gba.AddAudioMixer(ww)
	}

	lim := limiter.NewFPSLimiter(clocks.FrameRate)
	defer lim.Stop()

	numFrames := *frames
	if numFrames <= 0 {
		numFrames = math.MaxInt
	}

	err = gba.RunForFrameCount(numFrames, func(_ int) (govern.State, error) {
		if win.closed.Load() {
			return govern.Ending, nil
		}
		lim.Wait()
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	if err := gba.APU.EndMixing(); err != nil {
		return err
	}

	if *shot != "" {
		if err := screenshot.Save(*shot, gba.PPU.Frame(), scale); err != nil {
			return err
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)")
	memviz := md.AddString("memviz", "", "write graphviz description of the DMA channels to file")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	gba, err := newMachine(md, *cmdlinePrefs, *bios, md.GetArg(0))
	if err != nil {
		return err
	}

	return performance.Check(md.Output, gba, prf, *duration, *memviz)
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	defaultDB, err := resources.JoinPath("regressionDB")
	if err != nil {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		db := md.AddString("db", defaultDB, "regression database")
		parallel := md.AddInt("parallel", runtime.NumCPU(), "number of entries to run at once")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		entries, err := regression.Load(*db)
		if err != nil {
			return err
		}

		_, err = regression.Run(md.Output, entries, *parallel)
		return err

	case "ADD":
		md.NewMode()
		db := md.AddString("db", defaultDB, "regression database")
		scr := md.AddString("script", "", "Lua script to run before the frames")
		mode := md.AddString("mode", "video", "digest mode: video, audio, both")
		frames := md.AddInt("frames", 10, "number of frames to run")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) != 2 {
			return curated.Errorf("%s mode requires a name and a game", md)
		}

		dm, err := regression.ParseDigestMode(*mode)
		if err != nil {
			return err
		}

		ent, err := regression.Generate(regression.Entry{
			Name:   md.GetArg(0),
			Game:   md.GetArg(1),
			Script: *scr,
			Mode:   dm,
			Frames: *frames,
		})
		if err != nil {
			return err
		}

		var entries []regression.Entry
		if _, err := os.Stat(*db); err == nil {
			entries, err = regression.Load(*db)
			if err != nil {
				return err
			}
		}
		entries = append(entries, ent)

		if err := regression.Save(*db, entries); err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "added: %s\n", ent)
	}

	return nil
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image")
	game := md.AddString("game", "", "game image")
	log := md.AddBool("log", false, "echo log to stdout")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("%s mode requires a script file", md)
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	gba, err := newMachine(md, *cmdlinePrefs, *bios, *game)
	if err != nil {
		return err
	}

	scr := script.NewScript(gba, md.Output)
	defer scr.Close()

	if err := scr.RunFile(md.GetArg(0)); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "digest: %s\n", scr.Digest())

	return nil
}
