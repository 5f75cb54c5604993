// This file is part of Corebridge.
//
// Corebridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Corebridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Corebridge.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jetsetilly/corebridge/hostinput/remote"
	"github.com/jetsetilly/corebridge/hostinput/sdlpad"
	"github.com/jetsetilly/corebridge/hostinput/termkeys"
	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/modalflag"
	"github.com/jetsetilly/corebridge/native"
	"github.com/jetsetilly/corebridge/native/loopback"
	"github.com/jetsetilly/corebridge/notifications"
	"github.com/jetsetilly/corebridge/paths"
	"github.com/jetsetilly/corebridge/performance"
	"github.com/jetsetilly/corebridge/preferences"
	"github.com/jetsetilly/corebridge/recorder"
	"github.com/jetsetilly/corebridge/session"
	"github.com/jetsetilly/corebridge/statsview"
	"github.com/jetsetilly/corebridge/userinput"
)

func loadPreferences() (*preferences.Preferences, error) {
	p, err := preferences.NewPreferences("")
	if err != nil {
		return nil, err
	}
	if err := p.ApplyEnvironment(nil); err != nil {
		return nil, err
	}
	return p, nil
}

// prepareCore creates the loopback core with its user directory and the
// session controller for it. Alerts raised while the user folders are created
// are presented to the listener.
func prepareCore(prf *preferences.Preferences, userDir string, listener notifications.Notify) (*loopback.Core, *session.Controller, error) {
	if userDir == "" {
		var err error
		userDir, err = paths.ResourcePath("user", "")
		if err != nil {
			return nil, nil, err
		}
	}

	core := loopback.NewCore(prf.Policy())
	core.SetUserDirectory(userDir)

	ctl := session.NewController(core)
	ctl.SetListener(listener)
	core.CreateUserFolders()

	return core, ctl, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	gamepads := md.AddBool("gamepad", true, "use SDL joysticks")
	remoteAddr := md.AddString("remote", "", "listen for remote input on `address` (overrides preference)")
	record := md.AddBool("record", false, "record user input to a transcript")
	userDir := md.AddString("userdir", "", "user directory of the core")
	log := md.AddBool("log", false, "echo log to stdout (overrides preference)")
	profile := md.AddBool("profile", false, "write core profiling results on exit")
	stats := md.AddBool("statsview", false, "run stats server (if available)")
	cpuProfile := md.AddString("cpuprofile", "", "write front end cpu profile to `file`")
	memProfile := md.AddString("memprofile", "", "write front end heap profile to `file` on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("disc image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	image := md.GetArg(0)

	prf, err := loadPreferences()
	if err != nil {
		return err
	}

	if *log || prf.EchoLog.Get().(bool) {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			fmt.Println("! stats server not available in this build")
		}
		stop := statsview.Launch(os.Stdout, statsview.DefaultAddress)
		defer stop()
	}

	// the interrupt signal ends the run gracefully
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	core, ctl, err := prepareCore(prf, *userDir, &printer{output: os.Stdout, end: cancel})
	if err != nil {
		return err
	}
	core.SetFilename(image)
	core.SetProfiling(*profile)
	sync.loop.AddService(ctl.Service)

	// input from the hosts goes through the recorder if requested
	var input native.Input = core
	if *record {
		transcript := paths.UniqueFilename("transcript", filepath.Base(image))
		rec, err := recorder.NewRecorder(transcript, image, core.GetVersionString(), core)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.End(); err != nil {
				logger.Log(logger.Allow, "recorder", err)
			}
			fmt.Printf("! recording written to %s\n", transcript)
		}()
		input = rec
	}

	router := userinput.NewRouter(input)
	router.SetTouchDevice(prf.TouchDevice.String())

	if *gamepads {
		deadzone := float32(prf.Deadzone.Get().(float64))
		sync.creator <- func() (HostCreator, error) {
			pads, err := sdlpad.Open(router, deadzone)
			if err != nil {
				return nil, err
			}
			pads.SetQuit(ctl.EndSession)
			return pads, nil
		}

		select {
		case <-sync.creation:
		case err := <-sync.creationError:
			// joysticks are optional
			logger.Log(logger.Allow, "corebridge", err)
		}
	}

	addr := prf.RemoteAddress.String()
	if *remoteAddr != "" {
		addr = *remoteAddr
	}
	if addr != "" {
		srv := remote.NewServer(router)
		go func() {
			if err := srv.ListenAndServe(ctx, addr); err != nil {
				logger.Log(logger.Allow, "remote", err)
				fmt.Printf("* %v\n", err)
			}
		}()
	}

	err = ctl.Start(terminalSurface)
	if err != nil {
		return err
	}

	r := &runner{
		ctl:    ctl,
		core:   core,
		loop:   sync.loop,
		router: router,
		output: os.Stdout,
		slot:   prf.DefaultSlot.Get().(int),
	}

	err = performance.ProfileCPU(*cpuProfile, func() error {
		trm, err := termkeys.Open(os.Stdin, os.Stdout)
		if err != nil {
			// not a terminal. run until interrupted or the session ends
			logger.Log(logger.Allow, "corebridge", err)
			<-ctx.Done()
			return nil
		}
		defer trm.Close()
		r.width = trm.Width()
		trm.Print("* running %s (? for help)\r\n", filepath.Base(image))
		return trm.Run(ctx, r.action)
	})
	if err != nil {
		return err
	}

	if ctl.State().Active() {
		if err := ctl.Stop(); err != nil {
			return err
		}
	}

	if *profile {
		core.WriteProfileResults()
	}

	if n := sync.loop.Dropped(); n > 0 {
		logger.Logf(logger.Allow, "corebridge", "%d terminal events dropped", n)
	}

	return performance.ProfileMem(*memProfile)
}

func playback(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	ignore := md.AddBool("ignore", false, "ignore mismatched results")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	plb, err := recorder.NewPlayback(md.GetArg(0))
	if err != nil {
		return err
	}

	prf, err := loadPreferences()
	if err != nil {
		return err
	}

	core, ctl, err := prepareCore(prf, "", &printer{output: os.Stdout})
	if err != nil {
		return err
	}
	core.SetFilename(plb.Image)

	if v := core.GetVersionString(); v != plb.CoreVersion {
		logger.Logf(logger.Allow, "playback", "recorded with %s, playing with %s", plb.CoreVersion, v)
	}

	sync.loop.AddService(ctl.Service)

	if err := ctl.Start(terminalSurface); err != nil {
		return err
	}

	router := userinput.NewRouter(core)
	router.SetTouchDevice(prf.TouchDevice.String())

	err = plb.Play(router, *ignore)
	if stopErr := ctl.Stop(); err == nil {
		err = stopErr
	}
	if err != nil {
		return err
	}

	fmt.Printf("! playback completed: %s\n", plb)
	return nil
}
