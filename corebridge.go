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
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/modalflag"
	"github.com/jetsetilly/corebridge/prefs"
	"github.com/jetsetilly/corebridge/uithread"
)

// SDL event handling must happen on the main thread.
func init() {
	runtime.LockOSThread()
}

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// HostCreator facilitates the creation, servicing and destruction of host
// resources that need to be run in the main thread.
type HostCreator interface {
	// Service() must not block. It is only called from the main thread.
	Service()

	// cleanup resources used by the host
	Destroy()
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (HostCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan HostCreator
	creationError chan error

	// work that must happen on the main thread
	loop *uithread.Loop
}

// capacity of the main thread work queue.
const workQueue = 64

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (HostCreator, error)),
		creation:      make(chan HostCreator),
		creationError: make(chan error),
		loop:          uithread.NewLoop(workQueue),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	tck := time.NewTicker(uithread.DefaultInterval)
	defer tck.Stop()

	done := false
	var host HostCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if host != nil {
				host.Destroy()
				host = nil
			}

			h, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				host = h
				sync.creation <- host
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if host != nil {
					host.Destroy()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-tck.C:
			sync.loop.Service()
			if host != nil {
				host.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate host creation and to quit.
func launch(sync *mainSync) {
	md := modalflag.NewModes(os.Stdout, os.Args[1:])
	cmdlinePrefs := md.AddString("prefs", "", "preference values for this run only (key::value; key::value)")
	md.AddSubModes("RUN", "PLAYBACK", "INFO", "CONFIG")

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

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "PLAYBACK":
		err = playback(md, sync)

	case "INFO":
		err = info(md)

	case "CONFIG":
		err = config(md)
	}

	if *cmdlinePrefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}
