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
	"io"
	"strings"

	"github.com/jetsetilly/corebridge/govern"
	"github.com/jetsetilly/corebridge/hostinput/termkeys"
	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/native/loopback"
	"github.com/jetsetilly/corebridge/notifications"
	"github.com/jetsetilly/corebridge/preferences"
	"github.com/jetsetilly/corebridge/session"
	"github.com/jetsetilly/corebridge/uithread"
	"github.com/jetsetilly/corebridge/userinput"
)

// surface given to the core when a session is started from the terminal.
const terminalSurface = "terminal"

// printer writes alerts to the terminal and ends the run when the session
// ends. it is the listener of the session controller and is only called from
// the main thread.
type printer struct {
	output io.Writer
	end    context.CancelFunc
}

// Notify implements the notifications.Notify interface.
func (p *printer) Notify(notice notifications.Notice, detail string) error {
	switch notice {
	case notifications.NotifyAlert:
		fmt.Fprintf(p.output, "! %s\r\n", detail)
	case notifications.NotifyEndSession:
		fmt.Fprintf(p.output, "! session ended\r\n")
		if p.end != nil {
			p.end()
		}
	default:
		return fmt.Errorf("unhandled notice: %s", notice)
	}
	return nil
}

// runner handles the session commands issued from the terminal.
type runner struct {
	ctl    *session.Controller
	core   *loopback.Core
	output io.Writer

	// key events are routed on the main thread
	loop   *uithread.Loop
	router *userinput.Router

	slot int

	// columns in the terminal. zero if not known
	width int
}

func (r *runner) printf(pattern string, args ...any) {
	fmt.Fprintf(r.output, pattern+"\r\n", args...)
}

// action is called for every key that translates to a termkeys.Action.
func (r *runner) action(a termkeys.Action) {
	if a.Event != nil {
		ev := a.Event
		r.loop.Post(func() {
			r.router.HandleUserInput(ev)
		})
		return
	}

	var err error

	switch a.Command {
	case termkeys.CommandPause:
		if r.ctl.State() == govern.Paused {
			err = r.ctl.Resume()
		} else {
			err = r.ctl.Pause()
		}
		if err == nil {
			r.printf("* %s", r.ctl.State())
		}

	case termkeys.CommandSave:
		err = r.ctl.SaveState(r.slot)
		if err == nil {
			r.printf("* saved slot %d", r.slot)
		}

	case termkeys.CommandLoad:
		err = r.ctl.LoadState(r.slot)

	case termkeys.CommandSlotUp:
		r.slot = (r.slot + 1) % preferences.NumSlots
		r.printf("* slot %d", r.slot)

	case termkeys.CommandSlotDown:
		r.slot = (r.slot + preferences.NumSlots - 1) % preferences.NumSlots
		r.printf("* slot %d", r.slot)

	case termkeys.CommandScreenshot:
		r.core.SaveScreenShot()
		r.printf("* screenshot")

	case termkeys.CommandHelp:
		io.WriteString(r.output, help(r.width))

	case termkeys.CommandQuit:
		r.ctl.EndSession()
	}

	if err != nil {
		logger.Log(logger.Allow, "corebridge", err)
		r.printf("* %v", err)
	}
}

// help returns the key help with every line cut to the width. a width of zero
// or less returns the full help.
func help(width int) string {
	if width <= 0 {
		return keyHelp
	}
	var b strings.Builder
	for _, l := range strings.Split(strings.TrimSuffix(keyHelp, "\r\n"), "\r\n") {
		if len(l) > width {
			l = l[:width]
		}
		b.WriteString(l)
		b.WriteString("\r\n")
	}
	return b.String()
}

const keyHelp = "" +
	"  a b x y z      GameCube buttons\r\n" +
	"  return         start\r\n" +
	"  cursor keys    directional pad\r\n" +
	"  W A S D        main stick\r\n" +
	"  I J K L        C stick\r\n" +
	"  [ ]            triggers\r\n" +
	"  n m            Wii remote A and B\r\n" +
	"  - + h          Wii remote minus, plus and home\r\n" +
	"  1 2            Wii remote 1 and 2\r\n" +
	"  8 5 4 6        Wii remote directions\r\n" +
	"\r\n" +
	"  p              pause or resume\r\n" +
	"  s l            save or load state\r\n" +
	"  < >            change slot\r\n" +
	"  #              screenshot\r\n" +
	"  q              quit\r\n"
