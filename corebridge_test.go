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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/corebridge/controls"
	"github.com/jetsetilly/corebridge/govern"
	"github.com/jetsetilly/corebridge/hostinput/termkeys"
	"github.com/jetsetilly/corebridge/native/loopback"
	"github.com/jetsetilly/corebridge/preferences"
	"github.com/jetsetilly/corebridge/session"
	"github.com/jetsetilly/corebridge/test"
	"github.com/jetsetilly/corebridge/uithread"
	"github.com/jetsetilly/corebridge/userinput"
)

func newRunner(t *testing.T) (*runner, *test.CompareWriter, *uithread.Loop) {
	t.Helper()

	core := loopback.NewCore(loopback.AlertOnMissing)
	ctl := session.NewController(core)
	test.DemandSuccess(t, ctl.Start(terminalSurface))

	out := &test.CompareWriter{}
	loop := uithread.NewLoop(workQueue)
	return &runner{
		ctl:    ctl,
		core:   core,
		loop:   loop,
		router: userinput.NewRouter(core),
		output: out,
	}, out, loop
}

func TestRunnerPause(t *testing.T) {
	r, out, _ := newRunner(t)

	r.action(termkeys.Action{Command: termkeys.CommandPause})
	test.ExpectEquality(t, r.ctl.State(), govern.Paused)
	r.action(termkeys.Action{Command: termkeys.CommandPause})
	test.ExpectEquality(t, r.ctl.State(), govern.Running)
	test.ExpectEquality(t, out.String(), "* Paused\r\n* Running\r\n")
}

func TestRunnerSlots(t *testing.T) {
	r, _, _ := newRunner(t)

	r.action(termkeys.Action{Command: termkeys.CommandSlotDown})
	test.ExpectEquality(t, r.slot, 9)
	r.action(termkeys.Action{Command: termkeys.CommandSlotUp})
	r.action(termkeys.Action{Command: termkeys.CommandSlotUp})
	test.ExpectEquality(t, r.slot, 1)

	r.action(termkeys.Action{Command: termkeys.CommandSave})
	_, ok := r.core.Digest(1)
	test.ExpectSuccess(t, ok)
	_, ok = r.core.Digest(0)
	test.ExpectFailure(t, ok)
}

func TestRunnerMissingSlot(t *testing.T) {
	r, _, _ := newRunner(t)
	r.slot = 4

	r.action(termkeys.Action{Command: termkeys.CommandLoad})
	test.ExpectSuccess(t, r.ctl.HasAlert())
	test.ExpectEquality(t, r.ctl.GetAlert(), "savestate slot 4 is empty")
}

func TestRunnerRejected(t *testing.T) {
	r, out, _ := newRunner(t)
	test.DemandSuccess(t, r.ctl.Stop())

	r.action(termkeys.Action{Command: termkeys.CommandSave})
	test.ExpectEquality(t, out.String(), "* session: cannot save state when Stopped\r\n")
}

func TestRunnerEvents(t *testing.T) {
	r, _, loop := newRunner(t)

	r.action(termkeys.Action{Event: userinput.EventTouch{ID: controls.ButtonA}})
	r.action(termkeys.Action{Command: termkeys.CommandScreenshot})
	test.ExpectEquality(t, len(r.core.Calls()), 0)
	test.ExpectEquality(t, r.core.Screenshots(), 1)

	// events reach the core when the main thread services the loop
	loop.Service()
	test.ExpectEquality(t, len(r.core.Calls()), 2)
	test.ExpectEquality(t, loop.Dropped(), int64(0))
}

func TestRunnerQuit(t *testing.T) {
	r, _, _ := newRunner(t)

	var ended bool
	out := &test.CompareWriter{}
	r.ctl.SetListener(&printer{output: out, end: func() { ended = true }})

	r.ctl.RaiseAlert("disc read error")
	r.action(termkeys.Action{Command: termkeys.CommandQuit})
	r.ctl.Service()

	test.ExpectSuccess(t, ended)
	test.ExpectSuccess(t, strings.Contains(out.String(), "! disc read error\r\n"))
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "! session ended\r\n"))
}

func TestWriteInfo(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "Wind Waker [GZLE01].iso")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 2048), 0o644))

	out := &test.CompareWriter{}
	writeInfo(out, loopback.NewCore(loopback.AlertOnMissing), fn)

	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, "title:       Wind Waker\n"))
	test.ExpectSuccess(t, strings.Contains(s, "game id:     GZLE01\n"))
	test.ExpectSuccess(t, strings.Contains(s, "country:     USA\n"))
	test.ExpectSuccess(t, strings.Contains(s, "company:     Nintendo\n"))
	test.ExpectSuccess(t, strings.Contains(s, "platform:    GameCube\n"))
	test.ExpectSuccess(t, strings.Contains(s, "filesize:    2048\n"))
	test.ExpectSuccess(t, strings.Contains(s, "banner:      none\n"))
}

func TestRunnerHelp(t *testing.T) {
	r, out, _ := newRunner(t)

	r.action(termkeys.Action{Command: termkeys.CommandHelp})
	test.ExpectEquality(t, out.String(), keyHelp)

	out.Clear()
	r.width = 12
	r.action(termkeys.Action{Command: termkeys.CommandHelp})
	lines := strings.Split(strings.TrimSuffix(out.String(), "\r\n"), "\r\n")
	test.ExpectEquality(t, len(lines), strings.Count(keyHelp, "\r\n"))
	test.ExpectEquality(t, lines[0], "  a b x y z ")
	for _, l := range lines {
		test.ExpectSuccess(t, len(l) <= 12, l)
	}
}

func TestPrepareCoreAlerts(t *testing.T) {
	dir := t.TempDir()
	prf, err := preferences.NewPreferences(filepath.Join(dir, "preferences"))
	test.DemandSuccess(t, err)

	// the user directory is below a regular file so the folders cannot be
	// created
	blocker := filepath.Join(dir, "file")
	test.DemandSuccess(t, os.WriteFile(blocker, nil, 0o644))

	out := &test.CompareWriter{}
	core, ctl, err := prepareCore(prf, filepath.Join(blocker, "user"), &printer{output: out})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, core.GetUserDirectory(), filepath.Join(blocker, "user"))
	test.ExpectSuccess(t, ctl.HasAlert())

	ctl.Service()
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "! "), out.String())
	test.ExpectSuccess(t, strings.Contains(out.String(), blocker), out.String())
}
