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

package session

import (
	"sync"

	"github.com/jetsetilly/corebridge/curated"
	"github.com/jetsetilly/corebridge/govern"
	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/native"
	"github.com/jetsetilly/corebridge/notifications"
)

// InvalidRequest is the pattern for errors returned when a request is not
// possible in the current state.
const InvalidRequest = "session: cannot %s when %s"

// Core is the part of the native core that the Controller uses.
type Core interface {
	native.Lifecycle
	native.Snapshots
	native.AlertSource
}

// Controller implements the session lifecycle and the alert relay.
type Controller struct {
	core Core

	// lifecycle requests. the core is only ever called with this critical
	// section held
	lifecycle sync.Mutex
	state     govern.State
	surface   native.Surface
	instance  int

	// the alert and the listener
	crit     sync.Mutex
	message  string
	pending  bool
	listener notifications.Notify

	// presentations waiting for Service(). capacity of one
	alerts chan string
	end    chan struct{}
}

// NewController is the preferred method of initialisation for the Controller
// type. The Controller becomes the core's alert sink.
func NewController(core Core) *Controller {
	ctl := &Controller{
		core:   core,
		state:  govern.Uninitialised,
		alerts: make(chan string, 1),
		end:    make(chan struct{}, 1),
	}
	core.SetAlertSink(ctl)
	return ctl
}

// State returns the current state of the session.
func (ctl *Controller) State() govern.State {
	ctl.lifecycle.Lock()
	defer ctl.lifecycle.Unlock()
	return ctl.state
}

// Surface returns the surface bound to the current session. Returns nil if
// the session is not active.
func (ctl *Controller) Surface() native.Surface {
	ctl.lifecycle.Lock()
	defer ctl.lifecycle.Unlock()
	return ctl.surface
}

// Instance returns the number of sessions that have been started. A session
// that is started after it has been stopped is a new instance.
func (ctl *Controller) Instance() int {
	ctl.lifecycle.Lock()
	defer ctl.lifecycle.Unlock()
	return ctl.instance
}

// Start a new session with the surface. A stopped session can be started
// again. Starting a session that is running or paused is an error.
func (ctl *Controller) Start(surface native.Surface) error {
	ctl.lifecycle.Lock()
	defer ctl.lifecycle.Unlock()

	if ctl.state.Active() {
		return curated.Errorf(InvalidRequest, "start", ctl.state)
	}

	if ctl.state == govern.Stopped {
		ctl.state = govern.Uninitialised
	}
	ctl.instance++

	ctl.surface = surface
	ctl.core.Run(surface)
	ctl.state = govern.Running

	logger.Logf(logger.Allow, "session", "started instance %d", ctl.instance)
	return nil
}

// Pause a running session. Pausing a paused session does nothing.
func (ctl *Controller) Pause() error {
	ctl.lifecycle.Lock()
	defer ctl.lifecycle.Unlock()

	switch ctl.state {
	case govern.Paused:
		return nil
	case govern.Running:
		ctl.core.PauseEmulation()
		ctl.state = govern.Paused
		return nil
	}
	return curated.Errorf(InvalidRequest, "pause", ctl.state)
}

// Resume a paused session. Resuming a running session does nothing.
func (ctl *Controller) Resume() error {
	ctl.lifecycle.Lock()
	defer ctl.lifecycle.Unlock()

	switch ctl.state {
	case govern.Running:
		return nil
	case govern.Paused:
		ctl.core.UnPauseEmulation()
		ctl.state = govern.Running
		return nil
	}
	return curated.Errorf(InvalidRequest, "resume", ctl.state)
}

// Stop a running or paused session. The surface is released but the
// listener is kept.
func (ctl *Controller) Stop() error {
	ctl.lifecycle.Lock()
	defer ctl.lifecycle.Unlock()

	if !govern.Transition(ctl.state, govern.Stopped) {
		return curated.Errorf(InvalidRequest, "stop", ctl.state)
	}

	ctl.core.StopEmulation()
	ctl.surface = nil
	ctl.state = govern.Stopped

	logger.Logf(logger.Allow, "session", "stopped instance %d", ctl.instance)
	return nil
}

// SaveState asks the core to save a snapshot in the slot. Any existing
// snapshot in the slot is replaced.
func (ctl *Controller) SaveState(slot int) error {
	ctl.lifecycle.Lock()
	defer ctl.lifecycle.Unlock()

	if !ctl.state.Active() {
		return curated.Errorf(InvalidRequest, "save state", ctl.state)
	}
	ctl.core.SaveState(slot)
	return nil
}

// LoadState asks the core to restore the snapshot in the slot. A missing
// snapshot is not an error. The core reports it as an alert.
func (ctl *Controller) LoadState(slot int) error {
	ctl.lifecycle.Lock()
	defer ctl.lifecycle.Unlock()

	if !ctl.state.Active() {
		return curated.Errorf(InvalidRequest, "load state", ctl.state)
	}
	ctl.core.LoadState(slot)
	return nil
}
