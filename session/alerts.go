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
	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/notifications"
)

// SetListener registers the host surface owner. Any previous listener is
// replaced without being told.
func (ctl *Controller) SetListener(listener notifications.Notify) {
	ctl.crit.Lock()
	defer ctl.crit.Unlock()
	ctl.listener = listener
}

// RaiseAlert implements the native.AlertSink interface. It is safe to call
// from any goroutine, including from inside a call to the core.
//
// The message replaces any existing alert. If a listener is registered the
// alert is queued for presentation by Service().
func (ctl *Controller) RaiseAlert(message string) {
	logger.Log(logger.Allow, "alert", message)

	ctl.crit.Lock()
	defer ctl.crit.Unlock()

	ctl.message = message
	ctl.pending = true

	// posting inside the critical section keeps the waiting presentation
	// the same as the buffered message
	if ctl.listener != nil {
		overwrite(ctl.alerts, message)
	}
}

// overwrite sends the value on a channel with a capacity of one. a value
// already in the channel is discarded.
func overwrite[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// HasAlert returns true if there is an alert that has not been cleared.
func (ctl *Controller) HasAlert() bool {
	ctl.crit.Lock()
	defer ctl.crit.Unlock()
	return ctl.pending
}

// GetAlert returns the most recent alert message. The message is still
// returned after the alert has been cleared.
func (ctl *Controller) GetAlert() string {
	ctl.crit.Lock()
	defer ctl.crit.Unlock()
	return ctl.message
}

// ClearAlert marks the alert as dealt with.
func (ctl *Controller) ClearAlert() {
	ctl.crit.Lock()
	defer ctl.crit.Unlock()
	ctl.pending = false
}

// EndSession asks the listener to tear itself down. The request is delivered
// by Service(). The state of the session is not changed.
func (ctl *Controller) EndSession() {
	select {
	case ctl.end <- struct{}{}:
	default:
	}
}

// Service delivers waiting presentations to the listener registered at the
// time of delivery. It must be called from the UI goroutine and it never
// blocks.
func (ctl *Controller) Service() {
	select {
	case message := <-ctl.alerts:
		ctl.notify(notifications.NotifyAlert, message)
	default:
	}

	select {
	case <-ctl.end:
		ctl.notify(notifications.NotifyEndSession, "")
	default:
	}
}

func (ctl *Controller) notify(notice notifications.Notice, detail string) {
	ctl.crit.Lock()
	listener := ctl.listener
	ctl.crit.Unlock()

	if listener == nil {
		return
	}

	if err := listener.Notify(notice, detail); err != nil {
		logger.Logf(logger.Allow, "session", "%s: %v", notice, err)
	}
}
