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

package userinput

import (
	"github.com/jetsetilly/corebridge/controls"
)

// Event represents all the different type of events that can occur in the
// host's input capture.
type Event any

// EventButton is a digital control changing state.
type EventButton struct {
	Device string
	ID     controls.ControlID
	State  controls.ButtonState
}

// EventAxis is an analogue value for an axis.
type EventAxis struct {
	Device string
	Axis   controls.AxisID
	Value  float32
}

// EventTouch is a press and release of a control on the on-screen controls.
type EventTouch struct {
	ID controls.ControlID
}

// HandleUserInput forwards the event to the core through the Router. Returns
// true if the event was consumed by the core. Axis events are always
// consumed. Events of an unknown type are ignored and return false.
func (r *Router) HandleUserInput(ev Event) bool {
	switch ev := ev.(type) {
	case EventButton:
		return r.RouteButton(ev.Device, ev.ID, ev.State)
	case EventAxis:
		r.RouteAxis(ev.Device, ev.Axis, ev.Value)
		return true
	case EventTouch:
		handled := r.RouteButton(r.touchDevice, ev.ID, controls.Pressed)
		r.RouteButton(r.touchDevice, ev.ID, controls.Released)
		return handled
	}
	return false
}
