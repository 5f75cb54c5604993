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
	"github.com/jetsetilly/corebridge/native"
)

// TouchScreenDevice is the device descriptor for the on-screen controls. The
// core treats it as always present.
const TouchScreenDevice = "Touchscreen"

// Router forwards input to the native core. The zero value is not usable, use
// NewRouter().
type Router struct {
	core        native.Input
	touchDevice string
}

// NewRouter is the preferred method of initialisation for the Router type.
func NewRouter(core native.Input) *Router {
	return &Router{
		core:        core,
		touchDevice: TouchScreenDevice,
	}
}

// SetTouchDevice changes the device descriptor used for EventTouch events.
// Must not be called while events are being handled. An empty string restores
// TouchScreenDevice.
func (r *Router) SetTouchDevice(device string) {
	if device == "" {
		device = TouchScreenDevice
	}
	r.touchDevice = device
}

// TouchDevice returns the device descriptor used for EventTouch events.
func (r *Router) TouchDevice() string {
	return r.touchDevice
}

// RouteButton forwards a digital control to the core and returns whether the
// core consumed it.
func (r *Router) RouteButton(device string, id controls.ControlID, state controls.ButtonState) bool {
	return r.core.GamePadEvent(device, int(id), int(state))
}

// RouteAxis forwards an analogue value to the core.
func (r *Router) RouteAxis(device string, axis controls.AxisID, value float32) {
	r.core.GamePadMoveEvent(device, int(axis), value)
}
