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

package remote

import (
	"github.com/jetsetilly/corebridge/controls"
	"github.com/jetsetilly/corebridge/curated"
	"github.com/jetsetilly/corebridge/userinput"
)

// Message is a single input message from a client.
type Message struct {
	Device string   `json:"device,omitempty"`
	Button *int     `json:"button,omitempty"`
	State  *int     `json:"state,omitempty"`
	Axis   *int     `json:"axis,omitempty"`
	Value  *float32 `json:"value,omitempty"`
}

// Reply is sent to the client in answer to a button message or a malformed
// message.
type Reply struct {
	Handled bool   `json:"handled"`
	Error   string `json:"error,omitempty"`
}

// MalformedMessage is the pattern for errors returned by Event().
const MalformedMessage = "remote: malformed message: %s"

// Event converts the message to a userinput event. Messages without a device
// are given the touchDevice.
func (m Message) Event(touchDevice string) (userinput.Event, error) {
	device := m.Device
	if device == "" {
		device = touchDevice
	}

	switch {
	case m.Button != nil && m.Axis != nil:
		return nil, curated.Errorf(MalformedMessage, "both button and axis")
	case m.Button != nil:
		if m.State == nil {
			return nil, curated.Errorf(MalformedMessage, "button without state")
		}
		return userinput.EventButton{
			Device: device,
			ID:     controls.ControlID(*m.Button),
			State:  controls.ButtonState(*m.State),
		}, nil
	case m.Axis != nil:
		if m.Value == nil {
			return nil, curated.Errorf(MalformedMessage, "axis without value")
		}
		return userinput.EventAxis{
			Device: device,
			Axis:   controls.AxisID(*m.Axis),
			Value:  *m.Value,
		}, nil
	}

	return nil, curated.Errorf(MalformedMessage, "no button or axis")
}
