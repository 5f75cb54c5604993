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

package gamepad

import (
	"github.com/jetsetilly/corebridge/controls"
	"github.com/jetsetilly/corebridge/userinput"
)

// DefaultDeadzone is the fraction of the thumbstick range that is ignored when
// deciding whether a direction is pressed.
const DefaultDeadzone = 0.3

// list of button indexes.
const (
	ButtonA = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBumperLeft
	ButtonBumperRight
	ButtonBack
	ButtonStart
	ButtonGuide
)

var buttons = map[int]controls.ControlID{
	ButtonA:           controls.ButtonA,
	ButtonB:           controls.ButtonB,
	ButtonX:           controls.ButtonX,
	ButtonY:           controls.ButtonY,
	ButtonBumperLeft:  controls.WiimoteButton1,
	ButtonBumperRight: controls.ButtonZ,
	ButtonBack:        controls.WiimoteButtonMinus,
	ButtonStart:       controls.ButtonStart,
	ButtonGuide:       controls.WiimoteButtonHome,
}

// list of axis indexes.
const (
	AxisLeftX = iota
	AxisLeftY
	AxisTriggerLeft
	AxisRightX
	AxisRightY
	AxisTriggerRight
)

// hat values are bit fields
const (
	HatUp    = 0x01
	HatRight = 0x02
	HatDown  = 0x04
	HatLeft  = 0x08
)

// Mapper translates the input of one gamepad. The state of the hat,
// thumbsticks and triggers is remembered so that presses and releases are
// only sent when they change.
type Mapper struct {
	device   string
	deadzone float32
	pressed  map[controls.ControlID]bool
}

// NewMapper is the preferred method of initialisation for the Mapper type.
// The device string identifies the gamepad to the core. The deadzone is a
// fraction of the thumbstick range.
func NewMapper(device string, deadzone float32) *Mapper {
	return &Mapper{
		device:   device,
		deadzone: deadzone,
		pressed:  make(map[controls.ControlID]bool),
	}
}

// Device returns the device string given to NewMapper().
func (m *Mapper) Device() string {
	return m.device
}

func (m *Mapper) button(id controls.ControlID, state controls.ButtonState) userinput.Event {
	return userinput.EventButton{Device: m.device, ID: id, State: state}
}

func (m *Mapper) axis(id controls.ControlID, value float32) userinput.Event {
	return userinput.EventAxis{Device: m.device, Axis: id.Axis(), Value: value}
}

// change the pressed state of a control. returns an event only if the state
// has changed
func (m *Mapper) change(id controls.ControlID, pressed bool) []userinput.Event {
	if m.pressed[id] == pressed {
		return nil
	}
	m.pressed[id] = pressed
	if pressed {
		return []userinput.Event{m.button(id, controls.Pressed)}
	}
	return []userinput.Event{m.button(id, controls.Released)}
}

// Button translates a gamepad button. Unknown buttons produce no events.
func (m *Mapper) Button(button int, down bool) []userinput.Event {
	id, ok := buttons[button]
	if !ok {
		return nil
	}
	return m.change(id, down)
}

// Hat translates the hat value into presses and releases of the directional
// pad.
func (m *Mapper) Hat(value uint8) []userinput.Event {
	var events []userinput.Event
	events = append(events, m.change(controls.ButtonUp, value&HatUp == HatUp)...)
	events = append(events, m.change(controls.ButtonDown, value&HatDown == HatDown)...)
	events = append(events, m.change(controls.ButtonLeft, value&HatLeft == HatLeft)...)
	events = append(events, m.change(controls.ButtonRight, value&HatRight == HatRight)...)
	return events
}

// Normalise a signed axis value to the range -1 to 1.
func Normalise(value int16) float32 {
	if value < 0 {
		return float32(value) / 32768
	}
	return float32(value) / 32767
}

// Axis translates the value of a gamepad axis. Unknown axes produce no events.
func (m *Mapper) Axis(axis int, value int16) []userinput.Event {
	switch axis {
	case AxisLeftX:
		return m.stick(controls.StickMain, controls.Left, controls.Right, Normalise(value))
	case AxisLeftY:
		return m.stick(controls.StickMain, controls.Up, controls.Down, Normalise(value))
	case AxisRightX:
		return m.stick(controls.StickC, controls.Left, controls.Right, Normalise(value))
	case AxisRightY:
		return m.stick(controls.StickC, controls.Up, controls.Down, Normalise(value))
	case AxisTriggerLeft:
		return m.trigger(controls.TriggerL, value)
	case AxisTriggerRight:
		return m.trigger(controls.TriggerR, value)
	}
	return nil
}

// stick sends the value to both directions of the thumbstick axis. neg is the
// direction for negative values
func (m *Mapper) stick(stick controls.ControlID, neg controls.Direction, pos controls.Direction, v float32) []userinput.Event {
	negID, _ := controls.StickDirection(stick, neg)
	posID, _ := controls.StickDirection(stick, pos)

	events := []userinput.Event{
		m.axis(negID, v),
		m.axis(posID, v),
	}
	events = append(events, m.change(negID, v < -m.deadzone)...)
	events = append(events, m.change(posID, v > m.deadzone)...)
	return events
}

// triggers rest at the bottom of the range
func (m *Mapper) trigger(id controls.ControlID, value int16) []userinput.Event {
	v := (float32(value) + 32768) / 65535
	events := []userinput.Event{m.axis(id, v)}
	return append(events, m.change(id, v > 0.5)...)
}

// Release returns events that release every control that is currently
// pressed. Used when a gamepad is disconnected.
func (m *Mapper) Release() []userinput.Event {
	var events []userinput.Event
	for _, id := range controls.All() {
		if m.pressed[id] {
			events = append(events, m.change(id, false)...)
		}
	}
	return events
}
