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

package gamepad_test

import (
	"testing"

	"github.com/jetsetilly/corebridge/controls"
	"github.com/jetsetilly/corebridge/hostinput/gamepad"
	"github.com/jetsetilly/corebridge/native/loopback"
	"github.com/jetsetilly/corebridge/test"
	"github.com/jetsetilly/corebridge/userinput"
)

func button(id controls.ControlID, state controls.ButtonState) userinput.Event {
	return userinput.EventButton{Device: "pad", ID: id, State: state}
}

func axis(id controls.ControlID, value float32) userinput.Event {
	return userinput.EventAxis{Device: "pad", Axis: id.Axis(), Value: value}
}

func expectEvents(t *testing.T, got []userinput.Event, expected ...userinput.Event) {
	t.Helper()
	if !test.ExpectEquality(t, len(got), len(expected)) {
		return
	}
	for i := range got {
		test.ExpectEquality(t, got[i], expected[i], i)
	}
}

func TestButtons(t *testing.T) {
	m := gamepad.NewMapper("pad", gamepad.DefaultDeadzone)
	test.ExpectEquality(t, m.Device(), "pad")

	expectEvents(t, m.Button(gamepad.ButtonA, true), button(controls.ButtonA, controls.Pressed))
	expectEvents(t, m.Button(gamepad.ButtonBumperRight, true), button(controls.ButtonZ, controls.Pressed))
	expectEvents(t, m.Button(gamepad.ButtonGuide, true), button(controls.WiimoteButtonHome, controls.Pressed))

	// repeated press produces nothing
	expectEvents(t, m.Button(gamepad.ButtonA, true))
	expectEvents(t, m.Button(gamepad.ButtonA, false), button(controls.ButtonA, controls.Released))

	// unknown button
	expectEvents(t, m.Button(20, true))
}

func TestHat(t *testing.T) {
	m := gamepad.NewMapper("pad", gamepad.DefaultDeadzone)

	expectEvents(t, m.Hat(gamepad.HatUp), button(controls.ButtonUp, controls.Pressed))
	expectEvents(t, m.Hat(gamepad.HatUp|gamepad.HatLeft), button(controls.ButtonLeft, controls.Pressed))
	expectEvents(t, m.Hat(gamepad.HatDown),
		button(controls.ButtonUp, controls.Released),
		button(controls.ButtonDown, controls.Pressed),
		button(controls.ButtonLeft, controls.Released),
	)
	expectEvents(t, m.Hat(0), button(controls.ButtonDown, controls.Released))
}

func TestThumbstick(t *testing.T) {
	m := gamepad.NewMapper("pad", 0.5)

	// inside the deadzone only the analogue values are sent
	expectEvents(t, m.Axis(gamepad.AxisLeftX, 0),
		axis(controls.StickMainLeft, 0),
		axis(controls.StickMainRight, 0),
	)

	expectEvents(t, m.Axis(gamepad.AxisLeftX, -32768),
		axis(controls.StickMainLeft, -1),
		axis(controls.StickMainRight, -1),
		button(controls.StickMainLeft, controls.Pressed),
	)

	expectEvents(t, m.Axis(gamepad.AxisRightY, 32767),
		axis(controls.StickCUp, 1),
		axis(controls.StickCDown, 1),
		button(controls.StickCDown, controls.Pressed),
	)

	// moving from one extreme to the other releases and presses
	expectEvents(t, m.Axis(gamepad.AxisLeftX, 32767),
		axis(controls.StickMainLeft, 1),
		axis(controls.StickMainRight, 1),
		button(controls.StickMainLeft, controls.Released),
		button(controls.StickMainRight, controls.Pressed),
	)

	expectEvents(t, m.Release(),
		button(controls.StickMainRight, controls.Released),
		button(controls.StickCDown, controls.Released),
	)
	expectEvents(t, m.Release())
}

func TestTriggers(t *testing.T) {
	m := gamepad.NewMapper("pad", gamepad.DefaultDeadzone)

	expectEvents(t, m.Axis(gamepad.AxisTriggerLeft, -32768), axis(controls.TriggerL, 0))
	expectEvents(t, m.Axis(gamepad.AxisTriggerRight, 32767),
		axis(controls.TriggerR, 1),
		button(controls.TriggerR, controls.Pressed),
	)

	// unknown axis
	expectEvents(t, m.Axis(10, 100))
}

func TestNormalise(t *testing.T) {
	test.ExpectEquality(t, gamepad.Normalise(-32768), float32(-1))
	test.ExpectEquality(t, gamepad.Normalise(32767), float32(1))
	test.ExpectEquality(t, gamepad.Normalise(0), float32(0))
	test.ExpectApproximate(t, gamepad.Normalise(16384), float32(0.5), 0.001)
}

func TestReleaseAfterStickMotion(t *testing.T) {
	core := loopback.NewCore(loopback.AlertOnMissing)
	router := userinput.NewRouter(core)
	m := gamepad.NewMapper("pad", gamepad.DefaultDeadzone)

	route := func(events []userinput.Event) {
		for _, ev := range events {
			router.HandleUserInput(ev)
		}
	}

	route(m.Button(gamepad.ButtonA, true))
	for i := range 40 {
		route(m.Axis(gamepad.AxisLeftX, int16(i*800-16000)))
	}
	route(m.Axis(gamepad.AxisLeftX, 0))
	route(m.Button(gamepad.ButtonA, false))

	test.ExpectEquality(t, len(core.Pressed()), 0)

	// releasing again produces nothing
	expectEvents(t, m.Button(gamepad.ButtonA, false))
}
