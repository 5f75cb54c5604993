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

package userinput_test

import (
	"slices"
	"testing"

	"github.com/jetsetilly/corebridge/controls"
	"github.com/jetsetilly/corebridge/native/loopback"
	"github.com/jetsetilly/corebridge/test"
	"github.com/jetsetilly/corebridge/userinput"
)

func TestRouteButton(t *testing.T) {
	core := loopback.NewCore(loopback.AlertOnMissing)
	r := userinput.NewRouter(core)

	test.ExpectSuccess(t, r.RouteButton(userinput.TouchScreenDevice, controls.ButtonA, controls.Pressed))
	test.ExpectSuccess(t, r.RouteButton("pad0", controls.StickCLeft, controls.Released))

	// out of range identifiers are forwarded and the core decides
	test.ExpectFailure(t, r.RouteButton("pad0", controls.ControlID(500), controls.Pressed))

	calls := core.Calls()
	test.DemandEquality(t, len(calls), 3)
	test.ExpectEquality(t, calls[0].Device, "Touchscreen")
	test.ExpectEquality(t, calls[0].ID, 0)
	test.ExpectEquality(t, calls[0].Value, float32(1))
	test.ExpectEquality(t, calls[1].ID, 18)
	test.ExpectEquality(t, calls[1].Value, float32(0))
	test.ExpectEquality(t, calls[2].ID, 500)
}

// identical calls produce identical forwards. repeated presses are not
// suppressed
func TestStateless(t *testing.T) {
	core := loopback.NewCore(loopback.AlertOnMissing)
	r := userinput.NewRouter(core)

	for range 3 {
		r.RouteButton("pad0", controls.ButtonStart, controls.Pressed)
		r.RouteAxis("pad0", controls.StickMainUp.Axis(), 0.75)
	}

	calls := core.Calls()
	test.DemandEquality(t, len(calls), 6)
	for i := 2; i < len(calls); i++ {
		test.ExpectEquality(t, calls[i], calls[i-2])
	}
}

// digital stick directions and continuous values are forwarded independently
func TestStickDirectionsAndValues(t *testing.T) {
	core := loopback.NewCore(loopback.AlertOnMissing)
	r := userinput.NewRouter(core)

	r.RouteButton("pad0", controls.StickMainUp, controls.Pressed)
	r.RouteAxis("pad0", controls.StickMainUp.Axis(), 1.0)
	r.RouteAxis("pad0", controls.AxisID(1000), -3.5)

	calls := core.Calls()
	test.DemandEquality(t, len(calls), 3)
	test.ExpectEquality(t, calls[0].Kind, loopback.CallButton)
	test.ExpectEquality(t, calls[1].Kind, loopback.CallAxis)
	test.ExpectEquality(t, calls[2].ID, 1000)
	test.ExpectEquality(t, calls[2].Value, float32(-3.5))
}

func TestHandleUserInput(t *testing.T) {
	core := loopback.NewCore(loopback.AlertOnMissing)
	r := userinput.NewRouter(core)

	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventButton{
		Device: "pad0",
		ID:     controls.ButtonZ,
		State:  controls.Pressed,
	}))
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventAxis{
		Device: "pad0",
		Axis:   controls.TriggerL.Axis(),
		Value:  0.3,
	}))
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventTouch{ID: controls.WiimoteButtonHome}))
	test.ExpectFailure(t, r.HandleUserInput("not an event"))

	calls := core.Calls()
	test.DemandEquality(t, len(calls), 4)

	// a touch is a press followed by a release on the touchscreen
	test.ExpectEquality(t, calls[2].Device, userinput.TouchScreenDevice)
	test.ExpectEquality(t, calls[2].Value, float32(controls.Pressed))
	test.ExpectEquality(t, calls[3].Value, float32(controls.Released))
	test.ExpectSuccess(t, slices.Equal(core.Pressed(), []int{int(controls.ButtonZ)}))
}

func TestTouchDevice(t *testing.T) {
	core := loopback.NewCore(loopback.AlertOnMissing)
	r := userinput.NewRouter(core)

	r.SetTouchDevice("Touchpad")
	test.ExpectEquality(t, r.TouchDevice(), "Touchpad")
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventTouch{ID: controls.ButtonStart}))

	r.SetTouchDevice("")
	test.ExpectEquality(t, r.TouchDevice(), userinput.TouchScreenDevice)
	test.ExpectSuccess(t, r.HandleUserInput(userinput.EventTouch{ID: controls.ButtonStart}))

	calls := core.Calls()
	test.DemandEquality(t, len(calls), 4)
	test.ExpectEquality(t, calls[0].Device, "Touchpad")
	test.ExpectEquality(t, calls[1].Device, "Touchpad")
	test.ExpectEquality(t, calls[2].Device, userinput.TouchScreenDevice)
}
