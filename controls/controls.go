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

package controls

import "fmt"

// ControlID identifies a logical control on an emulated controller.
type ControlID int

// List of logical controls. Values are fixed.
const (
	ButtonA ControlID = iota
	ButtonB
	ButtonStart
	ButtonX
	ButtonY
	ButtonZ
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight

	StickMain
	StickMainUp
	StickMainDown
	StickMainLeft
	StickMainRight
	StickC
	StickCUp
	StickCDown
	StickCLeft
	StickCRight

	TriggerL
	TriggerR

	WiimoteButtonA
	WiimoteButtonB
	WiimoteButtonMinus
	WiimoteButtonPlus
	WiimoteButtonHome
	WiimoteButton1
	WiimoteButton2
	WiimoteUp
	WiimoteDown
	WiimoteLeft
	WiimoteRight

	// NumControls is the number of entries in the table. It is not a control
	NumControls
)

// names are the identifiers of each control as they appear in the native
// core's headers. the index of the slice is the ControlID.
var names = [NumControls]string{
	"BUTTON_A",
	"BUTTON_B",
	"BUTTON_START",
	"BUTTON_X",
	"BUTTON_Y",
	"BUTTON_Z",
	"BUTTON_UP",
	"BUTTON_DOWN",
	"BUTTON_LEFT",
	"BUTTON_RIGHT",
	"STICK_MAIN",
	"STICK_MAIN_UP",
	"STICK_MAIN_DOWN",
	"STICK_MAIN_LEFT",
	"STICK_MAIN_RIGHT",
	"STICK_C",
	"STICK_C_UP",
	"STICK_C_DOWN",
	"STICK_C_LEFT",
	"STICK_C_RIGHT",
	"TRIGGER_L",
	"TRIGGER_R",
	"WIIMOTE_BUTTON_A",
	"WIIMOTE_BUTTON_B",
	"WIIMOTE_BUTTON_MINUS",
	"WIIMOTE_BUTTON_PLUS",
	"WIIMOTE_BUTTON_HOME",
	"WIIMOTE_BUTTON_1",
	"WIIMOTE_BUTTON_2",
	"WIIMOTE_UP",
	"WIIMOTE_DOWN",
	"WIIMOTE_LEFT",
	"WIIMOTE_RIGHT",
}

func (id ControlID) String() string {
	if id.Valid() {
		return names[id]
	}
	return fmt.Sprintf("CONTROL_%d", int(id))
}

// Valid returns true if the ControlID is in the table. Out of range values
// are still forwarded to the core; this is for presentation and for the
// reference core only.
func (id ControlID) Valid() bool {
	return id >= 0 && id < NumControls
}

// Parse returns the ControlID with the native name. The search is case
// sensitive.
func Parse(name string) (ControlID, bool) {
	for i, n := range names {
		if n == name {
			return ControlID(i), true
		}
	}
	return 0, false
}

// All returns every ControlID in table order.
func All() []ControlID {
	ids := make([]ControlID, NumControls)
	for i := range ids {
		ids[i] = ControlID(i)
	}
	return ids
}

// Group classifies a ControlID.
type Group int

// List of control groups.
const (
	GroupNone Group = iota
	GroupGameCubeButton
	GroupGameCubeStick
	GroupWiimote
)

func (g Group) String() string {
	switch g {
	case GroupGameCubeButton:
		return "GameCube button"
	case GroupGameCubeStick:
		return "GameCube stick"
	case GroupWiimote:
		return "Wii remote"
	}
	return "none"
}

// Group returns the group the ControlID belongs to. The triggers are in the
// GameCube button group.
func (id ControlID) Group() Group {
	switch {
	case id >= ButtonA && id <= ButtonRight:
		return GroupGameCubeButton
	case id >= StickMain && id <= StickCRight:
		return GroupGameCubeStick
	case id == TriggerL || id == TriggerR:
		return GroupGameCubeButton
	case id >= WiimoteButtonA && id <= WiimoteRight:
		return GroupWiimote
	}
	return GroupNone
}

// Direction of a stick or directional pad.
type Direction int

// List of directions in table order.
const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return ""
}

// IsStick returns true if the ControlID is the parent identifier of a stick.
func (id ControlID) IsStick() bool {
	return id == StickMain || id == StickC
}

// StickDirection returns the directional ControlID for a stick. The stick
// argument must be StickMain or StickC. Any other value returns false.
func StickDirection(stick ControlID, d Direction) (ControlID, bool) {
	if !stick.IsStick() || d < Up || d > Right {
		return 0, false
	}
	return stick + 1 + ControlID(d), true
}

// Stick returns the parent stick and direction of a directional stick
// identifier.
func (id ControlID) Stick() (ControlID, Direction, bool) {
	switch {
	case id > StickMain && id <= StickMainRight:
		return StickMain, Direction(id - StickMain - 1), true
	case id > StickC && id <= StickCRight:
		return StickC, Direction(id - StickC - 1), true
	}
	return 0, 0, false
}

// ButtonState is the state of a digital control.
type ButtonState int

// List of button states. There is no repeat or held state.
const (
	Released ButtonState = iota
	Pressed
)

func (s ButtonState) String() string {
	switch s {
	case Released:
		return "released"
	case Pressed:
		return "pressed"
	}
	return fmt.Sprintf("state %d", int(s))
}

// AxisID identifies an analogue input. The keyspace is not checked.
type AxisID int

// Axis returns the AxisID conventionally used for the analogue value of a
// ControlID. For the directional stick identifiers the value is the
// magnitude in that direction. For the triggers it is the pressure.
func (id ControlID) Axis() AxisID {
	return AxisID(id)
}

func (a AxisID) String() string {
	if ControlID(a).Valid() {
		return fmt.Sprintf("axis %s", ControlID(a))
	}
	return fmt.Sprintf("axis %d", int(a))
}
