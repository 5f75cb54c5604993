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

// Package gamepad translates the buttons, hat and axes of a gamepad with the
// common "xbox" layout into userinput events.
//
//	A, B, X, Y          -> BUTTON_A, BUTTON_B, BUTTON_X, BUTTON_Y
//	right bumper        -> BUTTON_Z
//	start               -> BUTTON_START
//	left bumper         -> WIIMOTE_BUTTON_1
//	back                -> WIIMOTE_BUTTON_MINUS
//	guide               -> WIIMOTE_BUTTON_HOME
//	hat                 -> BUTTON_UP, BUTTON_DOWN, BUTTON_LEFT, BUTTON_RIGHT
//	left thumbstick     -> STICK_MAIN
//	right thumbstick    -> STICK_C
//	triggers            -> TRIGGER_L, TRIGGER_R
//
// Thumbstick movement is sent as analogue values on the axis of each
// directional stick control. The two directions of a thumbstick axis both
// receive the same signed value. In addition, the directional controls are
// pressed and released as the thumbstick moves in and out of the deadzone.
//
// Triggers are sent as an analogue value between zero and one and are
// pressed when the value is more than half.
package gamepad
