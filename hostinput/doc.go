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

// Package hostinput is the parent of the packages that capture input from
// the host machine. Each package produces userinput.Event values for the
// userinput.Router.
//
// The gamepad package translates gamepad buttons, hats and axes. The sdlpad
// package polls SDL for joystick events and uses the gamepad package for
// translation. The termkeys package reads keys from the terminal and the
// remote package accepts input over a websocket.
package hostinput
