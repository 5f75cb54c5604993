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

// Package sdlpad captures joystick input with SDL. Joystick events are
// translated by the gamepad package and given to a Handler as userinput
// events. Events are never queued, so a release always follows its press.
//
// SDL requires event polling to happen on the main thread so Service() must
// be called from the UI goroutine. Joysticks connected after Open() are
// picked up automatically. The name SDL gives a joystick is used as the
// device string.
package sdlpad
