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

// Package userinput handles input from real hardware that the user of the
// emulator is using to control the emulated console.
//
// It is a translation layer between the host's input capture and the native
// core. Input arrives as a device descriptor with either a digital control
// and a button state or an analogue axis and a value. The Router forwards
// these to the core as they are. It does not validate identifiers, it does
// not remember what has been pressed and it does not combine or suppress
// events. Any of these would change what the core sees.
//
// Capture code can call the Router directly or build Event values and pass
// them to HandleUserInput(). The hostinput packages use the latter.
package userinput
