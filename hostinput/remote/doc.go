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

// Package remote accepts controller input over a websocket. It is intended for
// on-screen controls running in a browser on another device.
//
// Each websocket message is a JSON object. A button message has a button and
// a state field and is answered with whether the core handled it:
//
//	{"device": "Touchscreen", "button": 0, "state": 1}
//	{"handled": true}
//
// An axis message has an axis and a value field and is not answered:
//
//	{"device": "Touchscreen", "axis": 11, "value": 0.5}
//
// The device field is optional and defaults to the touchscreen device.
// Malformed messages are answered with an error field.
package remote
