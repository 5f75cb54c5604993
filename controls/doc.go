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

// Package controls is the table of logical controls shared between the host
// and the native core. The integer value of every ControlID is part of the
// contract with the core and must never change. New controls can only be
// appended to the end of the table.
//
// A ControlID belongs to one of three groups: the GameCube buttons and
// triggers, the GameCube sticks and the Wii remote. Each stick has a parent
// identifier followed by four directional identifiers in the order up, down,
// left, right.
//
// Analogue values are sent to the core with an AxisID. By convention the
// directional stick identifiers and the two triggers double as axis
// identifiers but the core is free to accept any AxisID and the router does
// not check them.
package controls
