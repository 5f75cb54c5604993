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

// Package termkeys reads key presses from a terminal in cbreak mode and
// translates them into touchscreen input and session commands.
//
// Controls are pressed and released on the touchscreen device with a single
// key press. The key layout is:
//
//	a b x y z            GameCube buttons
//	return               start
//	cursor keys          directional pad
//	W A S D              main stick
//	I J K L              C stick
//	[ ]                  left and right triggers
//	n m                  Wii remote A and B
//	- + h                Wii remote minus, plus and home
//	1 2                  Wii remote 1 and 2
//	8 5 4 6              Wii remote directions
//
// Session commands are:
//
//	p                    pause or resume
//	s l                  save or load state in the current slot
//	< >                  change the current slot
//	#                    screenshot
//	?                    help
//	q                    quit
package termkeys
