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

// Package preferences collates the preference values used by the corebridge
// front end. Values are stored on disk with the prefs package and can be
// overridden for a single run by environment variables prefixed with
// COREBRIDGE_, or by the -prefs command line argument.
//
// Environment variables recognised:
//
//	COREBRIDGE_TOUCH_DEVICE       device name given to touch events
//	COREBRIDGE_ECHO_LOG           echo log entries to the terminal
//	COREBRIDGE_MISSING_SLOT       "alert" or "ignore"
//	COREBRIDGE_SLOT               savestate slot selected at startup
//	COREBRIDGE_DEADZONE           gamepad stick deadzone (0.0 to 1.0)
//	COREBRIDGE_REMOTE_ADDRESS     address of the remote input server
package preferences
