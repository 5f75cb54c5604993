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

// Package native describes the capabilities of the native emulation core as
// seen from the host. The host binds the core to these interfaces (usually
// through cgo) and the rest of the application only ever talks to the core
// through them.
//
// The interfaces are deliberately small so that a component can ask only
// for what it uses. The userinput package needs Input, the session package
// needs Lifecycle, Snapshots and AlertSource. The Core interface composes
// everything.
//
// The loopback package is an in-process implementation of Core.
package native
