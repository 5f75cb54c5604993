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

// Package session owns the lifecycle of an emulation session and relays
// alerts raised by the native core to the host.
//
// The Controller moves between the states defined in the govern package.
// Illegal requests, for example pausing a session that has not been started,
// are returned as curated errors and nothing is sent to the core. Faults
// inside the core are never returned as errors. They are raised as alerts.
//
// Alerts can be raised from any goroutine. The most recent alert is kept
// until the host clears it, and is presented to the listener registered
// with SetListener() the next time Service() is called from the UI
// goroutine. Only one presentation is ever waiting. A newer alert replaces
// one that has not yet been presented.
//
// The Controller uses two critical sections. One serialises lifecycle
// requests and the other protects the alert and the listener. The core is
// free to raise an alert from inside a lifecycle request.
package session
