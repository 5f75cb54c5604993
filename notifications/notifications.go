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

package notifications

// Notice describes events that the host surface should present or act upon.
type Notice string

// List of defined notifications.
const (
	// an alert has been raised by the core. the detail string is the alert
	// message
	NotifyAlert Notice = "NotifyAlert"

	// the host surface should tear itself down. the session is not changed
	NotifyEndSession Notice = "NotifyEndSession"
)

// Notify is implemented by the host surface owner. The detail argument
// carries additional information for the notice and may be empty.
type Notify interface {
	Notify(notice Notice, detail string) error
}
