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

package govern

// State indicates the emulation session's state.
type State int

// List of possible session states.
//
// Uninitialised is the default state. A session that has been Stopped can be
// started again, in which case it begins as a fresh session.
const (
	Uninitialised State = iota
	Running
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "Uninitialised"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	}
	return ""
}

// Active returns true if the session has been started and not yet stopped.
// Snapshots and pause/resume requests are only meaningful in an active
// session.
func (s State) Active() bool {
	return s == Running || s == Paused
}

// Transition checks whether a change from one state to another is legal.
//
// Rules:
//
//  1. Running can be entered from Uninitialised, Stopped or Paused
//
//  2. Paused can only be entered from Running
//
//  3. Stopped can be entered from Running or Paused
//
//  4. Uninitialised is never re-entered
//
// A "change" to the same state is not a transition and returns false.
func Transition(from State, to State) bool {
	switch to {
	case Running:
		return from == Uninitialised || from == Stopped || from == Paused
	case Paused:
		return from == Running
	case Stopped:
		return from.Active()
	}
	return false
}
