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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/corebridge/govern"
	"github.com/jetsetilly/corebridge/test"
)

func TestTransitions(t *testing.T) {
	all := []govern.State{govern.Uninitialised, govern.Running, govern.Paused, govern.Stopped}

	legal := map[[2]govern.State]bool{
		{govern.Uninitialised, govern.Running}: true,
		{govern.Stopped, govern.Running}:       true,
		{govern.Paused, govern.Running}:        true,
		{govern.Running, govern.Paused}:        true,
		{govern.Running, govern.Stopped}:       true,
		{govern.Paused, govern.Stopped}:        true,
	}

	for _, from := range all {
		for _, to := range all {
			test.ExpectEquality(t, govern.Transition(from, to), legal[[2]govern.State{from, to}], from, "->", to)
		}
	}
}

func TestActive(t *testing.T) {
	test.ExpectFailure(t, govern.Uninitialised.Active())
	test.ExpectSuccess(t, govern.Running.Active())
	test.ExpectSuccess(t, govern.Paused.Active())
	test.ExpectFailure(t, govern.Stopped.Active())
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, govern.Paused.String(), "Paused")
	test.ExpectEquality(t, govern.State(99).String(), "")
}
