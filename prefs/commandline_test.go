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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/corebridge/prefs"
	"github.com/jetsetilly/corebridge/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	for _, c := range []struct {
		cmdline  string
		expected string
	}{
		{cmdline: "log.echo::true", expected: "log.echo::true"},
		{cmdline: "  session.slot::  3 ", expected: "session.slot::3"},
		{cmdline: "session.slot::3; log.echo::true", expected: "log.echo::true; session.slot::3"},
		{cmdline: "log.echo", expected: ""},
		{cmdline: "log.echo;session.slot::3", expected: "session.slot::3"},
		{cmdline: "", expected: ""},
	} {
		prefs.PushCommandLineStack(c.cmdline)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), c.expected, c.cmdline)
	}
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("remote.address:::8090;log.echo")
	defer prefs.PopCommandLineStack()

	ok, v := prefs.GetCommandLinePref("remote.address")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, ":8090")

	// values are consumed
	ok, _ = prefs.GetCommandLinePref("remote.address")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("log.echo")
	test.ExpectFailure(t, ok)
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("session.slot::1")
	prefs.PushCommandLineStack("session.slot::2")

	// only the most recent group is consulted
	ok, v := prefs.GetCommandLinePref("session.slot")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "2")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "session.slot::1")
}

func TestCommandLineOverridesDisk(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("input.touch::Pen; unused::true")

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("input.touch", &s))
	test.ExpectEquality(t, s.String(), "Pen")

	// the used value has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::true")
}

func TestCommandLineSurvivesLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("input.touch", &s))
	test.ExpectSuccess(t, s.Set("Stylus"))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("input.touch::Pen")
	defer prefs.PopCommandLineStack()

	dsk, err = prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var o prefs.String
	test.ExpectSuccess(t, dsk.Add("input.touch", &o))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, o.String(), "Pen")
}
