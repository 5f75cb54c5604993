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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/corebridge/modalflag"
	"github.com/jetsetilly/corebridge/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.NewModes(nil, []string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestFlagsWithoutModes(t *testing.T) {
	md := modalflag.NewModes(nil, []string{"-echo", "game.iso", "extra"})
	echo := md.AddBool("echo", false, "echo log")
	test.ExpectEquality(t, *echo, false)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *echo, true)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "game.iso")
	test.ExpectEquality(t, md.GetArg(1), "extra")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestModeSelection(t *testing.T) {
	md := modalflag.NewModes(nil, []string{"-prefs", "log.echo::true", "playback", "-ignore", "game.trn"})
	prefs := md.AddString("prefs", "", "preferences")
	md.AddSubModes("RUN", "PLAYBACK", "INFO")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *prefs, "log.echo::true")
	test.ExpectEquality(t, md.Mode(), "PLAYBACK")

	md.NewMode()
	ignore := md.AddBool("ignore", false, "ignore results")
	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *ignore, true)
	test.ExpectEquality(t, md.GetArg(0), "game.trn")
	test.ExpectEquality(t, md.Path(), "PLAYBACK")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.NewModes(nil, []string{"game.iso"})
	md.AddSubModes("run", "info")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "game.iso")
}

func TestNestedModes(t *testing.T) {
	md := modalflag.NewModes(nil, []string{"config", "set", "log.echo", "true"})
	md.AddSubModes("RUN", "CONFIG")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AddSubModes("LIST", "GET", "SET")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SET")
	test.ExpectEquality(t, md.Path(), "CONFIG/SET")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.NewModes(nil, []string{"-nosuchflag"})
	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.NewModes(tw, []string{"-help"})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "no help available\n")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.NewModes(tw, []string{"-help"})
	md.AddBool("echo", true, "echo log")
	md.AddSubModes("A", "B")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "usage:\n" +
		"  -echo\n" +
		"    \techo log (default true)\n" +
		"\n" +
		"  available sub-modes: A, B\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expected)
}

func TestHelpForMode(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.NewModes(tw, []string{"info", "-help"})
	md.AddSubModes("RUN", "INFO")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AddString("dump", "", "write a `file` of the core structure")
	md.AdditionalHelp("prints information about a disc image")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "usage for INFO mode:\n" +
		"  -dump file\n" +
		"    \twrite a file of the core structure\n" +
		"\n" +
		"prints information about a disc image\n"
	test.ExpectEquality(t, tw.String(), expected)
}
