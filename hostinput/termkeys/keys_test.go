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

package termkeys_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jetsetilly/corebridge/controls"
	"github.com/jetsetilly/corebridge/hostinput/termkeys"
	"github.com/jetsetilly/corebridge/test"
	"github.com/jetsetilly/corebridge/userinput"
)

func decode(s string) []termkeys.Key {
	var dec termkeys.Decoder
	var keys []termkeys.Key
	for _, b := range []byte(s) {
		if k, ok := dec.Feed(b); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestDecoder(t *testing.T) {
	keys := decode("a\x1b[A\x1b[Dq\r\x03")
	test.DemandEquality(t, len(keys), 6)
	test.ExpectEquality(t, keys[0], termkeys.Key("a"))
	test.ExpectEquality(t, keys[1], termkeys.Key("Up"))
	test.ExpectEquality(t, keys[2], termkeys.Key("Left"))
	test.ExpectEquality(t, keys[3], termkeys.Key("q"))
	test.ExpectEquality(t, keys[4], termkeys.Key("Return"))
	test.ExpectEquality(t, keys[5], termkeys.Key("Interrupt"))

	// unknown escape sequences are swallowed
	keys = decode("\x1b[Zb")
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], termkeys.Key("b"))
}

func TestTranslate(t *testing.T) {
	act, ok := termkeys.Translate("Up")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, act.Event, userinput.Event(userinput.EventTouch{ID: controls.ButtonUp}))
	test.ExpectEquality(t, act.Command, termkeys.NoCommand)

	act, ok = termkeys.Translate("W")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, act.Event, userinput.Event(userinput.EventTouch{ID: controls.StickMainUp}))

	act, ok = termkeys.Translate("p")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, act.Command, termkeys.CommandPause)
	test.ExpectEquality(t, act.Event, nil)

	act, ok = termkeys.Translate("Interrupt")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, act.Command, termkeys.CommandQuit)

	_, ok = termkeys.Translate("Q")
	test.ExpectFailure(t, ok)
}

// every control in the table can be reached from the keyboard
func TestAllControlsMapped(t *testing.T) {
	reached := make(map[controls.ControlID]bool)
	for _, s := range strings.Split("a b x y z Return Up Down Left Right W S A D I K J L [ ] n m - + h 1 2 8 5 4 6", " ") {
		act, ok := termkeys.Translate(termkeys.Key(s))
		test.DemandSuccess(t, ok, s)
		reached[act.Event.(userinput.EventTouch).ID] = true
	}

	for _, id := range controls.All() {
		if id.IsStick() {
			continue
		}
		test.ExpectSuccess(t, reached[id], id)
	}
}

func TestRead(t *testing.T) {
	var actions []termkeys.Action
	err := termkeys.Read(context.Background(), strings.NewReader("ax?"), func(act termkeys.Action) {
		actions = append(actions, act)
	})
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(actions), 3)
	test.ExpectEquality(t, actions[2].Command, termkeys.CommandHelp)
}
