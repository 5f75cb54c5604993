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

package termkeys

import (
	"github.com/jetsetilly/corebridge/controls"
	"github.com/jetsetilly/corebridge/userinput"
)

// Key is a decoded key press. Printable keys are the character itself. The
// cursor keys are "Up", "Down", "Left" and "Right".
type Key string

// list of ASCII codes for non-printable keys
const (
	keyInterrupt      = 3
	keyCarriageReturn = 13
	keyEsc            = 27
	escCursor         = '['
)

// Decoder turns a stream of bytes from the terminal into keys.
type Decoder struct {
	// bytes of an escape sequence read so far
	esc []byte
}

// Feed the next byte to the decoder. Returns a Key and true when a complete
// key has been read.
func (dec *Decoder) Feed(b byte) (Key, bool) {
	if len(dec.esc) > 0 {
		dec.esc = append(dec.esc, b)
		if len(dec.esc) == 2 {
			if b != escCursor {
				dec.esc = dec.esc[:0]
				return Key(rune(b)), true
			}
			return "", false
		}
		dec.esc = dec.esc[:0]
		switch b {
		case 'A':
			return "Up", true
		case 'B':
			return "Down", true
		case 'C':
			return "Right", true
		case 'D':
			return "Left", true
		}
		return "", false
	}

	switch b {
	case keyEsc:
		dec.esc = append(dec.esc, b)
		return "", false
	case keyCarriageReturn, '\n':
		return "Return", true
	case keyInterrupt:
		return "Interrupt", true
	}

	return Key(rune(b)), true
}

// Command is a request for the session rather than input for the core.
type Command int

// List of commands.
const (
	NoCommand Command = iota
	CommandPause
	CommandSave
	CommandLoad
	CommandSlotUp
	CommandSlotDown
	CommandScreenshot
	CommandHelp
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "pause"
	case CommandSave:
		return "save"
	case CommandLoad:
		return "load"
	case CommandSlotUp:
		return "slot up"
	case CommandSlotDown:
		return "slot down"
	case CommandScreenshot:
		return "screenshot"
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	}
	return ""
}

// Action is the result of translating a key. Exactly one of Event and
// Command is set.
type Action struct {
	Event   userinput.Event
	Command Command
}

var touches = map[Key]controls.ControlID{
	"a":      controls.ButtonA,
	"b":      controls.ButtonB,
	"x":      controls.ButtonX,
	"y":      controls.ButtonY,
	"z":      controls.ButtonZ,
	"Return": controls.ButtonStart,
	"Up":     controls.ButtonUp,
	"Down":   controls.ButtonDown,
	"Left":   controls.ButtonLeft,
	"Right":  controls.ButtonRight,
	"W":      controls.StickMainUp,
	"S":      controls.StickMainDown,
	"A":      controls.StickMainLeft,
	"D":      controls.StickMainRight,
	"I":      controls.StickCUp,
	"K":      controls.StickCDown,
	"J":      controls.StickCLeft,
	"L":      controls.StickCRight,
	"[":      controls.TriggerL,
	"]":      controls.TriggerR,
	"n":      controls.WiimoteButtonA,
	"m":      controls.WiimoteButtonB,
	"-":      controls.WiimoteButtonMinus,
	"+":      controls.WiimoteButtonPlus,
	"h":      controls.WiimoteButtonHome,
	"1":      controls.WiimoteButton1,
	"2":      controls.WiimoteButton2,
	"8":      controls.WiimoteUp,
	"5":      controls.WiimoteDown,
	"4":      controls.WiimoteLeft,
	"6":      controls.WiimoteRight,
}

var commands = map[Key]Command{
	"p":         CommandPause,
	"s":         CommandSave,
	"l":         CommandLoad,
	">":         CommandSlotUp,
	"<":         CommandSlotDown,
	"#":         CommandScreenshot,
	"?":         CommandHelp,
	"q":         CommandQuit,
	"Interrupt": CommandQuit,
}

// Translate a key into an Action. Returns false if the key does nothing.
func Translate(key Key) (Action, bool) {
	if id, ok := touches[key]; ok {
		return Action{Event: userinput.EventTouch{ID: id}}, true
	}
	if cmd, ok := commands[key]; ok {
		return Action{Command: cmd}, true
	}
	return Action{}, false
}
