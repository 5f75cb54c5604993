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

package recorder

import (
	"bufio"
	"os"

	"github.com/jetsetilly/corebridge/controls"
	"github.com/jetsetilly/corebridge/curated"
	"github.com/jetsetilly/corebridge/userinput"
)

// PlaybackMismatch is returned by Play() when the core's answer to a button
// entry is different to the answer in the transcript.
const PlaybackMismatch = "playback: unexpected result at line %d"

// Playback is a transcript ready to be replayed.
type Playback struct {
	Image       string
	CoreVersion string

	sequence []entry
}

// NewPlayback is the preferred method of initialisation for the Playback type.
func NewPlayback(transcript string) (*Playback, error) {
	f, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	defer f.Close()

	plb := &Playback{}

	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		l := scanner.Text()
		switch n {
		case lineMagic:
			if l != magicString {
				return nil, curated.Errorf(NotAPlaybackFile)
			}
		case lineImage:
			plb.Image = l
		case lineCoreVersion:
			plb.CoreVersion = l
		default:
			if l == "" {
				break
			}
			e, err := parseEntry(l, n+1)
			if err != nil {
				return nil, curated.Errorf("playback: %v", err)
			}
			plb.sequence = append(plb.sequence, e)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	if n < numHeaderLines {
		return nil, curated.Errorf(NotAPlaybackFile)
	}

	return plb, nil
}

func (plb *Playback) String() string {
	return describe(plb.Image, plb.CoreVersion, len(plb.sequence))
}

// Len returns the number of entries in the transcript.
func (plb *Playback) Len() int {
	return len(plb.sequence)
}

// Play sends every entry in the transcript through the Router. If
// ignoreResults is false, playback stops at the first button entry for which
// the core gives a different answer to the one recorded.
func (plb *Playback) Play(router *userinput.Router, ignoreResults bool) error {
	for _, e := range plb.sequence {
		switch e.kind {
		case kindButton:
			handled := router.RouteButton(e.device, controls.ControlID(e.id), controls.ButtonState(e.value))
			if handled != e.handled && !ignoreResults {
				return curated.Errorf(PlaybackMismatch, e.line)
			}
		case kindAxis:
			router.RouteAxis(e.device, controls.AxisID(e.id), e.value)
		}
	}
	return nil
}
