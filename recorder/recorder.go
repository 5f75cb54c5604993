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
	"io"
	"os"
	"sync"

	"github.com/jetsetilly/corebridge/curated"
	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/native"
)

// Recorder writes every input call to a transcript. It implements the
// native.Input interface.
type Recorder struct {
	core native.Input

	crit    sync.Mutex
	output  io.WriteCloser
	entries int

	// the first error encountered while writing. once there has been an
	// error nothing more is written but calls are still forwarded
	err error
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The image and the core version are written to the transcript header.
func NewRecorder(transcript string, image string, coreVersion string, core native.Input) (*Recorder, error) {
	f, err := os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	if err := writeHeader(f, image, coreVersion); err != nil {
		f.Close()
		return nil, curated.Errorf("recorder: %v", err)
	}

	return &Recorder{
		core:   core,
		output: f,
	}, nil
}

func (rec *Recorder) write(e entry) {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.output == nil || rec.err != nil {
		return
	}

	if _, err := io.WriteString(rec.output, e.String()+"\n"); err != nil {
		rec.err = err
		logger.Logf(logger.Allow, "recorder", "%v", err)
		return
	}
	rec.entries++
}

// GamePadEvent implements the native.Input interface.
func (rec *Recorder) GamePadEvent(device string, button int, action int) bool {
	handled := rec.core.GamePadEvent(device, button, action)
	rec.write(entry{
		device:  device,
		kind:    kindButton,
		id:      button,
		value:   float32(action),
		handled: handled,
	})
	return handled
}

// GamePadMoveEvent implements the native.Input interface.
func (rec *Recorder) GamePadMoveEvent(device string, axis int, value float32) {
	rec.core.GamePadMoveEvent(device, axis, value)
	rec.write(entry{
		device:  device,
		kind:    kindAxis,
		id:      axis,
		value:   value,
		handled: true,
	})
}

// End the recording and close the transcript. Calls made after End() are
// forwarded to the core but not recorded.
func (rec *Recorder) End() error {
	rec.crit.Lock()
	defer rec.crit.Unlock()

	if rec.output == nil {
		return nil
	}

	err := rec.output.Close()
	rec.output = nil
	logger.Logf(logger.Allow, "recorder", "%d entries recorded", rec.entries)

	if rec.err != nil {
		return curated.Errorf("recorder: %v", rec.err)
	}
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}
