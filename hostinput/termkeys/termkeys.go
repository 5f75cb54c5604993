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
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/corebridge/logger"
)

// Terminal is the input terminal. The terminal is in cbreak mode between
// Open() and Close().
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	closeOnce sync.Once
}

// Open puts the terminal in cbreak mode. The output file is used for help
// and status messages.
func Open(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("termkeys: input and output files are required")
	}

	trm := &Terminal{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(input.Fd(), &trm.canAttr); err != nil {
		return nil, fmt.Errorf("termkeys: %w", err)
	}

	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)

	if err := termios.Tcsetattr(input.Fd(), termios.TCSANOW, &trm.cbreakAttr); err != nil {
		return nil, fmt.Errorf("termkeys: %w", err)
	}

	return trm, nil
}

// Close restores the terminal to canonical mode.
func (trm *Terminal) Close() {
	trm.closeOnce.Do(func() {
		if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr); err != nil {
			logger.Logf(logger.Allow, "termkeys", "%v", err)
		}
	})
}

// Width returns the number of columns in the output terminal. Returns zero
// if the width can not be found.
func (trm *Terminal) Width() int {
	ws, err := unix.IoctlGetWinsize(int(trm.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}

// Print writes the formatted string to the output terminal.
func (trm *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(trm.output, s, a...)
}

// Run reads keys until the context is cancelled or the input ends. Every key
// that translates to an Action is passed to the handler function.
func (trm *Terminal) Run(ctx context.Context, handler func(Action)) error {
	return Read(ctx, trm.input, handler)
}

// Read decodes keys from the reader until the context is cancelled or the
// reader ends. Every key that translates to an Action is passed to the
// handler function.
//
// The reader is read in a separate goroutine which is left blocked on the
// reader if the context is cancelled.
func Read(ctx context.Context, r io.Reader, handler func(Action)) error {
	bytes := make(chan byte)
	readErr := make(chan error, 1)

	go func() {
		b := make([]byte, 1)
		for {
			_, err := r.Read(b)
			if err != nil {
				readErr <- err
				return
			}
			select {
			case bytes <- b[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	var dec Decoder
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("termkeys: %w", err)
		case b := <-bytes:
			if key, ok := dec.Feed(b); ok {
				if act, ok := Translate(key); ok {
					handler(act)
				}
			}
		}
	}
}
