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

package logger_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/test"
)

func TestWriteAndTail(t *testing.T) {
	log := logger.NewLogger(10)
	w := &test.CompareWriter{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "session", "started instance 1")
	log.Log(logger.Allow, "loopback", "saved slot 0")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "session: started instance 1\nloopback: saved slot 0\n")

	// tail lengths longer than the log are capped
	for _, n := range []int{2, 100, -1} {
		w.Clear()
		log.Tail(w, n)
		test.ExpectEquality(t, w.String(), "session: started instance 1\nloopback: saved slot 0\n", n)
	}

	w.Clear()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "loopback: saved slot 0\n")

	w.Clear()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")

	// a nil writer is ignored
	log.Write(nil)
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(10)
	w := &test.CompareWriter{}

	for range 3 {
		log.Log(logger.Allow, "alert", "savestate slot 3 is empty")
	}
	log.Log(logger.Allow, "alert", "savestate slot 4 is empty")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "alert: savestate slot 3 is empty (repeat x3)\nalert: savestate slot 4 is empty\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	w := &test.CompareWriter{}

	for i := range 5 {
		log.Logf(logger.Allow, "slot", "%d", i)
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "slot: 2\nslot: 3\nslot: 4\n")
}

func TestNewlinesRemoved(t *testing.T) {
	log := logger.NewLogger(10)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "remote\n", "malformed\r\nmessage")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "remote: malformedmessage\n")
}

type quiet bool

func (q quiet) AllowLogging() bool {
	return !bool(q)
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	w := &test.CompareWriter{}

	log.Log(quiet(true), "gamepad", "axis 0")
	log.Logf(quiet(true), "gamepad", "axis %d", 1)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(quiet(false), "gamepad", "axis 2")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "gamepad: axis 2\n")
}

type slot int

func (s slot) String() string {
	return fmt.Sprintf("slot %d", int(s))
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(10)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "error", errors.New("could not open game.iso"))
	log.Log(logger.Allow, "stringer", slot(5))
	log.Log(logger.Allow, "int", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "error: could not open game.iso\nstringer: slot 5\nint: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	echo := &test.CompareWriter{}

	log.SetEcho(echo)
	log.Log(logger.Allow, "termkeys", "echoed")
	test.ExpectSuccess(t, echo.Compare("termkeys: echoed\n"))

	// repeated entries are echoed with the repeat count
	log.Log(logger.Allow, "termkeys", "echoed")
	test.ExpectSuccess(t, echo.Compare("termkeys: echoed\ntermkeys: echoed (repeat x2)\n"))

	echo.Clear()
	log.SetEcho(nil)
	log.Log(logger.Allow, "termkeys", "not echoed")
	test.ExpectEquality(t, echo.String(), "")
}

func TestConcurrentLogging(t *testing.T) {
	log := logger.NewLogger(100)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Logf(logger.Allow, "remote", "connection %d", i)
		}()
	}
	wg.Wait()

	log.BorrowLog(func(entries []logger.Entry) {
		test.ExpectEquality(t, len(entries), 50)
	})
}
