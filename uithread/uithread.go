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

package uithread

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/corebridge/assert"
	"github.com/jetsetilly/corebridge/logger"
)

// DefaultInterval is the time between calls to Service() by the main loop.
const DefaultInterval = 10 * time.Millisecond

// Loop is a queue of work for the UI goroutine.
type Loop struct {
	work chan func()

	crit     sync.Mutex
	services []func()

	// goroutine ID of the UI goroutine. zero until Service() has been called
	id atomic.Uint64

	// number of posted functions that were dropped because the queue was
	// full
	dropped atomic.Int64
}

// NewLoop is the preferred method of initialisation for the Loop type. The
// capacity is the number of posted functions that can be waiting.
func NewLoop(capacity int) *Loop {
	return &Loop{
		work: make(chan func(), max(capacity, 1)),
	}
}

// Post queues a function to be run on the UI goroutine. Post never blocks. If
// the queue is full the function is dropped and false is returned.
func (l *Loop) Post(f func()) bool {
	select {
	case l.work <- f:
		return true
	default:
		l.dropped.Add(1)
		logger.Log(logger.Allow, "uithread", "queue full: dropped posted function")
		return false
	}
}

// Dropped returns the number of posted functions that were dropped.
func (l *Loop) Dropped() int64 {
	return l.dropped.Load()
}

// AddService registers a function to be run on every iteration of the loop.
// Services should not block.
func (l *Loop) AddService(f func()) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.services = append(l.services, f)
}

// OnUIThread returns true if the calling goroutine is the UI goroutine.
func (l *Loop) OnUIThread() bool {
	id := l.id.Load()
	return id != 0 && assert.OnGoRoutine(id)
}

func (l *Loop) claim() {
	l.id.Store(assert.GetGoRoutineID())
}

func (l *Loop) runServices() {
	l.crit.Lock()
	services := l.services
	l.crit.Unlock()

	for _, f := range services {
		f()
	}
}

// Service runs one iteration of the loop. All work that has been posted so
// far is run and then every service. It must always be called from the same
// goroutine.
func (l *Loop) Service() {
	l.claim()

	// work posted by the functions being run is left for the next iteration
	for range len(l.work) {
		f := <-l.work
		f()
	}

	l.runServices()
}
