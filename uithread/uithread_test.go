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

package uithread_test

import (
	"testing"

	"github.com/jetsetilly/corebridge/test"
	"github.com/jetsetilly/corebridge/uithread"
)

func TestService(t *testing.T) {
	l := uithread.NewLoop(4)

	var order []string
	l.AddService(func() {
		order = append(order, "service")
	})

	test.ExpectSuccess(t, l.Post(func() { order = append(order, "a") }))
	test.ExpectSuccess(t, l.Post(func() { order = append(order, "b") }))

	l.Service()
	test.DemandEquality(t, len(order), 3)
	test.ExpectEquality(t, order[0], "a")
	test.ExpectEquality(t, order[1], "b")
	test.ExpectEquality(t, order[2], "service")
}

func TestPostFull(t *testing.T) {
	l := uithread.NewLoop(2)

	test.ExpectSuccess(t, l.Post(func() {}))
	test.ExpectSuccess(t, l.Post(func() {}))
	test.ExpectFailure(t, l.Post(func() {}))
	test.ExpectEquality(t, l.Dropped(), int64(1))

	l.Service()
	test.ExpectSuccess(t, l.Post(func() {}))
}

func TestOnUIThread(t *testing.T) {
	l := uithread.NewLoop(1)
	test.ExpectFailure(t, l.OnUIThread())

	l.Service()
	test.ExpectSuccess(t, l.OnUIThread())

	done := make(chan bool)
	go func() {
		done <- l.OnUIThread()
	}()
	test.ExpectFailure(t, <-done)
}
