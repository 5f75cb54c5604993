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

// Package uithread runs work on a single goroutine. Many UI toolkits (notably
// SDL) require window and event handling to happen on the main thread, and
// the host surface listener expects its notifications there too.
//
// Work is sent to the loop with Post() from any goroutine. Services are
// functions that are run on every iteration of the loop, for example to
// poll for input events or to deliver pending alerts.
//
// The goroutine that calls Service() becomes the UI goroutine.
// OnUIThread() can be used to check that code is running where it should be.
package uithread
