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

// Package test contains helper functions to remove common boilerplate to make
// testing easier. It is intended to be used with the standard go test
// harness.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions report a test error and stop the test immediately.
// Use the Demand variants when the rest of the test depends on the value
// being correct.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. Supported types are bool and error. It is
// worth pointing out that the nil value is considered a success. This is
// because of how errors usually work (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The Compare() function can then be used to test for
// equality.
package test
