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

// Package logger is the central log for the application. Log entries are
// made up of a tag and a detail. The tag identifies the part of the
// application making the entry and the detail is the information being
// logged.
//
// Entries are kept in memory up to a maximum number. Consecutive entries with
// the same tag and detail are collapsed into a single entry with a repeat
// count.
//
// Every logging request is accompanied by a Permission value. The Allow
// value can be used when a log entry should always be made.
//
// Logging is safe to use from any goroutine. Echoing of new entries to an
// io.Writer can be turned on with SetEcho().
package logger
