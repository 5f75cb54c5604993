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

// Package recorder records routed input to a transcript and plays it back.
//
// The Recorder sits between the userinput.Router and the native core. It
// implements the native.Input interface by forwarding every call to the core
// and writing a line to the transcript. The Playback type reads a transcript
// and sends each entry through a Router again.
//
// A transcript begins with a magic line, the name of the image and the
// version string of the core. Each remaining line is one input call:
//
//	"<device>", <kind>, <id>, <value>, <handled>
//
// The kind field is either "button" or "axis". For button entries the value
// is the button state. The handled field is the result returned by the core
// and is checked during playback.
package recorder
