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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/corebridge/curated"
)

// the first line of every transcript
const magicString = "corebridge transcript"

// transcript header
const (
	lineMagic int = iota
	lineImage
	lineCoreVersion
	numHeaderLines
)

// transcript entry
const (
	fieldDevice int = iota
	fieldKind
	fieldID
	fieldValue
	fieldHandled
	numFields
)

const fieldSep = ", "

// kind field values
const (
	kindButton = "button"
	kindAxis   = "axis"
)

// NotAPlaybackFile is returned by IsPlaybackFile() when the file is readable
// but is not a transcript.
const NotAPlaybackFile = "recorder: not a playback file"

// IsPlaybackFile returns nil if the file is a transcript.
func IsPlaybackFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() || scanner.Text() != magicString {
		return curated.Errorf(NotAPlaybackFile)
	}
	return nil
}

func writeHeader(w io.Writer, image string, coreVersion string) error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magicString
	lines[lineImage] = image
	lines[lineCoreVersion] = coreVersion

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

type entry struct {
	device  string
	kind    string
	id      int
	value   float32
	handled bool

	// the line in the transcript the entry appears
	line int
}

func (e entry) String() string {
	fields := make([]string, numFields)
	fields[fieldDevice] = strconv.Quote(e.device)
	fields[fieldKind] = e.kind
	fields[fieldID] = strconv.Itoa(e.id)
	fields[fieldValue] = strconv.FormatFloat(float64(e.value), 'g', -1, 32)
	fields[fieldHandled] = strconv.FormatBool(e.handled)
	return strings.Join(fields, fieldSep)
}

// parseEntry splits the line into fields. the device field is quoted and so
// can contain the field separator.
func parseEntry(line string, n int) (entry, error) {
	e := entry{line: n}

	device, err := strconv.QuotedPrefix(line)
	if err != nil {
		return e, curated.Errorf("recorder: line %d: device: %v", n, err)
	}
	e.device, _ = strconv.Unquote(device)

	rest, ok := strings.CutPrefix(line[len(device):], fieldSep)
	if !ok {
		return e, curated.Errorf("recorder: line %d: expected %d fields", n, numFields)
	}

	toks := strings.Split(rest, fieldSep)
	if len(toks) != numFields-1 {
		return e, curated.Errorf("recorder: line %d: expected %d fields", n, numFields)
	}

	e.kind = toks[fieldKind-1]
	if e.kind != kindButton && e.kind != kindAxis {
		return e, curated.Errorf("recorder: line %d: unknown kind %q", n, e.kind)
	}

	e.id, err = strconv.Atoi(toks[fieldID-1])
	if err != nil {
		return e, curated.Errorf("recorder: line %d: id: %v", n, err)
	}

	v, err := strconv.ParseFloat(toks[fieldValue-1], 32)
	if err != nil {
		return e, curated.Errorf("recorder: line %d: value: %v", n, err)
	}
	e.value = float32(v)

	e.handled, err = strconv.ParseBool(toks[fieldHandled-1])
	if err != nil {
		return e, curated.Errorf("recorder: line %d: handled: %v", n, err)
	}

	return e, nil
}

// describe summarises a transcript in a single line.
func describe(image, coreVersion string, entries int) string {
	return fmt.Sprintf("%s (%s): %d entries", image, coreVersion, entries)
}
