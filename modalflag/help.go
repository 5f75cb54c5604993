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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

func (md *Modes) banner() string {
	if len(md.path) == 0 {
		return "usage"
	}
	return fmt.Sprintf("usage for %s mode", md.Path())
}

// writeHelp lists the flags and sub-modes of the current layer.
func (md *Modes) writeHelp() {
	if md.Output == nil {
		return
	}

	var s strings.Builder

	var flags int
	md.flags.VisitAll(func(f *flag.Flag) {
		flags++
		name, usage := flag.UnquoteUsage(f)
		if name == "" {
			fmt.Fprintf(&s, "  -%s\n", f.Name)
		} else {
			fmt.Fprintf(&s, "  -%s %s\n", f.Name, name)
		}
		fmt.Fprintf(&s, "    \t%s", usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			fmt.Fprintf(&s, " (default %s)", f.DefValue)
		}
		s.WriteString("\n")
	})

	if len(md.subModes) > 0 {
		if flags > 0 {
			s.WriteString("\n")
		}
		fmt.Fprintf(&s, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(&s, "    default: %s\n", md.subModes[0])
	}

	if s.Len() == 0 && md.help == "" {
		io.WriteString(md.Output, "no help available\n")
		return
	}

	fmt.Fprintf(md.Output, "%s:\n", md.banner())
	io.WriteString(md.Output, s.String())

	if md.help != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.help)
	}
}
