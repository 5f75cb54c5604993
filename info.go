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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/corebridge/modalflag"
	"github.com/jetsetilly/corebridge/native"
	"github.com/jetsetilly/corebridge/native/loopback"
	"github.com/jetsetilly/corebridge/preferences"
	"github.com/jetsetilly/corebridge/version"
)

type infoCore interface {
	native.Metadata
	native.Probe
}

// writeInfo prints the metadata of the disc image and details about the core.
func writeInfo(output io.Writer, core infoCore, image string) {
	fmt.Fprintf(output, "file:        %s\n", filepath.Base(image))
	fmt.Fprintf(output, "title:       %s\n", core.GetTitle(image))
	fmt.Fprintf(output, "description: %s\n", core.GetDescription(image))
	fmt.Fprintf(output, "game id:     %s\n", core.GetGameID(image))
	fmt.Fprintf(output, "country:     %s\n", native.CountryName(core.GetCountry(image)))
	fmt.Fprintf(output, "company:     %s\n", core.GetCompany(image))
	fmt.Fprintf(output, "platform:    %s\n", native.PlatformName(core.GetPlatform(image)))
	fmt.Fprintf(output, "filesize:    %d\n", core.GetFilesize(image))
	if b := core.GetBanner(image); len(b) > 0 {
		fmt.Fprintf(output, "banner:      %d pixels\n", len(b))
	} else {
		fmt.Fprintf(output, "banner:      none\n")
	}
	fmt.Fprintf(output, "core:        %s\n", core.GetVersionString())
	fmt.Fprintf(output, "neon:        %v\n", core.SupportsNEON())
	fmt.Fprintf(output, "frontend:    %s\n", version.String())
	if _, revision, release := version.Version(); !release {
		fmt.Fprintf(output, "revision:    %s\n", revision)
	}
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	dump := md.AddString("dump", "", "write the structure of the core to `file` in graphviz format")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one disc image required for %s mode", md)
	}
	image := md.GetArg(0)

	prf, err := loadPreferences()
	if err != nil {
		return err
	}

	core := loopback.NewCore(prf.Policy())
	writeInfo(md.Output, core, image)

	if *dump != "" {
		core.SetFilename(image)
		f, err := os.Create(*dump)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, core)
		fmt.Fprintf(md.Output, "! core structure written to %s\n", *dump)
	}

	return nil
}

func config(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("LIST", "GET", "SET", "RESET")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// environment overrides are not applied so they are never saved
	prf, err := preferences.NewPreferences("")
	if err != nil {
		return err
	}

	switch md.Mode() {
	case "LIST":
		io.WriteString(md.Output, prf.String())

	case "GET":
		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("preference key required for %s mode", md)
		}
		v, err := prf.Get(md.GetArg(0))
		if err != nil {
			return err
		}
		fmt.Fprintln(md.Output, v)

	case "SET":
		if len(md.RemainingArgs()) != 2 {
			return fmt.Errorf("preference key and value required for %s mode", md)
		}
		if err := prf.Set(md.GetArg(0), md.GetArg(1)); err != nil {
			return err
		}
		return prf.Save()

	case "RESET":
		prf.Reset()
		return prf.Save()
	}

	return nil
}
