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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/corebridge/performance"
	"github.com/jetsetilly/corebridge/test"
)

func TestProfileCPU(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "cpu.profile")

	var ran bool
	err := performance.ProfileCPU(pth, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	info, err := os.Stat(pth)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, info.Size(), int64(0))
}

func TestProfileCPUError(t *testing.T) {
	runErr := errors.New("run failed")
	err := performance.ProfileCPU("", func() error {
		return runErr
	})
	test.ExpectEquality(t, err, runErr)
}

func TestProfileMem(t *testing.T) {
	test.ExpectSuccess(t, performance.ProfileMem(""))

	pth := filepath.Join(t.TempDir(), "mem.profile")
	test.ExpectSuccess(t, performance.ProfileMem(pth))
	_, err := os.Stat(pth)
	test.ExpectSuccess(t, err)
}
