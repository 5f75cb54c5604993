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

//go:build linux

package remote

import (
	"net"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sys/unix"
)

// roundTrip returns the smoothed round trip time of the TCP connection
// underlying the websocket.
func roundTrip(conn *websocket.Conn) (time.Duration, bool) {
	tcp, ok := conn.UnderlyingConn().(*net.TCPConn)
	if !ok {
		return 0, false
	}

	raw, err := tcp.SyscallConn()
	if err != nil {
		return 0, false
	}

	var info *unix.TCPInfo
	ctrlErr := raw.Control(func(fd uintptr) {
		info, err = unix.GetsockoptTCPInfo(int(fd), unix.IPPROTO_TCP, unix.TCP_INFO)
	})
	if ctrlErr != nil || err != nil {
		return 0, false
	}

	return time.Duration(info.Rtt) * time.Microsecond, true
}
