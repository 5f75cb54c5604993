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

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jetsetilly/corebridge/curated"
	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/userinput"
)

// Handler receives the input from remote clients. The userinput.Router
// implements this interface.
type Handler interface {
	HandleUserInput(ev userinput.Event) bool

	// device given to messages that do not name one
	TouchDevice() string
}

// Path is the URL path of the websocket endpoint.
const Path = "/input"

// Server is the websocket endpoint. It implements the http.Handler interface.
type Server struct {
	handler  Handler
	upgrader websocket.Upgrader

	crit  sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(handler Handler) *Server {
	return &Server{
		handler: handler,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

// Connections returns the number of connected clients.
func (srv *Server) Connections() int {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	return len(srv.conns)
}

// ServeHTTP implements the http.Handler interface.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "remote", "%v", err)
		return
	}

	srv.crit.Lock()
	srv.conns[conn] = true
	srv.crit.Unlock()

	logger.Logf(logger.Allow, "remote", "connected: %s (%d clients)", r.RemoteAddr, srv.Connections())

	defer func() {
		if rtt, ok := roundTrip(conn); ok {
			logger.Logf(logger.Allow, "remote", "disconnected: %s (rtt %v)", r.RemoteAddr, rtt)
		} else {
			logger.Logf(logger.Allow, "remote", "disconnected: %s", r.RemoteAddr)
		}

		srv.crit.Lock()
		delete(srv.conns, conn)
		srv.crit.Unlock()
		conn.Close()
	}()

	srv.serve(conn)
}

func (srv *Server) serve(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Logf(logger.Allow, "remote", "%v", err)
			}
			return
		}

		var reply *Reply

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			reply = &Reply{Error: curated.Errorf(MalformedMessage, err).Error()}
		} else if ev, err := msg.Event(srv.handler.TouchDevice()); err != nil {
			reply = &Reply{Error: err.Error()}
		} else {
			handled := srv.handler.HandleUserInput(ev)
			if _, ok := ev.(userinput.EventButton); ok {
				reply = &Reply{Handled: handled}
			}
		}

		if reply != nil {
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	}
}

// ListenAndServe serves the websocket endpoint on the address until the
// context is cancelled.
func (srv *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(Path, srv)

	hs := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		hs.Shutdown(shutdown)
		srv.closeAll()
	}()

	logger.Logf(logger.Allow, "remote", "listening on %s%s", addr, Path)

	err := hs.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return curated.Errorf("remote: %v", err)
}

// websocket connections are hijacked and are not closed by Shutdown()
func (srv *Server) closeAll() {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	for conn := range srv.conns {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(time.Second))
		conn.Close()
	}
}
