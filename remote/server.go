// Package remote exposes a websocket endpoint through which supervisory
// clients submit game commands. It is a pure producer for the command
// queue: clients receive no game state, and the queue worker remains the
// sole consumer.
package remote

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/paddle-duel/engine"
)

// message is one client request
type message struct {
	Action string `json:"action"`
}

// Server upgrades HTTP connections to websockets and enqueues the
// commands named by incoming messages. Malformed or unknown messages are
// logged and skipped; a read error ends that client's loop
type Server struct {
	upgrader websocket.Upgrader
	queue    *engine.CommandQueue
}

// NewServer creates a producer feeding the given queue
func NewServer(queue *engine.CommandQueue) *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		queue: queue,
	}
}

// ServeHTTP runs one client's read loop until the connection drops
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("remote: upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			log.Printf("remote: client gone: %v", err)
			return
		}

		var msg message
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Printf("remote: bad message: %v", err)
			continue
		}

		cmd, ok := commandFor(msg.Action)
		if !ok {
			log.Printf("remote: unknown action %q", msg.Action)
			continue
		}
		s.queue.Enqueue(cmd)
	}
}

// commandFor maps an action name to its command
func commandFor(action string) (engine.Command, bool) {
	switch action {
	case "p1_up":
		return engine.MovePaddleUpCommand{Player: 1}, true
	case "p1_down":
		return engine.MovePaddleDownCommand{Player: 1}, true
	case "p2_up":
		return engine.MovePaddleUpCommand{Player: 2}, true
	case "p2_down":
		return engine.MovePaddleDownCommand{Player: 2}, true
	case "pause":
		return engine.PauseCommand{}, true
	case "reset":
		return engine.ResetCommand{}, true
	}
	return nil, false
}

// ListenAndServe serves the websocket endpoint at /ws on addr. It blocks
// until the listener fails; run it on its own goroutine
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	return http.ListenAndServe(addr, mux)
}
