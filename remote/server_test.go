package remote

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/paddle-duel/engine"
)

// TestCommandForMapping verifies the action name to command table
func TestCommandForMapping(t *testing.T) {
	cases := []struct {
		action string
		want   engine.Command
	}{
		{"p1_up", engine.MovePaddleUpCommand{Player: 1}},
		{"p1_down", engine.MovePaddleDownCommand{Player: 1}},
		{"p2_up", engine.MovePaddleUpCommand{Player: 2}},
		{"p2_down", engine.MovePaddleDownCommand{Player: 2}},
		{"pause", engine.PauseCommand{}},
		{"reset", engine.ResetCommand{}},
	}

	for _, tc := range cases {
		got, ok := commandFor(tc.action)
		if !ok {
			t.Errorf("Expected action %q to map, got none", tc.action)
			continue
		}
		if got != tc.want {
			t.Errorf("Action %q: expected %#v, got %#v", tc.action, tc.want, got)
		}
	}

	for _, action := range []string{"", "stop", "p3_up", "jump"} {
		if cmd, ok := commandFor(action); ok {
			t.Errorf("Expected action %q rejected, got %#v", action, cmd)
		}
	}
}

// TestServerEnqueuesFromWebsocket verifies a websocket client's messages
// land on the command queue in order, skipping malformed ones
func TestServerEnqueuesFromWebsocket(t *testing.T) {
	queue := engine.NewCommandQueue()
	ts := httptest.NewServer(NewServer(queue))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	defer conn.Close()

	messages := []string{
		`{"action":"p1_up"}`,
		`not json`,
		`{"action":"warp"}`,
		`{"action":"pause"}`,
	}
	for _, msg := range messages {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			t.Fatalf("Failed to write message: %v", err)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for queue.Len() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("Expected 2 queued commands, got %d", queue.Len())
		}
		time.Sleep(time.Millisecond)
	}

	if got := queue.Dequeue(); got != (engine.MovePaddleUpCommand{Player: 1}) {
		t.Errorf("Expected MovePaddleUp(1) first, got %#v", got)
	}
	if got := queue.Dequeue(); got != (engine.PauseCommand{}) {
		t.Errorf("Expected Pause second, got %#v", got)
	}
	if n := queue.Len(); n != 0 {
		t.Errorf("Expected malformed messages skipped, %d pending", n)
	}
}
