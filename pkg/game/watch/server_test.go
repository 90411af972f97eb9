package watch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"gridbot/pkg/game/renderer"
	"gridbot/pkg/game/state"
)

func testFrame(t *testing.T) *renderer.Frame {
	t.Helper()

	g, err := state.NewGame([]string{"S.E"})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return renderer.Snapshot(g)
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", url, err)
	}
	return conn
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("got %d clients, want %d", h.ClientCount(), want)
}

func TestPublishReachesSpectator(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	waitForClients(t, h, 1)

	h.Publish(testFrame(t))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading frame: %v", err)
	}

	var snap snapshot
	if err := json.Unmarshal(msg, &snap); err != nil {
		t.Fatalf("unmarshaling frame: %v", err)
	}

	if snap.Width != 3 || snap.Height != 1 {
		t.Errorf("got %dx%d, want 3x1", snap.Width, snap.Height)
	}
	if snap.Energy != state.StartingEnergy {
		t.Errorf("got energy %d, want %d", snap.Energy, state.StartingEnergy)
	}
	if snap.Status != "Running" {
		t.Errorf("got status %q, want Running", snap.Status)
	}
	if len(snap.Rows) != 1 || !strings.HasPrefix(snap.Rows[0], "R") {
		t.Errorf("got rows %q, want the robot in view", snap.Rows)
	}
	if len(snap.Modules) != 2 {
		t.Errorf("got %d modules, want 2", len(snap.Modules))
	}
}

func TestPublishWithNoSpectators(t *testing.T) {
	h := NewHub()

	// Must be safe with an empty client set.
	h.Publish(testFrame(t))

	if got := h.ClientCount(); got != 0 {
		t.Errorf("got %d clients, want 0", got)
	}
}

// newConnPair upgrades one websocket connection and returns both ends.
func newConnPair(t *testing.T) (server, peer *websocket.Conn) {
	t.Helper()

	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		connCh <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	peer, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", url, err)
	}
	t.Cleanup(func() { peer.Close() })

	select {
	case server = <-connCh:
	case <-time.After(2 * time.Second):
		t.Fatal("no server-side connection")
	}
	return server, peer
}

func TestPublishDropsSlowSpectator(t *testing.T) {
	h := NewHub()
	sc, peer := newConnPair(t)

	// A spectator whose writer is wedged: nothing drains the queue, as
	// if WriteMessage were stalled on a dead TCP stream.
	c := &client{conn: sc, send: make(chan []byte, 16)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	f := testFrame(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < cap(c.send)+1; i++ {
			h.Publish(f)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish stalled on a spectator that never drains")
	}

	if got := h.ClientCount(); got != 0 {
		t.Errorf("got %d clients, want 0", got)
	}

	// The drop closed the socket, so the peer sees the connection die
	// and a stalled writer would have been unblocked.
	peer.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := peer.ReadMessage(); err == nil {
		t.Error("peer read should fail once the spectator is dropped")
	}
}

func TestDisconnectDropsClient(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	waitForClients(t, h, 1)

	conn.Close()
	waitForClients(t, h, 0)
}

func TestWatchRejectsPost(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	resp, err := srv.Client().Post(srv.URL+"/watch", "text/plain", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == 101 {
		t.Error("POST should not upgrade")
	}
}
