package availability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"campusfm/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialHubConn upgrades one server-side connection, registers it in the hub
// and returns the client side for draining.
func dialHubConn(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientConn.Close() })

	select {
	case <-registered:
	case <-time.After(time.Second):
		t.Fatal("connection was not registered")
	}
	return clientConn
}

func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func TestHub_ConcurrentBroadcastsSerializeWrites(t *testing.T) {
	hub := NewHub()
	clientConn := dialHubConn(t, hub)
	go drain(clientConn)

	snap := &Snapshot{
		GeneratedAt: time.Now(),
		Rooms:       []RoomState{{Room: domain.Room{ID: 1, Name: "Lab A-1"}, Status: domain.RoomAvailable}},
	}

	// The ticker and the manual refresh endpoint can broadcast at the same
	// time; writes to one connection must be serialized.
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				hub.Broadcast(snap)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, hub.ClientCount())
}

func TestHub_SendConcurrentWithBroadcast(t *testing.T) {
	hub := NewHub()
	clientConn := dialHubConn(t, hub)
	go drain(clientConn)

	var serverConn *websocket.Conn
	for conn := range hub.clients {
		serverConn = conn
	}
	require.NotNil(t, serverConn)

	snap := &Snapshot{GeneratedAt: time.Now()}

	// The greeting write in the feed handler races the broadcast path.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			hub.Broadcast(snap)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			assert.NoError(t, hub.Send(serverConn, snap))
		}
	}()
	wg.Wait()
}

func TestHub_SendToUnregisteredConn(t *testing.T) {
	hub := NewHub()
	clientConn := dialHubConn(t, hub)
	go drain(clientConn)

	var serverConn *websocket.Conn
	for conn := range hub.clients {
		serverConn = conn
	}
	hub.Unregister(serverConn)

	assert.Error(t, hub.Send(serverConn, &Snapshot{}))
	assert.Equal(t, 0, hub.ClientCount())
}
