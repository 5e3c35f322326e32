package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"handloom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	connected    atomic.Int32
	disconnected atomic.Int32
}

func (o *countingObserver) StreamConnected()    { o.connected.Add(1) }
func (o *countingObserver) StreamDisconnected() { o.disconnected.Add(1) }

func newTestHub(t *testing.T) (*Hub, *countingObserver, func(userID uuid.UUID) *websocket.Conn) {
	t.Helper()

	observer := &countingObserver{}
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), observer)
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := uuid.MustParse(r.URL.Query().Get("user"))
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(context.Background(), conn, userID)
	}))
	t.Cleanup(server.Close)

	dial := func(userID uuid.UUID) *websocket.Conn {
		url := "ws" + strings.TrimPrefix(server.URL, "http") + "?user=" + userID.String()
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })

		require.Eventually(t, func() bool {
			return hub.ConnectionCount(userID) > 0
		}, time.Second, 5*time.Millisecond)

		return conn
	}

	return hub, observer, dial
}

func TestHub_BroadcastReachesRecipientsOnly(t *testing.T) {
	hub, observer, dial := newTestHub(t)

	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	aliceConn := dial(alice)
	bobConn := dial(bob)
	carolConn := dial(carol)
	assert.Equal(t, int32(3), observer.connected.Load())

	msg := &entity.Message{ID: uuid.New(), SenderID: alice, ReceiverID: &bob, Content: "hello"}
	require.NoError(t, hub.Broadcast(context.Background(), msg, []uuid.UUID{alice, bob}))

	for _, conn := range []*websocket.Conn{aliceConn, bobConn} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)

		var event struct {
			Type string `json:"type"`
			Data struct {
				ID      uuid.UUID `json:"id"`
				Content string    `json:"content"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, EventMessage, event.Type)
		assert.Equal(t, msg.ID, event.Data.ID)
		assert.Equal(t, "hello", event.Data.Content)
	}

	require.NoError(t, carolConn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := carolConn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub, observer, dial := newTestHub(t)

	userID := uuid.New()
	conn := dial(userID)
	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return hub.ConnectionCount(userID) == 0 && observer.disconnected.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestHub_Close(t *testing.T) {
	hub, _, dial := newTestHub(t)

	userID := uuid.New()
	conn := dial(userID)
	hub.Close()

	assert.Equal(t, 0, hub.ConnectionCount(userID))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func TestHub_BroadcastWithoutConnections(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	assert.NoError(t, hub.Broadcast(context.Background(), &entity.Message{}, []uuid.UUID{uuid.New()}))
}
