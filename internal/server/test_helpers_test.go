package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lox/skyjo/internal/game"
	"github.com/lox/skyjo/internal/protocol"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testLogger creates a logger that discards output for tests
func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

func newTestManager(t *testing.T, opts ...ManagerOption) *GameManager {
	t.Helper()
	return NewGameManager(testLogger(), append([]ManagerOption{WithSeed(7)}, opts...)...)
}

// startTestServer serves a fresh manager over httptest.
func startTestServer(t *testing.T) (*httptest.Server, *GameManager) {
	t.Helper()
	gm := newTestManager(t)
	srv, err := NewServer(gm, testLogger())
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.closeAll()
		ts.Close()
	})
	return ts, gm
}

type testClient struct {
	t      *testing.T
	conn   *websocket.Conn
	format protocol.Format
}

func dial(t *testing.T, ts *httptest.Server, format protocol.Format) *testClient {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	if format != "" {
		url += "?format=" + string(format)
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err, "dial %s", url)
	t.Cleanup(func() { _ = conn.Close() })
	return &testClient{t: t, conn: conn, format: format}
}

func (c *testClient) send(frame string) {
	c.t.Helper()
	require.NoError(c.t, c.conn.WriteMessage(websocket.TextMessage, []byte(frame)))
}

// next reads frames until one of type typ arrives.
func (c *testClient) next(typ protocol.MessageType) []byte {
	c.t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		require.NoError(c.t, c.conn.SetReadDeadline(deadline))
		kind, data, err := c.conn.ReadMessage()
		require.NoError(c.t, err, "waiting for %s", typ)
		if c.format == protocol.FormatMsgpack {
			require.Equal(c.t, websocket.BinaryMessage, kind)
		}
		got, err := protocol.PeekType(c.format, data)
		require.NoError(c.t, err)
		if got == typ {
			return data
		}
	}
}

// roomUpdate is a received room_state frame converted back to a snapshot.
type roomUpdate struct {
	You   string
	State game.Snapshot
}

// state reads room states until match accepts one.
func (c *testClient) state(match func(roomUpdate) bool) roomUpdate {
	c.t.Helper()
	for {
		var rs protocol.RoomState
		require.NoError(c.t, protocol.Unmarshal(c.format, c.next(protocol.TypeRoomState), &rs))
		u := roomUpdate{You: rs.You, State: rs.State.Snapshot()}
		if match(u) {
			return u
		}
	}
}

func (c *testClient) errorFrame() protocol.Error {
	c.t.Helper()
	var e protocol.Error
	require.NoError(c.t, protocol.Unmarshal(c.format, c.next(protocol.TypeError), &e))
	return e
}
