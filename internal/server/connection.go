package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lox/skyjo/internal/game"
	"github.com/lox/skyjo/internal/protocol"
	"github.com/lox/skyjo/internal/roomcode"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	sendBuffer = 64
)

// ErrConnectionClosed is returned when sending on a closed connection.
var ErrConnectionClosed = errors.New("connection closed")

type outbound struct {
	binary bool
	data   []byte
}

// Connection is one websocket client. It is bound to at most one seat.
type Connection struct {
	conn   *websocket.Conn
	server *Server
	format protocol.Format
	send   chan outbound
	logger zerolog.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	mu       sync.RWMutex
	roomCode string
	playerID string
}

// NewConnection wraps an upgraded websocket.
func NewConnection(conn *websocket.Conn, server *Server, format protocol.Format, logger zerolog.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:   conn,
		server: server,
		format: format,
		send:   make(chan outbound, sendBuffer),
		logger: logger.With().Str("component", "conn").Str("remote", conn.RemoteAddr().String()).Logger(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins handling the connection.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection shuts down.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close shuts the connection down. It is safe to call more than once.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// Binding returns the room and player this connection acts for.
func (c *Connection) Binding() (room, player string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roomCode, c.playerID
}

func (c *Connection) bind(room, player string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roomCode = room
	c.playerID = player
}

// Send queues a frame without blocking. A client too slow to drain its
// buffer is disconnected.
func (c *Connection) Send(msg protocol.Outbound) error {
	data, err := protocol.Marshal(c.format, msg)
	if err != nil {
		return err
	}

	select {
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- outbound{binary: c.format.Binary(), data: data}:
		return nil
	default:
		c.logger.Warn().Msg("Send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

func (c *Connection) sendState(s game.Snapshot) {
	_, player := c.Binding()
	if err := c.Send(protocol.NewRoomState(player, s)); err != nil {
		c.logger.Debug().Err(err).Msg("Dropped room state")
	}
}

func (c *Connection) sendError(err error) {
	code := ErrorCode(err)
	if code == CodeInternal {
		c.logger.Error().Err(err).Msg("Unexpected error handling frame")
	}
	_ = c.Send(protocol.NewError(code, err.Error()))
}

// readPump handles incoming frames from the client.
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn().Err(err).Msg("WebSocket read error")
			}
			return
		}
		c.handleFrame(data)
	}
}

// writePump handles outgoing frames to the client.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			kind := websocket.TextMessage
			if msg.binary {
				kind = websocket.BinaryMessage
			}
			if err := c.conn.WriteMessage(kind, msg.data); err != nil {
				c.logger.Debug().Err(err).Msg("Write failed")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

func (c *Connection) handleFrame(data []byte) {
	cmd, err := c.server.decoder.Decode(data)
	if err != nil {
		c.sendError(err)
		return
	}
	room, player := c.Binding()
	c.logger.Debug().
		Str("type", string(cmd.Type())).
		Str("room", room).
		Str("player", player).
		Msg("Received frame")

	if err := c.dispatch(cmd); err != nil {
		c.sendError(err)
	}
}

func (c *Connection) dispatch(cmd protocol.Command) error {
	gm := c.server.manager

	switch m := cmd.(type) {
	case protocol.CreateRoom:
		code, err := gm.CreateRoom()
		if err != nil {
			return err
		}
		return c.join(code, PlayerIdentity{ID: m.Player, Name: m.Name})

	case protocol.JoinRoom:
		return c.join(m.Room, PlayerIdentity{ID: m.Player, Name: m.Name})

	case protocol.Rejoin:
		snap, err := gm.Seated(m.Room, m.Player)
		if err != nil {
			return err
		}
		c.bind(snap.Code, m.Player)
		c.logger.Info().Str("room", snap.Code).Str("player", m.Player).Msg("Player rejoined")
		c.sendState(snap)
		return nil
	}

	room, player := c.Binding()
	if room == "" {
		return ErrNotInRoom
	}

	var err error
	switch m := cmd.(type) {
	case protocol.LeaveRoom:
		if _, err = gm.LeaveRoom(room, player); err == nil {
			c.bind("", "")
		}
	case protocol.StartGame:
		_, err = gm.StartGame(room, m.Options)
	case protocol.SubmitAction:
		_, err = gm.SubmitAction(room, player, m.Action)
	case protocol.NextRound:
		_, err = gm.AdvanceRound(room)
	case protocol.Restart:
		_, err = gm.Restart(room)
	default:
		err = protocol.ErrInvalidMessage
	}
	return err
}

// join binds the connection before joining so the broadcast of the new
// seat reaches it, and restores the previous binding on failure.
func (c *Connection) join(code string, who PlayerIdentity) error {
	code = roomcode.Normalize(code)
	prevRoom, prevPlayer := c.Binding()
	c.bind(code, who.ID)

	snap, err := c.server.manager.JoinRoom(code, who)
	if err != nil {
		c.bind(prevRoom, prevPlayer)
		return err
	}
	c.logger.Info().
		Str("room", snap.Code).
		Str("player", who.ID).
		Int("seated", len(snap.Players)).
		Msg("Player joined")
	return nil
}
