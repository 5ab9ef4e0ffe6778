package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/lox/skyjo/internal/game"
	"github.com/lox/skyjo/internal/protocol"
	"github.com/lox/skyjo/internal/roomcode"
	"github.com/rs/zerolog"
)

// Server is the HTTP and websocket front end for a GameManager. It turns
// frames into registry calls and fans snapshots out to seated connections.
type Server struct {
	logger   zerolog.Logger
	manager  *GameManager
	decoder  *protocol.Decoder
	upgrader websocket.Upgrader

	mu          sync.RWMutex
	connections map[*Connection]struct{}
}

// NewServer wires a server to manager and subscribes to its updates.
func NewServer(manager *GameManager, logger zerolog.Logger) (*Server, error) {
	decoder, err := protocol.NewDecoder()
	if err != nil {
		return nil, err
	}
	s := &Server{
		logger:  logger.With().Str("component", "server").Logger(),
		manager: manager,
		decoder: decoder,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		connections: make(map[*Connection]struct{}),
	}
	manager.SetListener(s.broadcast)
	return s, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/rooms", s.handleListRooms)
	r.Post("/rooms", s.handleCreateRoom)
	r.Get("/rooms/{code}", s.handleGetRoom)
	r.Delete("/rooms/{code}", s.handleDeleteRoom)
	r.Get("/ws", s.handleWebSocket)
	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.serveListener(ctx, ln)
}

func (s *Server) serveListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("Server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.closeAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ConnectionCount returns the number of open websocket connections.
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) closeAll() {
	s.mu.RLock()
	conns := make([]*Connection, 0, len(s.connections))
	for c := range s.connections {
		conns = append(conns, c)
	}
	s.mu.RUnlock()
	for _, c := range conns {
		_ = c.Close()
	}
}

// broadcast sends snap to every connection bound to its room, each
// addressed to that connection's player.
func (s *Server) broadcast(snap game.Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for c := range s.connections {
		room, player := c.Binding()
		if room != snap.Code {
			continue
		}
		if err := c.Send(protocol.NewRoomState(player, snap)); err == nil {
			count++
		}
	}
	s.logger.Debug().
		Str("room", snap.Code).
		Str("phase", string(snap.Phase)).
		Int("recipients", count).
		Msg("Broadcast room state")
}

func (s *Server) register(c *Connection) {
	s.mu.Lock()
	s.connections[c] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info().Int("total", total).Msg("Client connected")
}

// unregister drops a closed connection. A player who disconnects from a
// lobby gives up the seat; once a game is running the seat is kept for a
// rejoin.
func (s *Server) unregister(c *Connection) {
	s.mu.Lock()
	delete(s.connections, c)
	total := len(s.connections)
	s.mu.Unlock()

	room, player := c.Binding()
	if room != "" && player != "" && !s.playerConnected(room, player) {
		if snap, err := s.manager.Snapshot(room); err == nil && snap.Phase == game.PhaseLobby {
			if _, err := s.manager.LeaveRoom(room, player); err == nil {
				s.logger.Info().Str("room", room).Str("player", player).Msg("Freed lobby seat")
			}
		}
	}
	s.logger.Info().Int("total", total).Msg("Client disconnected")
}

func (s *Server) playerConnected(room, player string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.connections {
		if r, p := c.Binding(); r == room && p == player {
			return true
		}
	}
	return false
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	format, err := protocol.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	client := NewConnection(conn, s, format, s.logger)
	s.register(client)
	client.Start()

	go func() {
		<-client.Done()
		s.unregister(client)
	}()
}

// Health is the body of GET /health.
type Health struct {
	Status      string `json:"status"`
	Rooms       int    `json:"rooms"`
	Connections int    `json:"connections"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Health{
		Status:      "ok",
		Rooms:       s.manager.RoomCount(),
		Connections: s.ConnectionCount(),
	})
}

func (s *Server) handleListRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.manager.ListRooms())
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, _ *http.Request) {
	code, err := s.manager.CreateRoom()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create room")
		writeJSON(w, http.StatusInternalServerError, protocol.NewError(CodeInternal, err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"code": code})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	snap, err := s.manager.Snapshot(chi.URLParam(r, "code"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, protocol.NewError(ErrorCode(err), err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, protocol.NewRoomState("", snap).State)
}

// handleDeleteRoom closes a room by hand. Connections still bound to it get
// room_not_found on their next frame.
func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if !s.manager.DeleteRoom(code) {
		writeJSON(w, http.StatusNotFound, protocol.NewError(CodeRoomNotFound, "room not found"))
		return
	}
	s.logger.Info().Str("room", roomcode.Normalize(code)).Msg("Room deleted")
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
