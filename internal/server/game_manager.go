package server

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/skyjo/internal/deck"
	"github.com/lox/skyjo/internal/game"
	"github.com/lox/skyjo/internal/randutil"
	"github.com/lox/skyjo/internal/roomcode"
	"github.com/rs/zerolog"
)

// ErrRoomNotFound is returned for codes that name no live room.
var ErrRoomNotFound = errors.New("room not found")

// maxCodeAttempts bounds retries when a generated code is already taken.
const maxCodeAttempts = 8

// PlayerIdentity is who is asking to sit down.
type PlayerIdentity struct {
	ID   string
	Name string
}

// RoomSummary holds lightweight metadata for room listings.
type RoomSummary struct {
	Code       string     `json:"code"`
	Phase      game.Phase `json:"phase"`
	Round      int        `json:"round"`
	Players    int        `json:"players"`
	MaxPlayers int        `json:"max_players"`
	IdleMs     int64      `json:"idle_ms"`
}

// managedRoom pairs a room with the lock that makes it single-writer.
type managedRoom struct {
	mu         sync.Mutex
	room       *game.Room
	lastActive time.Time
}

// GameManager is the registry of live rooms. Each room is mutated by one
// caller at a time; different rooms proceed in parallel.
type GameManager struct {
	logger  zerolog.Logger
	clock   quartz.Clock
	rules   RulesConfig
	seed    int64
	created atomic.Uint64
	newCode func() (string, error)
	// listener is read while a room lock is held, so it must not share
	// mu, which Reap holds while taking room locks.
	listener atomic.Pointer[func(game.Snapshot)]

	mu    sync.RWMutex
	rooms map[string]*managedRoom
}

// ManagerOption configures a GameManager.
type ManagerOption func(*GameManager)

// WithClock sets the clock used for idle tracking and the reaper.
func WithClock(clock quartz.Clock) ManagerOption {
	return func(gm *GameManager) { gm.clock = clock }
}

// WithSeed fixes the seed every room's shuffle seed is derived from.
func WithSeed(seed int64) ManagerOption {
	return func(gm *GameManager) { gm.seed = seed }
}

// WithRules sets the rule defaults for new rooms.
func WithRules(rules RulesConfig) ManagerOption {
	return func(gm *GameManager) { gm.rules = rules }
}

// WithCodeGenerator replaces room code generation.
func WithCodeGenerator(fn func() (string, error)) ManagerOption {
	return func(gm *GameManager) { gm.newCode = fn }
}

// NewGameManager constructs an empty registry.
func NewGameManager(logger zerolog.Logger, opts ...ManagerOption) *GameManager {
	gm := &GameManager{
		logger:  logger.With().Str("component", "game_manager").Logger(),
		clock:   quartz.NewReal(),
		rules:   DefaultConfig().Rules,
		newCode: roomcode.Generate,
		rooms:   make(map[string]*managedRoom),
	}
	for _, opt := range opts {
		opt(gm)
	}
	if gm.seed == 0 {
		gm.seed, _ = randutil.Resolve(nil)
	}
	return gm
}

// SetListener registers fn to receive every accepted state change. fn runs
// while the room is locked, so snapshots of one room arrive in order; it
// must not block or call back into the manager.
func (gm *GameManager) SetListener(fn func(game.Snapshot)) {
	gm.listener.Store(&fn)
}

// CreateRoom registers an empty lobby and returns its code.
func (gm *GameManager) CreateRoom() (string, error) {
	n := gm.created.Add(1)
	seed := randutil.Derive(gm.seed, n)

	for range maxCodeAttempts {
		code, err := gm.newCode()
		if err != nil {
			return "", fmt.Errorf("generate room code: %w", err)
		}
		if err := roomcode.Validate(code); err != nil {
			return "", fmt.Errorf("generate room code: %w", err)
		}

		gm.mu.Lock()
		if _, taken := gm.rooms[code]; taken {
			gm.mu.Unlock()
			continue
		}
		room := game.NewRoom(code, randutil.New(seed), game.WithMaxPlayers(gm.rules.MaxPlayers))
		gm.rooms[code] = &managedRoom{room: room, lastActive: gm.clock.Now()}
		total := len(gm.rooms)
		gm.mu.Unlock()

		gm.logger.Info().
			Str("room", code).
			Int64("seed", seed).
			Int("rooms", total).
			Msg("Room created")
		return code, nil
	}
	return "", fmt.Errorf("no free room code after %d attempts", maxCodeAttempts)
}

// JoinRoom seats a player, or re-attaches one who already holds a seat.
func (gm *GameManager) JoinRoom(code string, who PlayerIdentity) (game.Snapshot, error) {
	return gm.update(code, "join", func(r *game.Room) error {
		return r.Join(who.ID, who.Name)
	})
}

// LeaveRoom frees a lobby seat.
func (gm *GameManager) LeaveRoom(code, playerID string) (game.Snapshot, error) {
	return gm.update(code, "leave", func(r *game.Room) error {
		return r.Leave(playerID)
	})
}

// StartGame deals the first round. A zero WinThreshold takes the
// configured default.
func (gm *GameManager) StartGame(code string, opts game.Options) (game.Snapshot, error) {
	if opts.WinThreshold <= 0 {
		opts.WinThreshold = gm.rules.WinThreshold
	}
	return gm.update(code, "start", func(r *game.Room) error {
		return r.Start(opts)
	})
}

// SubmitAction applies one action on behalf of playerID.
func (gm *GameManager) SubmitAction(code, playerID string, action game.Action) (game.Snapshot, error) {
	if action == nil {
		return game.Snapshot{}, fmt.Errorf("%w: missing action", game.ErrValidation)
	}
	return gm.update(code, string(action.Kind()), func(r *game.Room) error {
		return r.Apply(playerID, action)
	})
}

// AdvanceRound deals the next round once the current one is scored.
func (gm *GameManager) AdvanceRound(code string) (game.Snapshot, error) {
	return gm.update(code, "next_round", func(r *game.Room) error {
		return r.NextRound()
	})
}

// Restart begins a new game in a finished room.
func (gm *GameManager) Restart(code string) (game.Snapshot, error) {
	return gm.update(code, "restart", func(r *game.Room) error {
		return r.Restart()
	})
}

// Snapshot returns the current state without touching the idle timer.
func (gm *GameManager) Snapshot(code string) (game.Snapshot, error) {
	mr, err := gm.lookup(code)
	if err != nil {
		return game.Snapshot{}, err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()
	return mr.room.Snapshot(), nil
}

// Seated returns the room state if playerID holds a seat in it, and
// ErrPlayerNotFound otherwise. It does not touch the idle timer.
func (gm *GameManager) Seated(code, playerID string) (game.Snapshot, error) {
	mr, err := gm.lookup(code)
	if err != nil {
		return game.Snapshot{}, err
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if !mr.room.HasPlayer(playerID) {
		return game.Snapshot{}, fmt.Errorf("%w: %s", game.ErrPlayerNotFound, playerID)
	}
	return mr.room.Snapshot(), nil
}

// ListRooms returns a summary of every live room ordered by code.
func (gm *GameManager) ListRooms() []RoomSummary {
	gm.mu.RLock()
	rooms := make([]*managedRoom, 0, len(gm.rooms))
	for _, mr := range gm.rooms {
		rooms = append(rooms, mr)
	}
	gm.mu.RUnlock()

	now := gm.clock.Now()
	summaries := make([]RoomSummary, 0, len(rooms))
	for _, mr := range rooms {
		mr.mu.Lock()
		summaries = append(summaries, RoomSummary{
			Code:       mr.room.Code(),
			Phase:      mr.room.Phase(),
			Round:      mr.room.Round(),
			Players:    mr.room.PlayerCount(),
			MaxPlayers: mr.room.MaxPlayers(),
			IdleMs:     now.Sub(mr.lastActive).Milliseconds(),
		})
		mr.mu.Unlock()
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Code < summaries[j].Code })
	return summaries
}

// RoomCount returns the number of live rooms.
func (gm *GameManager) RoomCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.rooms)
}

// DeleteRoom removes a room by code.
func (gm *GameManager) DeleteRoom(code string) bool {
	code = roomcode.Normalize(code)
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if _, ok := gm.rooms[code]; !ok {
		return false
	}
	delete(gm.rooms, code)
	return true
}

// Reap removes rooms nobody is seated in once they have been untouched for
// emptyGrace, and seated rooms with no game running (LOBBY or GAME_OVER)
// once untouched for idleTTL. A game in progress is never reaped; a stalled
// turn waits for its player. It returns the codes removed.
func (gm *GameManager) Reap(emptyGrace, idleTTL time.Duration) []string {
	now := gm.clock.Now()

	gm.mu.Lock()
	defer gm.mu.Unlock()

	var reaped []string
	for code, mr := range gm.rooms {
		mr.mu.Lock()
		idle := now.Sub(mr.lastActive)
		empty := mr.room.IsEmpty()
		phase := mr.room.Phase()
		mr.mu.Unlock()

		if (empty && idle >= emptyGrace) || (!inProgress(phase) && idle >= idleTTL) {
			delete(gm.rooms, code)
			reaped = append(reaped, code)
			gm.logger.Info().
				Str("room", code).
				Bool("empty", empty).
				Str("phase", string(phase)).
				Dur("idle", idle).
				Msg("Room reaped")
		}
	}
	sort.Strings(reaped)
	return reaped
}

// StartReaper sweeps every interval until ctx is done. Empty rooms get one
// interval of grace so a creator has time to sit down.
func (gm *GameManager) StartReaper(ctx context.Context, interval, idleTTL time.Duration) quartz.Waiter {
	gm.logger.Debug().
		Dur("interval", interval).
		Dur("idle_ttl", idleTTL).
		Msg("Reaper started")
	return gm.clock.TickerFunc(ctx, interval, func() error {
		gm.Reap(interval, idleTTL)
		return nil
	}, "reaper")
}

func inProgress(p game.Phase) bool {
	switch p {
	case game.PhaseSetup, game.PhasePlaying, game.PhaseRoundFinished:
		return true
	}
	return false
}

func (gm *GameManager) lookup(code string) (*managedRoom, error) {
	code = roomcode.Normalize(code)
	if err := roomcode.Validate(code); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoomNotFound, err)
	}
	gm.mu.RLock()
	mr, ok := gm.rooms[code]
	gm.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	return mr, nil
}

func (gm *GameManager) notify(snap game.Snapshot) {
	if fn := gm.listener.Load(); fn != nil && *fn != nil {
		(*fn)(snap)
	}
}

// update runs fn under the room's lock and returns the resulting snapshot.
// A rejected call leaves the room and its idle timer unchanged.
func (gm *GameManager) update(code, op string, fn func(*game.Room) error) (game.Snapshot, error) {
	mr, err := gm.lookup(code)
	if err != nil {
		return game.Snapshot{}, err
	}

	mr.mu.Lock()
	defer mr.mu.Unlock()

	before := mr.room.Phase()
	if err := fn(mr.room); err != nil {
		gm.logRejection(mr.room, op, err)
		return game.Snapshot{}, err
	}
	mr.lastActive = gm.clock.Now()

	snap := mr.room.Snapshot()
	gm.logger.Debug().
		Str("room", snap.Code).
		Str("op", op).
		Str("phase", string(snap.Phase)).
		Str("turn", string(snap.Turn)).
		Str("active", snap.ActivePlayer).
		Msg("Room updated")
	if before != game.PhaseGameOver && snap.Phase == game.PhaseGameOver {
		gm.logger.Info().
			Str("room", snap.Code).
			Strs("winners", snap.Winners).
			Int("rounds", snap.Round).
			Msg("Game over")
	}
	gm.notify(snap)
	return snap, nil
}

func (gm *GameManager) logRejection(r *game.Room, op string, err error) {
	if errors.Is(err, deck.ErrEmptyDeck) {
		c := r.Counts()
		gm.logger.Error().
			Err(err).
			Str("room", r.Code()).
			Str("op", op).
			Int("round", r.Round()).
			Int("discard", c.Discard).
			Int("grids", c.Grids).
			Int("distinct", c.Distinct).
			Msg("Draw pile exhausted")
		return
	}
	gm.logger.Debug().
		Err(err).
		Str("room", r.Code()).
		Str("op", op).
		Str("phase", string(r.Phase())).
		Msg("Request rejected")
}
