// Package game implements the rules of Skyjo for a single room.
//
// The main type is Room, which moves through the phases of a game:
//
//	LOBBY -> SETUP -> PLAYING -> ROUND_FINISHED -> SETUP -> ... -> GAME_OVER
//
// # Basic Usage
//
//	r := game.NewRoom("ABC123", randutil.New(42))
//	_ = r.Join("u1", "Alice")
//	_ = r.Join("u2", "Bob")
//	_ = r.Start(game.Options{WinThreshold: 100})
//	_ = r.Apply("u1", game.SetupReveal{Index: 0})
//	...
//	snap := r.Snapshot()
//
// Every call either applies completely or returns an error and leaves the
// room untouched. Errors wrap one of the package sentinels so callers can
// classify them with errors.Is.
//
// # Deterministic Testing
//
// The room draws all randomness from the *rand.Rand passed to NewRoom, so
// the same seed and the same sequence of calls always produce the same
// scores. WithDeckFactory replaces the shuffled deck entirely for tests
// that need specific grids.
//
// # Concurrency
//
// A Room is not safe for concurrent use. The server wraps each room in its
// own mutex so one action is fully applied before the next is accepted.
package game
