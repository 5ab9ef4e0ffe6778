package server

import (
	"errors"

	"github.com/lox/skyjo/internal/deck"
	"github.com/lox/skyjo/internal/game"
	"github.com/lox/skyjo/internal/protocol"
)

// Wire error codes. Clients match on these, never on messages.
const (
	CodeInvalidMessage      = "invalid_message"
	CodeValidation          = "validation"
	CodeIllegalTransition   = "illegal_transition"
	CodeNotYourTurn         = "not_your_turn"
	CodePlayerNotFound      = "player_not_found"
	CodeRoomNotFound        = "room_not_found"
	CodeAlreadyStarted      = "already_started"
	CodeRoomFull            = "room_full"
	CodeInsufficientPlayers = "insufficient_players"
	CodeNotReady            = "not_ready"
	CodeGameInProgress      = "game_in_progress"
	CodeNotInRoom           = "not_in_room"
	CodeEmptyDeck           = "empty_deck"
	CodeInternal            = "internal"
)

// ErrNotInRoom is returned for room commands on an unbound connection.
var ErrNotInRoom = errors.New("connection has not joined a room")

var errorCodes = []struct {
	err  error
	code string
}{
	{protocol.ErrInvalidMessage, CodeInvalidMessage},
	{game.ErrValidation, CodeValidation},
	{game.ErrIllegalTransition, CodeIllegalTransition},
	{game.ErrNotYourTurn, CodeNotYourTurn},
	{game.ErrPlayerNotFound, CodePlayerNotFound},
	{ErrRoomNotFound, CodeRoomNotFound},
	{game.ErrAlreadyStarted, CodeAlreadyStarted},
	{game.ErrRoomFull, CodeRoomFull},
	{game.ErrInsufficientPlayers, CodeInsufficientPlayers},
	{game.ErrNotReady, CodeNotReady},
	{game.ErrGameInProgress, CodeGameInProgress},
	{ErrNotInRoom, CodeNotInRoom},
	{deck.ErrEmptyDeck, CodeEmptyDeck},
}

// ErrorCode maps an error from the engine or registry to its wire code.
func ErrorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}
