package game

import "errors"

// Rejections. None of them mutate the room.
var (
	ErrValidation          = errors.New("invalid action")
	ErrIllegalTransition   = errors.New("action not allowed now")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrAlreadyStarted      = errors.New("game already started")
	ErrRoomFull            = errors.New("room is full")
	ErrInsufficientPlayers = errors.New("not enough players")
	ErrNotReady            = errors.New("round not finished")
	ErrGameInProgress      = errors.New("game in progress")
)
