package protocol

import (
	"github.com/lox/skyjo/internal/game"
)

// Command is a decoded client frame. The concrete types below are the only
// implementations.
type Command interface {
	Type() MessageType
	command()
}

// CreateRoom opens a room and seats the sender in it.
type CreateRoom struct {
	Player string
	Name   string
}

// JoinRoom takes a seat in an existing room.
type JoinRoom struct {
	Room   string
	Player string
	Name   string
}

// Rejoin re-attaches a connection to a seat the player already holds.
type Rejoin struct {
	Room   string
	Player string
}

// LeaveRoom gives up the sender's seat while the room is in the lobby.
type LeaveRoom struct{}

// StartGame deals the first round.
type StartGame struct {
	Options game.Options
}

// SubmitAction carries one game action from the sender.
type SubmitAction struct {
	Action game.Action
}

// NextRound deals the next round after a round has been scored.
type NextRound struct{}

// Restart begins a new game with the same seats.
type Restart struct{}

func (CreateRoom) Type() MessageType   { return TypeCreateRoom }
func (JoinRoom) Type() MessageType     { return TypeJoinRoom }
func (Rejoin) Type() MessageType       { return TypeRejoin }
func (LeaveRoom) Type() MessageType    { return TypeLeaveRoom }
func (StartGame) Type() MessageType    { return TypeStartGame }
func (SubmitAction) Type() MessageType { return TypeAction }
func (NextRound) Type() MessageType    { return TypeNextRound }
func (Restart) Type() MessageType      { return TypeRestart }

func (CreateRoom) command()   {}
func (JoinRoom) command()     {}
func (Rejoin) command()       {}
func (LeaveRoom) command()    {}
func (StartGame) command()    {}
func (SubmitAction) command() {}
func (NextRound) command()    {}
func (Restart) command()      {}

// frame is the flat JSON shape every client message shares.
type frame struct {
	Type         MessageType     `json:"type"`
	Room         string          `json:"room,omitempty"`
	Player       string          `json:"player,omitempty"`
	Name         string          `json:"name,omitempty"`
	Action       game.ActionKind `json:"action,omitempty"`
	Index        *int            `json:"index,omitempty"`
	WinThreshold int             `json:"win_threshold,omitempty"`
	SingleRound  bool            `json:"single_round,omitempty"`
}
