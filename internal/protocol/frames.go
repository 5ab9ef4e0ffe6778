package protocol

//go:generate msgp -io=false -tests=false

// MessageType identifies a frame on the wire.
type MessageType string

const (
	// Client -> Server
	TypeCreateRoom MessageType = "create_room"
	TypeJoinRoom   MessageType = "join_room"
	TypeRejoin     MessageType = "rejoin"
	TypeLeaveRoom  MessageType = "leave_room"
	TypeStartGame  MessageType = "start_game"
	TypeAction     MessageType = "action"
	TypeNextRound  MessageType = "next_round"
	TypeRestart    MessageType = "restart"

	// Server -> Client
	TypeRoomState MessageType = "room_state"
	TypeError     MessageType = "error"
)

// Server -> Client Messages. JSON and msgpack share these structs, so both
// encodings always carry the same fields.

// RoomState is sent to every seat after each accepted change, and to a
// single connection after it joins or rejoins.
type RoomState struct {
	Type  MessageType `json:"type" msg:"type"`
	You   string      `json:"you,omitempty" msg:"you"`
	State StateMsg    `json:"state" msg:"state"`
}

// StateMsg is the wire form of a room snapshot.
type StateMsg struct {
	Code         string        `json:"code" msg:"code"`
	Phase        string        `json:"phase" msg:"phase"`
	Turn         string        `json:"turn" msg:"turn"`
	Round        int           `json:"round" msg:"round"`
	Active       int           `json:"active" msg:"active"`
	ActivePlayer string        `json:"active_player,omitempty" msg:"active_player"`
	Players      []PlayerMsg   `json:"players" msg:"players"`
	DeckSize     int           `json:"deck_size" msg:"deck_size"`
	DiscardSize  int           `json:"discard_size" msg:"discard_size"`
	DiscardTop   *CardMsg      `json:"discard_top,omitempty" msg:"discard_top"`
	Pending      *CardMsg      `json:"pending,omitempty" msg:"pending"`
	Initiator    string        `json:"initiator,omitempty" msg:"initiator"`
	WinThreshold int           `json:"win_threshold" msg:"win_threshold"`
	SingleRound  bool          `json:"single_round,omitempty" msg:"single_round"`
	LastClears   []ClearMsg    `json:"last_clears,omitempty" msg:"last_clears"`
	Standings    []StandingMsg `json:"standings" msg:"standings"`
	Winners      []string      `json:"winners,omitempty" msg:"winners"`
}

// PlayerMsg is one seat. Grid is empty before the first deal.
type PlayerMsg struct {
	ID            string    `json:"id" msg:"id"`
	Name          string    `json:"name" msg:"name"`
	Grid          []CardMsg `json:"grid,omitempty" msg:"grid"`
	RoundScore    int       `json:"round_score" msg:"round_score"`
	RawScore      int       `json:"raw_score" msg:"raw_score"`
	Total         int       `json:"total" msg:"total"`
	Revealed      int       `json:"revealed" msg:"revealed"`
	Penalized     bool      `json:"penalized,omitempty" msg:"penalized"`
	FullyRevealed bool      `json:"fully_revealed,omitempty" msg:"fully_revealed"`
}

// CardMsg is a card; Value is nil while it is face down.
type CardMsg struct {
	Value   *int `json:"value" msg:"value"`
	Visible bool `json:"visible" msg:"visible"`
	Cleared bool `json:"cleared,omitempty" msg:"cleared"`
}

// ClearMsg reports a column removed by the last turn.
type ClearMsg struct {
	PlayerID string `json:"player_id" msg:"player_id"`
	Column   int    `json:"column" msg:"column"`
	Value    int    `json:"value" msg:"value"`
}

// StandingMsg is one line of the standings table.
type StandingMsg struct {
	PlayerID string `json:"player_id" msg:"player_id"`
	Name     string `json:"name" msg:"name"`
	Total    int    `json:"total" msg:"total"`
	Rank     int    `json:"rank" msg:"rank"`
}

// Error reports a rejected frame. Code is stable; Message is for humans.
type Error struct {
	Type    MessageType `json:"type" msg:"type"`
	Code    string      `json:"code" msg:"code"`
	Message string      `json:"message" msg:"message"`
}
