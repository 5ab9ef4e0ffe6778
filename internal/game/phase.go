package game

// Phase is the lifecycle stage of a room.
type Phase string

const (
	PhaseLobby         Phase = "LOBBY"
	PhaseSetup         Phase = "SETUP"
	PhasePlaying       Phase = "PLAYING"
	PhaseRoundFinished Phase = "ROUND_FINISHED"
	PhaseGameOver      Phase = "GAME_OVER"
)

// TurnState is the sub-phase of the active player's turn.
type TurnState string

const (
	// TurnIdle is used outside PLAYING.
	TurnIdle TurnState = "IDLE"
	// TurnChoosing waits for the player to draw from the deck or discard.
	TurnChoosing TurnState = "CHOOSING"
	// TurnPlacing waits for the player to place or discard the drawn card.
	TurnPlacing TurnState = "PLACING"
)
