package protocol

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lox/skyjo/internal/game"
	"github.com/lox/skyjo/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// midRoundSnapshot plays a seeded room into PLAYING with a drawn card
// pending, so the snapshot has hidden, visible and nil-valued cards.
func midRoundSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	r := game.NewRoom("ABC123", randutil.New(42))
	require.NoError(t, r.Join("u1", "Alice"))
	require.NoError(t, r.Join("u2", "Bob"))
	require.NoError(t, r.Start(game.Options{WinThreshold: 60}))
	for _, id := range []string{"u1", "u2"} {
		require.NoError(t, r.Apply(id, game.SetupReveal{Index: 0}))
		require.NoError(t, r.Apply(id, game.SetupReveal{Index: 5}))
	}
	require.Equal(t, game.PhasePlaying, r.Phase())
	require.NoError(t, r.Apply(r.ActivePlayer(), game.DrawDeck{}))
	return r.Snapshot()
}

func intp(v int) *int { return &v }

// finishedSnapshot fills every field a snapshot can carry.
func finishedSnapshot() game.Snapshot {
	grid := make([]game.CardView, game.GridSize)
	for i := range grid {
		grid[i] = game.CardView{Value: intp(i - 2), Visible: true}
	}
	grid[4] = game.CardView{Value: intp(0), Visible: true, Cleared: true}
	return game.Snapshot{
		Code:         "XYZ789",
		Phase:        game.PhaseGameOver,
		Turn:         game.TurnIdle,
		Round:        3,
		Active:       -1,
		Players: []game.PlayerView{
			{ID: "u1", Name: "Alice", Grid: grid, RoundScore: 40, RawScore: 20, Total: 104, Revealed: 12, Penalized: true, FullyRevealed: true},
			{ID: "u2", Name: "Bob", Grid: grid, RoundScore: 9, RawScore: 9, Total: 61, Revealed: 12, FullyRevealed: true},
		},
		DeckSize:     80,
		DiscardSize:  20,
		DiscardTop:   &game.CardView{Value: intp(-2), Visible: true},
		Pending:      &game.CardView{Value: intp(12), Visible: true},
		Initiator:    "u1",
		WinThreshold: 100,
		SingleRound:  true,
		LastClears:   []game.ColumnClear{{PlayerID: "u2", Column: 0, Value: 5}},
		Standings: []game.Standing{
			{PlayerID: "u2", Name: "Bob", Total: 61, Rank: 1},
			{PlayerID: "u1", Name: "Alice", Total: 104, Rank: 2},
		},
		Winners: []string{"u2"},
	}
}

func lobbySnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	r := game.NewRoom("LOB001", randutil.New(1))
	require.NoError(t, r.Join("u1", "Alice"))
	return r.Snapshot()
}

func TestRoomStateRoundTrip(t *testing.T) {
	t.Parallel()
	shapes := map[string]game.Snapshot{
		"lobby":     lobbySnapshot(t),
		"mid round": midRoundSnapshot(t),
		"game over": finishedSnapshot(),
	}
	for name, snap := range shapes {
		for _, f := range []Format{FormatJSON, FormatMsgpack} {
			t.Run(name+"/"+string(f), func(t *testing.T) {
				t.Parallel()
				data, err := Marshal(f, NewRoomState("u2", snap))
				require.NoError(t, err)

				var decoded RoomState
				require.NoError(t, Unmarshal(f, data, &decoded))
				assert.Equal(t, TypeRoomState, decoded.Type)
				assert.Equal(t, "u2", decoded.You)
				assert.Equal(t, snap, decoded.State.Snapshot())
			})
		}
	}
}

func TestMidRoundMsgpackKeepsHiddenCardsHidden(t *testing.T) {
	t.Parallel()
	snap := midRoundSnapshot(t)
	require.NotNil(t, snap.Pending)
	require.NotNil(t, snap.DiscardTop)

	data, err := Marshal(FormatMsgpack, NewRoomState("u2", snap))
	require.NoError(t, err)

	var decoded RoomState
	require.NoError(t, Unmarshal(FormatMsgpack, data, &decoded))
	hidden := decoded.State.Players[0].Grid[1]
	assert.Nil(t, hidden.Value)
	assert.False(t, hidden.Visible)
}

// The wire structs must carry every field of the engine's view types under
// the same names, or JSON and msgpack clients would see different states.
func TestWireStructsMirrorSnapshot(t *testing.T) {
	t.Parallel()
	pairs := []struct {
		view, wire any
	}{
		{game.Snapshot{}, StateMsg{}},
		{game.PlayerView{}, PlayerMsg{}},
		{game.CardView{}, CardMsg{}},
		{game.ColumnClear{}, ClearMsg{}},
		{game.Standing{}, StandingMsg{}},
	}
	for _, p := range pairs {
		view, wire := reflect.TypeOf(p.view), reflect.TypeOf(p.wire)
		t.Run(wire.Name(), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, view.NumField(), wire.NumField())
			for i := range view.NumField() {
				vf, wf := view.Field(i), wire.Field(i)
				assert.Equal(t, vf.Name, wf.Name)
				assert.Equal(t, vf.Tag.Get("json"), wf.Tag.Get("json"), wf.Name)
				name, _, _ := strings.Cut(wf.Tag.Get("json"), ",")
				assert.Equal(t, name, wf.Tag.Get("msg"), wf.Name)
			}
		})
	}
}

func TestRoomStateJSONHidesFaceDownValues(t *testing.T) {
	t.Parallel()
	data, err := Marshal(FormatJSON, NewRoomState("u1", midRoundSnapshot(t)))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"type":"room_state"`)
	assert.Contains(t, string(data), `{"value":null,"visible":false}`)
}

func TestErrorFrame(t *testing.T) {
	t.Parallel()
	for _, f := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()
			data, err := Marshal(f, NewError("not_your_turn", "wait for u1"))
			require.NoError(t, err)

			typ, err := PeekType(f, data)
			require.NoError(t, err)
			assert.Equal(t, TypeError, typ)

			var got Error
			require.NoError(t, Unmarshal(f, data, &got))
			assert.Equal(t, Error{Type: TypeError, Code: "not_your_turn", Message: "wait for u1"}, got)
		})
	}
}

func TestPeekTypeRoomState(t *testing.T) {
	t.Parallel()
	data, err := Marshal(FormatMsgpack, NewRoomState("u1", midRoundSnapshot(t)))
	require.NoError(t, err)

	typ, err := PeekType(FormatMsgpack, data)
	require.NoError(t, err)
	assert.Equal(t, TypeRoomState, typ)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"msgpack", FormatMsgpack, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	assert.True(t, FormatMsgpack.Binary())
	assert.False(t, FormatJSON.Binary())
}
