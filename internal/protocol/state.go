package protocol

import "github.com/lox/skyjo/internal/game"

// NewRoomState wraps a snapshot for the player you.
func NewRoomState(you string, s game.Snapshot) *RoomState {
	return &RoomState{Type: TypeRoomState, You: you, State: newStateMsg(s)}
}

// NewError builds an error frame.
func NewError(code, message string) *Error {
	return &Error{Type: TypeError, Code: code, Message: message}
}

func newStateMsg(s game.Snapshot) StateMsg {
	m := StateMsg{
		Code:         s.Code,
		Phase:        string(s.Phase),
		Turn:         string(s.Turn),
		Round:        s.Round,
		Active:       s.Active,
		ActivePlayer: s.ActivePlayer,
		Players:      make([]PlayerMsg, len(s.Players)),
		DeckSize:     s.DeckSize,
		DiscardSize:  s.DiscardSize,
		DiscardTop:   cardMsgPtr(s.DiscardTop),
		Pending:      cardMsgPtr(s.Pending),
		Initiator:    s.Initiator,
		WinThreshold: s.WinThreshold,
		SingleRound:  s.SingleRound,
		Standings:    make([]StandingMsg, len(s.Standings)),
	}
	for i, p := range s.Players {
		pm := PlayerMsg{
			ID:            p.ID,
			Name:          p.Name,
			RoundScore:    p.RoundScore,
			RawScore:      p.RawScore,
			Total:         p.Total,
			Revealed:      p.Revealed,
			Penalized:     p.Penalized,
			FullyRevealed: p.FullyRevealed,
		}
		if len(p.Grid) > 0 {
			pm.Grid = make([]CardMsg, len(p.Grid))
			for j, c := range p.Grid {
				pm.Grid[j] = cardMsg(c)
			}
		}
		m.Players[i] = pm
	}
	if len(s.LastClears) > 0 {
		m.LastClears = make([]ClearMsg, len(s.LastClears))
		for i, c := range s.LastClears {
			m.LastClears[i] = ClearMsg{PlayerID: c.PlayerID, Column: c.Column, Value: c.Value}
		}
	}
	for i, st := range s.Standings {
		m.Standings[i] = StandingMsg{PlayerID: st.PlayerID, Name: st.Name, Total: st.Total, Rank: st.Rank}
	}
	if len(s.Winners) > 0 {
		m.Winners = append([]string(nil), s.Winners...)
	}
	return m
}

// Snapshot converts a received state back into the engine's view type.
func (m *StateMsg) Snapshot() game.Snapshot {
	s := game.Snapshot{
		Code:         m.Code,
		Phase:        game.Phase(m.Phase),
		Turn:         game.TurnState(m.Turn),
		Round:        m.Round,
		Active:       m.Active,
		ActivePlayer: m.ActivePlayer,
		Players:      make([]game.PlayerView, len(m.Players)),
		DeckSize:     m.DeckSize,
		DiscardSize:  m.DiscardSize,
		DiscardTop:   m.DiscardTop.view(),
		Pending:      m.Pending.view(),
		Initiator:    m.Initiator,
		WinThreshold: m.WinThreshold,
		SingleRound:  m.SingleRound,
		Standings:    make([]game.Standing, len(m.Standings)),
	}
	for i, p := range m.Players {
		pv := game.PlayerView{
			ID:            p.ID,
			Name:          p.Name,
			RoundScore:    p.RoundScore,
			RawScore:      p.RawScore,
			Total:         p.Total,
			Revealed:      p.Revealed,
			Penalized:     p.Penalized,
			FullyRevealed: p.FullyRevealed,
		}
		if len(p.Grid) > 0 {
			pv.Grid = make([]game.CardView, len(p.Grid))
			for j := range p.Grid {
				pv.Grid[j] = *p.Grid[j].view()
			}
		}
		s.Players[i] = pv
	}
	if len(m.LastClears) > 0 {
		s.LastClears = make([]game.ColumnClear, len(m.LastClears))
		for i, c := range m.LastClears {
			s.LastClears[i] = game.ColumnClear{PlayerID: c.PlayerID, Column: c.Column, Value: c.Value}
		}
	}
	for i, st := range m.Standings {
		s.Standings[i] = game.Standing{PlayerID: st.PlayerID, Name: st.Name, Total: st.Total, Rank: st.Rank}
	}
	if len(m.Winners) > 0 {
		s.Winners = append([]string(nil), m.Winners...)
	}
	return s
}

func cardMsg(c game.CardView) CardMsg {
	m := CardMsg{Visible: c.Visible, Cleared: c.Cleared}
	if c.Value != nil {
		v := *c.Value
		m.Value = &v
	}
	return m
}

func cardMsgPtr(c *game.CardView) *CardMsg {
	if c == nil {
		return nil
	}
	m := cardMsg(*c)
	return &m
}

func (c *CardMsg) view() *game.CardView {
	if c == nil {
		return nil
	}
	v := game.CardView{Visible: c.Visible, Cleared: c.Cleared}
	if c.Value != nil {
		val := *c.Value
		v.Value = &val
	}
	return &v
}
