package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAction(t *testing.T) {
	idx := func(i int) *int { return &i }

	tests := []struct {
		kind    ActionKind
		index   *int
		want    Action
		wantErr bool
	}{
		{KindSetupReveal, idx(3), SetupReveal{Index: 3}, false},
		{KindDrawDeck, nil, DrawDeck{}, false},
		{KindDrawDeck, idx(1), nil, true},
		{KindDrawDiscard, idx(11), DrawDiscard{Index: 11}, false},
		{KindReplaceDrawn, idx(0), ReplaceDrawn{Index: 0}, false},
		{KindDiscardDrawn, idx(7), DiscardDrawn{Reveal: 7}, false},
		{KindDiscardDrawn, nil, nil, true},
		{KindReplaceDrawn, idx(12), nil, true},
		{KindSetupReveal, idx(-1), nil, true},
		{"FLIP_GRID", idx(1), nil, true},
	}

	for _, tt := range tests {
		got, err := NewAction(tt.kind, tt.index)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrValidation, "%s", tt.kind)
			continue
		}
		require.NoError(t, err, "%s", tt.kind)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.kind, got.Kind())
	}
}
