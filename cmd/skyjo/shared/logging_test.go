package shared

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		debug bool
		want  zerolog.Level
	}{
		{"", false, zerolog.InfoLevel},
		{"warn", false, zerolog.WarnLevel},
		{"error", true, zerolog.DebugLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name, tt.debug)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "level %q debug=%v", tt.name, tt.debug)
	}

	_, err := ParseLevel("loud", false)
	assert.Error(t, err)
}

func TestSetupLoggerLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, zerolog.WarnLevel, SetupLogger(zerolog.WarnLevel).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, SetupStructuredLogger(zerolog.DebugLevel).GetLevel())
}
