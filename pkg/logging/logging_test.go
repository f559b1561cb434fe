package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	for level, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.WarnLevel,
		"loud":  zapcore.WarnLevel,
	} {
		for _, format := range []string{"json", "console"} {
			l, err := New(level, format)
			require.NoError(t, err)
			require.True(t, l.Core().Enabled(want), "%s/%s", level, format)
			if want > zapcore.DebugLevel {
				require.False(t, l.Core().Enabled(want-1), "%s/%s", level, format)
			}
		}
	}
}

func TestOrNop(t *testing.T) {
	require.NotNil(t, OrNop(nil))
}
