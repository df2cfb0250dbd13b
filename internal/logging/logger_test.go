package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    zapcore.Level
		wantErr bool
	}{
		{"default", Config{}, zapcore.InfoLevel, false},
		{"development", Config{Level: "debug", Development: true}, zapcore.DebugLevel, false},
		{"warn", Config{Level: "warn"}, zapcore.WarnLevel, false},
		{"unknown level", Config{Level: "loud"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.Level())
		})
	}
}

func TestSetLevel(t *testing.T) {
	logger, err := New(Config{Level: "info", OutputPaths: []string{filepath.Join(t.TempDir(), "out.log")}})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	require.NoError(t, logger.SetLevel("debug"))
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.Error(t, logger.SetLevel("verbose"))
	assert.Equal(t, zapcore.DebugLevel, logger.Level())
}

func TestComponentAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := New(Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Component("registry").Info("registered", zap.String("service", "math"))
	require.NoError(t, logger.Close())
	assert.FileExists(t, path)
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Info("dropped")
	assert.NoError(t, logger.Close())
}
