package sandwichlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewBuildsDevelopmentLogger(t *testing.T) {
	logger, err := New(true, "debug")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewDefaultsToInfoLevel(t *testing.T) {
	logger, err := New(false, "")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(false, "not-a-level")
	require.Error(t, err)
}

func TestWithAndNamedReturnWrappedLoggers(t *testing.T) {
	base := Nop()
	named := base.Named("generator")
	withField := named.With(zap.String("session", "abc"))

	require.NotNil(t, named)
	require.NotNil(t, withField)
	assert.IsType(t, &Logger{}, named)
	assert.IsType(t, &Logger{}, withField)
}

func TestNopDiscardsOutput(t *testing.T) {
	logger := Nop()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.Info("this should go nowhere")
	})
}
