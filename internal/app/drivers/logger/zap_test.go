package logger

import (
	"doctors-portal-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestOutputsFor(t *testing.T) {
	files := config.Logger{OutputFileName: "app.log", OutputErrorFileName: "app_error.log"}

	t.Run("development logs to the terminal", func(t *testing.T) {
		out, errOut := outputsFor("development", files)
		assert.Equal(t, []string{"stdout"}, out)
		assert.Equal(t, []string{"stderr"}, errOut)
	})

	t.Run("production logs to files", func(t *testing.T) {
		out, errOut := outputsFor("production", files)
		assert.Equal(t, []string{"app.log"}, out)
		assert.Equal(t, []string{"stderr", "app_error.log"}, errOut)
	})

	t.Run("unknown environment falls back to the terminal", func(t *testing.T) {
		out, errOut := outputsFor("staging", files)
		assert.Equal(t, []string{"stdout"}, out)
		assert.Equal(t, []string{"stderr"}, errOut)
	})
}

func TestEncodingFor(t *testing.T) {
	assert.Equal(t, "console", encodingFor("development"))
	assert.Equal(t, "json", encodingFor("production"))
	assert.Equal(t, "json", encodingFor(""))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, levelFor("debug"))
	assert.Equal(t, zap.WarnLevel, levelFor("warn"))
	assert.Equal(t, zap.ErrorLevel, levelFor("error"))
	assert.Equal(t, zap.InfoLevel, levelFor("info"))
	assert.Equal(t, zap.InfoLevel, levelFor("verbose"))
}

func TestNewZapLoggerDevelopment(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "debug"}}
	internalConfig := &config.InternalConfig{}
	internalConfig.App.Env = "development"

	log := NewZapLogger(driverConfig, internalConfig)

	assert.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
