package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrnz/humanms/internal/logging"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		format string
	}{
		{"debug", "text"},
		{"info", "text"},
		{"warn", "json"},
		{"warning", "json"},
		{"error", "text"},
		{"", ""}, // Default case
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			log, err := logging.New(tt.level, tt.format)
			require.NoError(t, err)
			assert.NotNil(t, log)

			assert.NotPanics(t, func() {
				log.Debug("debug message")
				log.Info("info message")
			})
		})
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := logging.New("loud", "text")
	assert.Error(t, err)

	_, err = logging.New("info", "xml")
	assert.Error(t, err)
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.NewWithWriter(&buf, "info", "json")
	require.NoError(t, err)

	log.Info("converted", "input", "1h", "output", "3600000")
	assert.Contains(t, buf.String(), `"input":"1h"`)

	// Below the configured level, nothing is written
	buf.Reset()
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}
