package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "production")
	t.Cleanup(func() { Init("development") })

	Info("Server starting", "address", ":8080")
	Debug("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Server starting", line["msg"])
	assert.Equal(t, ":8080", line["address"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestError_BareErrorBecomesAttribute(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "development")
	t.Cleanup(func() { Init("development") })

	Error("Failed to save prediction", errors.New("connection refused"))

	assert.Contains(t, buf.String(), "error=\"connection refused\"")
	assert.NotContains(t, buf.String(), "BADKEY")
}
