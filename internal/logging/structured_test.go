package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New("api").WithOutput(&buf), &buf
}

func decode(t *testing.T, buf *bytes.Buffer) Event {
	t.Helper()
	var e Event
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	return e
}

func TestInfo(t *testing.T) {
	l, buf := capture(t)

	l.Info("request_sent", map[string]any{"path": "/api/tutors"})

	e := decode(t, buf)
	assert.Equal(t, LevelInfo, e.Level)
	assert.Equal(t, "api", e.Component)
	assert.Equal(t, "request_sent", e.Event)
	assert.Equal(t, "/api/tutors", e.Extra["path"])
	assert.Empty(t, e.Error)
}

func TestError(t *testing.T) {
	l, buf := capture(t)

	l.Error("request_failed", nil, errors.New("connection refused"))

	e := decode(t, buf)
	assert.Equal(t, LevelError, e.Level)
	assert.Equal(t, "connection refused", e.Error)
}

func TestWithRequestID(t *testing.T) {
	l, buf := capture(t)

	l.WithRequestID("req-42").WithOutput(buf).Info("request_sent", nil)

	e := decode(t, buf)
	assert.Equal(t, "req-42", e.RequestID)
}

func TestTimedEvent(t *testing.T) {
	l, buf := capture(t)

	start := time.Now().Add(-50 * time.Millisecond)
	l.TimedEvent("request_done", start, nil)

	e := decode(t, buf)
	assert.GreaterOrEqual(t, e.Duration, int64(50))
}
