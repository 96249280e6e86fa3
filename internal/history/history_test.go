package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewAt(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Event{Operation: "search", Detail: "city=Almaty", Status: StatusSuccess, DurationMs: 120}))
	require.NoError(t, s.Record(ctx, Event{Operation: "login", Status: StatusError, Error: "Invalid credentials"}))

	events, err := s.Recent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "login", events[0].Operation)
	assert.Equal(t, "Invalid credentials", events[0].Error)
	assert.NotEmpty(t, events[0].ID)
}

func TestRecentFilterByOperation(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Event{Operation: "search", Status: StatusSuccess}))
	require.NoError(t, s.Record(ctx, Event{Operation: "book", Status: StatusSuccess}))

	events, err := s.Recent(ctx, "book", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "book", events[0].Operation)
}

func TestGetStats(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Event{Operation: "search", Status: StatusSuccess, DurationMs: 100}))
	require.NoError(t, s.Record(ctx, Event{Operation: "search", Status: StatusSuccess, DurationMs: 300}))
	require.NoError(t, s.Record(ctx, Event{Operation: "login", Status: StatusError}))

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Success)
	assert.Equal(t, 1, stats.Errors)
}

func TestBeginComplete(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	p := s.Begin("book", "tutor=7")
	p.Complete(ctx, nil)

	q := s.Begin("book", "tutor=8")
	q.Complete(ctx, errors.New("slot taken"))

	events, err := s.Recent(ctx, "book", 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	byStatus := map[string]Event{}
	for _, e := range events {
		byStatus[e.Status] = e
	}
	assert.Equal(t, "tutor=7", byStatus[StatusSuccess].Detail)
	assert.Equal(t, "slot taken", byStatus[StatusError].Error)
}

func TestEmptyStats(t *testing.T) {
	s := tempStore(t)

	stats, err := s.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}
