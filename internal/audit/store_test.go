package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	s := openTestStore(t)

	e := &Entry{
		Instruction: "tap 100, 200",
		CommandType: "TAP",
		Parameters:  map[string]any{"x": 100.0, "y": 200.0},
		Success:     true,
		DurationMS:  12,
	}
	require.NoError(t, s.Record(context.Background(), e))

	assert.NotEmpty(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, instruction := range []string{"boot simulator", "install app /a.app", "launch app com.x.y"} {
		require.NoError(t, s.Record(ctx, &Entry{
			Instruction: instruction,
			CommandType: "X",
			Success:     true,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "launch app com.x.y", entries[0].Instruction)
	assert.Equal(t, "install app /a.app", entries[1].Instruction)
}

func TestBySessionFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, &Entry{SessionID: "s1", Instruction: "a", CommandType: "X", Success: true}))
	require.NoError(t, s.Record(ctx, &Entry{SessionID: "s2", Instruction: "b", CommandType: "X", Success: false, Error: "boom"}))

	entries, err := s.BySession(ctx, "s2", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Instruction)
	assert.Equal(t, "boom", entries[0].Error)
	assert.False(t, entries[0].Success)
}

func TestParametersRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, &Entry{
		Instruction: "set location to 40.4, -3.7",
		CommandType: "SET_LOCATION",
		Parameters:  map[string]any{"latitude": 40.4, "longitude": -3.7},
		Success:     true,
	}))

	entries, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 40.4, entries[0].Parameters["latitude"])
}

func TestPurge(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, &Entry{Instruction: "a", CommandType: "X", Success: true}))
	require.NoError(t, s.Purge(ctx))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
