package journal

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/the-line/pkg/state"
)

func setupTestRedis(t *testing.T) (*RedisJournal, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	j, err := NewRedisJournal(context.Background(), "redis://"+mr.Addr(), logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create journal: %v", err)
	}

	t.Cleanup(func() {
		_ = j.Close()
		mr.Close()
	})
	return j, mr
}

func TestRedisJournal_RecordAndEntries(t *testing.T) {
	j, mr := setupTestRedis(t)
	ctx := context.Background()
	id := uuid.New()

	events := []string{
		"Found an abandoned backpack.",
		"Heard a coyote howl in the distance.",
	}
	for _, e := range events {
		require.NoError(t, j.Record(ctx, id, e))
	}

	got, err := j.Entries(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, events, got)

	ttl := mr.TTL(eventsKey(id))
	assert.Equal(t, Retention, ttl)
}

func TestRedisJournal_FinishAndJourney(t *testing.T) {
	j, mr := setupTestRedis(t)
	ctx := context.Background()
	id := uuid.New()
	j.now = func() time.Time { return time.Unix(1700000000, 0) }

	require.NoError(t, j.Record(ctx, id, "Crossed the dry riverbed."))
	record := state.JourneyRecord{Player: "Ana", Role: "migrant", Ending: "success", Turns: 12, Distance: 120}
	require.NoError(t, j.Finish(ctx, id, record))

	got, err := j.Journey(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, record, got.Record)
	assert.Equal(t, []string{"Crossed the dry riverbed."}, got.Events)
	assert.Equal(t, int64(1700000000), got.FinishedAt.Unix())
	assert.Equal(t, Retention, mr.TTL(summaryKey(id)))
}

func TestRedisJournal_JourneyNotFound(t *testing.T) {
	j, _ := setupTestRedis(t)

	_, err := j.Journey(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Journey() error = %v, want ErrNotFound", err)
	}
}

func TestRedisJournal_Recent(t *testing.T) {
	j, mr := setupTestRedis(t)
	ctx := context.Background()

	first, second, expired := uuid.New(), uuid.New(), uuid.New()
	clock := int64(1700000000)
	j.now = func() time.Time {
		clock += 60
		return time.Unix(clock, 0)
	}

	require.NoError(t, j.Finish(ctx, first, state.JourneyRecord{Player: "Ana", Ending: "timeout"}))
	require.NoError(t, j.Finish(ctx, second, state.JourneyRecord{Player: "Luis", Ending: "detained"}))
	require.NoError(t, j.Finish(ctx, expired, state.JourneyRecord{Player: "Gone", Ending: "death"}))
	mr.Del(summaryKey(expired))

	got, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second, got[0].SessionID)
	assert.Equal(t, first, got[1].SessionID)

	members, err := mr.ZMembers(indexKey)
	require.NoError(t, err)
	assert.NotContains(t, members, expired.String())

	limited, err := j.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRedisJournal_FinishTrimsIndex(t *testing.T) {
	j, mr := setupTestRedis(t)
	ctx := context.Background()

	start := time.Unix(1700000000, 0)
	stale, edge, fresh := uuid.New(), uuid.New(), uuid.New()

	j.now = func() time.Time { return start }
	require.NoError(t, j.Finish(ctx, stale, state.JourneyRecord{Player: "Ana", Ending: "timeout"}))
	j.now = func() time.Time { return start.Add(time.Hour) }
	require.NoError(t, j.Finish(ctx, edge, state.JourneyRecord{Player: "Luis", Ending: "success"}))

	j.now = func() time.Time { return start.Add(Retention + time.Hour) }
	require.NoError(t, j.Finish(ctx, fresh, state.JourneyRecord{Player: "Rosa", Ending: "death"}))

	members, err := mr.ZMembers(indexKey)
	require.NoError(t, err)
	assert.NotContains(t, members, stale.String())
	assert.Contains(t, members, edge.String())
	assert.Contains(t, members, fresh.String())
}

func TestRedisJournal_Unreachable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	_, err := NewRedisJournal(context.Background(), "not a url", logger)
	assert.Error(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisJournal(context.Background(), "redis://"+addr, logger)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var j state.Journal = Nop{}
	assert.NoError(t, j.Record(context.Background(), uuid.New(), "x"))
	assert.NoError(t, j.Finish(context.Background(), uuid.New(), state.JourneyRecord{}))
}
