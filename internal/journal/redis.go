// Package journal archives journeys in Redis so they can be reviewed after
// the game ends.
package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/the-line/pkg/state"
)

const (
	// Retention is how long an archived journey is kept.
	Retention = 7 * 24 * time.Hour

	indexKey = "journeys"
)

var ErrNotFound = errors.New("journey not found")

// Journey is an archived journey as read back from Redis.
type Journey struct {
	SessionID  uuid.UUID
	Record     state.JourneyRecord
	Events     []string
	FinishedAt time.Time
}

// RedisJournal implements state.Journal on Redis lists and hashes.
type RedisJournal struct {
	rdb    *redis.Client
	logger *slog.Logger
	now    func() time.Time
}

// Ensure RedisJournal implements state.Journal
var _ state.Journal = (*RedisJournal)(nil)

// NewRedisJournal connects to redisURL and verifies the connection.
func NewRedisJournal(ctx context.Context, redisURL string, logger *slog.Logger) (*RedisJournal, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Connected to Redis for journal", "addr", opt.Addr)

	return &RedisJournal{
		rdb:    rdb,
		logger: logger,
		now:    time.Now,
	}, nil
}

func eventsKey(id uuid.UUID) string  { return fmt.Sprintf("journey:%s:events", id) }
func summaryKey(id uuid.UUID) string { return fmt.Sprintf("journey:%s:summary", id) }

func (j *RedisJournal) Record(ctx context.Context, sessionID uuid.UUID, entry string) error {
	key := eventsKey(sessionID)

	pipe := j.rdb.TxPipeline()
	pipe.RPush(ctx, key, entry)
	pipe.Expire(ctx, key, Retention)
	if _, err := pipe.Exec(ctx); err != nil {
		j.logger.Error("Journal record failed", "session_id", sessionID, "error", err)
		return fmt.Errorf("record journey event: %w", err)
	}

	j.logger.Debug("Journal event recorded", "session_id", sessionID)
	return nil
}

func (j *RedisJournal) Finish(ctx context.Context, sessionID uuid.UUID, record state.JourneyRecord) error {
	key := summaryKey(sessionID)
	now := j.now()

	pipe := j.rdb.TxPipeline()
	pipe.HSet(ctx, key,
		"player", record.Player,
		"role", record.Role,
		"ending", record.Ending,
		"turns", record.Turns,
		"distance", record.Distance,
		"finished_at", now.Unix(),
	)
	pipe.Expire(ctx, key, Retention)
	pipe.Expire(ctx, eventsKey(sessionID), Retention)
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(now.Unix()), Member: sessionID.String()})
	// The index outlives its members otherwise.
	pipe.ZRemRangeByScore(ctx, indexKey, "-inf", "("+strconv.FormatInt(now.Add(-Retention).Unix(), 10))
	if _, err := pipe.Exec(ctx); err != nil {
		j.logger.Error("Journal finish failed", "session_id", sessionID, "error", err)
		return fmt.Errorf("finish journey: %w", err)
	}

	j.logger.Info("Journey archived", "session_id", sessionID, "ending", record.Ending)
	return nil
}

// Entries returns the recorded key events of a session in order.
func (j *RedisJournal) Entries(ctx context.Context, sessionID uuid.UUID) ([]string, error) {
	entries, err := j.rdb.LRange(ctx, eventsKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read journey events: %w", err)
	}
	return entries, nil
}

// Journey loads the full archive of one session.
func (j *RedisJournal) Journey(ctx context.Context, sessionID uuid.UUID) (*Journey, error) {
	fields, err := j.rdb.HGetAll(ctx, summaryKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read journey summary: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	events, err := j.Entries(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	turns, _ := strconv.Atoi(fields["turns"])
	distance, _ := strconv.Atoi(fields["distance"])
	finished, _ := strconv.ParseInt(fields["finished_at"], 10, 64)

	return &Journey{
		SessionID: sessionID,
		Record: state.JourneyRecord{
			Player:   fields["player"],
			Role:     fields["role"],
			Ending:   fields["ending"],
			Turns:    turns,
			Distance: distance,
		},
		Events:     events,
		FinishedAt: time.Unix(finished, 0),
	}, nil
}

// Recent lists up to n archived journeys, newest first. Journeys whose
// records have expired are dropped from the index as they are found.
func (j *RedisJournal) Recent(ctx context.Context, n int) ([]*Journey, error) {
	if n <= 0 {
		return nil, nil
	}
	ids, err := j.rdb.ZRevRange(ctx, indexKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list journeys: %w", err)
	}

	journeys := make([]*Journey, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			j.logger.Warn("Skipping malformed journey id", "id", raw)
			continue
		}
		journey, err := j.Journey(ctx, id)
		if errors.Is(err, ErrNotFound) {
			j.rdb.ZRem(ctx, indexKey, raw)
			continue
		}
		if err != nil {
			return nil, err
		}
		journeys = append(journeys, journey)
	}
	return journeys, nil
}

// Close closes the Redis connection
func (j *RedisJournal) Close() error {
	return j.rdb.Close()
}
