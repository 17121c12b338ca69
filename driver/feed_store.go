package driver

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"feed-composer/domain"
)

const (
	// feedKeyPrefix namespaces one sorted set per user.
	feedKeyPrefix = "feed:"
	// feedMaxEntries is the per-user capacity; older entries beyond it
	// are evicted on every append.
	feedMaxEntries = 500
	// feedExpiryHorizon is added to every rank-score so entries
	// pre-expire once the horizon elapses.
	feedExpiryHorizon = 24 * time.Hour
)

// FeedStoreDriver persists feed sections in one Redis sorted set per
// user. The member score is a synthetic rank: current time in
// milliseconds plus the positional offset plus the expiry horizon.
type FeedStoreDriver struct {
	client *redis.Client
	now    func() time.Time
}

func NewFeedStoreDriver(client *redis.Client) *FeedStoreDriver {
	return &FeedStoreDriver{
		client: client,
		now:    time.Now,
	}
}

func feedKey(userID string) string {
	return feedKeyPrefix + userID
}

// Append inserts the sections, trims the set to its highest-scoring
// feedMaxEntries members and drops already-expired members, all in a
// single transactional pipeline so a concurrent append for the same
// user cannot interleave inside the batch.
func (d *FeedStoreDriver) Append(ctx context.Context, userID string, sections []domain.Section) error {
	if d.client == nil {
		return &DriverError{Op: "Append", Err: "redis client not initialized"}
	}
	if len(sections) == 0 {
		return nil
	}

	nowMilli := d.now().UnixMilli()
	base := nowMilli + feedExpiryHorizon.Milliseconds()

	members := make([]redis.Z, 0, len(sections))
	for i, section := range sections {
		payload, err := json.Marshal(section)
		if err != nil {
			return &DriverError{Op: "Append", Err: err.Error()}
		}
		members = append(members, redis.Z{
			Score:  float64(base + int64(i)),
			Member: string(payload),
		})
	}

	key := feedKey(userID)

	pipe := d.client.TxPipeline()
	pipe.ZAdd(ctx, key, members...)
	pipe.ZRemRangeByRank(ctx, key, 0, int64(-(feedMaxEntries + 1)))
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(nowMilli, 10))

	if _, err := pipe.Exec(ctx); err != nil {
		return &DriverError{Op: "Append", Err: err.Error()}
	}

	return nil
}

// Fetch returns up to limit entries in descending rank order, starting
// strictly below the optional ceiling (exclusive via a one-unit offset).
func (d *FeedStoreDriver) Fetch(ctx context.Context, userID string, limit int, before *int64) ([]domain.FeedEntry, error) {
	if d.client == nil {
		return nil, &DriverError{Op: "Fetch", Err: "redis client not initialized"}
	}

	max := "+inf"
	if before != nil {
		max = strconv.FormatInt(*before-1, 10)
	}

	results, err := d.client.ZRevRangeByScoreWithScores(ctx, feedKey(userID), &redis.ZRangeBy{
		Min:   "-inf",
		Max:   max,
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, &DriverError{Op: "Fetch", Err: err.Error()}
	}

	entries := make([]domain.FeedEntry, 0, len(results))
	for _, z := range results {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}

		var section domain.Section
		if err := json.Unmarshal([]byte(member), &section); err != nil {
			return nil, &DriverError{Op: "Fetch", Err: "corrupt section payload: " + err.Error()}
		}

		entries = append(entries, domain.FeedEntry{
			Section: section,
			Rank:    int64(z.Score),
		})
	}

	return entries, nil
}
