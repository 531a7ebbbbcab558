package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kean-laurente/sanctupoint-booking/internal/schedule"
)

// AvailabilityCache memoizes computed slot classifications. The engine is a
// pure function of (events, date, now, config), so caching its output keyed by
// date plus "now" truncated to the minute is sound; the TTL bounds how stale a
// cached day can get relative to new bookings.
type AvailabilityCache interface {
	Get(ctx context.Context, date string, now time.Time) ([]schedule.SlotStatus, bool)
	Set(ctx context.Context, date string, now time.Time, statuses []schedule.SlotStatus)
	Invalidate(ctx context.Context, date string)
}

type availabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) AvailabilityCache {
	return &availabilityCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(date string, now time.Time) string {
	return fmt.Sprintf("availability:%s:%s", date, now.Format("200601021504"))
}

func (c *availabilityCache) Get(ctx context.Context, date string, now time.Time) ([]schedule.SlotStatus, bool) {
	raw, err := c.client.Get(ctx, cacheKey(date, now)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("availability cache get failed for date=%s: %v", date, err)
		}
		return nil, false
	}

	var statuses []schedule.SlotStatus
	if err := json.Unmarshal(raw, &statuses); err != nil {
		log.Printf("availability cache entry corrupt for date=%s: %v", date, err)
		return nil, false
	}

	return statuses, true
}

func (c *availabilityCache) Set(ctx context.Context, date string, now time.Time, statuses []schedule.SlotStatus) {
	raw, err := json.Marshal(statuses)
	if err != nil {
		log.Printf("availability cache marshal failed for date=%s: %v", date, err)
		return
	}

	if err := c.client.Set(ctx, cacheKey(date, now), raw, c.ttl).Err(); err != nil {
		log.Printf("availability cache set failed for date=%s: %v", date, err)
	}
}

// Invalidate drops every cached minute for the date after a booking write.
func (c *availabilityCache) Invalidate(ctx context.Context, date string) {
	pattern := fmt.Sprintf("availability:%s:*", date)

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("availability cache invalidate failed for key=%s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("availability cache scan failed for date=%s: %v", date, err)
	}
}
