// Package handler exposes the survey API over gin. Every response uses the
// legacy envelope the Unity client and the dashboard expect:
// {success: true, ...} or {success: false, error}.
package handler

import (
	"context"
	"log"
	"strconv"

	"github.com/gamepulse/api/internal/cache"
)

func ageString(age int) string {
	if age <= 0 {
		return ""
	}
	return strconv.Itoa(age)
}

// invalidateCache drops the cached stats payloads after a write. Cache
// trouble is logged, never surfaced: the write already succeeded.
func invalidateCache(ctx context.Context, c *cache.RedisCache) {
	if c == nil {
		return
	}
	if err := c.Invalidate(ctx); err != nil {
		log.Printf("Failed to invalidate stats cache: %v", err)
	}
}
