package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gamepulse/api/internal/cache"
	"github.com/gamepulse/api/internal/middleware"
	"github.com/gamepulse/api/internal/stats"
	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

type StatsHandler struct {
	svc   *stats.Service
	cache *cache.RedisCache
}

func NewStatsHandler(svc *stats.Service, redisCache *cache.RedisCache) *StatsHandler {
	return &StatsHandler{svc: svc, cache: redisCache}
}

// GetStats serves the full statistics payload, cache-first. The cached bytes
// are the exact marshaled envelope, so hits skip all recomputation.
func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if payload, err := h.cache.Get(ctx, cache.KeyStatistics); err == nil {
			middleware.RecordStatsCache(true)
			c.Data(http.StatusOK, jsonContentType, payload)
			return
		}
		middleware.RecordStatsCache(false)
	}

	st, err := h.svc.Statistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to calculate statistics"})
		return
	}

	payload, err := json.Marshal(stats.StatsResponse{
		Success:     true,
		Statistics:  st,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, cache.KeyStatistics, payload); err != nil {
			log.Printf("Failed to cache statistics: %v", err)
		}
	}

	c.Data(http.StatusOK, jsonContentType, payload)
}

func (h *StatsHandler) GetChanges(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if payload, err := h.cache.Get(ctx, cache.KeyChanges); err == nil {
			middleware.RecordStatsCache(true)
			c.Data(http.StatusOK, jsonContentType, payload)
			return
		}
		middleware.RecordStatsCache(false)
	}

	changes, err := h.svc.SurveyChanges()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to calculate survey changes"})
		return
	}

	payload, err := json.Marshal(stats.ChangesResponse{
		Success: true,
		Changes: changes.Changes,
		Count:   changes.Count,
		Summary: changes.Summary,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, cache.KeyChanges, payload); err != nil {
			log.Printf("Failed to cache survey changes: %v", err)
		}
	}

	c.Data(http.StatusOK, jsonContentType, payload)
}

func (h *StatsHandler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	leaderboard, err := h.svc.Leaderboard(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to build leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"leaderboard": leaderboard,
	})
}
