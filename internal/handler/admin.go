package handler

import (
	"net/http"
	"strconv"

	"github.com/gamepulse/api/internal/cache"
	"github.com/gamepulse/api/internal/seed"
	"github.com/gamepulse/api/internal/store"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	store *store.Store
	cache *cache.RedisCache
}

func NewAdminHandler(st *store.Store, redisCache *cache.RedisCache) *AdminHandler {
	return &AdminHandler{store: st, cache: redisCache}
}

// Clear wipes the four row tables. Snapshots survive so the trend history
// outlives a test-data reset.
func (h *AdminHandler) Clear(c *gin.Context) {
	if err := h.store.ClearAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to clear data"})
		return
	}

	invalidateCache(c.Request.Context(), h.cache)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All data cleared",
	})
}

func (h *AdminHandler) Seed(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(seed.DefaultCount)))

	created, err := seed.Run(h.store, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error(), "created": created})
		return
	}

	invalidateCache(c.Request.Context(), h.cache)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"created": created,
		"message": "Seed data generated",
	})
}

func (h *AdminHandler) Snapshots(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	snapshots, err := h.store.ListSnapshots(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}
