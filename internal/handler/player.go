package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gamepulse/api/internal/cache"
	"github.com/gamepulse/api/internal/id"
	"github.com/gamepulse/api/internal/model"
	"github.com/gamepulse/api/internal/store"
	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	store *store.Store
	cache *cache.RedisCache
}

func NewPlayerHandler(st *store.Store, redisCache *cache.RedisCache) *PlayerHandler {
	return &PlayerHandler{store: st, cache: redisCache}
}

type RegisterPlayerRequest struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Education      string `json:"education"`
	GameExperience string `json:"gameExperience"`
}

func (h *PlayerHandler) Register(c *gin.Context) {
	var req RegisterPlayerRequest
	c.ShouldBindJSON(&req)

	now := time.Now()
	gender := req.Gender
	if gender == "" {
		gender = model.GenderUnspecified
	}
	player := model.Player{
		PlayerID:       id.NewPlayerID(),
		Name:           req.Name,
		Age:            ageString(req.Age),
		Gender:         gender,
		Email:          req.Email,
		Phone:          req.Phone,
		Education:      req.Education,
		GameExperience: req.GameExperience,
		RegisteredAt:   now,
		LastActive:     now,
	}

	if err := h.store.CreatePlayer(&player); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Registration failed"})
		return
	}

	invalidateCache(c.Request.Context(), h.cache)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"playerId": player.PlayerID,
		"message":  "Player registered successfully",
	})
}

func (h *PlayerHandler) Get(c *gin.Context) {
	playerID := c.Param("id")
	if playerID == "" {
		playerID = c.Query("playerId")
	}
	if playerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "PlayerId is required"})
		return
	}

	player, err := h.store.FindPlayer(playerID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Player not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "player": player})
}

func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.store.ListPlayers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"players": players,
		"count":   len(players),
	})
}

func (h *PlayerHandler) Sessions(c *gin.Context) {
	playerID := c.Param("id")
	if playerID == "" {
		playerID = c.Query("playerId")
	}
	if playerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "PlayerId is required"})
		return
	}

	sessions, err := h.store.ListPlayerSessions(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"playerId": playerID,
		"sessions": sessions,
		"count":    len(sessions),
	})
}
