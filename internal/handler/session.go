package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gamepulse/api/internal/cache"
	"github.com/gamepulse/api/internal/id"
	"github.com/gamepulse/api/internal/middleware"
	"github.com/gamepulse/api/internal/model"
	"github.com/gamepulse/api/internal/store"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	store *store.Store
	cache *cache.RedisCache
}

func NewSessionHandler(st *store.Store, redisCache *cache.RedisCache) *SessionHandler {
	return &SessionHandler{store: st, cache: redisCache}
}

type StartSessionRequest struct {
	PlayerID  string `json:"playerId"`
	GameLevel string `json:"gameLevel"`
	Notes     string `json:"notes"`
}

func (h *SessionHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	c.ShouldBindJSON(&req)

	now := time.Now()
	session := model.GameSession{
		SessionID: id.NewSessionID(),
		PlayerID:  req.PlayerID,
		StartTime: now,
		GameLevel: req.GameLevel,
		Completed: false,
		Notes:     req.Notes,
	}

	if err := h.store.CreateSession(&session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to start session"})
		return
	}

	invalidateCache(c.Request.Context(), h.cache)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"sessionId": session.SessionID,
		"startTime": session.StartTime,
		"message":   "Game session started",
	})
}

type SessionSurveys struct {
	Pre  *model.PreSurvey  `json:"pre"`
	Post *model.PostSurvey `json:"post"`
}

type SessionDetail struct {
	model.GameSession
	Surveys SessionSurveys `json:"surveys"`
}

func (h *SessionHandler) Get(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		sessionID = c.Query("sessionId")
	}
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "SessionId is required"})
		return
	}

	session, err := h.store.FindSession(sessionID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Session not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	detail := SessionDetail{GameSession: *session}
	if pre, err := h.store.FindPreBySession(sessionID); err == nil {
		detail.Surveys.Pre = pre
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Failed to load pre-survey for %s: %v", sessionID, err)
	}
	if post, err := h.store.FindPostBySession(sessionID); err == nil {
		detail.Surveys.Post = post
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Failed to load post-survey for %s: %v", sessionID, err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session": detail})
}

type SubmitScoreRequest struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	SessionID  string `json:"sessionId"`
	Score      int    `json:"score"`
	Level      string `json:"level"`
	Notes      string `json:"notes"`
}

// SubmitScore appends a completed session row carrying a score, creating the
// session retroactively when no sessionId is supplied.
func (h *SessionHandler) SubmitScore(c *gin.Context) {
	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	now := time.Now()
	if err := h.store.UpsertPlayer(req.PlayerID, req.PlayerName, ageString(req.Age), req.Gender, now); err != nil {
		log.Printf("Upsert player %s failed: %v", req.PlayerID, err)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = id.NewSessionID()
	}
	level := req.Level
	if level == "" {
		level = "1"
	}
	notes := req.Notes
	if notes == "" {
		notes = "Submitted via Web"
	}

	end := now
	session := model.GameSession{
		SessionID: sessionID,
		PlayerID:  req.PlayerID,
		StartTime: now,
		EndTime:   &end,
		Duration:  "0",
		GameLevel: level,
		Score:     strconv.Itoa(req.Score),
		Completed: true,
		Notes:     notes,
	}

	if err := h.store.CreateSession(&session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit score"})
		return
	}

	middleware.RecordSurveySubmission("score")
	invalidateCache(c.Request.Context(), h.cache)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"sessionId": sessionID,
		"message":   "Score submitted successfully",
	})
}
