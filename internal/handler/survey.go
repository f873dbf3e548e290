package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gamepulse/api/internal/cache"
	"github.com/gamepulse/api/internal/id"
	"github.com/gamepulse/api/internal/middleware"
	"github.com/gamepulse/api/internal/model"
	"github.com/gamepulse/api/internal/stats"
	"github.com/gamepulse/api/internal/store"
	"github.com/gin-gonic/gin"
)

type SurveyHandler struct {
	store *store.Store
	svc   *stats.Service
	cache *cache.RedisCache
}

func NewSurveyHandler(st *store.Store, svc *stats.Service, redisCache *cache.RedisCache) *SurveyHandler {
	return &SurveyHandler{store: st, svc: svc, cache: redisCache}
}

type PreSurveyRequest struct {
	PlayerID         string `json:"playerId"`
	PlayerName       string `json:"playerName"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	SessionID        string `json:"sessionId"`
	StressLevel      int    `json:"stressLevel"`
	HappinessLevel   int    `json:"happinessLevel"`
	EnergyLevel      int    `json:"energyLevel"`
	MotivationLevel  int    `json:"motivationLevel"`
	AnxietyLevel     int    `json:"anxietyLevel"`
	MoodDescription  string `json:"moodDescription"`
	ExpectationScore int    `json:"expectationScore"`
	Comments         string `json:"comments"`
}

func (h *SurveyHandler) SubmitPre(c *gin.Context) {
	var req PreSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	now := time.Now()
	if err := h.store.UpsertPlayer(req.PlayerID, req.PlayerName, ageString(req.Age), req.Gender, now); err != nil {
		log.Printf("Upsert player %s failed: %v", req.PlayerID, err)
	}

	survey := model.PreSurvey{
		SurveyID:         id.NewPreSurveyID(),
		PlayerID:         req.PlayerID,
		SessionID:        req.SessionID,
		Timestamp:        now,
		StressLevel:      req.StressLevel,
		HappinessLevel:   req.HappinessLevel,
		EnergyLevel:      req.EnergyLevel,
		MotivationLevel:  req.MotivationLevel,
		AnxietyLevel:     req.AnxietyLevel,
		MoodDescription:  req.MoodDescription,
		ExpectationScore: req.ExpectationScore,
		Comments:         req.Comments,
	}

	if err := h.store.CreatePreSurvey(&survey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Survey submission failed"})
		return
	}

	middleware.RecordSurveySubmission("pre")
	invalidateCache(c.Request.Context(), h.cache)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"surveyId": survey.SurveyID,
		"message":  "Pre-game survey submitted successfully",
	})
}

type PostSurveyRequest struct {
	PlayerID               string `json:"playerId"`
	PlayerName             string `json:"playerName"`
	Age                    int    `json:"age"`
	Gender                 string `json:"gender"`
	SessionID              string `json:"sessionId"`
	StressLevel            int    `json:"stressLevel"`
	HappinessLevel         int    `json:"happinessLevel"`
	FunLevel               int    `json:"funLevel"`
	SatisfactionLevel      int    `json:"satisfactionLevel"`
	EnergyLevel            int    `json:"energyLevel"`
	DifficultyRating       int    `json:"difficultyRating"`
	WillPlayAgain          string `json:"willPlayAgain"`
	FavoriteAspect         string `json:"favoriteAspect"`
	ImprovementSuggestions string `json:"improvementSuggestions"`
	OverallRating          int    `json:"overallRating"`
	Comments               string `json:"comments"`

	// optional score attachment; when present a session row is recorded as
	// a second, separate store write
	Score *int   `json:"score"`
	Level string `json:"level"`
}

func (h *SurveyHandler) SubmitPost(c *gin.Context) {
	var req PostSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	now := time.Now()
	if err := h.store.UpsertPlayer(req.PlayerID, req.PlayerName, ageString(req.Age), req.Gender, now); err != nil {
		log.Printf("Upsert player %s failed: %v", req.PlayerID, err)
	}

	survey := model.PostSurvey{
		SurveyID:               id.NewPostSurveyID(),
		PlayerID:               req.PlayerID,
		SessionID:              req.SessionID,
		Timestamp:              now,
		StressLevel:            req.StressLevel,
		HappinessLevel:         req.HappinessLevel,
		FunLevel:               req.FunLevel,
		SatisfactionLevel:      req.SatisfactionLevel,
		EnergyLevel:            req.EnergyLevel,
		DifficultyRating:       req.DifficultyRating,
		WillPlayAgain:          req.WillPlayAgain,
		FavoriteAspect:         req.FavoriteAspect,
		ImprovementSuggestions: req.ImprovementSuggestions,
		OverallRating:          req.OverallRating,
		Comments:               req.Comments,
	}

	if err := h.store.CreatePostSurvey(&survey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Survey submission failed"})
		return
	}
	middleware.RecordSurveySubmission("post")

	if req.Score != nil || req.Level != "" {
		h.recordAttachedScore(c, &req, survey.SurveyID, now)
	}

	comparison, err := h.svc.SessionComparison(req.SessionID)
	if err != nil {
		log.Printf("Session comparison for %s failed: %v", req.SessionID, err)
		comparison = nil
	}

	invalidateCache(c.Request.Context(), h.cache)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"surveyId":   survey.SurveyID,
		"comparison": comparison,
		"message":    "Post-game survey submitted successfully",
	})
}

// recordAttachedScore appends the session row for a score delivered with the
// post-survey. The survey itself is already stored; a failure here is logged
// and does not fail the submission.
func (h *SurveyHandler) recordAttachedScore(c *gin.Context, req *PostSurveyRequest, surveyID string, now time.Time) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = surveyID
	}
	score := 0
	if req.Score != nil {
		score = *req.Score
	}
	level := req.Level
	if level == "" {
		level = "1"
	}

	end := now
	session := model.GameSession{
		SessionID: sessionID,
		PlayerID:  req.PlayerID,
		StartTime: now,
		EndTime:   &end,
		Duration:  "0",
		GameLevel: level,
		Score:     strconv.Itoa(score),
		Completed: true,
		Notes:     "Recorded automatically from survey",
	}
	if err := h.store.CreateSession(&session); err != nil {
		log.Printf("Failed to record score for session %s: %v", sessionID, err)
		return
	}
	middleware.RecordSurveySubmission("score")
}
