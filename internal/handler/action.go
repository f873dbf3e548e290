package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ActionHandler is the legacy single-endpoint dispatcher: the Unity client
// and the dashboard call GET/POST /exec?action=... instead of the REST
// routes. It routes to the same handlers, so both surfaces share one
// behavior.
type ActionHandler struct {
	players  *PlayerHandler
	surveys  *SurveyHandler
	sessions *SessionHandler
	stats    *StatsHandler
}

func NewActionHandler(players *PlayerHandler, surveys *SurveyHandler, sessions *SessionHandler, statsHandler *StatsHandler) *ActionHandler {
	return &ActionHandler{
		players:  players,
		surveys:  surveys,
		sessions: sessions,
		stats:    statsHandler,
	}
}

func (h *ActionHandler) Dispatch(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		h.dispatchPost(c)
		return
	}
	h.dispatchGet(c)
}

func (h *ActionHandler) dispatchGet(c *gin.Context) {
	switch c.Query("action") {
	case "getPlayer":
		h.players.Get(c)
	case "getAllPlayers":
		h.players.List(c)
	case "getPlayerSessions":
		h.players.Sessions(c)
	case "getSession":
		h.sessions.Get(c)
	case "getLeaderboard":
		h.stats.GetLeaderboard(c)
	case "getStats":
		h.stats.GetStats(c)
	case "getSurveyChanges":
		h.stats.GetChanges(c)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Game Survey API v1.0",
			"endpoints": gin.H{
				"POST": []string{
					"/exec?action=registerPlayer",
					"/exec?action=submitPreSurvey",
					"/exec?action=submitPostSurvey",
					"/exec?action=startSession",
					"/exec?action=submitScore",
				},
				"GET": []string{
					"/exec?action=getPlayer&playerId=XXX",
					"/exec?action=getSession&sessionId=XXX",
					"/exec?action=getAllPlayers",
					"/exec?action=getPlayerSessions&playerId=XXX",
					"/exec?action=getLeaderboard&limit=10",
					"/exec?action=getStats",
					"/exec?action=getSurveyChanges",
				},
			},
		})
	}
}

func (h *ActionHandler) dispatchPost(c *gin.Context) {
	action := c.Query("action")

	// the action may also ride inside the JSON body; peek at it and restore
	// the body so the target handler can bind the full payload
	if body, err := c.GetRawData(); err == nil {
		var probe struct {
			Action string `json:"action"`
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &probe); err == nil && probe.Action != "" {
				action = probe.Action
			}
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	switch action {
	case "registerPlayer":
		h.players.Register(c)
	case "submitPreSurvey":
		h.surveys.SubmitPre(c)
	case "submitPostSurvey":
		h.surveys.SubmitPost(c)
	case "startSession":
		h.sessions.Start(c)
	case "submitScore":
		h.sessions.SubmitScore(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action"})
	}
}
