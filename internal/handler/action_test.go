package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gamepulse/api/internal/database"
	"github.com/gamepulse/api/internal/stats"
	"github.com/gamepulse/api/internal/store"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	st := store.New(db)
	svc := stats.NewService(st)

	players := NewPlayerHandler(st, nil)
	surveys := NewSurveyHandler(st, svc, nil)
	sessions := NewSessionHandler(st, nil)
	statsHandler := NewStatsHandler(svc, nil)
	action := NewActionHandler(players, surveys, sessions, statsHandler)

	r := gin.New()
	r.GET("/exec", action.Dispatch)
	r.POST("/exec", action.Dispatch)
	return r
}

func do(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("%s %s: bad response body %q: %v", method, target, w.Body.String(), err)
	}
	return w, resp
}

func TestDispatchFullSurveyFlow(t *testing.T) {
	r := testRouter(t)

	// register
	w, resp := do(t, r, http.MethodPost, "/exec?action=registerPlayer",
		`{"name":"Alex","age":22,"gender":"male","gameExperience":"beginner"}`)
	if w.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("register: code=%d resp=%v", w.Code, resp)
	}
	playerID, _ := resp["playerId"].(string)
	if !strings.HasPrefix(playerID, "P") {
		t.Fatalf("playerId = %q, want P prefix", playerID)
	}

	// start a session
	_, resp = do(t, r, http.MethodPost, "/exec?action=startSession",
		`{"playerId":"`+playerID+`","gameLevel":"2"}`)
	sessionID, _ := resp["sessionId"].(string)
	if !strings.HasPrefix(sessionID, "S") {
		t.Fatalf("sessionId = %q, want S prefix", sessionID)
	}

	// pre-survey; action rides in the body this time
	w, resp = do(t, r, http.MethodPost, "/exec",
		`{"action":"submitPreSurvey","playerId":"`+playerID+`","sessionId":"`+sessionID+`",
		  "stressLevel":8,"happinessLevel":3,"energyLevel":4,"motivationLevel":7,"anxietyLevel":6}`)
	if w.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("pre-survey: code=%d resp=%v", w.Code, resp)
	}
	if sid, _ := resp["surveyId"].(string); !strings.HasPrefix(sid, "PRE-") {
		t.Errorf("surveyId = %v, want PRE- prefix", resp["surveyId"])
	}

	// post-survey with attached score; response carries the comparison
	w, resp = do(t, r, http.MethodPost, "/exec?action=submitPostSurvey",
		`{"playerId":"`+playerID+`","sessionId":"`+sessionID+`",
		  "stressLevel":3,"happinessLevel":8,"energyLevel":7,"funLevel":9,
		  "satisfactionLevel":8,"difficultyRating":5,"comments":"Really fun",
		  "score":1200,"level":"2"}`)
	if w.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("post-survey: code=%d resp=%v", w.Code, resp)
	}
	comparison, ok := resp["comparison"].(map[string]interface{})
	if !ok {
		t.Fatalf("comparison missing from response: %v", resp)
	}
	if comparison["stressChange"] != float64(-5) || comparison["happinessChange"] != float64(5) {
		t.Errorf("comparison = %v", comparison)
	}

	// aggregated statistics over what we just submitted
	w, resp = do(t, r, http.MethodGet, "/exec?action=getStats", "")
	if w.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("getStats: code=%d resp=%v", w.Code, resp)
	}
	statistics, _ := resp["statistics"].(map[string]interface{})
	if statistics["totalPlayers"] != float64(1) || statistics["completedSurveys"] != float64(1) {
		t.Errorf("statistics = %v", statistics)
	}
	// two session rows: the started one plus the score row
	if statistics["totalSessions"] != float64(2) {
		t.Errorf("totalSessions = %v, want 2", statistics["totalSessions"])
	}
	if statistics["averageScore"] != float64(1200) {
		t.Errorf("averageScore = %v, want 1200", statistics["averageScore"])
	}

	// matched pair summary
	_, resp = do(t, r, http.MethodGet, "/exec?action=getSurveyChanges", "")
	if resp["count"] != float64(1) {
		t.Errorf("changes count = %v, want 1", resp["count"])
	}
	summary, _ := resp["summary"].(map[string]interface{})
	if summary["basis"] != "paired" {
		t.Errorf("summary basis = %v, want paired", summary["basis"])
	}

	// leaderboard
	_, resp = do(t, r, http.MethodGet, "/exec?action=getLeaderboard&limit=10", "")
	board, _ := resp["leaderboard"].([]interface{})
	if len(board) != 1 {
		t.Fatalf("leaderboard = %v", resp["leaderboard"])
	}
	top, _ := board[0].(map[string]interface{})
	if top["name"] != "Alex" || top["score"] != float64(1200) {
		t.Errorf("top entry = %v", top)
	}

	// player lookup through the query-parameter form
	_, resp = do(t, r, http.MethodGet, "/exec?action=getPlayer&playerId="+playerID, "")
	player, _ := resp["player"].(map[string]interface{})
	if player["name"] != "Alex" {
		t.Errorf("player = %v", player)
	}
}

func TestDispatchUnknownPostAction(t *testing.T) {
	r := testRouter(t)

	w, resp := do(t, r, http.MethodPost, "/exec?action=doSomething", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", w.Code)
	}
	if resp["success"] != false || resp["error"] != "Invalid action" {
		t.Errorf("resp = %v", resp)
	}
}

func TestDispatchGetIndex(t *testing.T) {
	r := testRouter(t)

	w, resp := do(t, r, http.MethodGet, "/exec", "")
	if w.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("index: code=%d resp=%v", w.Code, resp)
	}
	if _, ok := resp["endpoints"]; !ok {
		t.Errorf("index response missing endpoint listing: %v", resp)
	}
}

func TestDispatchGetMissingPlayer(t *testing.T) {
	r := testRouter(t)

	w, resp := do(t, r, http.MethodGet, "/exec?action=getPlayer&playerId=P404", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", w.Code)
	}
	if resp["error"] != "Player not found" {
		t.Errorf("resp = %v", resp)
	}
}

func TestDispatchPreSurveyRejectsBadBody(t *testing.T) {
	r := testRouter(t)

	w, resp := do(t, r, http.MethodPost, "/exec?action=submitPreSurvey", `{"stressLevel":"high"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", w.Code)
	}
	if resp["error"] != "Invalid request body" {
		t.Errorf("resp = %v", resp)
	}
}
