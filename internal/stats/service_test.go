package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/gamepulse/api/internal/model"
)

type stubStore struct {
	players  []model.Player
	pre      []model.PreSurvey
	post     []model.PostSurvey
	sessions []model.GameSession
}

func (s *stubStore) ListPlayers() ([]model.Player, error)       { return s.players, nil }
func (s *stubStore) ListPreSurveys() ([]model.PreSurvey, error) { return s.pre, nil }
func (s *stubStore) ListPostSurveys() ([]model.PostSurvey, error) {
	return s.post, nil
}
func (s *stubStore) ListSessions() ([]model.GameSession, error) { return s.sessions, nil }

// One player playing one full chain: registration, pre-survey, scored
// session, post-survey.
func fullChainStore(t *testing.T) *stubStore {
	t.Helper()
	d := day(t, "2026-03-01").Add(10 * time.Hour)
	return &stubStore{
		players: []model.Player{
			{PlayerID: "P1", Name: "Alex", Age: "22", Gender: "male", GameExperience: "beginner"},
		},
		pre: []model.PreSurvey{
			{SurveyID: "PRE-1", PlayerID: "P1", SessionID: "S1", Timestamp: d,
				StressLevel: 8, HappinessLevel: 3, EnergyLevel: 4, MotivationLevel: 7, AnxietyLevel: 6},
		},
		sessions: []model.GameSession{
			{SessionID: "S1", PlayerID: "P1", StartTime: d.Add(15 * time.Minute), Score: "1200", GameLevel: "2", Completed: true},
		},
		post: []model.PostSurvey{
			{SurveyID: "POST-1", PlayerID: "P1", SessionID: "S1", Timestamp: d.Add(45 * time.Minute),
				StressLevel: 3, HappinessLevel: 8, EnergyLevel: 7, FunLevel: 9, SatisfactionLevel: 8, DifficultyRating: 5,
				Comments: "Really fun"},
		},
	}
}

func TestServiceStatisticsFullChain(t *testing.T) {
	svc := NewService(fullChainStore(t))

	st, err := svc.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	if st.TotalPlayers != 1 || st.TotalSessions != 1 || st.CompletedSurveys != 1 {
		t.Errorf("totals = %d/%d/%d, want 1/1/1", st.TotalPlayers, st.TotalSessions, st.CompletedSurveys)
	}
	if st.AverageScore != 1200 {
		t.Errorf("averageScore = %d, want 1200", st.AverageScore)
	}
	if st.AverageScores.PreGame.Stress != 8 || st.AverageScores.PostGame.Stress != 3 {
		t.Errorf("averages = %+v", st.AverageScores)
	}
	if st.Demographics.AgeGroups["18-25"] != 1 {
		t.Errorf("age groups = %+v", st.Demographics.AgeGroups)
	}

	if len(st.DailyTrends) != 1 {
		t.Fatalf("expected 1 trend day, got %d", len(st.DailyTrends))
	}
	trend := st.DailyTrends[0]
	if trend.Date != "2026-03-01" || trend.Sessions != 1 || trend.AvgScore != 1200 {
		t.Errorf("trend = %+v", trend)
	}
	// the post-survey's happiness sample landed on the session's day
	if trend.AvgHappiness != 8 {
		t.Errorf("trend avgHappiness = %v, want 8", trend.AvgHappiness)
	}

	if len(st.ExperiencePerformance) != 1 || st.ExperiencePerformance[0].Name != "beginner" {
		t.Errorf("experience performance = %+v", st.ExperiencePerformance)
	}
	if len(st.RecentFeedback) != 1 || st.RecentFeedback[0].Comment != "Really fun" {
		t.Errorf("feedback = %+v", st.RecentFeedback)
	}
	if len(st.RecentEmotionalComparison) != 1 {
		t.Errorf("emotional samples = %+v", st.RecentEmotionalComparison)
	}
}

// The pipeline reads, never writes: repeated calls over the same rows must
// produce identical output.
func TestServiceStatisticsDeterministic(t *testing.T) {
	svc := NewService(fullChainStore(t))

	first, err := svc.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	second, err := svc.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation diverged:\n%+v\n%+v", first, second)
	}
}

func TestServiceStatisticsEmpty(t *testing.T) {
	svc := NewService(&stubStore{})

	st, err := svc.Statistics()
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if st.TotalPlayers != 0 || st.TotalSessions != 0 || st.AverageScore != 0 {
		t.Errorf("empty store produced nonzero totals: %+v", st)
	}
	if len(st.Demographics.AgeGroups) != 4 {
		t.Errorf("age buckets must always be present, got %+v", st.Demographics.AgeGroups)
	}
	if len(st.DailyTrends) != 0 || len(st.RecentFeedback) != 0 {
		t.Errorf("empty store produced presentation rows: %+v", st)
	}
}

func TestServiceSurveyChanges(t *testing.T) {
	svc := NewService(fullChainStore(t))

	changes, err := svc.SurveyChanges()
	if err != nil {
		t.Fatalf("SurveyChanges: %v", err)
	}
	if changes.Count != 1 || len(changes.Changes) != 1 {
		t.Fatalf("count = %d, want 1", changes.Count)
	}
	want := Delta{Stress: -5, Happiness: 5, Energy: 3}
	if changes.Changes[0].Delta != want {
		t.Errorf("delta = %+v, want %+v", changes.Changes[0].Delta, want)
	}
	if changes.Summary.Basis != BasisPaired || changes.Summary.Pairs != 1 {
		t.Errorf("summary = %+v", changes.Summary)
	}
}

func TestServiceSurveyChangesAggregateFallback(t *testing.T) {
	// surveys exist but never share a session, so no pairs form
	st := fullChainStore(t)
	st.post[0].SessionID = "S99"
	svc := NewService(st)

	changes, err := svc.SurveyChanges()
	if err != nil {
		t.Fatalf("SurveyChanges: %v", err)
	}
	if changes.Count != 0 {
		t.Fatalf("count = %d, want 0", changes.Count)
	}
	if changes.Summary.Basis != BasisAggregate {
		t.Errorf("basis = %q, want %q", changes.Summary.Basis, BasisAggregate)
	}
	if changes.Summary.AvgDelta.Stress != -5 {
		t.Errorf("aggregate stress delta = %v, want -5", changes.Summary.AvgDelta.Stress)
	}
}

func TestServiceSessionComparison(t *testing.T) {
	svc := NewService(fullChainStore(t))

	cmp, err := svc.SessionComparison("S1")
	if err != nil {
		t.Fatalf("SessionComparison: %v", err)
	}
	if cmp == nil {
		t.Fatal("expected a comparison")
	}
	if cmp.StressChange != -5 || cmp.HappinessChange != 5 || cmp.EnergyChange != 3 {
		t.Errorf("comparison = %+v", cmp)
	}

	if cmp, _ := svc.SessionComparison(""); cmp != nil {
		t.Errorf("blank session id must yield nil, got %+v", cmp)
	}
	if cmp, _ := svc.SessionComparison("S42"); cmp != nil {
		t.Errorf("unknown session must yield nil, got %+v", cmp)
	}
}

func TestServiceLeaderboard(t *testing.T) {
	st := fullChainStore(t)
	st.sessions = append(st.sessions, model.GameSession{
		SessionID: "S2", PlayerID: "P1", StartTime: time.Now(), Score: "1800", GameLevel: "3",
	})
	svc := NewService(st)

	entries, err := svc.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "Alex" || entries[0].Score != 1800 {
		t.Errorf("entry = %+v, want Alex at 1800", entries[0])
	}
}
