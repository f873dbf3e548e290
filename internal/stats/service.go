// Package stats is the aggregation core: pure computation over full
// snapshots of the row tables, read once per request through the Store
// interface. No function here writes anything, and none aborts on a
// malformed row — bad values degrade their own contribution only.
package stats

import (
	"time"

	"github.com/gamepulse/api/internal/model"
)

type Store interface {
	ListPlayers() ([]model.Player, error)
	ListPreSurveys() ([]model.PreSurvey, error)
	ListPostSurveys() ([]model.PostSurvey, error)
	ListSessions() ([]model.GameSession, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Statistics runs the full pipeline: demographics, sessions, survey
// averages, then presentation shaping (recent feedback, emotional samples,
// trends).
func (s *Service) Statistics() (*Statistics, error) {
	players, err := s.store.ListPlayers()
	if err != nil {
		return nil, err
	}
	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, err
	}
	pre, err := s.store.ListPreSurveys()
	if err != nil {
		return nil, err
	}
	post, err := s.store.ListPostSurveys()
	if err != nil {
		return nil, err
	}

	demo := aggregateDemographics(players)
	sessAgg := aggregateSessions(sessions, demo.experience)
	// survey pass joins happiness samples onto the daily map, so it must run
	// before the trends are flattened
	svAgg := aggregateSurveys(pre, post, sessAgg.daily)

	return &Statistics{
		TotalPlayers:     demo.totalPlayers,
		TotalSessions:    sessAgg.totalSessions,
		CompletedSurveys: svAgg.completed,
		AverageScore:     sessAgg.averageScore,
		AverageScores: AverageScores{
			PreGame:  svAgg.pre,
			PostGame: svAgg.post,
		},
		Demographics:              demo.demographics,
		ExperiencePerformance:     sessAgg.experiencePerformance(),
		DailyTrends:               sessAgg.dailyTrends(),
		RecentFeedback:            collectRecentFeedback(post),
		RecentEmotionalComparison: collectEmotionalComparison(post, demo.names),
	}, nil
}

// SurveyChanges returns the full matched-pair list plus its summary.
func (s *Service) SurveyChanges() (*SurveyChanges, error) {
	pre, err := s.store.ListPreSurveys()
	if err != nil {
		return nil, err
	}
	post, err := s.store.ListPostSurveys()
	if err != nil {
		return nil, err
	}

	pairs := matchPairs(pre, post)
	svAgg := aggregateSurveys(pre, post, map[string]*dailyAccumulator{})

	return &SurveyChanges{
		Changes: pairs,
		Count:   len(pairs),
		Summary: summarizeChanges(pairs, svAgg.pre, svAgg.post),
	}, nil
}

// SessionComparison diffs the first pre/post surveys of one session; nil
// result (no error) when the pair is incomplete.
func (s *Service) SessionComparison(sessionID string) (*SessionComparison, error) {
	if sessionID == "" {
		return nil, nil
	}
	pre, err := s.store.ListPreSurveys()
	if err != nil {
		return nil, err
	}
	post, err := s.store.ListPostSurveys()
	if err != nil {
		return nil, err
	}
	return sessionComparison(sessionID, pre, post), nil
}

func (s *Service) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	players, err := s.store.ListPlayers()
	if err != nil {
		return nil, err
	}
	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(players))
	for i := range players {
		names[players[i].PlayerID] = players[i].Name
	}
	return buildLeaderboard(sessions, names, limit), nil
}

// StatsResponse and ChangesResponse are the wire envelopes shared by the
// HTTP handler and the snapshot scheduler, so a cache-warmed payload is
// byte-identical to a freshly computed one.

type StatsResponse struct {
	Success     bool        `json:"success"`
	Statistics  *Statistics `json:"statistics"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

type ChangesResponse struct {
	Success bool          `json:"success"`
	Changes []MatchedPair `json:"changes"`
	Count   int           `json:"count"`
	Summary ChangeSummary `json:"summary"`
}
