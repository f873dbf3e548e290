package stats

import "time"

// Statistics is the payload behind getStats. Everything in it is derived
// from a single read of the four row tables; nothing is stored.
type Statistics struct {
	TotalPlayers              int               `json:"totalPlayers"`
	TotalSessions             int               `json:"totalSessions"`
	CompletedSurveys          int               `json:"completedSurveys"`
	AverageScore              int               `json:"averageScore"`
	AverageScores             AverageScores     `json:"averageScores"`
	Demographics              Demographics      `json:"demographics"`
	ExperiencePerformance     []ExperienceScore `json:"experiencePerformance"`
	DailyTrends               []DailyTrend      `json:"dailyTrends"`
	RecentFeedback            []FeedbackEntry   `json:"recentFeedback"`
	RecentEmotionalComparison []EmotionalSample `json:"recentEmotionalComparison"`
}

type AverageScores struct {
	PreGame  PreGameAverages  `json:"preGame"`
	PostGame PostGameAverages `json:"postGame"`
}

type PreGameAverages struct {
	Stress    float64 `json:"stress"`
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`
}

type PostGameAverages struct {
	Stress       float64 `json:"stress"`
	Happiness    float64 `json:"happiness"`
	Fun          float64 `json:"fun"`
	Satisfaction float64 `json:"satisfaction"`
	Energy       float64 `json:"energy"`
	Difficulty   float64 `json:"difficulty"`
}

type Demographics struct {
	Gender    map[string]int `json:"gender"`
	AgeGroups map[string]int `json:"ageGroups"`
}

type ExperienceScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type DailyTrend struct {
	Date         string  `json:"date"`
	Sessions     int     `json:"sessions"`
	AvgScore     int     `json:"avgScore"`
	AvgHappiness float64 `json:"avgHappiness"`
}

type FeedbackEntry struct {
	Player  string `json:"player"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type EmotionalSample struct {
	Name      string `json:"name"`
	Stress    int    `json:"stress"`
	Happiness int    `json:"happiness"`
	Energy    int    `json:"energy"`
}

// PreMetrics / PostMetrics / Delta make up one matched pre/post pair.
// Delta is post minus pre, so negative stress means the session helped.

type PreMetrics struct {
	Stress     int `json:"stress"`
	Happiness  int `json:"happiness"`
	Energy     int `json:"energy"`
	Motivation int `json:"motivation"`
	Anxiety    int `json:"anxiety"`
}

type PostMetrics struct {
	Stress       int `json:"stress"`
	Happiness    int `json:"happiness"`
	Fun          int `json:"fun"`
	Satisfaction int `json:"satisfaction"`
	Energy       int `json:"energy"`
	Difficulty   int `json:"difficulty"`
}

type Delta struct {
	Stress    int `json:"stress"`
	Happiness int `json:"happiness"`
	Energy    int `json:"energy"`
}

type MatchedPair struct {
	PlayerID  string      `json:"playerId"`
	SessionID string      `json:"sessionId"`
	Pre       PreMetrics  `json:"pre"`
	Post      PostMetrics `json:"post"`
	Delta     Delta       `json:"delta"`
}

// Basis values for ChangeSummary. A "paired" summary comes from actual
// matched pairs; an "aggregate" one is the weaker fallback computed from the
// independent pre/post table means, and consumers must not present the two
// with the same confidence.
const (
	BasisPaired    = "paired"
	BasisAggregate = "aggregate"
)

type AvgDelta struct {
	Stress    float64 `json:"stress"`
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`
}

type Improvements struct {
	StressReduced         int     `json:"stressReduced"`
	HappinessIncreased    int     `json:"happinessIncreased"`
	EnergyIncreased       int     `json:"energyIncreased"`
	StressReducedPct      float64 `json:"stressReducedPct"`
	HappinessIncreasedPct float64 `json:"happinessIncreasedPct"`
	EnergyIncreasedPct    float64 `json:"energyIncreasedPct"`
}

type ChangeSummary struct {
	Basis    string       `json:"basis"`
	Pairs    int          `json:"pairs"`
	AvgDelta AvgDelta     `json:"avgDelta"`
	Improved Improvements `json:"improved"`
}

type SurveyChanges struct {
	Changes []MatchedPair `json:"changes"`
	Count   int           `json:"count"`
	Summary ChangeSummary `json:"summary"`
}

// SessionComparison is the single-session pre/post diff returned right after
// a post-survey submission.
type SessionComparison struct {
	StressChange    int `json:"stressChange"`
	HappinessChange int `json:"happinessChange"`
	EnergyChange    int `json:"energyChange"`
}

type LeaderboardEntry struct {
	PlayerID string    `json:"playerId"`
	Name     string    `json:"name"`
	Score    int       `json:"score"`
	Level    string    `json:"level"`
	Date     time.Time `json:"date"`
}
