package model

import "time"

// Survey rows are append-only: once submitted they are never edited.
// Rating fields are 1-10; zero means the respondent skipped the question.

type PreSurvey struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	SurveyID         string    `gorm:"not null;uniqueIndex;size:16" json:"surveyId"`
	PlayerID         string    `gorm:"index;size:16" json:"playerId"`
	SessionID        string    `gorm:"index;size:16" json:"sessionId"`
	Timestamp        time.Time `json:"timestamp"`
	StressLevel      int       `json:"stressLevel"`
	HappinessLevel   int       `json:"happinessLevel"`
	EnergyLevel      int       `json:"energyLevel"`
	MotivationLevel  int       `json:"motivationLevel"`
	AnxietyLevel     int       `json:"anxietyLevel"`
	MoodDescription  string    `gorm:"size:255" json:"moodDescription"`
	ExpectationScore int       `json:"expectationScore"`
	Comments         string    `gorm:"type:text" json:"comments"`
}

func (PreSurvey) TableName() string {
	return "pre_surveys"
}

type PostSurvey struct {
	ID                     int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	SurveyID               string    `gorm:"not null;uniqueIndex;size:16" json:"surveyId"`
	PlayerID               string    `gorm:"index;size:16" json:"playerId"`
	SessionID              string    `gorm:"index;size:16" json:"sessionId"`
	Timestamp              time.Time `json:"timestamp"`
	StressLevel            int       `json:"stressLevel"`
	HappinessLevel         int       `json:"happinessLevel"`
	FunLevel               int       `json:"funLevel"`
	SatisfactionLevel      int       `json:"satisfactionLevel"`
	EnergyLevel            int       `json:"energyLevel"`
	DifficultyRating       int       `json:"difficultyRating"`
	WillPlayAgain          string    `gorm:"size:32" json:"willPlayAgain"`
	FavoriteAspect         string    `gorm:"size:255" json:"favoriteAspect"`
	ImprovementSuggestions string    `gorm:"type:text" json:"improvementSuggestions"`
	OverallRating          int       `json:"overallRating"`
	Comments               string    `gorm:"type:text" json:"comments"`
}

func (PostSurvey) TableName() string {
	return "post_surveys"
}
