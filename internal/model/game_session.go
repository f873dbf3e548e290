package model

import (
	"strconv"
	"strings"
	"time"
)

// GameSession is one row in the GameSessions table. SessionID is indexed but
// deliberately not unique: a score submitted after the fact appends another
// row under the same session identifier, and lookups take the first match.
// Score is free text from the sheet era; ScoreValue does the parsing.
type GameSession struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID string     `gorm:"not null;index;size:16" json:"sessionId"`
	PlayerID  string     `gorm:"index;size:16" json:"playerId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Duration  string     `gorm:"size:32" json:"duration"`
	GameLevel string     `gorm:"size:32" json:"gameLevel"`
	Score     string     `gorm:"size:16" json:"score"`
	Completed bool       `json:"completed"`
	Notes     string     `gorm:"type:text" json:"notes"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// ScoreValue parses the free-text score column. ok is false when the row
// carries no usable number; such rows stay out of every numeric aggregate.
func (s *GameSession) ScoreValue() (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s.Score))
	if err != nil {
		return 0, false
	}
	return v, true
}
