package model

import "time"

// Defaults applied when a survey submission reaches us before a proper
// registration. Upserts may later replace them with real values.
const (
	NameAnonymous      = "Anonymous"
	GenderUnspecified  = "unspecified"
	ExperienceBeginner = "beginner"
)

// Player is one row in the Players table. Age is kept as free text, the way
// the intake form delivers it; parsing happens in the demographics pass.
type Player struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	PlayerID       string    `gorm:"not null;uniqueIndex;size:16" json:"playerId"`
	Name           string    `gorm:"size:255" json:"name"`
	Age            string    `gorm:"size:8" json:"age"`
	Gender         string    `gorm:"size:32" json:"gender"`
	Email          string    `gorm:"size:255" json:"email"`
	Phone          string    `gorm:"size:32" json:"phone"`
	Education      string    `gorm:"size:255" json:"education"`
	GameExperience string    `gorm:"size:32" json:"gameExperience"`
	RegisteredAt   time.Time `json:"registeredAt"`
	LastActive     time.Time `json:"lastActive"`
}

func (Player) TableName() string {
	return "players"
}
