package model

import (
	"time"

	"gorm.io/datatypes"
)

// StatsSnapshot stores one serialized statistics payload per calendar date,
// upserted by the background scheduler. It gives the dashboard a cheap
// history of how the aggregates moved without replaying the row tables.
type StatsSnapshot struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      time.Time      `gorm:"type:date;not null;uniqueIndex" json:"date"`
	Stats     datatypes.JSON `gorm:"not null" json:"stats"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (StatsSnapshot) TableName() string {
	return "stats_snapshots"
}
