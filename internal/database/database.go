package database

import (
	"github.com/gamepulse/api/internal/config"
	"github.com/gamepulse/api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Player{},
		&model.PreSurvey{},
		&model.PostSurvey{},
		&model.GameSession{},
		&model.StatsSnapshot{},
	)
}
