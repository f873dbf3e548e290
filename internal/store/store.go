// Package store is the row-oriented table boundary. Every table is
// append-only; list methods return rows in append order (ID ascending),
// which the aggregation core relies on for pairing and recency scans.
package store

import (
	"errors"
	"time"

	"github.com/gamepulse/api/internal/model"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for collaborators that manage their own
// tables (snapshot scheduler, admin snapshot listing).
func (s *Store) DB() *gorm.DB {
	return s.db
}

// ---- Players ----

func (s *Store) CreatePlayer(p *model.Player) error {
	return s.db.Create(p).Error
}

func (s *Store) FindPlayer(playerID string) (*model.Player, error) {
	var p model.Player
	err := s.db.First(&p, "player_id = ?", playerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPlayers() ([]model.Player, error) {
	var players []model.Player
	err := s.db.Order("id asc").Find(&players).Error
	return players, err
}

// UpsertPlayer fills in basic fields for a player referenced by a survey or
// score submission. Existing real values are never overwritten: a field is
// updated only while it still holds the blank/placeholder default.
// LastActive is always refreshed. Unknown players get a stub row.
func (s *Store) UpsertPlayer(playerID, name, age, gender string, now time.Time) error {
	if playerID == "" {
		return nil
	}

	var p model.Player
	err := s.db.First(&p, "player_id = ?", playerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stub := model.Player{
			PlayerID:     playerID,
			Name:         name,
			Age:          age,
			Gender:       gender,
			RegisteredAt: now,
			LastActive:   now,
		}
		if stub.Name == "" {
			stub.Name = model.NameAnonymous
		}
		if stub.Gender == "" {
			stub.Gender = model.GenderUnspecified
		}
		return s.db.Create(&stub).Error
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"last_active": now}
	if name != "" && (p.Name == "" || p.Name == model.NameAnonymous) {
		updates["name"] = name
	}
	if age != "" && p.Age == "" {
		updates["age"] = age
	}
	if gender != "" && (p.Gender == "" || p.Gender == model.GenderUnspecified) {
		updates["gender"] = gender
	}
	return s.db.Model(&p).Updates(updates).Error
}

// ---- Surveys ----

func (s *Store) CreatePreSurvey(sv *model.PreSurvey) error {
	return s.db.Create(sv).Error
}

func (s *Store) ListPreSurveys() ([]model.PreSurvey, error) {
	var surveys []model.PreSurvey
	err := s.db.Order("id asc").Find(&surveys).Error
	return surveys, err
}

func (s *Store) CreatePostSurvey(sv *model.PostSurvey) error {
	return s.db.Create(sv).Error
}

func (s *Store) ListPostSurveys() ([]model.PostSurvey, error) {
	var surveys []model.PostSurvey
	err := s.db.Order("id asc").Find(&surveys).Error
	return surveys, err
}

// FindPreBySession returns the first pre-survey appended for the session.
func (s *Store) FindPreBySession(sessionID string) (*model.PreSurvey, error) {
	var sv model.PreSurvey
	err := s.db.Where("session_id = ?", sessionID).Order("id asc").First(&sv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

// FindPostBySession returns the first post-survey appended for the session.
func (s *Store) FindPostBySession(sessionID string) (*model.PostSurvey, error) {
	var sv model.PostSurvey
	err := s.db.Where("session_id = ?", sessionID).Order("id asc").First(&sv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

// ---- Sessions ----

func (s *Store) CreateSession(gs *model.GameSession) error {
	return s.db.Create(gs).Error
}

// FindSession returns the first row carrying the session identifier.
func (s *Store) FindSession(sessionID string) (*model.GameSession, error) {
	var gs model.GameSession
	err := s.db.Where("session_id = ?", sessionID).Order("id asc").First(&gs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gs, nil
}

func (s *Store) ListSessions() ([]model.GameSession, error) {
	var sessions []model.GameSession
	err := s.db.Order("id asc").Find(&sessions).Error
	return sessions, err
}

func (s *Store) ListPlayerSessions(playerID string) ([]model.GameSession, error) {
	var sessions []model.GameSession
	err := s.db.Where("player_id = ?", playerID).Order("id asc").Find(&sessions).Error
	return sessions, err
}

// ---- Admin ----

// ClearAll truncates the four row tables. Snapshots are kept so the trend
// history survives a data reset.
func (s *Store) ClearAll() error {
	for _, table := range []string{"players", "pre_surveys", "post_surveys", "game_sessions"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ListSnapshots(limit int) ([]model.StatsSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}
	var snapshots []model.StatsSnapshot
	err := s.db.Order("date desc").Limit(limit).Find(&snapshots).Error
	return snapshots, err
}
