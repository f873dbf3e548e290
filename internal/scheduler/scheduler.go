// Package scheduler captures periodic statistics snapshots: one JSON row per
// calendar day in stats_snapshots, plus a re-warm of the Redis stats keys so
// dashboard polls land on a hot cache.
package scheduler

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gamepulse/api/internal/cache"
	"github.com/gamepulse/api/internal/model"
	"github.com/gamepulse/api/internal/stats"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotScheduler struct {
	db       *gorm.DB
	svc      *stats.Service
	cache    *cache.RedisCache
	interval time.Duration

	mu       sync.Mutex
	running  bool
	runs     int
	lastRun  time.Time
	lastErr  string
	stopChan chan struct{}
}

type Config struct {
	Interval time.Duration
}

func NewSnapshotScheduler(db *gorm.DB, svc *stats.Service, redisCache *cache.RedisCache, cfg Config) *SnapshotScheduler {
	if cfg.Interval == 0 {
		cfg.Interval = 5 * time.Minute
	}

	return &SnapshotScheduler{
		db:       db,
		svc:      svc,
		cache:    redisCache,
		interval: cfg.Interval,
		stopChan: make(chan struct{}),
	}
}

func (s *SnapshotScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	log.Printf("[Scheduler] Starting with interval %v", s.interval)

	// take one snapshot up front so the cache is warm before the first tick
	s.capture(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Scheduler] Context cancelled, stopping")
			return
		case <-s.stopChan:
			log.Println("[Scheduler] Stop signal received")
			return
		case <-ticker.C:
			s.capture(ctx)
		}
	}
}

func (s *SnapshotScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		close(s.stopChan)
		s.running = false
		log.Println("[Scheduler] Stopped")
	}
}

func (s *SnapshotScheduler) capture(ctx context.Context) {
	st, err := s.svc.Statistics()
	if err != nil {
		s.recordRun(err)
		log.Printf("[Scheduler] Error computing statistics: %v", err)
		return
	}

	payload, err := json.Marshal(st)
	if err != nil {
		s.recordRun(err)
		log.Printf("[Scheduler] Error serializing statistics: %v", err)
		return
	}

	today, _ := time.Parse(stats.DayFormat, time.Now().Format(stats.DayFormat))
	snapshot := model.StatsSnapshot{
		Date:  today,
		Stats: datatypes.JSON(payload),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"stats", "updated_at"}),
	}).Create(&snapshot).Error
	if err != nil {
		s.recordRun(err)
		log.Printf("[Scheduler] Error saving snapshot: %v", err)
		return
	}

	s.warmCache(ctx, st)
	s.recordRun(nil)
	log.Printf("[Scheduler] Snapshot saved for %s", today.Format(stats.DayFormat))
}

// warmCache refreshes both Redis keys with the same envelopes the HTTP
// handlers would produce. Failures are logged only; the cache is optional.
func (s *SnapshotScheduler) warmCache(ctx context.Context, st *stats.Statistics) {
	if s.cache == nil {
		return
	}

	overview, err := json.Marshal(stats.StatsResponse{Success: true, Statistics: st, GeneratedAt: time.Now()})
	if err == nil {
		if err := s.cache.Set(ctx, cache.KeyStatistics, overview); err != nil {
			log.Printf("[Scheduler] Error warming stats cache: %v", err)
		}
	}

	changes, err := s.svc.SurveyChanges()
	if err != nil {
		log.Printf("[Scheduler] Error computing changes: %v", err)
		return
	}
	payload, err := json.Marshal(stats.ChangesResponse{Success: true, Changes: changes.Changes, Count: changes.Count, Summary: changes.Summary})
	if err == nil {
		if err := s.cache.Set(ctx, cache.KeyChanges, payload); err != nil {
			log.Printf("[Scheduler] Error warming changes cache: %v", err)
		}
	}
}

func (s *SnapshotScheduler) recordRun(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs++
	s.lastRun = time.Now()
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.lastErr = ""
	}
}

// GetStatus returns the current scheduler state for the ops endpoint.
func (s *SnapshotScheduler) GetStatus() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]interface{}{
		"running":   s.running,
		"runs":      s.runs,
		"lastRun":   s.lastRun,
		"lastError": s.lastErr,
		"interval":  s.interval.String(),
	}
}
