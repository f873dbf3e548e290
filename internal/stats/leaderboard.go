package stats

import (
	"sort"

	"github.com/gamepulse/api/internal/model"
)

const defaultLeaderboardLimit = 10

// buildLeaderboard keeps each player's best-scoring session row (non-numeric
// scores count as 0), sorts descending by score and truncates to limit.
// The sort is stable, so tied players keep their order of first appearance.
func buildLeaderboard(sessions []model.GameSession, names map[string]string, limit int) []LeaderboardEntry {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	best := make(map[string]int) // playerID -> index into entries
	entries := make([]LeaderboardEntry, 0)

	for i := range sessions {
		s := &sessions[i]
		score, _ := s.ScoreValue()
		level := s.GameLevel
		if level == "" {
			level = "Unknown"
		}
		entry := LeaderboardEntry{
			PlayerID: s.PlayerID,
			Name:     nameOrAnonymous(names, s.PlayerID),
			Score:    score,
			Level:    level,
			Date:     s.StartTime,
		}

		if idx, seen := best[s.PlayerID]; seen {
			if score > entries[idx].Score {
				entries[idx] = entry
			}
			continue
		}
		best[s.PlayerID] = len(entries)
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
