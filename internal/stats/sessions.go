package stats

import (
	"math"
	"sort"

	"github.com/gamepulse/api/internal/model"
)

const DayFormat = "2006-01-02"

type dailyAccumulator struct {
	scoreSum   int
	count      int
	happySum   int
	happyCount int
}

type scoreAccumulator struct {
	sum   int
	count int
}

type sessionAggregates struct {
	totalSessions int
	averageScore  int
	// keyed by calendar day of StartTime (process-local zone); only days
	// that saw at least one valid-scored session get a key, and the survey
	// pass joins happiness samples onto those existing keys
	daily      map[string]*dailyAccumulator
	experience map[string]*scoreAccumulator
}

// aggregateSessions runs the session pass. Rows whose score fails to parse
// still count toward totalSessions but contribute to no numeric aggregate.
// Players absent from the experience map (session without a player row) are
// grouped under "unspecified".
func aggregateSessions(sessions []model.GameSession, experience map[string]string) sessionAggregates {
	agg := sessionAggregates{
		totalSessions: len(sessions),
		daily:         map[string]*dailyAccumulator{},
		experience:    map[string]*scoreAccumulator{},
	}

	scoreSum := 0
	scoreCount := 0

	for i := range sessions {
		s := &sessions[i]
		score, ok := s.ScoreValue()
		if !ok {
			continue
		}

		scoreSum += score
		scoreCount++

		day := s.StartTime.Format(DayFormat)
		d := agg.daily[day]
		if d == nil {
			d = &dailyAccumulator{}
			agg.daily[day] = d
		}
		d.scoreSum += score
		d.count++

		exp, known := experience[s.PlayerID]
		if !known {
			exp = model.GenderUnspecified
		}
		e := agg.experience[exp]
		if e == nil {
			e = &scoreAccumulator{}
			agg.experience[exp] = e
		}
		e.sum += score
		e.count++
	}

	if scoreCount > 0 {
		agg.averageScore = roundInt(float64(scoreSum) / float64(scoreCount))
	}

	return agg
}

// experiencePerformance flattens the per-bucket accumulators, sorted by
// bucket name so the output is stable across runs.
func (a *sessionAggregates) experiencePerformance() []ExperienceScore {
	names := make([]string, 0, len(a.experience))
	for name := range a.experience {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ExperienceScore, 0, len(names))
	for _, name := range names {
		e := a.experience[name]
		out = append(out, ExperienceScore{
			Name:  name,
			Score: roundInt(float64(e.sum) / float64(e.count)),
		})
	}
	return out
}

// dailyTrends flattens the per-day accumulators ascending by date string.
// avgHappiness stays 0 for days with no survey samples.
func (a *sessionAggregates) dailyTrends() []DailyTrend {
	days := make([]string, 0, len(a.daily))
	for day := range a.daily {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]DailyTrend, 0, len(days))
	for _, day := range days {
		d := a.daily[day]
		trend := DailyTrend{
			Date:     day,
			Sessions: d.count,
			AvgScore: roundInt(float64(d.scoreSum) / float64(d.count)),
		}
		if d.happyCount > 0 {
			trend.AvgHappiness = round2(float64(d.happySum) / float64(d.happyCount))
		}
		out = append(out, trend)
	}
	return out
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
