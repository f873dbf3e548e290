package stats

import (
	"strings"

	"github.com/gamepulse/api/internal/model"
)

const (
	feedbackLimit  = 5
	emotionalLimit = 20

	feedbackTimeFormat  = "02/01 15:04"
	emotionalTimeFormat = "15:04"
)

type surveyAverages struct {
	pre       PreGameAverages
	post      PostGameAverages
	completed int
}

// aggregateSurveys computes the per-field means for both survey tables.
//
// Accumulation quirk, preserved on purpose: a skipped rating adds nothing to
// the field's sum but the shared row counter still increments, so a field
// with many skips is biased toward zero. The sheet-era dashboard was built
// against exactly these numbers (see DESIGN.md before "fixing" this).
//
// The session pass's daily map is mutated here: each post-survey posts its
// happiness sample onto the day key of its timestamp, but only when that day
// already exists (i.e. had a valid-scored session).
func aggregateSurveys(pre []model.PreSurvey, post []model.PostSurvey, daily map[string]*dailyAccumulator) surveyAverages {
	var out surveyAverages

	if len(pre) > 0 {
		var sSum, hSum, eSum, count int
		for i := range pre {
			p := &pre[i]
			sSum += p.StressLevel
			hSum += p.HappinessLevel
			eSum += p.EnergyLevel
			count++
		}
		out.pre = PreGameAverages{
			Stress:    round2(float64(sSum) / float64(count)),
			Happiness: round2(float64(hSum) / float64(count)),
			Energy:    round2(float64(eSum) / float64(count)),
		}
	}

	if len(post) > 0 {
		var sSum, hSum, fSum, satSum, eSum, dSum, count int
		for i := range post {
			p := &post[i]
			sSum += p.StressLevel
			hSum += p.HappinessLevel
			fSum += p.FunLevel
			satSum += p.SatisfactionLevel
			eSum += p.EnergyLevel
			dSum += p.DifficultyRating
			count++

			if d, ok := daily[p.Timestamp.Format(DayFormat)]; ok {
				d.happySum += p.HappinessLevel
				d.happyCount++
			}
		}
		out.post = PostGameAverages{
			Stress:       round2(float64(sSum) / float64(count)),
			Happiness:    round2(float64(hSum) / float64(count)),
			Fun:          round2(float64(fSum) / float64(count)),
			Satisfaction: round2(float64(satSum) / float64(count)),
			Energy:       round2(float64(eSum) / float64(count)),
			Difficulty:   round2(float64(dSum) / float64(count)),
		}
		out.completed = count
	}

	return out
}

// collectRecentFeedback walks post-surveys newest first and keeps up to five
// entries with a non-blank comment.
func collectRecentFeedback(post []model.PostSurvey) []FeedbackEntry {
	feedback := make([]FeedbackEntry, 0, feedbackLimit)
	for i := len(post) - 1; i >= 0 && len(feedback) < feedbackLimit; i-- {
		comment := strings.TrimSpace(post[i].Comments)
		if comment == "" {
			continue
		}
		feedback = append(feedback, FeedbackEntry{
			Player:  post[i].PlayerID,
			Comment: comment,
			Date:    post[i].Timestamp.Format(feedbackTimeFormat),
		})
	}
	return feedback
}

// collectEmotionalComparison takes the 20 newest post-surveys and returns
// them oldest-first so charts read left to right chronologically.
func collectEmotionalComparison(post []model.PostSurvey, names map[string]string) []EmotionalSample {
	samples := make([]EmotionalSample, 0, emotionalLimit)
	for i := len(post) - 1; i >= 0 && len(samples) < emotionalLimit; i-- {
		p := &post[i]
		samples = append(samples, EmotionalSample{
			Name:      nameOrAnonymous(names, p.PlayerID) + " (" + p.Timestamp.Format(emotionalTimeFormat) + ")",
			Stress:    p.StressLevel,
			Happiness: p.HappinessLevel,
			Energy:    p.EnergyLevel,
		})
	}
	for i, j := 0, len(samples)-1; i < j; i, j = i+1, j-1 {
		samples[i], samples[j] = samples[j], samples[i]
	}
	return samples
}
