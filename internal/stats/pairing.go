package stats

import "github.com/gamepulse/api/internal/model"

// matchPairs joins pre- and post-surveys on a non-empty session identifier.
//
// The lookup map is built by a forward pass over the pre table, so when two
// pre-surveys share a session the LATER one wins. SessionComparison below
// resolves the same ambiguity the other way (first match). Both directions
// are inherited behavior and both are pinned by tests; see DESIGN.md.
//
// Output order follows the post table's append order, one pair per matching
// post row.
func matchPairs(pre []model.PreSurvey, post []model.PostSurvey) []MatchedPair {
	preBySession := make(map[string]*model.PreSurvey, len(pre))
	for i := range pre {
		if pre[i].SessionID == "" {
			continue
		}
		preBySession[pre[i].SessionID] = &pre[i]
	}

	pairs := make([]MatchedPair, 0)
	for i := range post {
		p := &post[i]
		if p.SessionID == "" {
			continue
		}
		pr, ok := preBySession[p.SessionID]
		if !ok {
			continue
		}

		preM := PreMetrics{
			Stress:     pr.StressLevel,
			Happiness:  pr.HappinessLevel,
			Energy:     pr.EnergyLevel,
			Motivation: pr.MotivationLevel,
			Anxiety:    pr.AnxietyLevel,
		}
		postM := PostMetrics{
			Stress:       p.StressLevel,
			Happiness:    p.HappinessLevel,
			Fun:          p.FunLevel,
			Satisfaction: p.SatisfactionLevel,
			Energy:       p.EnergyLevel,
			Difficulty:   p.DifficultyRating,
		}

		pairs = append(pairs, MatchedPair{
			PlayerID:  pr.PlayerID,
			SessionID: p.SessionID,
			Pre:       preM,
			Post:      postM,
			Delta: Delta{
				Stress:    postM.Stress - preM.Stress,
				Happiness: postM.Happiness - preM.Happiness,
				Energy:    postM.Energy - preM.Energy,
			},
		})
	}

	return pairs
}

// summarizeChanges condenses the matched pairs into mean deltas and
// improvement rates. With zero pairs it falls back to the difference of the
// independent table means and marks the result BasisAggregate: that number
// is not an improvement rate and carries no per-pair counts.
func summarizeChanges(pairs []MatchedPair, pre PreGameAverages, post PostGameAverages) ChangeSummary {
	if len(pairs) == 0 {
		return ChangeSummary{
			Basis: BasisAggregate,
			AvgDelta: AvgDelta{
				Stress:    round2(post.Stress - pre.Stress),
				Happiness: round2(post.Happiness - pre.Happiness),
				Energy:    round2(post.Energy - pre.Energy),
			},
		}
	}

	var stressSum, happySum, energySum int
	var stressDown, happyUp, energyUp int
	for i := range pairs {
		d := pairs[i].Delta
		stressSum += d.Stress
		happySum += d.Happiness
		energySum += d.Energy
		if d.Stress < 0 {
			stressDown++
		}
		if d.Happiness > 0 {
			happyUp++
		}
		if d.Energy > 0 {
			energyUp++
		}
	}

	n := float64(len(pairs))
	return ChangeSummary{
		Basis: BasisPaired,
		Pairs: len(pairs),
		AvgDelta: AvgDelta{
			Stress:    round2(float64(stressSum) / n),
			Happiness: round2(float64(happySum) / n),
			Energy:    round2(float64(energySum) / n),
		},
		Improved: Improvements{
			StressReduced:         stressDown,
			HappinessIncreased:    happyUp,
			EnergyIncreased:       energyUp,
			StressReducedPct:      round2(float64(stressDown) / n * 100),
			HappinessIncreasedPct: round2(float64(happyUp) / n * 100),
			EnergyIncreasedPct:    round2(float64(energyUp) / n * 100),
		},
	}
}

// sessionComparison diffs the FIRST pre- and post-survey found for one
// session (contrast with matchPairs' last-wins map). Returns nil when either
// side is missing or the session identifier is blank.
func sessionComparison(sessionID string, pre []model.PreSurvey, post []model.PostSurvey) *SessionComparison {
	if sessionID == "" {
		return nil
	}

	var preRow *model.PreSurvey
	for i := range pre {
		if pre[i].SessionID == sessionID {
			preRow = &pre[i]
			break
		}
	}
	var postRow *model.PostSurvey
	for i := range post {
		if post[i].SessionID == sessionID {
			postRow = &post[i]
			break
		}
	}
	if preRow == nil || postRow == nil {
		return nil
	}

	return &SessionComparison{
		StressChange:    postRow.StressLevel - preRow.StressLevel,
		HappinessChange: postRow.HappinessLevel - preRow.HappinessLevel,
		EnergyChange:    postRow.EnergyLevel - preRow.EnergyLevel,
	}
}
