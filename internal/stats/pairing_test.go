package stats

import (
	"testing"

	"github.com/gamepulse/api/internal/model"
)

func TestMatchPairsDeltaIsPostMinusPre(t *testing.T) {
	pre := []model.PreSurvey{
		{SurveyID: "PRE-1", PlayerID: "P1", SessionID: "S1", StressLevel: 8, HappinessLevel: 3, EnergyLevel: 4, MotivationLevel: 6, AnxietyLevel: 7},
	}
	post := []model.PostSurvey{
		{SurveyID: "POST-1", PlayerID: "P1", SessionID: "S1", StressLevel: 3, HappinessLevel: 8, EnergyLevel: 7, FunLevel: 9, SatisfactionLevel: 8, DifficultyRating: 5},
	}

	pairs := matchPairs(pre, post)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}

	p := pairs[0]
	if p.PlayerID != "P1" || p.SessionID != "S1" {
		t.Errorf("unexpected pair identity: %+v", p)
	}
	if p.Delta.Stress != -5 {
		t.Errorf("stress delta = %d, want -5", p.Delta.Stress)
	}
	if p.Delta.Happiness != 5 {
		t.Errorf("happiness delta = %d, want 5", p.Delta.Happiness)
	}
	if p.Delta.Energy != 3 {
		t.Errorf("energy delta = %d, want 3", p.Delta.Energy)
	}
}

func TestMatchPairsSkipsBlankAndUnmatchedSessions(t *testing.T) {
	pre := []model.PreSurvey{
		{SurveyID: "PRE-1", SessionID: "", StressLevel: 5},
		{SurveyID: "PRE-2", SessionID: "S2", StressLevel: 5},
	}
	post := []model.PostSurvey{
		{SurveyID: "POST-1", SessionID: ""},
		{SurveyID: "POST-2", SessionID: "S9"},
	}

	if pairs := matchPairs(pre, post); len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %d", len(pairs))
	}
}

// Two pre-surveys under the same session: the pairing map is built by a
// forward pass, so the later row wins. The single-session comparison takes
// the first row instead. Both directions are pinned here.
func TestDuplicatePreSurveyResolution(t *testing.T) {
	pre := []model.PreSurvey{
		{SurveyID: "PRE-1", PlayerID: "P1", SessionID: "S1", StressLevel: 9, HappinessLevel: 2, EnergyLevel: 3},
		{SurveyID: "PRE-2", PlayerID: "P1", SessionID: "S1", StressLevel: 4, HappinessLevel: 6, EnergyLevel: 5},
	}
	post := []model.PostSurvey{
		{SurveyID: "POST-1", PlayerID: "P1", SessionID: "S1", StressLevel: 2, HappinessLevel: 8, EnergyLevel: 7},
	}

	pairs := matchPairs(pre, post)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if got := pairs[0].Pre.Stress; got != 4 {
		t.Errorf("pairing pre stress = %d, want 4 (later pre-survey wins)", got)
	}
	if got := pairs[0].Delta.Stress; got != -2 {
		t.Errorf("pairing stress delta = %d, want -2", got)
	}

	cmp := sessionComparison("S1", pre, post)
	if cmp == nil {
		t.Fatal("expected a comparison")
	}
	if cmp.StressChange != -7 {
		t.Errorf("comparison stress change = %d, want -7 (first pre-survey wins)", cmp.StressChange)
	}
	if cmp.HappinessChange != 6 {
		t.Errorf("comparison happiness change = %d, want 6", cmp.HappinessChange)
	}
	if cmp.EnergyChange != 4 {
		t.Errorf("comparison energy change = %d, want 4", cmp.EnergyChange)
	}
}

func TestSessionComparisonIncomplete(t *testing.T) {
	pre := []model.PreSurvey{{SurveyID: "PRE-1", SessionID: "S1"}}

	if cmp := sessionComparison("S1", pre, nil); cmp != nil {
		t.Errorf("expected nil without a post-survey, got %+v", cmp)
	}
	if cmp := sessionComparison("", pre, nil); cmp != nil {
		t.Errorf("expected nil for blank session id, got %+v", cmp)
	}
}

func TestSummarizeChangesPaired(t *testing.T) {
	pairs := []MatchedPair{
		{Delta: Delta{Stress: -5, Happiness: 5, Energy: 3}},
		{Delta: Delta{Stress: -1, Happiness: 0, Energy: -2}},
		{Delta: Delta{Stress: 2, Happiness: 3, Energy: 1}},
	}

	sum := summarizeChanges(pairs, PreGameAverages{}, PostGameAverages{})
	if sum.Basis != BasisPaired {
		t.Fatalf("basis = %q, want %q", sum.Basis, BasisPaired)
	}
	if sum.Pairs != 3 {
		t.Errorf("pairs = %d, want 3", sum.Pairs)
	}
	if sum.AvgDelta.Stress != -1.33 {
		t.Errorf("avg stress delta = %v, want -1.33", sum.AvgDelta.Stress)
	}
	if sum.AvgDelta.Happiness != 2.67 {
		t.Errorf("avg happiness delta = %v, want 2.67", sum.AvgDelta.Happiness)
	}
	if sum.Improved.StressReduced != 2 || sum.Improved.HappinessIncreased != 2 || sum.Improved.EnergyIncreased != 2 {
		t.Errorf("improvement counts = %+v", sum.Improved)
	}
	if sum.Improved.StressReducedPct != 66.67 {
		t.Errorf("stress reduced pct = %v, want 66.67", sum.Improved.StressReducedPct)
	}
}

func TestSummarizeChangesAggregateFallback(t *testing.T) {
	pre := PreGameAverages{Stress: 6.5, Happiness: 4.0, Energy: 5.0}
	post := PostGameAverages{Stress: 4.0, Happiness: 7.5, Energy: 6.0}

	sum := summarizeChanges(nil, pre, post)
	if sum.Basis != BasisAggregate {
		t.Fatalf("basis = %q, want %q", sum.Basis, BasisAggregate)
	}
	if sum.Pairs != 0 {
		t.Errorf("pairs = %d, want 0", sum.Pairs)
	}
	if sum.AvgDelta.Stress != -2.5 || sum.AvgDelta.Happiness != 3.5 || sum.AvgDelta.Energy != 1 {
		t.Errorf("avg delta = %+v", sum.AvgDelta)
	}
	if sum.Improved != (Improvements{}) {
		t.Errorf("aggregate fallback must carry no improvement counts, got %+v", sum.Improved)
	}
}
