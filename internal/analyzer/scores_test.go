package analyzer

import "testing"

func TestDevScore_ExactWeighting(t *testing.T) {
	// round(0.4*80 + 0.3*60 + 0.3*50) = round(32+18+15) = 65.
	if got := DevScore(80, 60, 50); got != 65 {
		t.Errorf("DevScore(80, 60, 50) = %d, want 65", got)
	}
	if got := DevScore(0, 0, 0); got != 0 {
		t.Errorf("DevScore(0, 0, 0) = %d, want 0", got)
	}
	if got := DevScore(100, 100, 100); got != 100 {
		t.Errorf("DevScore(100, 100, 100) = %d, want 100", got)
	}
}

func TestImpactScore_EmptyList(t *testing.T) {
	if got := ImpactScore(nil); got != 0 {
		t.Errorf("ImpactScore(nil) = %d, want 0", got)
	}
}

func TestQualityScore_EmptyList(t *testing.T) {
	if got := QualityScore(nil); got != 0 {
		t.Errorf("QualityScore(nil) = %d, want 0", got)
	}
}

func TestConsistencyScore_Components(t *testing.T) {
	// 30-day streak maxes the streak component; >5 avg maxes the volume
	// component; zero gaps max the gap component.
	summary := ContributionSummary{
		TotalCommits:     500,
		LongestStreak:    30,
		AvgCommitsPerDay: 5.5,
	}
	if got := ConsistencyScore(summary); got != 100 {
		t.Errorf("ConsistencyScore = %d, want 100", got)
	}

	// Half streak, low volume, two gaps: 20 + 10 + 10.
	summary = ContributionSummary{
		TotalCommits:     120,
		LongestStreak:    15,
		AvgCommitsPerDay: 0.6,
		InactiveGaps:     []Gap{{DurationDays: 70}, {DurationDays: 80}},
	}
	if got := ConsistencyScore(summary); got != 40 {
		t.Errorf("ConsistencyScore = %d, want 40", got)
	}

	// Three or more gaps contribute nothing.
	summary.InactiveGaps = append(summary.InactiveGaps, Gap{DurationDays: 90})
	if got := ConsistencyScore(summary); got != 30 {
		t.Errorf("ConsistencyScore with 3 gaps = %d, want 30", got)
	}
}

func TestConsistencyScore_EmptySummary(t *testing.T) {
	// No commits means no consistency to rate; the zero-gap bonus must not
	// fire on a summary with no activity at all.
	if got := ConsistencyScore(ContributionSummary{}); got != 0 {
		t.Errorf("ConsistencyScore(zero) = %d, want 0", got)
	}

	// Streak and gap fields without commits still score 0.
	summary := ContributionSummary{LongestStreak: 10, AvgCommitsPerDay: 0}
	if got := ConsistencyScore(summary); got != 0 {
		t.Errorf("ConsistencyScore(no commits) = %d, want 0", got)
	}
}

func TestImpactScore_Saturation(t *testing.T) {
	repos := []AnalyzedRepository{
		{
			RawRepository: RawRepository{Stars: 500, Forks: 200},
			MaturityStage: MaturityStable,
			HealthScore:   100,
		},
	}
	// Stars and forks saturate (30+10), stable counts double so the ratio
	// saturates (30), health is perfect (30).
	if got := ImpactScore(repos); got != 100 {
		t.Errorf("ImpactScore = %d, want 100", got)
	}
}

func TestQualityScore_Ratios(t *testing.T) {
	repos := []AnalyzedRepository{
		{RawRepository: RawRepository{HasReadme: true, HasLicense: true}, MaturityStage: MaturityActive},
		{RawRepository: RawRepository{HasReadme: true}, MaturityStage: MaturityAbandoned},
	}
	// README 2/2 -> 50, license 1/2 -> 12.5, maintained 1/2 -> 12.5; round 75.
	if got := QualityScore(repos); got != 75 {
		t.Errorf("QualityScore = %d, want 75", got)
	}
}

func TestScores_AlwaysInRange(t *testing.T) {
	repoSets := [][]AnalyzedRepository{
		nil,
		{{RawRepository: RawRepository{Stars: 1000000, Forks: 1000000}, HealthScore: 100, MaturityStage: MaturityStable}},
		{{}, {}, {}},
	}
	for i, repos := range repoSets {
		for name, got := range map[string]int{
			"impact":  ImpactScore(repos),
			"quality": QualityScore(repos),
		} {
			if got < 0 || got > 100 {
				t.Errorf("set %d: %s score %d out of range", i, name, got)
			}
		}
	}
}
