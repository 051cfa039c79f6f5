package analyzer

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAnalyze_NoRepositories(t *testing.T) {
	data := RawUserData{Profile: Profile{Username: "empty"}}

	result := Analyze(data, Options{Now: testNow})

	m := result.Metrics
	if m.DevScore != 0 || m.ConsistencyScore != 0 || m.ImpactScore != 0 || m.QualityScore != 0 {
		t.Errorf("scores for empty user = dev %d, consistency %d, impact %d, quality %d; want all 0",
			m.DevScore, m.ConsistencyScore, m.ImpactScore, m.QualityScore)
	}
	if len(m.Skills) != 0 {
		t.Errorf("skills = %d, want 0", len(m.Skills))
	}
	if m.ActivityPattern != PatternSporadic {
		t.Errorf("pattern = %s, want sporadic", m.ActivityPattern)
	}
	if m.DocumentationHabits != "poor" {
		t.Errorf("documentation habits = %s, want poor", m.DocumentationHabits)
	}
}

func TestAnalyze_FiltersForks(t *testing.T) {
	data := RawUserData{
		Profile: Profile{Username: "u"},
		Repos: []RepoFetch{
			{Repo: RawRepository{Name: "own", CreatedAt: daysAgo(100), PushedAt: daysAgo(1), CommitCount: 20}},
			{Repo: RawRepository{Name: "forked", Fork: true, CommitCount: 500}},
		},
	}

	result := Analyze(data, Options{Now: testNow})
	if len(result.Repositories) != 1 {
		t.Fatalf("repos = %d, want 1 after fork filter", len(result.Repositories))
	}
	if result.Repositories[0].Name != "own" {
		t.Errorf("kept repo = %s, want own", result.Repositories[0].Name)
	}
}

func TestAnalyze_DegradesFailedFetch(t *testing.T) {
	data := RawUserData{
		Profile: Profile{Username: "u"},
		Repos: []RepoFetch{
			{Repo: RawRepository{Name: "good", CreatedAt: daysAgo(200), PushedAt: daysAgo(5), CommitCount: 60, HasReadme: true, ReadmeLength: 800, HasLicense: true}},
			{Repo: RawRepository{Name: "broken", CreatedAt: daysAgo(300), PushedAt: daysAgo(50)}, Err: errors.New("boom")},
		},
	}

	result := Analyze(data, Options{Now: testNow})
	if len(result.Repositories) != 2 {
		t.Fatalf("repos = %d, want 2 (failure must not drop the repo)", len(result.Repositories))
	}

	var broken *AnalyzedRepository
	for i := range result.Repositories {
		if result.Repositories[i].Name == "broken" {
			broken = &result.Repositories[i]
		}
	}
	if broken == nil {
		t.Fatal("degraded repo missing from result")
	}
	if !broken.Degraded {
		t.Error("failed fetch not marked degraded")
	}

	// Composite scorers still receive a structurally complete list.
	if result.Metrics.ImpactScore < 0 || result.Metrics.ImpactScore > 100 {
		t.Errorf("impact score %d out of range with degraded repo", result.Metrics.ImpactScore)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	data := RawUserData{
		Profile: Profile{Username: "u", Followers: 10},
		Repos: []RepoFetch{
			{Repo: RawRepository{
				Name: "a", CreatedAt: daysAgo(400), UpdatedAt: daysAgo(3), PushedAt: daysAgo(3),
				CommitCount: 80, Stars: 12, HasReadme: true, ReadmeLength: 600,
				HasLicense: true, PrimaryLanguage: "Go",
				Languages: map[string]int64{"Go": 30000},
			}},
		},
		Calendar: []CalendarDay{calDay(0, 2), calDay(1, 3), calDay(2, 1)},
	}
	opts := Options{Now: testNow}

	first, _ := json.Marshal(Analyze(data, opts))
	second, _ := json.Marshal(Analyze(data, opts))
	if string(first) != string(second) {
		t.Error("two runs over identical input and instant differ")
	}
}

func TestPrimaryTechIdentity(t *testing.T) {
	tests := []struct {
		name   string
		skills []Skill
		want   string
	}{
		{"none", nil, "Developer"},
		{"full stack", []Skill{{Name: "Go"}, {Name: "TypeScript"}}, "Full-Stack Developer"},
		{"backend", []Skill{{Name: "Rust"}, {Name: "Python"}}, "Backend Developer"},
		{"frontend", []Skill{{Name: "JavaScript"}, {Name: "CSS"}}, "Frontend Developer"},
		{"other", []Skill{{Name: "Haskell"}}, "Haskell Developer"},
	}
	for _, tt := range tests {
		if got := primaryTechIdentity(tt.skills); got != tt.want {
			t.Errorf("%s: identity = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestActivityPattern_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name    string
		summary ContributionSummary
		want    ActivityPattern
	}{
		{
			"consistent",
			ContributionSummary{AvgCommitsPerDay: 1.5, LongestStreak: 40},
			PatternConsistent,
		},
		{
			"burst",
			ContributionSummary{
				AvgCommitsPerDay: 3,
				InactiveGaps:     []Gap{{DurationDays: 65}, {DurationDays: 70}, {DurationDays: 80}},
			},
			PatternBurst,
		},
		{
			"comeback",
			ContributionSummary{
				AvgCommitsPerDay: 0.3,
				CurrentStreak:    10,
				InactiveGaps:     []Gap{{DurationDays: 120}},
			},
			PatternComeback,
		},
		{
			"sporadic default",
			ContributionSummary{AvgCommitsPerDay: 0.1},
			PatternSporadic,
		},
		{
			// Satisfies both consistent and burst conditions except the
			// gap count; with 3 gaps, burst applies before comeback.
			"burst beats comeback",
			ContributionSummary{
				AvgCommitsPerDay: 4,
				LongestStreak:    40,
				CurrentStreak:    10,
				InactiveGaps:     []Gap{{DurationDays: 100}, {DurationDays: 100}, {DurationDays: 100}},
			},
			PatternBurst,
		},
	}
	for _, tt := range tests {
		if got := activityPattern(tt.summary); got != tt.want {
			t.Errorf("%s: pattern = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestProjectFocus(t *testing.T) {
	deep := make([]AnalyzedRepository, 3)
	for i := range deep {
		deep[i] = AnalyzedRepository{
			RawRepository: RawRepository{CommitCount: 100},
			MaturityStage: MaturityActive,
		}
	}
	if got := projectFocus(deep); got != "deep" {
		t.Errorf("focus = %s, want deep", got)
	}

	broad := make([]AnalyzedRepository, 20)
	for i := range broad {
		broad[i] = AnalyzedRepository{
			RawRepository: RawRepository{CommitCount: 5},
			MaturityStage: MaturityActive,
		}
	}
	if got := projectFocus(broad); got != "broad" {
		t.Errorf("focus = %s, want broad", got)
	}

	if got := projectFocus(nil); got != "balanced" {
		t.Errorf("focus = %s, want balanced", got)
	}
}

func TestDocumentationHabits(t *testing.T) {
	mk := func(documented, total int) []AnalyzedRepository {
		repos := make([]AnalyzedRepository, total)
		for i := 0; i < total; i++ {
			if i < documented {
				repos[i].DocumentationQuality = DocGood
			} else {
				repos[i].DocumentationQuality = DocNone
			}
		}
		return repos
	}

	tests := []struct {
		documented, total int
		want              string
	}{
		{9, 10, "excellent"},
		{6, 10, "good"},
		{3, 10, "inconsistent"},
		{1, 10, "poor"},
		{0, 0, "poor"},
	}
	for _, tt := range tests {
		if got := documentationHabits(mk(tt.documented, tt.total)); got != tt.want {
			t.Errorf("habits(%d/%d) = %s, want %s", tt.documented, tt.total, got, tt.want)
		}
	}
}
