package analyzer

import (
	"testing"
	"time"
)

// langRepo builds a repository with a language byte map and lifecycle dates.
func langRepo(name string, created, updated time.Time, langs map[string]int64) AnalyzedRepository {
	return AnalyzedRepository{
		RawRepository: RawRepository{
			Name:      name,
			CreatedAt: created,
			UpdatedAt: updated,
			Languages: langs,
		},
	}
}

func TestInferSkills_AccumulatesAcrossRepos(t *testing.T) {
	repos := []AnalyzedRepository{
		langRepo("a", daysAgo(400), daysAgo(10), map[string]int64{"Go": 12000, "Shell": 300}),
		langRepo("b", daysAgo(100), daysAgo(2), map[string]int64{"Go": 9000}),
	}

	skills := InferSkills(repos, testNow)
	if len(skills) != 2 {
		t.Fatalf("skills = %d, want 2", len(skills))
	}

	goSkill := skills[0]
	if goSkill.Name != "Go" {
		t.Fatalf("primary skill = %s, want Go (sorted by bytes)", goSkill.Name)
	}
	if goSkill.TotalBytes != 21000 {
		t.Errorf("Go bytes = %d, want 21000", goSkill.TotalBytes)
	}
	if goSkill.RepoCount != 2 {
		t.Errorf("Go repo count = %d, want 2", goSkill.RepoCount)
	}
	if !goSkill.FirstUsed.Equal(daysAgo(400)) {
		t.Errorf("Go first used = %v, want earliest creation", goSkill.FirstUsed)
	}
	if !goSkill.LastUsed.Equal(daysAgo(2)) {
		t.Errorf("Go last used = %v, want latest update", goSkill.LastUsed)
	}
	if goSkill.Level != LevelExpert {
		t.Errorf("Go level = %s, want expert", goSkill.Level)
	}
}

func TestSkillLevel_Tiers(t *testing.T) {
	tests := []struct {
		bytes int64
		want  SkillLevel
	}{
		{500, LevelBeginner},
		{3000, LevelIntermediate},
		{15000, LevelAdvanced},
		{25000, LevelExpert},
	}
	for _, tt := range tests {
		if got := skillLevel(tt.bytes, testNow, testNow); got != tt.want {
			t.Errorf("skillLevel(%d) = %s, want %s", tt.bytes, got, tt.want)
		}
	}
}

func TestSkillLevel_ExpertDowngradeWhenStale(t *testing.T) {
	// Expert-tier byte volume, but unused for 400 days.
	if got := skillLevel(25000, daysAgo(400), testNow); got != LevelAdvanced {
		t.Errorf("stale expert = %s, want advanced", got)
	}
	// Advanced tier is not subject to the downgrade.
	if got := skillLevel(15000, daysAgo(400), testNow); got != LevelAdvanced {
		t.Errorf("stale advanced = %s, want advanced", got)
	}
	// Recently used expert keeps the tier.
	if got := skillLevel(25000, daysAgo(100), testNow); got != LevelExpert {
		t.Errorf("fresh expert = %s, want expert", got)
	}
}

func TestInferSkills_EmptyAndNoLanguages(t *testing.T) {
	if got := InferSkills(nil, testNow); len(got) != 0 {
		t.Errorf("skills from nil repos = %d, want 0", len(got))
	}
	repos := []AnalyzedRepository{{RawRepository: RawRepository{Name: "bare"}}}
	if got := InferSkills(repos, testNow); len(got) != 0 {
		t.Errorf("skills from language-less repo = %d, want 0", len(got))
	}
}

func TestLanguageStatistics_IndependentShares(t *testing.T) {
	repos := []AnalyzedRepository{
		{RawRepository: RawRepository{
			PrimaryLanguage: "Go",
			Languages:       map[string]int64{"Go": 7000, "Shell": 1000},
		}},
		{RawRepository: RawRepository{
			PrimaryLanguage: "Go",
			Languages:       map[string]int64{"Go": 1000},
		}},
		{RawRepository: RawRepository{
			PrimaryLanguage: "Python",
			Languages:       map[string]int64{"Python": 1000},
		}},
	}

	stats := LanguageStatistics(repos)
	if len(stats) != 3 {
		t.Fatalf("stats = %d, want 3", len(stats))
	}

	goStat := stats[0]
	if goStat.Name != "Go" {
		t.Fatalf("top language = %s, want Go", goStat.Name)
	}
	// 2 of 3 repos, 8000 of 10000 bytes.
	if goStat.RepoShare < 66.6 || goStat.RepoShare > 66.7 {
		t.Errorf("Go repo share = %f, want ~66.67", goStat.RepoShare)
	}
	if goStat.ByteShare != 80 {
		t.Errorf("Go byte share = %f, want 80", goStat.ByteShare)
	}
}

func TestLanguageStatistics_Empty(t *testing.T) {
	if got := LanguageStatistics(nil); len(got) != 0 {
		t.Errorf("stats from nil repos = %d, want 0", len(got))
	}
}
