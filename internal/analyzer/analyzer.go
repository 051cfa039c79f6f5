package analyzer

import (
	"fmt"
	"time"
)

// backendLanguages and frontendLanguages drive the primary tech identity
// membership test.
var backendLanguages = map[string]bool{
	"Go": true, "Python": true, "Java": true, "Ruby": true, "PHP": true,
	"C": true, "C++": true, "C#": true, "Rust": true, "Kotlin": true,
	"Elixir": true, "Scala": true,
}

var frontendLanguages = map[string]bool{
	"JavaScript": true, "TypeScript": true, "HTML": true, "CSS": true,
	"Vue": true, "Svelte": true,
}

// Analyze runs the full derived-metrics pipeline over a fully materialized
// input snapshot. It is synchronous, stateless, and pure over its inputs:
// every recency computation derives from the single injected instant in
// opts, and calling it twice on identical input and instant yields an
// identical result.
func Analyze(data RawUserData, opts Options) AnalysisResult {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	repos := make([]AnalyzedRepository, 0, len(data.Repos))
	for _, fetch := range data.Repos {
		if fetch.Repo.Fork {
			continue
		}
		if fetch.Err != nil {
			repos = append(repos, DegradeRepository(fetch.Repo))
			continue
		}
		repos = append(repos, AnalyzeRepository(fetch.Repo, now))
	}

	summary := Summarize(data.Calendar, repos, now)
	skills := InferSkills(repos, now)
	languages := LanguageStatistics(repos)

	consistency := ConsistencyScore(summary)
	impact := ImpactScore(repos)
	quality := QualityScore(repos)

	metrics := Metrics{
		DevScore:            DevScore(consistency, impact, quality),
		ConsistencyScore:    consistency,
		ImpactScore:         impact,
		QualityScore:        quality,
		PrimaryTechIdentity: primaryTechIdentity(skills),
		ActivityPattern:     activityPattern(summary),
		ProjectFocus:        projectFocus(repos),
		DocumentationHabits: documentationHabits(repos),
		Skills:              skills,
		Languages:           languages,
	}

	result := AnalysisResult{
		Username:      data.Profile.Username,
		Profile:       data.Profile,
		Repositories:  repos,
		Contributions: summary,
		Metrics:       metrics,
		Years:         YearlyBreakdown(repos, data.Calendar, now, opts.ReferenceYear, opts.YearWindow),
		AnalyzedAt:    now,
	}

	report := Sanitize(&result)
	result.Warnings = report.Errors

	return result
}

// primaryTechIdentity labels the user by the language sets their skills
// span. Both backend and frontend presence reads as full-stack; neither
// falls through to a label built from the top skill.
func primaryTechIdentity(skills []Skill) string {
	if len(skills) == 0 {
		return "Developer"
	}

	var hasBackend, hasFrontend bool
	for _, skill := range skills {
		if backendLanguages[skill.Name] {
			hasBackend = true
		}
		if frontendLanguages[skill.Name] {
			hasFrontend = true
		}
	}

	switch {
	case hasBackend && hasFrontend:
		return "Full-Stack Developer"
	case hasBackend:
		return "Backend Developer"
	case hasFrontend:
		return "Frontend Developer"
	default:
		return fmt.Sprintf("%s Developer", skills[0].Name)
	}
}

// activityPattern classifies the contribution history shape. Rules are
// evaluated in order; the first match wins.
func activityPattern(summary ContributionSummary) ActivityPattern {
	gapCount := len(summary.InactiveGaps)

	switch {
	case summary.AvgCommitsPerDay > 1 && summary.LongestStreak > 30 && gapCount < 3:
		return PatternConsistent
	case summary.AvgCommitsPerDay > 2 && gapCount >= 3:
		return PatternBurst
	case gapCount > 0 && summary.CurrentStreak > 7 &&
		summary.InactiveGaps[gapCount-1].DurationDays > 90:
		return PatternComeback
	default:
		return PatternSporadic
	}
}

// projectFocus classifies whether the user concentrates on a few deep
// projects or spreads across many.
func projectFocus(repos []AnalyzedRepository) string {
	var activeCount, totalCommits int
	for _, repo := range repos {
		if repo.MaturityStage == MaturityActive {
			activeCount++
		}
		totalCommits += repo.CommitCount
	}

	avgCommits := 0.0
	if len(repos) > 0 {
		avgCommits = float64(totalCommits) / float64(len(repos))
	}

	switch {
	case activeCount <= 5 && avgCommits > 50:
		return "deep"
	case activeCount > 15:
		return "broad"
	default:
		return "balanced"
	}
}

// documentationHabits grades the portfolio-wide share of repositories with
// any README at all. An empty portfolio grades poor.
func documentationHabits(repos []AnalyzedRepository) string {
	if len(repos) == 0 {
		return "poor"
	}

	documented := 0
	for _, repo := range repos {
		if repo.DocumentationQuality != DocNone && repo.DocumentationQuality != "" {
			documented++
		}
	}

	ratio := float64(documented) / float64(len(repos))
	switch {
	case ratio > 0.8:
		return "excellent"
	case ratio > 0.5:
		return "good"
	case ratio > 0.2:
		return "inconsistent"
	default:
		return "poor"
	}
}
