// Package narrative turns an analysis result into natural-language output:
// a prompt for a chat-completion backend, and a rule-based fallback summary
// for when no backend is available.
package narrative

import (
	"fmt"
	"strings"

	"github.com/itslokeshx/devintel/internal/analyzer"
)

// topSkillCount is how many skills the prompt surfaces.
const topSkillCount = 5

// systemPrompt instructs the model on tone and grounding.
const systemPrompt = `You are a developer-profile writer. You are given derived metrics
about a GitHub user's public activity: composite scores, skills, streaks,
and repository classifications. Write a short, factual narrative profile.

Rules:
- Ground every statement in the provided numbers. Do not invent activity.
- Lead with the headline dev score and what drives it.
- Mention the primary tech identity and top skills.
- Note the activity pattern and any long inactive gaps neutrally.
- Keep it under 200 words, plain prose, no headings.`

// BuildPrompt renders the analysis result as the user message for the
// chat backend. Sections are keyed by score thresholds so the model gets
// an interpretation hint, not just raw numbers.
func BuildPrompt(result *analyzer.AnalysisResult) string {
	var sb strings.Builder
	m := result.Metrics

	fmt.Fprintf(&sb, "## Developer: %s\n\n", result.Username)
	if result.Profile.Name != "" {
		fmt.Fprintf(&sb, "- Name: %s\n", result.Profile.Name)
	}
	fmt.Fprintf(&sb, "- Public repositories analyzed: %d\n", len(result.Repositories))
	fmt.Fprintf(&sb, "- Followers: %d\n\n", result.Profile.Followers)

	sb.WriteString("## Scores\n\n")
	fmt.Fprintf(&sb, "- Dev score: %d/100 (%s)\n", m.DevScore, scoreDescriptor(m.DevScore))
	fmt.Fprintf(&sb, "- Consistency: %d/100 (%s)\n", m.ConsistencyScore, scoreDescriptor(m.ConsistencyScore))
	fmt.Fprintf(&sb, "- Impact: %d/100 (%s)\n", m.ImpactScore, scoreDescriptor(m.ImpactScore))
	fmt.Fprintf(&sb, "- Quality: %d/100 (%s)\n\n", m.QualityScore, scoreDescriptor(m.QualityScore))

	sb.WriteString("## Identity\n\n")
	fmt.Fprintf(&sb, "- Primary tech identity: %s\n", m.PrimaryTechIdentity)
	fmt.Fprintf(&sb, "- Activity pattern: %s\n", m.ActivityPattern)
	fmt.Fprintf(&sb, "- Project focus: %s\n", m.ProjectFocus)
	fmt.Fprintf(&sb, "- Documentation habits: %s\n\n", m.DocumentationHabits)

	if len(m.Skills) > 0 {
		sb.WriteString("## Top Skills\n\n")
		for i, skill := range m.Skills {
			if i >= topSkillCount {
				break
			}
			fmt.Fprintf(&sb, "- %s: %s (%d repos)\n", skill.Name, skill.Level, skill.RepoCount)
		}
		sb.WriteString("\n")
	}

	c := result.Contributions
	sb.WriteString("## Contributions\n\n")
	fmt.Fprintf(&sb, "- Total commits: %d\n", c.TotalCommits)
	fmt.Fprintf(&sb, "- Longest streak: %d days, current streak: %d days\n", c.LongestStreak, c.CurrentStreak)
	if c.BusiestDay != "" {
		fmt.Fprintf(&sb, "- Busiest day: %s\n", c.BusiestDay)
	}
	if len(c.InactiveGaps) > 0 {
		fmt.Fprintf(&sb, "- Inactive gaps over 60 days: %d\n", len(c.InactiveGaps))
	}
	if len(c.CommitsByMonth) > 0 {
		fmt.Fprintf(&sb, "- Busiest month: %s (%d commits)\n",
			c.CommitsByMonth[0].Month, c.CommitsByMonth[0].Commits)
	}

	return sb.String()
}

// scoreDescriptor maps a 0-100 score to an interpretation band.
func scoreDescriptor(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "strong"
	case score >= 40:
		return "developing"
	default:
		return "early"
	}
}
