package narrative

import (
	"fmt"
	"strings"

	"github.com/itslokeshx/devintel/internal/analyzer"
)

// FallbackSummary builds a deterministic narrative from the result alone.
// Used when no AI backend is configured or the call fails; consumers get
// prose either way.
func FallbackSummary(result *analyzer.AnalysisResult) string {
	m := result.Metrics
	var lines []string

	lines = append(lines, fmt.Sprintf(
		"%s is a %s with a dev score of %d/100 (%s).",
		displayName(result), strings.ToLower(m.PrimaryTechIdentity),
		m.DevScore, scoreDescriptor(m.DevScore)))

	if len(m.Skills) > 0 {
		top := m.Skills[0]
		lines = append(lines, fmt.Sprintf(
			"Their primary language is %s (%s level, used across %d repositories).",
			top.Name, top.Level, top.RepoCount))
	}

	c := result.Contributions
	switch m.ActivityPattern {
	case analyzer.PatternConsistent:
		lines = append(lines, fmt.Sprintf(
			"They contribute steadily, with a longest streak of %d days.", c.LongestStreak))
	case analyzer.PatternBurst:
		lines = append(lines, fmt.Sprintf(
			"They work in intense bursts, with %d long inactive gaps between them.",
			len(c.InactiveGaps)))
	case analyzer.PatternComeback:
		lines = append(lines, fmt.Sprintf(
			"After a long quiet period they are active again, currently on a %d-day streak.",
			c.CurrentStreak))
	default:
		lines = append(lines, "Their contribution history is sporadic.")
	}

	lines = append(lines, fmt.Sprintf(
		"Across %d repositories their consistency scores %d, impact %d, and quality %d.",
		len(result.Repositories), m.ConsistencyScore, m.ImpactScore, m.QualityScore))

	if m.DocumentationHabits == "excellent" || m.DocumentationHabits == "good" {
		lines = append(lines, "Most of their projects ship with documentation.")
	}

	return strings.Join(lines, " ")
}

func displayName(result *analyzer.AnalysisResult) string {
	if result.Profile.Name != "" {
		return result.Profile.Name
	}
	return result.Username
}
