package analyzer

import "time"

// AnalyzeRepository derives classifications for one repository. Age and
// push recency are computed here, once, against the injected instant and
// reused by every dependent classifier.
func AnalyzeRepository(raw RawRepository, now time.Time) AnalyzedRepository {
	repo := AnalyzedRepository{
		RawRepository: raw,
		AgeInDays:     DaysBetween(raw.CreatedAt, now),
		DaysSincePush: DaysBetween(raw.PushedAt, now),
	}
	repo.CommitFrequency = classifyCommitFrequency(raw.CommitCount, repo.DaysSincePush)
	repo.MaturityStage = classifyMaturity(repo.AgeInDays, repo.DaysSincePush, raw.CommitCount)
	repo.DocumentationQuality = classifyDocumentation(raw.HasReadme, raw.ReadmeLength)
	repo.HealthScore = healthScore(&repo)
	return repo
}

// DegradeRepository wraps a repository whose enrichment fetch failed into a
// minimal record. Derived fields are left as zero values so downstream
// consumers can distinguish "not computed" from "computed as zero".
func DegradeRepository(raw RawRepository) AnalyzedRepository {
	raw.CommitCount = 0
	raw.HasReadme = false
	raw.ReadmeLength = 0
	raw.Languages = nil
	return AnalyzedRepository{
		RawRepository: raw,
		Degraded:      true,
	}
}

// healthScore computes an additive 0-100 freshness and quality score:
// up to 30 for push recency, up to 20 for README coverage, up to 15 for
// community signals, up to 20 for commit cadence, 15 for a license.
func healthScore(repo *AnalyzedRepository) int {
	score := 0

	switch {
	case repo.DaysSincePush < 30:
		score += 30
	case repo.DaysSincePush < 90:
		score += 20
	case repo.DaysSincePush < 180:
		score += 10
	}

	if repo.HasReadme {
		score += 10
		if repo.ReadmeLength > 500 {
			score += 10
		}
	}

	if repo.Stars > 10 {
		score += 5
	}
	if repo.Stars > 50 {
		score += 5
	}
	if repo.Forks > 5 {
		score += 5
	}

	switch repo.CommitFrequency {
	case FrequencyDaily:
		score += 20
	case FrequencyWeekly:
		score += 15
	case FrequencyMonthly:
		score += 10
	}

	if repo.HasLicense {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

// classifyMaturity assigns the lifecycle stage. The rules are evaluated in
// priority order: staleness dominates, so a very old, stale, low-commit
// repository is abandoned, not an idea.
func classifyMaturity(ageInDays, daysSincePush, commitCount int) MaturityStage {
	switch {
	case daysSincePush > 180:
		return MaturityAbandoned
	case ageInDays < 30 && commitCount < 10:
		return MaturityIdea
	case daysSincePush < 30:
		return MaturityActive
	case ageInDays > 180 && commitCount > 50:
		return MaturityStable
	default:
		return MaturityActive
	}
}

// classifyDocumentation grades README coverage by presence and length.
func classifyDocumentation(hasReadme bool, readmeLength int) DocQuality {
	switch {
	case !hasReadme:
		return DocNone
	case readmeLength < 200:
		return DocBasic
	case readmeLength < 1000:
		return DocGood
	default:
		return DocExcellent
	}
}

// classifyCommitFrequency tiers commit cadence by push recency and volume.
func classifyCommitFrequency(commitCount, daysSincePush int) CommitFrequency {
	switch {
	case commitCount == 0:
		return FrequencyNone
	case daysSincePush < 7 && commitCount > 10:
		return FrequencyDaily
	case daysSincePush < 30 && commitCount > 5:
		return FrequencyWeekly
	case daysSincePush < 90:
		return FrequencyMonthly
	default:
		return FrequencySporadic
	}
}
