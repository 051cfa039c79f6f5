package analyzer

import "math"

// ConsistencyScore rates how steadily a user contributes: 40 points from
// the longest streak, 30 from average daily commit volume, 30 inversely
// from the number of long inactive gaps. A summary with no commits at all
// scores 0; the zero-gap bonus only means something once there is activity
// to have gaps in.
func ConsistencyScore(summary ContributionSummary) int {
	if summary.TotalCommits == 0 {
		return 0
	}

	score := math.Min(float64(summary.LongestStreak)/30, 1) * 40

	switch {
	case summary.AvgCommitsPerDay > 5:
		score += 30
	case summary.AvgCommitsPerDay > 2:
		score += 20
	case summary.AvgCommitsPerDay > 0.5:
		score += 10
	}

	switch len(summary.InactiveGaps) {
	case 0:
		score += 30
	case 1:
		score += 20
	case 2:
		score += 10
	}

	return capScore(score)
}

// ImpactScore rates portfolio reach: 40 points from stars and forks,
// 30 from the active/stable repository ratio (stable counts double),
// 30 from average repository health. An empty repository list scores 0.
func ImpactScore(repos []AnalyzedRepository) int {
	if len(repos) == 0 {
		return 0
	}

	var totalStars, totalForks, activeCount, stableCount, healthSum int
	for _, repo := range repos {
		totalStars += repo.Stars
		totalForks += repo.Forks
		healthSum += repo.HealthScore
		switch repo.MaturityStage {
		case MaturityActive:
			activeCount++
		case MaturityStable:
			stableCount++
		}
	}

	total := float64(len(repos))
	score := math.Min(float64(totalStars)/100, 1) * 30
	score += math.Min(float64(totalForks)/50, 1) * 10
	score += math.Min(float64(activeCount+2*stableCount)/total, 1) * 30
	score += float64(healthSum) / total / 100 * 30

	return capScore(score)
}

// QualityScore rates portfolio hygiene: 50 points from README coverage,
// 25 from license coverage, 25 from the active/stable ratio. An empty
// repository list scores 0.
func QualityScore(repos []AnalyzedRepository) int {
	if len(repos) == 0 {
		return 0
	}

	var readmeCount, licenseCount, maintainedCount int
	for _, repo := range repos {
		if repo.HasReadme {
			readmeCount++
		}
		if repo.HasLicense {
			licenseCount++
		}
		if repo.MaturityStage == MaturityActive || repo.MaturityStage == MaturityStable {
			maintainedCount++
		}
	}

	total := float64(len(repos))
	score := float64(readmeCount) / total * 50
	score += float64(licenseCount) / total * 25
	score += float64(maintainedCount) / total * 25

	return capScore(score)
}

// DevScore is the headline per-user score: a fixed weighted blend of
// consistency (40%), impact (30%), and quality (30%).
func DevScore(consistency, impact, quality int) int {
	return int(math.Round(0.4*float64(consistency) + 0.3*float64(impact) + 0.3*float64(quality)))
}

// capScore rounds and clamps a score into [0, 100].
func capScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}
