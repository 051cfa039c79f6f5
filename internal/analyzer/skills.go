package analyzer

import (
	"sort"
	"time"
)

// skillStaleDays is the disuse period after which an expert-tier skill is
// downgraded to advanced.
const skillStaleDays = 365

// InferSkills aggregates per-repository language byte counts into a ranked
// skill list. Per language it accumulates total bytes, counts contributing
// repositories, and tracks first use (earliest creation) and last use
// (latest update). The result is sorted descending by total bytes; index 0
// is the primary-identity candidate, and the ordering is part of the
// contract.
func InferSkills(repos []AnalyzedRepository, now time.Time) []Skill {
	byName := make(map[string]*Skill)

	for _, repo := range repos {
		for lang, bytes := range repo.Languages {
			skill, ok := byName[lang]
			if !ok {
				skill = &Skill{
					Name:      lang,
					FirstUsed: repo.CreatedAt,
					LastUsed:  repo.UpdatedAt,
				}
				byName[lang] = skill
			}
			skill.TotalBytes += bytes
			skill.RepoCount++
			if repo.CreatedAt.Before(skill.FirstUsed) {
				skill.FirstUsed = repo.CreatedAt
			}
			if repo.UpdatedAt.After(skill.LastUsed) {
				skill.LastUsed = repo.UpdatedAt
			}
		}
	}

	skills := make([]Skill, 0, len(byName))
	for _, skill := range byName {
		skill.Level = skillLevel(skill.TotalBytes, skill.LastUsed, now)
		skills = append(skills, *skill)
	}

	sort.Slice(skills, func(i, j int) bool {
		if skills[i].TotalBytes != skills[j].TotalBytes {
			return skills[i].TotalBytes > skills[j].TotalBytes
		}
		return skills[i].Name < skills[j].Name
	})

	return skills
}

// skillLevel tiers a skill by byte volume, then downgrades expert to
// advanced when the language has gone unused for over a year.
func skillLevel(totalBytes int64, lastUsed, now time.Time) SkillLevel {
	var level SkillLevel
	switch {
	case totalBytes < 1000:
		level = LevelBeginner
	case totalBytes < 5000:
		level = LevelIntermediate
	case totalBytes < 20000:
		level = LevelAdvanced
	default:
		level = LevelExpert
	}

	if level == LevelExpert && DaysBetween(lastUsed, now) > skillStaleDays {
		level = LevelAdvanced
	}
	return level
}

// LanguageStatistics computes each language's share of the portfolio two
// independent ways: by primary-language repository count and by byte
// volume across language maps. Sorted descending by bytes.
func LanguageStatistics(repos []AnalyzedRepository) []LanguageStat {
	repoCounts := make(map[string]int)
	byteCounts := make(map[string]int64)
	var totalRepos int
	var totalBytes int64

	for _, repo := range repos {
		if repo.PrimaryLanguage != "" {
			repoCounts[repo.PrimaryLanguage]++
			totalRepos++
		}
		for lang, bytes := range repo.Languages {
			byteCounts[lang] += bytes
			totalBytes += bytes
		}
	}

	names := make(map[string]bool)
	for name := range repoCounts {
		names[name] = true
	}
	for name := range byteCounts {
		names[name] = true
	}

	stats := make([]LanguageStat, 0, len(names))
	for name := range names {
		stat := LanguageStat{
			Name:      name,
			RepoCount: repoCounts[name],
			Bytes:     byteCounts[name],
		}
		if totalRepos > 0 {
			stat.RepoShare = float64(stat.RepoCount) / float64(totalRepos) * 100
		}
		if totalBytes > 0 {
			stat.ByteShare = float64(stat.Bytes) / float64(totalBytes) * 100
		}
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bytes != stats[j].Bytes {
			return stats[i].Bytes > stats[j].Bytes
		}
		return stats[i].Name < stats[j].Name
	})

	return stats
}
