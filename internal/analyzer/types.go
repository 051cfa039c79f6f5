// Package analyzer derives heuristic scores and classifications from a
// developer's public GitHub activity: per-repository health and maturity,
// composite 0-100 scores, streak and gap analysis, skill inference, and
// yearly aggregates.
package analyzer

import "time"

// MaturityStage is the lifecycle classification of a repository.
type MaturityStage string

const (
	MaturityIdea      MaturityStage = "idea"
	MaturityActive    MaturityStage = "active"
	MaturityStable    MaturityStage = "stable"
	MaturityAbandoned MaturityStage = "abandoned"
)

// CommitFrequency is the coarse commit cadence of a repository.
type CommitFrequency string

const (
	FrequencyNone     CommitFrequency = "none"
	FrequencyDaily    CommitFrequency = "daily"
	FrequencyWeekly   CommitFrequency = "weekly"
	FrequencyMonthly  CommitFrequency = "monthly"
	FrequencySporadic CommitFrequency = "sporadic"
)

// DocQuality grades a repository's README coverage.
type DocQuality string

const (
	DocNone      DocQuality = "none"
	DocBasic     DocQuality = "basic"
	DocGood      DocQuality = "good"
	DocExcellent DocQuality = "excellent"
)

// SkillLevel grades a language skill by accumulated evidence.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// ActivityPattern describes the shape of a user's contribution history.
type ActivityPattern string

const (
	PatternConsistent ActivityPattern = "consistent"
	PatternBurst      ActivityPattern = "burst"
	PatternSporadic   ActivityPattern = "sporadic"
	PatternComeback   ActivityPattern = "comeback"
)

// Profile is the user profile record fetched from GitHub.
type Profile struct {
	Username    string    `json:"username"`
	Name        string    `json:"name,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

// RawRepository is one repository as fetched, before any derivation.
// Immutable once fetched.
type RawRepository struct {
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	URL             string           `json:"url"`
	Stars           int              `json:"stars"`
	Forks           int              `json:"forks"`
	Watchers        int              `json:"watchers"`
	PrimaryLanguage string           `json:"primary_language,omitempty"`
	Languages       map[string]int64 `json:"languages,omitempty"`
	Topics          []string         `json:"topics,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	PushedAt        time.Time        `json:"pushed_at"`
	SizeKB          int              `json:"size_kb"`
	HasLicense      bool             `json:"has_license"`
	Archived        bool             `json:"archived"`
	Fork            bool             `json:"fork"`
	HasReadme       bool             `json:"has_readme"`
	ReadmeLength    int              `json:"readme_length"`
	CommitCount     int              `json:"commit_count"`
}

// AnalyzedRepository is a RawRepository plus derived classifications.
// Created once during per-repository analysis and never mutated afterward.
// AgeInDays and DaysSincePush are computed exactly once, at analysis time,
// and reused by every dependent classifier.
type AnalyzedRepository struct {
	RawRepository

	AgeInDays            int             `json:"age_in_days"`
	DaysSincePush        int             `json:"days_since_push"`
	CommitFrequency      CommitFrequency `json:"commit_frequency"`
	MaturityStage        MaturityStage   `json:"maturity_stage"`
	DocumentationQuality DocQuality      `json:"documentation_quality"`
	HealthScore          int             `json:"health_score"`

	// Degraded marks a repository whose enrichment fetch failed. Only the
	// raw listing fields are trustworthy; derived fields are zero values,
	// not computed results.
	Degraded bool `json:"degraded,omitempty"`
}

// CalendarDay is one day of the GitHub contribution calendar.
type CalendarDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// Gap is an inactive period between two activity points exceeding 60 days.
type Gap struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationDays int       `json:"duration_days"`
}

// MonthCount is a commit total for one calendar month ("2006-01").
type MonthCount struct {
	Month   string `json:"month"`
	Commits int    `json:"commits"`
}

// Contribution summary provenance values.
const (
	SourceCalendar     = "calendar"
	SourceRepositories = "repositories"
)

// ContributionSummary aggregates a user's activity over time. It has two
// provenances with the same shape but different accuracy: the daily
// calendar (authoritative) and the repository push-date fallback
// (approximate). Source records which one produced it.
//
// CommitsByMonth is sorted descending by commit count, not chronologically;
// index 0 is the busiest month. This ordering is part of the contract.
type ContributionSummary struct {
	TotalCommits     int           `json:"total_commits"`
	CommitsByMonth   []MonthCount  `json:"commits_by_month"`
	LongestStreak    int           `json:"longest_streak"`
	CurrentStreak    int           `json:"current_streak"`
	AvgCommitsPerDay float64       `json:"avg_commits_per_day"`
	BusiestDay       string        `json:"busiest_day,omitempty"`
	InactiveGaps     []Gap         `json:"inactive_gaps,omitempty"`
	Calendar         []CalendarDay `json:"calendar,omitempty"`
	Source           string        `json:"source"`
}

// Skill is one language aggregated across every repository that uses it.
type Skill struct {
	Name       string     `json:"name"`
	TotalBytes int64      `json:"total_bytes"`
	RepoCount  int        `json:"repo_count"`
	FirstUsed  time.Time  `json:"first_used"`
	LastUsed   time.Time  `json:"last_used"`
	Level      SkillLevel `json:"level"`
}

// LanguageStat reports a language's share of the portfolio two independent
// ways: by repository count and by byte volume.
type LanguageStat struct {
	Name      string  `json:"name"`
	RepoCount int     `json:"repo_count"`
	RepoShare float64 `json:"repo_share"`
	Bytes     int64   `json:"bytes"`
	ByteShare float64 `json:"byte_share"`
}

// Metrics holds the per-user composite scores and classifications.
// Skills is sorted descending by total bytes; index 0 is the primary skill.
type Metrics struct {
	DevScore            int             `json:"dev_score"`
	ConsistencyScore    int             `json:"consistency_score"`
	ImpactScore         int             `json:"impact_score"`
	QualityScore        int             `json:"quality_score"`
	PrimaryTechIdentity string          `json:"primary_tech_identity"`
	ActivityPattern     ActivityPattern `json:"activity_pattern"`
	ProjectFocus        string          `json:"project_focus"`
	DocumentationHabits string          `json:"documentation_habits"`
	Skills              []Skill         `json:"skills"`
	Languages           []LanguageStat  `json:"languages"`
}

// YearBucket aggregates repositories and commits for one calendar year.
// MonthlyCommits is indexed 0-11, January first.
type YearBucket struct {
	Year           int     `json:"year"`
	ReposCreated   int     `json:"repos_created"`
	Commits        int     `json:"commits"`
	StarsEarned    int     `json:"stars_earned"`
	TopLanguage    string  `json:"top_language,omitempty"`
	BestStreak     int     `json:"best_streak"`
	MonthlyCommits [12]int `json:"monthly_commits"`
}

// AnalysisResult is the complete output of one analysis run. Produced once
// per call and immutable afterward.
type AnalysisResult struct {
	Username      string               `json:"username"`
	Profile       Profile              `json:"profile"`
	Repositories  []AnalyzedRepository `json:"repositories"`
	Contributions ContributionSummary  `json:"contributions"`
	Metrics       Metrics              `json:"metrics"`
	Years         []YearBucket         `json:"years"`
	AnalyzedAt    time.Time            `json:"analyzed_at"`

	// Warnings lists sanitizer repairs applied to the result.
	Warnings []string `json:"warnings,omitempty"`
}

// RepoFetch is the per-repository fetch outcome: either a fully enriched
// repository or the raw listing record plus the error that prevented
// enrichment.
type RepoFetch struct {
	Repo RawRepository
	Err  error
}

// RawUserData is the fully materialized input snapshot for one analysis
// run. Calendar is nil when the GraphQL calendar could not be fetched;
// that is not an error, it selects the repository fallback.
type RawUserData struct {
	Profile  Profile
	Repos    []RepoFetch
	Calendar []CalendarDay
}

// Options control an analysis run.
type Options struct {
	// Now is the analysis instant. Zero means time.Now(). Every age and
	// recency computation derives from this single value.
	Now time.Time

	// ReferenceYear anchors the yearly breakdown window. Zero means
	// derive from Now (with the 2026 clamp, see ReferenceYear in yearly.go).
	ReferenceYear int

	// YearWindow is the number of trailing years in the breakdown.
	// Zero means DefaultYearWindow.
	YearWindow int
}
