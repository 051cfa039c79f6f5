package analyzer

import (
	"sort"
	"time"
)

// DefaultYearWindow is the number of trailing years in the yearly breakdown.
const DefaultYearWindow = 4

// ReferenceYear resolves the final year of the breakdown window. When no
// override is given it is the current year, clamped to 2025 if the clock
// reads 2026.
//
// TODO: drop the 2026 clamp once the deployment clock skew that motivated
// it is confirmed fixed; callers can already override via Options.
func ReferenceYear(now time.Time, override int) int {
	if override != 0 {
		return override
	}
	year := now.Year()
	if year == 2026 {
		year = 2025
	}
	return year
}

// YearlyBreakdown buckets repositories and calendar days into a fixed
// trailing window of years ending at the reference year.
//
// Commits are attributed from the daily calendar when it has signal.
// Otherwise each repository's lifetime commit count is credited to its
// creation year and month, a known coarse approximation.
func YearlyBreakdown(repos []AnalyzedRepository, calendar []CalendarDay, now time.Time, refYear, window int) []YearBucket {
	if refYear == 0 {
		refYear = ReferenceYear(now, 0)
	}
	if window <= 0 {
		window = DefaultYearWindow
	}

	startYear := refYear - window + 1
	buckets := make(map[int]*YearBucket, window)
	years := make([]YearBucket, 0, window)
	for year := startYear; year <= refYear; year++ {
		buckets[year] = &YearBucket{Year: year}
	}

	languageCounts := make(map[int]map[string]int)
	useCalendar := calendarHasSignal(calendar)

	for _, repo := range repos {
		bucket, ok := buckets[repo.CreatedAt.Year()]
		if !ok {
			continue
		}
		bucket.ReposCreated++
		bucket.StarsEarned += repo.Stars

		if repo.PrimaryLanguage != "" {
			year := repo.CreatedAt.Year()
			if languageCounts[year] == nil {
				languageCounts[year] = make(map[string]int)
			}
			languageCounts[year][repo.PrimaryLanguage]++
		}

		if !useCalendar {
			bucket.Commits += repo.CommitCount
			bucket.MonthlyCommits[repo.CreatedAt.Month()-1] += repo.CommitCount
		}
	}

	if useCalendar {
		for _, day := range calendar {
			bucket, ok := buckets[day.Date.Year()]
			if !ok {
				continue
			}
			bucket.Commits += day.Count
			bucket.MonthlyCommits[day.Date.Month()-1] += day.Count
		}
	}

	for year := startYear; year <= refYear; year++ {
		bucket := buckets[year]
		bucket.TopLanguage = modeLanguage(languageCounts[year])
		if useCalendar {
			bucket.BestStreak = calendarLongestStreak(filterYear(calendar, year))
		}
		years = append(years, *bucket)
	}

	return years
}

// filterYear returns the calendar days falling in the given year.
func filterYear(calendar []CalendarDay, year int) []CalendarDay {
	var days []CalendarDay
	for _, day := range calendar {
		if day.Date.Year() == year {
			days = append(days, day)
		}
	}
	return days
}

// modeLanguage returns the most common language, breaking ties alphabetically.
func modeLanguage(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestCount := "", 0
	for _, name := range names {
		if counts[name] > bestCount {
			best, bestCount = name, counts[name]
		}
	}
	return best
}
