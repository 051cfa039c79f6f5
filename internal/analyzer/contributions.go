package analyzer

import (
	"sort"
	"time"
)

// gapThresholdDays is the minimum inactive period reported as a gap.
const gapThresholdDays = 60

// Summarize builds the ContributionSummary, choosing between the two
// provenances: if the calendar has at least one day with activity it is
// authoritative; otherwise the repository push-date fallback is used
// wholesale. The two paths share an output shape but are different
// algorithms with different accuracy, and their numeric answers are not
// expected to agree.
func Summarize(calendar []CalendarDay, repos []AnalyzedRepository, now time.Time) ContributionSummary {
	if calendarHasSignal(calendar) {
		return SummarizeCalendar(calendar, now)
	}
	return SummarizeRepositories(repos, now)
}

// calendarHasSignal reports whether the calendar has any day with a
// non-zero contribution count.
func calendarHasSignal(calendar []CalendarDay) bool {
	for _, day := range calendar {
		if day.Count > 0 {
			return true
		}
	}
	return false
}

// SummarizeCalendar computes the authoritative summary from per-day
// contribution counts.
func SummarizeCalendar(calendar []CalendarDay, now time.Time) ContributionSummary {
	summary := ContributionSummary{
		Source:   SourceCalendar,
		Calendar: calendar,
	}

	for _, day := range calendar {
		summary.TotalCommits += day.Count
	}

	summary.CommitsByMonth = monthlyTotals(calendar)
	summary.CurrentStreak = calendarCurrentStreak(calendar, now)
	summary.LongestStreak = calendarLongestStreak(calendar)
	if len(calendar) > 0 {
		summary.AvgCommitsPerDay = float64(summary.TotalCommits) / float64(len(calendar))
	}
	summary.BusiestDay = busiestWeekday(calendar)

	return summary
}

// calendarCurrentStreak walks backward from today (midnight-normalized),
// requiring each consecutive prior day to have a positive count. It stops
// at the first missing or non-positive day.
func calendarCurrentStreak(calendar []CalendarDay, now time.Time) int {
	counts := make(map[string]int, len(calendar))
	for _, day := range calendar {
		counts[dayKey(day.Date)] += day.Count
	}

	streak := 0
	for day := midnight(now); counts[dayKey(day)] > 0; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// calendarLongestStreak finds the longest run of chronologically adjacent
// days with positive counts. A zero-count day or a hole in the date
// sequence resets the run.
func calendarLongestStreak(calendar []CalendarDay) int {
	days := make([]CalendarDay, len(calendar))
	copy(days, calendar)
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	longest, run := 0, 0
	var prev time.Time
	for _, day := range days {
		switch {
		case day.Count <= 0:
			run = 0
		case run > 0 && DaysBetween(prev, day.Date) == 1:
			run++
		default:
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day.Date
	}
	return longest
}

// SummarizeRepositories computes the fallback summary from repository push
// dates. Its streaks ask "did some repository get pushed on each prior
// day", not how much activity actually happened; streak length is bounded
// by repository count. Callers must not assume parity with the calendar
// path.
func SummarizeRepositories(repos []AnalyzedRepository, now time.Time) ContributionSummary {
	summary := ContributionSummary{Source: SourceRepositories}

	pushed := make([]AnalyzedRepository, 0, len(repos))
	for _, repo := range repos {
		if !repo.PushedAt.IsZero() {
			pushed = append(pushed, repo)
		}
		summary.TotalCommits += repo.CommitCount
	}
	sort.Slice(pushed, func(i, j int) bool { return pushed[i].PushedAt.Before(pushed[j].PushedAt) })

	summary.CurrentStreak = repoCurrentStreak(pushed, now)
	summary.LongestStreak = repoLongestStreak(pushed)
	summary.InactiveGaps = repoGaps(pushed)
	summary.CommitsByMonth = repoMonthlyTotals(pushed)
	summary.BusiestDay = busiestPushWeekday(pushed)

	if len(pushed) > 0 {
		span := DaysBetween(pushed[0].PushedAt, now)
		if span < 1 {
			span = 1
		}
		summary.AvgCommitsPerDay = float64(summary.TotalCommits) / float64(span)
	}

	return summary
}

// repoCurrentStreak seeds a streak only if the most recent push was at
// most one day ago, then walks backward through repositories requiring
// each consecutive pair of push dates to be exactly one day apart.
func repoCurrentStreak(sorted []AnalyzedRepository, now time.Time) int {
	if len(sorted) == 0 {
		return 0
	}

	latest := sorted[len(sorted)-1].PushedAt
	if DaysBetween(latest, now) > 1 {
		return 0
	}

	streak := 1
	for i := len(sorted) - 1; i > 0; i-- {
		if DaysBetween(sorted[i-1].PushedAt, sorted[i].PushedAt) != 1 {
			break
		}
		streak++
	}
	return streak
}

// repoLongestStreak finds the longest run of repositories, sorted by push
// date ascending, where each consecutive pair is at most one day apart.
func repoLongestStreak(sorted []AnalyzedRepository) int {
	if len(sorted) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if DaysBetween(sorted[i-1].PushedAt, sorted[i].PushedAt) <= 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// repoGaps reports every adjacent pair of push dates more than 60 days
// apart as one inactive gap.
func repoGaps(sorted []AnalyzedRepository) []Gap {
	var gaps []Gap
	for i := 1; i < len(sorted); i++ {
		days := DaysBetween(sorted[i-1].PushedAt, sorted[i].PushedAt)
		if days > gapThresholdDays {
			gaps = append(gaps, Gap{
				Start:        sorted[i-1].PushedAt,
				End:          sorted[i].PushedAt,
				DurationDays: days,
			})
		}
	}
	return gaps
}

// monthlyTotals buckets calendar counts by month and sorts descending by
// count, so index 0 is the busiest month.
func monthlyTotals(calendar []CalendarDay) []MonthCount {
	totals := make(map[string]int)
	for _, day := range calendar {
		totals[monthKey(day.Date)] += day.Count
	}
	return sortMonthTotals(totals)
}

// repoMonthlyTotals attributes each repository's commit count to its push
// month. Coarse, but the fallback path has nothing finer to offer.
func repoMonthlyTotals(repos []AnalyzedRepository) []MonthCount {
	totals := make(map[string]int)
	for _, repo := range repos {
		totals[monthKey(repo.PushedAt)] += repo.CommitCount
	}
	return sortMonthTotals(totals)
}

func sortMonthTotals(totals map[string]int) []MonthCount {
	months := make([]MonthCount, 0, len(totals))
	for month, commits := range totals {
		months = append(months, MonthCount{Month: month, Commits: commits})
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Commits != months[j].Commits {
			return months[i].Commits > months[j].Commits
		}
		return months[i].Month < months[j].Month
	})
	return months
}

// busiestWeekday returns the weekday label with the highest summed count.
func busiestWeekday(calendar []CalendarDay) string {
	var totals [7]int
	for _, day := range calendar {
		totals[day.Date.Weekday()] += day.Count
	}
	return topWeekday(totals)
}

// busiestPushWeekday returns the weekday label that received the most
// commits, attributing each repository's count to its push weekday.
func busiestPushWeekday(repos []AnalyzedRepository) string {
	var totals [7]int
	for _, repo := range repos {
		totals[repo.PushedAt.Weekday()] += repo.CommitCount
	}
	return topWeekday(totals)
}

func topWeekday(totals [7]int) string {
	best, bestCount := -1, 0
	for i, count := range totals {
		if count > bestCount {
			best, bestCount = i, count
		}
	}
	if best < 0 {
		return ""
	}
	return time.Weekday(best).String()
}
