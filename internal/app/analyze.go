package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/itslokeshx/devintel/internal/analyzer"
	"github.com/itslokeshx/devintel/internal/config"
	"github.com/itslokeshx/devintel/internal/github"
	"github.com/itslokeshx/devintel/internal/output"
	"github.com/itslokeshx/devintel/internal/store"
	"github.com/spf13/cobra"
)

var (
	analyzeRefresh bool
	analyzeToken   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <username>",
	Short: "Fetch a user's activity and derive their metrics",
	Long: `Fetch a GitHub user's profile, repositories, and contribution calendar,
then derive per-repository health and maturity, composite scores, streaks,
skills, and a yearly breakdown.

Results are cached for seven days; use --refresh to force a new fetch.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeRefresh, "refresh", false, "Ignore the cache and fetch fresh data")
	analyzeCmd.Flags().StringVar(&analyzeToken, "token", "", "GitHub API token (overrides config and DEVINTEL_GITHUB_TOKEN)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	result, cached, err := loadOrAnalyze(cmd.Context(), cfg, db, args[0], analyzeRefresh)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if cached {
		fmt.Printf(" %s\n", output.StyleMuted.Render(
			fmt.Sprintf("cached analysis from %s (use --refresh to re-fetch)",
				result.AnalyzedAt.Format("2006-01-02 15:04"))))
	}

	renderProfile(result)
	renderScores(result)
	renderContributions(result)
	renderSkills(result)
	renderRepositories(result)
	renderYears(result)
	renderWarnings(result)

	return nil
}

// setup loads config and applies global output flags.
func setup() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}
	output.DetectColor()
	output.SetWidth(cfg.Output.Width)

	return cfg, nil
}

// loadOrAnalyze returns the cached analysis for username if one exists and
// refresh is false, otherwise fetches from GitHub, analyzes, and caches.
func loadOrAnalyze(ctx context.Context, cfg *config.Config, db *store.DB, username string, refresh bool) (*analyzer.AnalysisResult, bool, error) {
	if !refresh {
		cached, err := db.GetAnalysis(username, time.Now())
		if err != nil {
			return nil, false, fmt.Errorf("reading cache: %w", err)
		}
		if cached != nil {
			return cached, true, nil
		}
	}

	token := analyzeToken
	if token == "" {
		token = cfg.GitHub.Token
	}

	client := github.NewClient(
		github.WithToken(token),
		github.WithBaseURLs(cfg.GitHub.BaseURL, cfg.GitHub.GraphQLURL),
		github.WithBatching(cfg.GitHub.BatchSize, cfg.GitHub.BatchDelay()),
	)

	data, err := client.FetchUser(ctx, username)
	if err != nil {
		return nil, false, fmt.Errorf("fetching %s: %w", username, err)
	}

	result := analyzer.Analyze(data, analyzer.Options{
		ReferenceYear: cfg.Analysis.ReferenceYear,
		YearWindow:    cfg.Analysis.YearWindow,
	})

	if err := db.SaveAnalysis(&result, cfg.Cache.TTL()); err != nil {
		return nil, false, fmt.Errorf("caching analysis: %w", err)
	}

	return &result, false, nil
}

func renderProfile(r *analyzer.AnalysisResult) {
	fmt.Println(output.Section("Profile"))

	name := r.Profile.Name
	if name == "" {
		name = r.Profile.Username
	}
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Name"),
		output.StyleBold.Render(name))
	if r.Profile.Bio != "" {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Bio"),
			r.Profile.Bio)
	}
	if r.Profile.Location != "" {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Location"),
			r.Profile.Location)
	}
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Followers"),
		output.StyleValue.Render(fmt.Sprintf("%d", r.Profile.Followers)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Public repos"),
		output.StyleValue.Render(fmt.Sprintf("%d", r.Profile.PublicRepos)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("On GitHub since"),
		output.StyleValue.Render(r.Profile.CreatedAt.Format("Jan 2006")))

	fmt.Println()
}

func renderScores(r *analyzer.AnalysisResult) {
	fmt.Println(output.Section("Scores"))

	m := r.Metrics
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Dev score"),
		output.ScoreBar(float64(m.DevScore), 20))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Consistency"),
		output.ScoreBar(float64(m.ConsistencyScore), 20))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Impact"),
		output.ScoreBar(float64(m.ImpactScore), 20))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Quality"),
		output.ScoreBar(float64(m.QualityScore), 20))

	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Identity"),
		output.StyleBold.Render(m.PrimaryTechIdentity))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Activity pattern"),
		string(m.ActivityPattern))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Project focus"),
		m.ProjectFocus)
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Documentation"),
		m.DocumentationHabits)

	fmt.Println()
}

func renderContributions(r *analyzer.AnalysisResult) {
	fmt.Println(output.Section("Contributions"))

	c := r.Contributions
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total commits"),
		output.StyleValue.Render(fmt.Sprintf("%d", c.TotalCommits)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Current streak"),
		output.StyleValue.Render(fmt.Sprintf("%d days", c.CurrentStreak)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Longest streak"),
		output.StyleValue.Render(fmt.Sprintf("%d days", c.LongestStreak)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Avg commits/day"),
		output.StyleValue.Render(fmt.Sprintf("%.2f", c.AvgCommitsPerDay)))
	if c.BusiestDay != "" {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Busiest weekday"),
			output.StyleValue.Render(c.BusiestDay))
	}
	if len(c.CommitsByMonth) > 0 {
		top := c.CommitsByMonth[0]
		fmt.Printf(" %s %s %s\n",
			output.StyleLabel.Render("Busiest month"),
			output.StyleValue.Render(top.Month),
			output.StyleMuted.Render(fmt.Sprintf("(%d commits)", top.Commits)))
	}
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Data source"),
		output.StyleMuted.Render(c.Source))

	if len(c.InactiveGaps) > 0 {
		fmt.Printf("\n %s\n", output.StyleMuted.Render("Inactive gaps:"))
		for _, g := range c.InactiveGaps {
			fmt.Printf("   %s → %s  %s\n",
				g.Start.Format("2006-01-02"),
				g.End.Format("2006-01-02"),
				output.StyleWarning.Render(fmt.Sprintf("%d days", g.DurationDays)))
		}
	}

	fmt.Println()
}

func renderSkills(r *analyzer.AnalysisResult) {
	fmt.Println(output.Section("Skills"))

	if len(r.Metrics.Skills) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No language data available"))
		return
	}

	tbl := output.NewTable("Language", "Level", "Repos", "Volume", "Last used")
	for _, s := range r.Metrics.Skills {
		tbl.AddRow(
			s.Name,
			output.LevelBadge(string(s.Level)),
			fmt.Sprintf("%d", s.RepoCount),
			formatBytes(s.TotalBytes),
			s.LastUsed.Format("2006-01-02"),
		)
	}
	fmt.Println(indent(tbl.Render()))
}

func renderRepositories(r *analyzer.AnalysisResult) {
	fmt.Println(output.Section("Repositories"))

	if len(r.Repositories) == 0 {
		fmt.Printf(" %s\n\n", output.StyleMuted.Render("No repositories to analyze"))
		return
	}

	tbl := output.NewTable("Name", "Health", "Stage", "Docs", "Cadence", "Stars")
	for _, repo := range r.Repositories {
		health := fmt.Sprintf("%d", repo.HealthScore)
		if repo.Degraded {
			health = output.StyleMuted.Render("–")
		}
		tbl.AddRow(
			repo.Name,
			health,
			string(repo.MaturityStage),
			string(repo.DocumentationQuality),
			string(repo.CommitFrequency),
			fmt.Sprintf("%d", repo.Stars),
		)
	}
	fmt.Println(indent(tbl.Render()))
}

func renderYears(r *analyzer.AnalysisResult) {
	if len(r.Years) == 0 {
		return
	}

	fmt.Println(output.Section("Yearly Breakdown"))

	tbl := output.NewTable("Year", "Commits", "Repos", "Stars", "Streak", "Top language", "Months")
	for _, y := range r.Years {
		tbl.AddRow(
			fmt.Sprintf("%d", y.Year),
			fmt.Sprintf("%d", y.Commits),
			fmt.Sprintf("%d", y.ReposCreated),
			fmt.Sprintf("%d", y.StarsEarned),
			fmt.Sprintf("%d", y.BestStreak),
			y.TopLanguage,
			output.Sparkline(y.MonthlyCommits[:]),
		)
	}
	fmt.Println(indent(tbl.Render()))
}

func renderWarnings(r *analyzer.AnalysisResult) {
	if len(r.Warnings) == 0 {
		return
	}
	for _, w := range r.Warnings {
		fmt.Printf(" %s %s\n",
			output.StyleWarning.Render("⚠"),
			output.StyleMuted.Render(w))
	}
	fmt.Println()
}

// formatBytes formats language byte volumes with K/M suffixes.
func formatBytes(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// indent prefixes each line of a rendered block with a single space.
func indent(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	return strings.Join(lines, "\n")
}
