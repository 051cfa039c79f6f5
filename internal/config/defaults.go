// Package config provides configuration loading and defaults for devintel.
package config

import "time"

// DefaultConfigDir is the default location for devintel configuration.
const DefaultConfigDir = "~/.config/devintel"

// DefaultDBName is the filename for the SQLite cache database.
const DefaultDBName = "devintel.db"

// DefaultGitHub holds the default GitHub API settings. The token default
// is empty; it is normally supplied via DEVINTEL_GITHUB_TOKEN.
var DefaultGitHub = GitHub{
	BaseURL:      "https://api.github.com",
	GraphQLURL:   "https://api.github.com/graphql",
	BatchSize:    5,
	BatchDelayMS: 500,
}

// DefaultCacheTTLDays is how long a cached analysis stays fresh.
const DefaultCacheTTLDays = 7

// DefaultAnalysis holds the default engine settings. A zero reference
// year means "derive from the clock".
var DefaultAnalysis = Analysis{
	YearWindow: 4,
}

// DefaultAI holds the default chat backend settings. Disabled until a
// base URL is configured.
var DefaultAI = AI{
	Model: "llama3.1",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// BatchDelay converts the configured delay to a duration.
func (g GitHub) BatchDelay() time.Duration {
	return time.Duration(g.BatchDelayMS) * time.Millisecond
}

// TTL converts the configured cache lifetime to a duration.
func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLDays) * 24 * time.Hour
}
