package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itslokeshx/devintel/internal/analyzer"
)

// DefaultTTL is how long a cached analysis stays fresh.
const DefaultTTL = 7 * 24 * time.Hour

// CachedAnalysis is a row of the analysis cache without the full payload.
type CachedAnalysis struct {
	Username   string    `json:"username"`
	AnalyzedAt time.Time `json:"analyzed_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	DevScore   int       `json:"dev_score"`
	RepoCount  int       `json:"repo_count"`
}

// SaveAnalysis upserts one analysis result keyed by username. A fresh
// expiry replaces whatever was cached before.
func (db *DB) SaveAnalysis(result *analyzer.AnalysisResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling analysis for %s: %w", result.Username, err)
	}

	_, err = db.conn.Exec(
		`INSERT INTO analyses (username, analyzed_at, expires_at, dev_score, repo_count, result_json)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
			analyzed_at = excluded.analyzed_at,
			expires_at  = excluded.expires_at,
			dev_score   = excluded.dev_score,
			repo_count  = excluded.repo_count,
			result_json = excluded.result_json`,
		result.Username,
		result.AnalyzedAt.UTC().Format(time.RFC3339),
		result.AnalyzedAt.Add(ttl).UTC().Format(time.RFC3339),
		result.Metrics.DevScore,
		len(result.Repositories),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("saving analysis for %s: %w", result.Username, err)
	}
	return nil
}

// GetAnalysis returns the cached result for a username, or nil if there
// is none or it has expired as of now.
func (db *DB) GetAnalysis(username string, now time.Time) (*analyzer.AnalysisResult, error) {
	row := db.conn.QueryRow(
		"SELECT expires_at, result_json FROM analyses WHERE username = ?",
		username,
	)

	var expiresAt, payload string
	err := row.Scan(&expiresAt, &payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading analysis for %s: %w", username, err)
	}

	expiry, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil || !now.Before(expiry) {
		return nil, nil
	}

	var result analyzer.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("decoding cached analysis for %s: %w", username, err)
	}
	return &result, nil
}

// ListAnalyses returns cache metadata for every stored analysis, newest
// first.
func (db *DB) ListAnalyses() ([]CachedAnalysis, error) {
	rows, err := db.conn.Query(
		"SELECT username, analyzed_at, expires_at, dev_score, repo_count FROM analyses ORDER BY analyzed_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []CachedAnalysis
	for rows.Next() {
		var entry CachedAnalysis
		var analyzedAt, expiresAt string
		if err := rows.Scan(&entry.Username, &analyzedAt, &expiresAt, &entry.DevScore, &entry.RepoCount); err != nil {
			return nil, err
		}
		entry.AnalyzedAt, _ = time.Parse(time.RFC3339, analyzedAt)
		entry.ExpiresAt, _ = time.Parse(time.RFC3339, expiresAt)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// PurgeExpired deletes every cached analysis whose expiry is at or before
// now, returning the number of rows removed.
func (db *DB) PurgeExpired(now time.Time) (int64, error) {
	result, err := db.conn.Exec(
		"DELETE FROM analyses WHERE expires_at <= ?",
		now.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("purging expired analyses: %w", err)
	}
	return result.RowsAffected()
}
