package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itslokeshx/devintel/internal/analyzer"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleResult(username string, analyzedAt time.Time, devScore int) *analyzer.AnalysisResult {
	return &analyzer.AnalysisResult{
		Username:   username,
		AnalyzedAt: analyzedAt,
		Metrics:    analyzer.Metrics{DevScore: devScore},
		Repositories: []analyzer.AnalyzedRepository{
			{RawRepository: analyzer.RawRepository{Name: "a"}},
		},
	}
}

func TestSaveAndGetAnalysis(t *testing.T) {
	db := testDB(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.SaveAnalysis(sampleResult("octocat", now, 72), DefaultTTL))

	got, err := db.GetAnalysis("octocat", now.Add(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "octocat", got.Username)
	assert.Equal(t, 72, got.Metrics.DevScore)
	assert.Len(t, got.Repositories, 1)
}

func TestGetAnalysis_Missing(t *testing.T) {
	db := testDB(t)

	got, err := db.GetAnalysis("nobody", time.Now())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetAnalysis_Expired(t *testing.T) {
	db := testDB(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.SaveAnalysis(sampleResult("octocat", now, 72), time.Hour))

	got, err := db.GetAnalysis("octocat", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, got, "expired entry must behave like a miss")
}

func TestSaveAnalysis_UpsertsByUsername(t *testing.T) {
	db := testDB(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.SaveAnalysis(sampleResult("octocat", now, 40), DefaultTTL))
	require.NoError(t, db.SaveAnalysis(sampleResult("octocat", now.Add(time.Hour), 85), DefaultTTL))

	entries, err := db.ListAnalyses()
	require.NoError(t, err)
	require.Len(t, entries, 1, "second save must replace, not append")
	assert.Equal(t, 85, entries[0].DevScore)
}

func TestListAnalyses_NewestFirst(t *testing.T) {
	db := testDB(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.SaveAnalysis(sampleResult("older", now.Add(-time.Hour), 10), DefaultTTL))
	require.NoError(t, db.SaveAnalysis(sampleResult("newer", now, 20), DefaultTTL))

	entries, err := db.ListAnalyses()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "newer", entries[0].Username)
	assert.Equal(t, "older", entries[1].Username)
}

func TestPurgeExpired(t *testing.T) {
	db := testDB(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.SaveAnalysis(sampleResult("stale", now.Add(-48*time.Hour), 10), time.Hour))
	require.NoError(t, db.SaveAnalysis(sampleResult("fresh", now, 20), DefaultTTL))

	purged, err := db.PurgeExpired(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	entries, err := db.ListAnalyses()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh", entries[0].Username)
}
