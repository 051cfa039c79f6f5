package github

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/itslokeshx/devintel/internal/analyzer"
)

// FetchUser materializes the full input snapshot for one analysis run.
//
// Profile and repository-list failures are fatal and propagate. A missing
// calendar is not an error; the snapshot carries a nil calendar and the
// engine uses its repository fallback. Per-repository enrichment failures
// are recorded on the individual RepoFetch and never fail the batch.
func (c *Client) FetchUser(ctx context.Context, username string) (analyzer.RawUserData, error) {
	profile, err := c.Profile(ctx, username)
	if err != nil {
		return analyzer.RawUserData{}, err
	}

	repos, err := c.Repositories(ctx, username)
	if err != nil {
		return analyzer.RawUserData{}, err
	}

	calendar, err := c.Calendar(ctx, username)
	if err != nil {
		calendar = nil
	}

	fetches, err := c.enrichRepositories(ctx, username, repos)
	if err != nil {
		return analyzer.RawUserData{}, err
	}

	return analyzer.RawUserData{
		Profile:  profile,
		Repos:    fetches,
		Calendar: calendar,
	}, nil
}

// enrichRepositories fetches languages, README metadata, and commit count
// for each repository in fixed-size concurrent batches, with a short delay
// between batches. Results keep the original list order. Forked
// repositories are skipped; nothing downstream uses them.
//
// The only error returned is context cancellation; everything else is
// captured per repository.
func (c *Client) enrichRepositories(ctx context.Context, username string, repos []analyzer.RawRepository) ([]analyzer.RepoFetch, error) {
	fetches := make([]analyzer.RepoFetch, len(repos))

	for start := 0; start < len(repos); start += c.batchSize {
		end := start + c.batchSize
		if end > len(repos) {
			end = len(repos)
		}

		group, groupCtx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			group.Go(func() error {
				fetches[i] = c.enrichOne(groupCtx, username, repos[i])
				return groupCtx.Err()
			})
		}
		if err := group.Wait(); err != nil {
			return nil, fmt.Errorf("enriching repositories for %s: %w", username, err)
		}

		if end < len(repos) && c.batchDelay > 0 {
			select {
			case <-time.After(c.batchDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return fetches, nil
}

// enrichOne fills in the enrichment fields for one repository. The first
// sub-call failure degrades the whole repository; partial enrichment would
// blur the line between computed and missing data.
func (c *Client) enrichOne(ctx context.Context, username string, repo analyzer.RawRepository) analyzer.RepoFetch {
	if repo.Fork {
		return analyzer.RepoFetch{Repo: repo}
	}

	langs, err := c.Languages(ctx, username, repo.Name)
	if err != nil {
		return analyzer.RepoFetch{Repo: repo, Err: err}
	}
	repo.Languages = langs

	hasReadme, size, err := c.Readme(ctx, username, repo.Name)
	if err != nil {
		return analyzer.RepoFetch{Repo: repo, Err: err}
	}
	repo.HasReadme = hasReadme
	repo.ReadmeLength = size

	commits, err := c.CommitCount(ctx, username, repo.Name)
	if err != nil {
		return analyzer.RepoFetch{Repo: repo, Err: err}
	}
	repo.CommitCount = commits

	return analyzer.RepoFetch{Repo: repo}
}
