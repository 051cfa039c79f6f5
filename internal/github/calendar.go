package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/itslokeshx/devintel/internal/analyzer"
)

// calendarQuery asks for one year of per-day contribution counts.
const calendarQuery = `query($username: String!) {
  user(login: $username) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type calendarResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []struct {
							Date  string `json:"date"`
							Count int    `json:"contributionCount"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Calendar fetches the daily contribution calendar over GraphQL. It needs
// a token; without one, or on any failure, callers fall back to the
// repository-based contribution summary, so errors here are advisory.
func (c *Client) Calendar(ctx context.Context, username string) ([]analyzer.CalendarDay, error) {
	if c.token == "" {
		return nil, fmt.Errorf("contribution calendar requires a token")
	}

	body, err := json.Marshal(graphqlRequest{
		Query:     calendarQuery,
		Variables: map[string]any{"username": username},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling calendar query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating calendar request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching calendar for %s: %w", username, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching calendar for %s: status %d", username, resp.StatusCode)
	}

	var parsed calendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding calendar for %s: %w", username, err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("calendar query for %s: %s", username, parsed.Errors[0].Message)
	}

	var days []analyzer.CalendarDay
	for _, week := range parsed.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			date, err := time.Parse("2006-01-02", day.Date)
			if err != nil {
				continue
			}
			days = append(days, analyzer.CalendarDay{Date: date, Count: day.Count})
		}
	}
	return days, nil
}
