package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stokuj/github-heatmap/config"
	"github.com/stokuj/github-heatmap/internal/model"
	"github.com/stokuj/github-heatmap/pkg/errors"
	"github.com/stokuj/github-heatmap/pkg/logger"
	"github.com/stokuj/github-heatmap/pkg/metrics"
)

// viewerCalendarQuery resolves the token's identity and fetches its
// contribution calendar in one round trip.
const viewerCalendarQuery = `
query($from: DateTime!, $to: DateTime!) {
  viewer {
    login
    contributionsCollection(from: $from, to: $to) {
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

// GraphQLClient talks to the GitHub GraphQL API. It holds no per-request
// state; the caller's token arrives with every call and is never stored.
type GraphQLClient struct {
	httpClient *http.Client
	url        string
	userAgent  string
	windowDays int
	now        func() time.Time
}

func NewGraphQLClient(cfg config.Config) *GraphQLClient {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 5 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &GraphQLClient{
		httpClient: &http.Client{
			Timeout:   time.Duration(cfg.GitHubTimeoutSeconds) * time.Second,
			Transport: transport,
		},
		url:        cfg.GitHubGraphQLURL,
		userAgent:  cfg.GitHubUserAgent,
		windowDays: cfg.HeatmapWindowDays,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data struct {
		Viewer struct {
			Login                   string `json:"login"`
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"viewer"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// FetchViewerCalendar issues the single upstream query and maps every
// failure onto the internal error taxonomy. No retries: a failed
// upstream call is a failed request.
func (g *GraphQLClient) FetchViewerCalendar(ctx context.Context, token string) (*ViewerCalendar, error) {
	start := time.Now()

	result, err := g.fetch(ctx, token)

	outcome := "ok"
	if err != nil {
		if def, ok := err.(errors.Definition); ok {
			outcome = def.Code
		} else {
			outcome = "error"
		}
	}
	metrics.RecordUpstreamRequest(ctx, outcome, time.Since(start).Seconds())

	return result, err
}

func (g *GraphQLClient) fetch(ctx context.Context, token string) (*ViewerCalendar, error) {
	to := g.now()
	from := to.AddDate(0, 0, -(g.windowDays - 1))

	body, err := json.Marshal(graphQLRequest{
		Query: viewerCalendarQuery,
		Variables: map[string]string{
			"from": from.Format(model.DateLayout) + "T00:00:00Z",
			"to":   to.Format(model.DateLayout) + "T23:59:59Z",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build GraphQL request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// token never appears in err: net/http redacts the URL only,
		// and the header is not part of transport errors
		logger.Logger.Warn("GitHub GraphQL request failed", zap.Error(err))
		return nil, errors.UpstreamUnreachable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, errors.UpstreamUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return nil, errors.UpstreamForbidden
	case resp.StatusCode != http.StatusOK:
		logger.Logger.Warn("GitHub GraphQL returned non-success status",
			zap.Int("status", resp.StatusCode),
		)
		return nil, errors.UpstreamProtocolError.WithMessage(
			fmt.Sprintf("GitHub returned status %d", resp.StatusCode))
	}

	var payload graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Logger.Warn("GitHub GraphQL response failed to parse", zap.Error(err))
		return nil, errors.UpstreamProtocolError
	}

	if len(payload.Errors) > 0 {
		for _, gqlErr := range payload.Errors {
			// missing scopes come back as a 200 with a typed error entry
			if gqlErr.Type == "INSUFFICIENT_SCOPES" {
				return nil, errors.UpstreamForbidden
			}
		}
		logger.Logger.Warn("GitHub GraphQL returned errors",
			zap.String("type", payload.Errors[0].Type),
			zap.String("message", payload.Errors[0].Message),
		)
		return nil, errors.UpstreamProtocolError.WithMessage("GitHub GraphQL returned errors")
	}

	username := strings.ToLower(payload.Data.Viewer.Login)
	if username == "" {
		return nil, errors.UpstreamProtocolError.WithMessage("GitHub viewer login is missing")
	}

	calendar, err := flattenCalendar(payload)
	if err != nil {
		return nil, err
	}

	return &ViewerCalendar{Username: username, Calendar: calendar}, nil
}

// flattenCalendar turns the week-grouped upstream shape into one
// contiguous day sequence, checking the +1-day invariant as it goes.
// A gap or out-of-order date should never happen with a well-formed
// response, so it is reported, not repaired.
func flattenCalendar(payload graphQLResponse) (model.ContributionCalendar, error) {
	weeks := payload.Data.Viewer.ContributionsCollection.ContributionCalendar.Weeks

	var calendar model.ContributionCalendar
	for _, week := range weeks {
		for _, day := range week.ContributionDays {
			date, err := time.ParseInLocation(model.DateLayout, day.Date, time.UTC)
			if err != nil {
				return nil, errors.UpstreamProtocolError.WithMessage(
					fmt.Sprintf("unparseable contribution date %q", day.Date))
			}

			if day.ContributionCount < 0 {
				return nil, errors.DataIntegrity.WithMessage(
					fmt.Sprintf("negative contribution count on %s", day.Date))
			}

			if n := len(calendar); n > 0 {
				expected := calendar[n-1].Date.AddDate(0, 0, 1)
				if !date.Equal(expected) {
					return nil, errors.DataIntegrity.WithMessage(
						fmt.Sprintf("calendar gap: expected %s, got %s",
							expected.Format(model.DateLayout), day.Date))
				}
			}

			calendar = append(calendar, model.ContributionDay{Date: date, Count: day.ContributionCount})
		}
	}

	return calendar, nil
}
