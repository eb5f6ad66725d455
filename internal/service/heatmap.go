package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/stokuj/github-heatmap/config"
	"github.com/stokuj/github-heatmap/internal/model"
	"github.com/stokuj/github-heatmap/pkg/errors"
	"github.com/stokuj/github-heatmap/pkg/github"
)

// HeatmapService runs the contribution-to-heatmap pipeline: one
// upstream query, then a deterministic assembly of the response.
// Thresholds are fixed at construction so identical raw counts always
// map to identical levels, independent of any other request.
type HeatmapService struct {
	github github.Client

	level1Max int
	level2Max int
	level3Max int
}

var (
	heatmapService *HeatmapService
	heatmapOnce    sync.Once
)

// Heatmap returns the process-wide service built from global config.
func Heatmap() *HeatmapService {
	heatmapOnce.Do(func() {
		heatmapService = NewHeatmapService(config.Cfg, github.NewGraphQLClient(config.Cfg))
	})

	return heatmapService
}

func NewHeatmapService(cfg config.Config, client github.Client) *HeatmapService {
	return &HeatmapService{
		github:    client,
		level1Max: cfg.HeatmapLevel1Max,
		level2Max: cfg.HeatmapLevel2Max,
		level3Max: cfg.HeatmapLevel3Max,
	}
}

// GetViewerHeatmap fetches the token owner's calendar and assembles the
// response. Any stage failure short-circuits; no partial results.
func (s *HeatmapService) GetViewerHeatmap(ctx context.Context, token string) (*model.HeatmapResponse, error) {
	viewer, err := s.github.FetchViewerCalendar(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.Assemble(viewer.Username, viewer.Calendar)
}

// Assemble produces the heatmap payload from an already-fetched
// calendar. Pure and idempotent: the same input always yields the same
// output. The contiguity invariant is enforced upstream, but a
// violating calendar is rejected here too rather than silently grouped
// wrong.
func (s *HeatmapService) Assemble(username string, calendar model.ContributionCalendar) (*model.HeatmapResponse, error) {
	weeks := make([]model.HeatmapWeek, 0)
	total := 0

	for i, day := range calendar {
		if i > 0 {
			expected := calendar[i-1].Date.AddDate(0, 0, 1)
			if !day.Date.Equal(expected) {
				return nil, errors.DataIntegrity.WithMessage(
					fmt.Sprintf("calendar is not contiguous at %s", day.Date.Format(model.DateLayout)))
			}
		}

		weekday := int(day.Date.Weekday()) // Sunday = 0
		weekStart := day.Date.AddDate(0, 0, -weekday)

		entry := model.HeatmapDay{
			Date:    day.Date.Format(model.DateLayout),
			Weekday: weekday,
			Count:   day.Count,
			Level:   s.level(day.Count),
		}

		start := weekStart.Format(model.DateLayout)
		if n := len(weeks); n > 0 && weeks[n-1].WeekStart == start {
			weeks[n-1].Days = append(weeks[n-1].Days, entry)
		} else {
			weeks = append(weeks, model.HeatmapWeek{
				WeekStart: start,
				Days:      []model.HeatmapDay{entry},
			})
		}

		total += day.Count
	}

	return &model.HeatmapResponse{
		Username: username,
		Total:    total,
		Weeks:    weeks,
	}, nil
}

// level maps a raw count to a 0..4 bucket using the fixed thresholds.
func (s *HeatmapService) level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= s.level1Max:
		return 1
	case count <= s.level2Max:
		return 2
	case count <= s.level3Max:
		return 3
	default:
		return 4
	}
}
