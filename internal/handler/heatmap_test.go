package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"

	"github.com/stokuj/github-heatmap/config"
	"github.com/stokuj/github-heatmap/internal/model"
	"github.com/stokuj/github-heatmap/internal/service"
	"github.com/stokuj/github-heatmap/pkg/errors"
	"github.com/stokuj/github-heatmap/pkg/github"
)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(mock *github.MockClient) *server.Hertz {
	cfg := config.Config{
		HeatmapLevel1Max: 3,
		HeatmapLevel2Max: 8,
		HeatmapLevel3Max: 15,
	}
	svc := service.NewHeatmapService(cfg, mock)

	h := server.Default()
	h.GET("/heatmap/me", GetViewerHeatmap(svc))
	return h
}

func testCalendar() model.ContributionCalendar {
	start := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)
	counts := []int{0, 6, 20}

	var calendar model.ContributionCalendar
	for i, count := range counts {
		calendar = append(calendar, model.ContributionDay{
			Date:  start.AddDate(0, 0, i),
			Count: count,
		})
	}
	return calendar
}

func TestGetViewerHeatmapOK(t *testing.T) {
	mock := github.NewMockClient()
	mock.Result = &github.ViewerCalendar{
		Username: "octocat",
		Calendar: testCalendar(),
	}
	h := newTestServer(mock)

	w := ut.PerformRequest(h.Engine, "GET", "/heatmap/me", nil,
		ut.Header{Key: "Authorization", Value: "Bearer ghp_token"})
	resp := w.Result()

	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode(), resp.Body())
	}

	var payload model.HeatmapResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		t.Fatalf("body failed to decode: %v", err)
	}

	if payload.Username != "octocat" {
		t.Errorf("username = %q, want octocat", payload.Username)
	}
	if payload.Total != 26 {
		t.Errorf("total = %d, want 26", payload.Total)
	}
	if len(payload.Weeks) != 2 {
		t.Fatalf("got %d weeks, want 2", len(payload.Weeks))
	}

	var levels []int
	for _, week := range payload.Weeks {
		for _, d := range week.Days {
			levels = append(levels, d.Level)
		}
	}
	want := []int{0, 2, 4}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("levels = %v, want %v", levels, want)
			break
		}
	}

	if mock.CallCount() != 1 {
		t.Errorf("upstream called %d times, want exactly 1", mock.CallCount())
	}
	if mock.Tokens[0] != "ghp_token" {
		t.Errorf("upstream token = %q, want ghp_token", mock.Tokens[0])
	}
}

func TestGetViewerHeatmapCredentialRejection(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Token abc"},
		{name: "empty token", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := github.NewMockClient()
			h := newTestServer(mock)

			var headers []ut.Header
			if tt.header != "" {
				headers = append(headers, ut.Header{Key: "Authorization", Value: tt.header})
			}

			w := ut.PerformRequest(h.Engine, "GET", "/heatmap/me", nil, headers...)
			resp := w.Result()

			if resp.StatusCode() != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", resp.StatusCode())
			}

			var envelope errorEnvelope
			if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
				t.Fatalf("error body failed to decode: %v", err)
			}
			if !strings.HasPrefix(envelope.Error.Code, "CREDENTIAL_") {
				t.Errorf("code = %s, want a credential kind", envelope.Error.Code)
			}

			if mock.CallCount() != 0 {
				t.Errorf("upstream called %d times on a rejected credential", mock.CallCount())
			}
		})
	}
}

func TestGetViewerHeatmapUpstreamErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "upstream unauthorized", err: errors.UpstreamUnauthorized,
			wantStatus: http.StatusUnauthorized, wantCode: errors.UpstreamUnauthorized.Code},
		{name: "upstream forbidden", err: errors.UpstreamForbidden,
			wantStatus: http.StatusForbidden, wantCode: errors.UpstreamForbidden.Code},
		{name: "upstream unreachable", err: errors.UpstreamUnreachable,
			wantStatus: http.StatusServiceUnavailable, wantCode: errors.UpstreamUnreachable.Code},
		{name: "upstream protocol error", err: errors.UpstreamProtocolError,
			wantStatus: http.StatusBadGateway, wantCode: errors.UpstreamProtocolError.Code},
		{name: "data integrity", err: errors.DataIntegrity,
			wantStatus: http.StatusInternalServerError, wantCode: errors.DataIntegrity.Code},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := github.NewMockClient()
			mock.Err = tt.err
			h := newTestServer(mock)

			w := ut.PerformRequest(h.Engine, "GET", "/heatmap/me", nil,
				ut.Header{Key: "Authorization", Value: "Bearer tok"})
			resp := w.Result()

			if resp.StatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode(), tt.wantStatus)
			}

			var envelope errorEnvelope
			if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
				t.Fatalf("error body failed to decode: %v", err)
			}
			if envelope.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", envelope.Error.Code, tt.wantCode)
			}
			if envelope.Error.Message == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestHealthEndpoints(t *testing.T) {
	h := server.Default()
	h.GET("/", Root)
	h.GET("/health/live", HealthLive)

	for _, path := range []string{"/", "/health/live"} {
		w := ut.PerformRequest(h.Engine, "GET", path, nil)
		resp := w.Result()
		if resp.StatusCode() != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, resp.StatusCode())
		}
	}
}
