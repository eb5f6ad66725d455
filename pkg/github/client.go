package github

import (
	"context"

	"github.com/stokuj/github-heatmap/internal/model"
)

// ViewerCalendar is the combined result of the single upstream query:
// the identity GitHub resolved for the token plus that user's
// contribution calendar for the trailing window.
type ViewerCalendar struct {
	Username string
	Calendar model.ContributionCalendar
}

// Client fetches contribution data for the user a token belongs to.
//
// FetchViewerCalendar performs exactly one logical upstream query. The
// token authenticates the outbound call and resolves the identity
// implicitly; no username is ever accepted from the caller.
type Client interface {
	FetchViewerCalendar(ctx context.Context, token string) (*ViewerCalendar, error)
}
