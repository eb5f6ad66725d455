package response

import (
	"net/http"
	"testing"

	"github.com/stokuj/github-heatmap/pkg/errors"
)

func TestErrorToHTTPStatusMappingIsTotal(t *testing.T) {
	want := map[string]int{
		errors.CredentialMissing.Code:     http.StatusUnauthorized,
		errors.CredentialMalformed.Code:   http.StatusUnauthorized,
		errors.CredentialEmpty.Code:       http.StatusUnauthorized,
		errors.UpstreamUnauthorized.Code:  http.StatusUnauthorized,
		errors.UpstreamForbidden.Code:     http.StatusForbidden,
		errors.UpstreamUnreachable.Code:   http.StatusServiceUnavailable,
		errors.UpstreamProtocolError.Code: http.StatusBadGateway,
		errors.DataIntegrity.Code:         http.StatusInternalServerError,
		errors.TooManyRequests.Code:       http.StatusTooManyRequests,
	}

	// every defined kind maps to exactly one expected status
	for code, def := range errors.Lookup {
		wantStatus, ok := want[code]
		if !ok {
			t.Errorf("kind %s has no expected status in this test, add it", code)
			continue
		}
		if got := errorToHTTPStatus(def); got != wantStatus {
			t.Errorf("kind %s maps to %d, want %d", code, got, wantStatus)
		}
	}
}

func TestErrorToHTTPStatusKeepsCodeThroughWithMessage(t *testing.T) {
	err := errors.UpstreamProtocolError.WithMessage("GitHub returned status 418")
	if got := errorToHTTPStatus(err); got != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", got)
	}
}

func TestErrorToHTTPStatusUnknownError(t *testing.T) {
	if got := errorToHTTPStatus(http.ErrServerClosed); got != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", got)
	}
}
