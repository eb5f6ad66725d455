package auth

import (
	"strings"

	"github.com/stokuj/github-heatmap/pkg/errors"
)

// bearerPrefix is matched case-sensitively, per RFC 6750 as GitHub applies it.
const bearerPrefix = "Bearer "

// ExtractBearerToken validates the raw Authorization header value and
// returns the token it carries. Pure function, no side effects; the
// token lives only for the duration of the request and must never be
// logged.
//
// Failure kinds are distinct so diagnostics can tell a missing header
// from a wrong scheme from an empty token, even though all three
// surface as 401.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.CredentialMissing
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return "", errors.CredentialMalformed
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", errors.CredentialEmpty
	}

	return token, nil
}
