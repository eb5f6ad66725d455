package auth

import (
	"testing"

	"github.com/stokuj/github-heatmap/pkg/errors"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantCode  string
	}{
		{name: "valid token", header: "Bearer ghp_abc123", wantToken: "ghp_abc123"},
		{name: "token with surrounding whitespace", header: "Bearer   ghp_abc123  ", wantToken: "ghp_abc123"},
		{name: "missing header", header: "", wantCode: errors.CredentialMissing.Code},
		{name: "wrong scheme", header: "Token abc", wantCode: errors.CredentialMalformed.Code},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantCode: errors.CredentialMalformed.Code},
		{name: "lowercase bearer", header: "bearer abc", wantCode: errors.CredentialMalformed.Code},
		{name: "no space after scheme", header: "Bearerabc", wantCode: errors.CredentialMalformed.Code},
		{name: "empty token", header: "Bearer ", wantCode: errors.CredentialEmpty.Code},
		{name: "whitespace only token", header: "Bearer    ", wantCode: errors.CredentialEmpty.Code},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ExtractBearerToken(%q) returned error %v", tt.header, err)
				}
				if token != tt.wantToken {
					t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, token, tt.wantToken)
				}
				return
			}

			if err == nil {
				t.Fatalf("ExtractBearerToken(%q) succeeded, want %s", tt.header, tt.wantCode)
			}
			def, ok := err.(errors.Definition)
			if !ok {
				t.Fatalf("ExtractBearerToken(%q) returned %T, want errors.Definition", tt.header, err)
			}
			if def.Code != tt.wantCode {
				t.Errorf("ExtractBearerToken(%q) code = %s, want %s", tt.header, def.Code, tt.wantCode)
			}
		})
	}
}

func TestExtractBearerTokenFailureKindsAreDistinct(t *testing.T) {
	_, missing := ExtractBearerToken("")
	_, malformed := ExtractBearerToken("Token abc")
	_, empty := ExtractBearerToken("Bearer ")

	codes := map[string]bool{}
	for _, err := range []error{missing, malformed, empty} {
		def := err.(errors.Definition)
		codes[def.Code] = true
	}

	if len(codes) != 3 {
		t.Errorf("expected 3 distinct failure kinds, got %d: %v", len(codes), codes)
	}
}
