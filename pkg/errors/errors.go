package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition is a stable machine-readable error kind plus its default message.
type Definition struct {
	Code    string
	Message string
}

// WithMessage returns a copy of d carrying a more specific message.
// The code is what callers match on, so it never changes.
func (d Definition) WithMessage(msg string) Definition {
	d.Message = msg
	return d
}

// Is lets errors.Is match on the code alone, ignoring message detail.
func (d Definition) Is(target error) bool {
	t, ok := target.(Definition)
	return ok && t.Code == d.Code
}

// Credential extraction failures. All three surface as 401 but keep
// distinct codes so diagnostics can tell them apart.
var (
	CredentialMissing   = Definition{Code: "CREDENTIAL_MISSING", Message: "Authorization header is required"}
	CredentialMalformed = Definition{Code: "CREDENTIAL_MALFORMED", Message: "Authorization header must use the Bearer scheme"}
	CredentialEmpty     = Definition{Code: "CREDENTIAL_EMPTY", Message: "Bearer token is empty"}
)

// Upstream call failures, mapped from the GitHub GraphQL response.
var (
	UpstreamUnauthorized  = Definition{Code: "UPSTREAM_UNAUTHORIZED", Message: "GitHub rejected the token"}
	UpstreamForbidden     = Definition{Code: "UPSTREAM_FORBIDDEN", Message: "Token lacks the required scope"}
	UpstreamUnreachable   = Definition{Code: "UPSTREAM_UNREACHABLE", Message: "GitHub is unreachable"}
	UpstreamProtocolError = Definition{Code: "UPSTREAM_PROTOCOL_ERROR", Message: "GitHub returned an unexpected response"}
)

// DataIntegrity means the upstream calendar violated the contiguity
// invariant. Never expected, always a bug signal.
var DataIntegrity = Definition{Code: "DATA_INTEGRITY", Message: "Contribution calendar failed integrity validation"}

// Request throttling.
var TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests, try again later"}

// Lookup maps codes back to definitions.
var Lookup = map[string]Definition{
	CredentialMissing.Code:     CredentialMissing,
	CredentialMalformed.Code:   CredentialMalformed,
	CredentialEmpty.Code:       CredentialEmpty,
	UpstreamUnauthorized.Code:  UpstreamUnauthorized,
	UpstreamForbidden.Code:     UpstreamForbidden,
	UpstreamUnreachable.Code:   UpstreamUnreachable,
	UpstreamProtocolError.Code: UpstreamProtocolError,
	DataIntegrity.Code:         DataIntegrity,
	TooManyRequests.Code:       TooManyRequests,
}

// Get returns the Definition for code, or a generic Definition when unknown.
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
