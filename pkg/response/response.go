package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/stokuj/github-heatmap/pkg/errors"
)

// ErrorResponse is the envelope for every non-2xx body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Details map[string]interface{} `json:"details,omitempty"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
}

// errorToHTTPStatus gives every error kind exactly one external status.
func errorToHTTPStatus(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	switch def.Code {
	case errors.CredentialMissing.Code,
		errors.CredentialMalformed.Code,
		errors.CredentialEmpty.Code,
		errors.UpstreamUnauthorized.Code:
		return http.StatusUnauthorized // 401
	case errors.UpstreamForbidden.Code:
		return http.StatusForbidden // 403
	case errors.UpstreamUnreachable.Code:
		return http.StatusServiceUnavailable // 503
	case errors.UpstreamProtocolError.Code:
		return http.StatusBadGateway // 502
	case errors.TooManyRequests.Code:
		return http.StatusTooManyRequests // 429
	default:
		// includes DATA_INTEGRITY
		return http.StatusInternalServerError // 500
	}
}

// Error writes the mapped status and error envelope for err.
func Error(ctx context.Context, c *app.RequestContext, err error) {
	ErrorWithDetails(ctx, c, err, nil)
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details map[string]interface{}) {
	statusCode := errorToHTTPStatus(err)

	var code, message string
	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Success writes data as the 200 body without any envelope. The heatmap
// payload shape is part of the public contract, so nothing wraps it.
func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, data)
}
