package arcade

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAPIKey is returned by Config.Validate when no API key is set.
var ErrMissingAPIKey = errors.New("ARCADE_API_KEY environment variable is not set")

// ErrorKind classifies an APIError by where it originated.
type ErrorKind string

const (
	KindUpstream ErrorKind = "upstream" // non-2xx response from the API
	KindNetwork  ErrorKind = "network"  // connection, DNS or transport failure
	KindTimeout  ErrorKind = "timeout"  // per-attempt deadline exceeded
	KindCanceled ErrorKind = "canceled" // caller context cancelled
	KindParse    ErrorKind = "parse"    // response body did not match the expected shape
	KindConfig   ErrorKind = "config"   // client misconfiguration
)

// APIError is the error envelope produced at the transport boundary and
// propagated to callers. It serializes as
// {"error": ..., "message": ..., "status_code": ..., "details": ...}.
type APIError struct {
	Code       string    `json:"error"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code"`
	Details    any       `json:"details,omitempty"`
	Kind       ErrorKind `json:"-"`

	cause error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Retryable reports whether re-issuing the same request could plausibly
// succeed: network and timeout failures, and upstream 5xx responses.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case KindNetwork, KindTimeout:
		return true
	case KindUpstream:
		return e.StatusCode >= http.StatusInternalServerError
	default:
		return false
	}
}

// HTTPStatus returns the status the proxy should answer with: the upstream
// status when there is one, 500 otherwise.
func (e *APIError) HTTPStatus() int {
	if e.StatusCode >= 400 && e.StatusCode <= 599 {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err carries the given upstream status code.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == status
}

func newUpstreamError(status int, body errorBody) *APIError {
	code := body.Error
	if code == "" {
		code = "API Error"
	}
	msg := body.Message
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return &APIError{
		Code:       code,
		Message:    msg,
		StatusCode: status,
		Details:    body.Details,
		Kind:       KindUpstream,
	}
}

func newNetworkError(err error) *APIError {
	return &APIError{Code: "NetworkError", Message: err.Error(), Kind: KindNetwork, cause: err}
}

func newTimeoutError(err error) *APIError {
	return &APIError{Code: "TimeoutError", Message: "request timed out", Kind: KindTimeout, cause: err}
}

func newCanceledError(err error) *APIError {
	return &APIError{Code: "Canceled", Message: err.Error(), Kind: KindCanceled, cause: err}
}

func newParseError(format string, args ...any) *APIError {
	return &APIError{Code: "ParseError", Message: fmt.Sprintf(format, args...), Kind: KindParse}
}

// errorBody is the JSON error shape the API returns on non-2xx responses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
