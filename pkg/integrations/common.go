package integrations

import (
	"net/http"

	"github.com/teskann/quaxtools/pkg/errors"
)

// Sentinels carry an error code so callers can match them with either
// errors.Is from the standard library or [errors.Is] from pkg/errors.
var (
	// ErrNotFound is returned when the requested resource doesn't exist.
	ErrNotFound = errors.New(errors.ErrCodeNotFound, "resource not found")

	// ErrNetwork is returned for HTTP failures (connection errors, unexpected statuses).
	ErrNetwork = errors.New(errors.ErrCodeNetwork, "network error")

	// ErrMalformed is returned when a 200 response body cannot be decoded.
	ErrMalformed = errors.New(errors.ErrCodeInvalidFormat, "malformed response")
)

// NewHTTPClient creates the HTTP client used for API requests.
// It sets no client-level timeout: deadlines come from the request context.
func NewHTTPClient() *http.Client {
	return &http.Client{}
}
