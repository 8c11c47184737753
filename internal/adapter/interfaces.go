package adapter

import (
	"context"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/http_doer_mock.go -package=mock

// HTTPDoer defines verb-level communication with the ApoloNotes backend.
// Implementations own serialization, the Authorization header, the fixed
// request timeout, and the mapping of transport outcomes to the sentinel
// errors of this package. One user-visible notification is dispatched per
// failed call, independent of how many callers await it.
type HTTPDoer interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token detaches the header (used on sign-out).
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string.
	Token() string

	// Get issues a GET against path. Non-nil query values are forwarded
	// verbatim. A non-nil out receives the decoded JSON response body.
	Get(ctx context.Context, path string, query url.Values, out any) error

	// Post issues a POST with body JSON-encoded. A non-nil out receives the
	// decoded response body.
	Post(ctx context.Context, path string, body, out any) error

	// Put issues a PUT with body JSON-encoded. A non-nil out receives the
	// decoded response body.
	Put(ctx context.Context, path string, body, out any) error

	// Delete issues a DELETE against path. The response body is discarded.
	Delete(ctx context.Context, path string) error
}
