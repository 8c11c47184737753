package service_test

import (
	"testing"
	"time"

	"github.com/apolonotes/apolo-console/internal/adapter"
	"github.com/apolonotes/apolo-console/internal/apitest"
	"github.com/apolonotes/apolo-console/internal/config"
	"github.com/apolonotes/apolo-console/internal/logger"
	"github.com/apolonotes/apolo-console/internal/notify"
	"github.com/apolonotes/apolo-console/internal/service"
	"github.com/stretchr/testify/require"
)

// newTestServices wires the full client stack (resty adapter included)
// against the in-memory fake backend.
func newTestServices(t *testing.T) (*apitest.Server, *service.Services) {
	t.Helper()

	backend := apitest.New(t)

	doer, err := adapter.NewHTTPDoer(config.Backend{
		BaseURL:        backend.URL,
		RequestTimeout: 5 * time.Second,
	}, notify.NewDispatcher(logger.Nop()), logger.Nop())
	require.NoError(t, err)

	return backend, service.NewServices(doer)
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }
