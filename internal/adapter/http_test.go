package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/apolonotes/apolo-console/internal/config"
	"github.com/apolonotes/apolo-console/internal/logger"
	"github.com/apolonotes/apolo-console/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedNotification struct {
	message  string
	severity notify.Severity
}

// newTestDoer wires a doer against handler with a recording dispatcher. The
// returned slice pointer accumulates every dispatched notification.
func newTestDoer(t *testing.T, handler http.Handler, timeout time.Duration) (HTTPDoer, *[]recordedNotification) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	notifications := &[]recordedNotification{}
	dispatcher := notify.NewDispatcher(logger.Nop())
	dispatcher.Register(func(message string, severity notify.Severity) {
		*notifications = append(*notifications, recordedNotification{message, severity})
	})

	doer, err := NewHTTPDoer(config.Backend{
		BaseURL:        srv.URL,
		RequestTimeout: timeout,
	}, dispatcher, logger.Nop())
	require.NoError(t, err)

	return doer, notifications
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url kept", raw: "http://localhost:8080/apolonotes", want: "http://localhost:8080/apolonotes"},
		{name: "scheme added", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "http://api.example.com/", want: "http://api.example.com"},
		{name: "surrounding spaces trimmed", raw: "  http://api.example.com  ", want: "http://api.example.com"},
		{name: "empty rejected", raw: "", wantErr: true},
		{name: "blank rejected", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPDoer_RejectsEmptyBaseURL(t *testing.T) {
	_, err := NewHTTPDoer(config.Backend{}, notify.NewDispatcher(nil), logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPDoer_NilLoggerStillClassifies(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "event not found"})
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	doer, err := NewHTTPDoer(config.Backend{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, notify.NewDispatcher(nil), nil)
	require.NoError(t, err)

	err = doer.Delete(context.Background(), "/events/999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPDoer_GetDecodesAndForwardsQuery(t *testing.T) {
	var seen *http.Request
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	doer, notifications := newTestDoer(t, handler, 5*time.Second)
	doer.SetToken("tok-123")

	query := url.Values{}
	query.Set("archived", "false")
	query.Set("tag", "work")

	var out struct {
		Status string `json:"status"`
	}
	err := doer.Get(context.Background(), "/notes", query, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Status)

	require.NotNil(t, seen)
	assert.Equal(t, "false", seen.URL.Query().Get("archived"))
	assert.Equal(t, "work", seen.URL.Query().Get("tag"))
	assert.Equal(t, "Bearer tok-123", seen.Header.Get("Authorization"))
	assert.NotEmpty(t, seen.Header.Get("X-Request-ID"))

	assert.Empty(t, *notifications, "success must not notify")
}

func TestHTTPDoer_NoAuthorizationHeaderWithoutToken(t *testing.T) {
	var authorization string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	doer, _ := newTestDoer(t, handler, 5*time.Second)

	require.NoError(t, doer.Get(context.Background(), "/notes", nil, nil))
	assert.Empty(t, authorization)
}

func TestHTTPDoer_SetTokenEmptyDetachesHeader(t *testing.T) {
	var authorization string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	doer, _ := newTestDoer(t, handler, 5*time.Second)
	doer.SetToken("tok-123")
	require.NoError(t, doer.Get(context.Background(), "/notes", nil, nil))
	require.Equal(t, "Bearer tok-123", authorization)

	doer.SetToken("")
	require.NoError(t, doer.Get(context.Background(), "/notes", nil, nil))
	assert.Empty(t, authorization)
	assert.Empty(t, doer.Token())
}

func TestHTTPDoer_ClassifiesStatusAndNotifiesOnce(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantErr     error
		wantMessage string
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest, wantMessage: msgBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized, wantMessage: msgUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden, wantMessage: msgForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound, wantMessage: msgOther},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrServer, wantMessage: msgServer},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrServer, wantMessage: msgServer},
		{name: "unmapped status", status: http.StatusTeapot, wantErr: nil, wantMessage: msgOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]string{"message": "backend detail"})
			})

			doer, notifications := newTestDoer(t, handler, 5*time.Second)

			err := doer.Get(context.Background(), "/notes", nil, nil)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), "backend detail")

			require.Len(t, *notifications, 1, "every failure dispatches exactly one notification")
			assert.Equal(t, tt.wantMessage, (*notifications)[0].message)
			assert.Equal(t, notify.SeverityError, (*notifications)[0].severity)
		})
	}
}

func TestHTTPDoer_TimeoutMapsToErrTimeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	doer, notifications := newTestDoer(t, handler, 30*time.Millisecond)

	err := doer.Get(context.Background(), "/notes", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)

	require.Len(t, *notifications, 1)
	assert.Equal(t, msgTimeout, (*notifications)[0].message)
}

func TestHTTPDoer_UnreachableServerMapsToErrNetwork(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // keep the address, kill the listener

	notifications := []recordedNotification{}
	dispatcher := notify.NewDispatcher(logger.Nop())
	dispatcher.Register(func(message string, severity notify.Severity) {
		notifications = append(notifications, recordedNotification{message, severity})
	})

	doer, err := NewHTTPDoer(config.Backend{
		BaseURL:        srv.URL,
		RequestTimeout: time.Second,
	}, dispatcher, logger.Nop())
	require.NoError(t, err)

	err = doer.Get(context.Background(), "/notes", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)

	require.Len(t, notifications, 1)
	assert.Equal(t, msgNetwork, notifications[0].message)
}

func TestHTTPDoer_PostSendsBodyAndDecodesResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "groceries", in["title"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "title": in["title"]})
	})

	doer, notifications := newTestDoer(t, handler, 5*time.Second)

	var out struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	err := doer.Post(context.Background(), "/notes", map[string]string{"title": "groceries"}, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "groceries", out.Title)
	assert.Empty(t, *notifications)
}

func TestHTTPDoer_DeleteDiscardsBody(t *testing.T) {
	var method string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	doer, _ := newTestDoer(t, handler, 5*time.Second)

	require.NoError(t, doer.Delete(context.Background(), "/notes/7"))
	assert.Equal(t, http.MethodDelete, method)
}

func TestHTTPDoer_ServerMessageFallsBackToRawBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("plain text failure"))
	})

	doer, _ := newTestDoer(t, handler, 5*time.Second)

	err := doer.Get(context.Background(), "/notes", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServer))
	assert.Contains(t, err.Error(), "plain text failure")
}
