package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/apolonotes/apolo-console/internal/config"
	"github.com/apolonotes/apolo-console/internal/logger"
	"github.com/apolonotes/apolo-console/internal/notify"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpDoer struct {
	client     *resty.Client
	dispatcher *notify.Dispatcher
	logger     *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPDoer constructs the resty-backed [HTTPDoer]. It normalises and
// validates the base URL from cfg and applies the fixed request timeout to
// the underlying client.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPDoer(cfg config.Backend, dispatcher *notify.Dispatcher, log *logger.Logger) (HTTPDoer, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpDoer{client: client, dispatcher: dispatcher, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [HTTPDoer]. It stores token (whitespace-trimmed) for
// the Authorization header of all subsequent requests.
func (h *httpDoer) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [HTTPDoer].
func (h *httpDoer) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Get implements [HTTPDoer].
func (h *httpDoer) Get(ctx context.Context, path string, query url.Values, out any) error {
	req := h.request(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	return h.settle(resp, err, out)
}

// Post implements [HTTPDoer].
func (h *httpDoer) Post(ctx context.Context, path string, body, out any) error {
	resp, err := h.request(ctx).SetBody(body).Post(path)
	return h.settle(resp, err, out)
}

// Put implements [HTTPDoer].
func (h *httpDoer) Put(ctx context.Context, path string, body, out any) error {
	resp, err := h.request(ctx).SetBody(body).Put(path)
	return h.settle(resp, err, out)
}

// Delete implements [HTTPDoer].
func (h *httpDoer) Delete(ctx context.Context, path string) error {
	resp, err := h.request(ctx).Delete(path)
	return h.settle(resp, err, nil)
}

func (h *httpDoer) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// settle runs the response classifier and, on success, decodes the response
// body into out when out is non-nil.
func (h *httpDoer) settle(resp *resty.Response, err error, out any) error {
	if mappedErr := h.classify(resp, err); mappedErr != nil {
		return mappedErr
	}
	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
