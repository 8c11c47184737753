package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/apolonotes/apolo-console/internal/config"
	"github.com/apolonotes/apolo-console/internal/logger"
	"github.com/apolonotes/apolo-console/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type restProvider struct {
	client         *resty.Client
	captchaSiteKey string
	logger         *logger.Logger

	mu          sync.Mutex
	current     *models.Principal
	subscribers map[int]func(*models.Principal)
	nextSub     int
}

// NewRESTProvider constructs a [Provider] over the identity provider's REST
// surface. The project key is attached to every request; the session lives
// in memory only.
func NewRESTProvider(cfg config.Identity, log *logger.Logger) (Provider, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("empty identity provider base url")
	}
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(20 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Project-Key", cfg.ProjectKey)

	return &restProvider{
		client:         client,
		captchaSiteKey: cfg.CaptchaSiteKey,
		logger:         log,
		subscribers:    make(map[int]func(*models.Principal)),
	}, nil
}

type tokenResponse struct {
	Token string `json:"token"`
}

type providerError struct {
	Message string `json:"message"`
}

func (p *restProvider) SignIn(ctx context.Context, email, password string) (models.Principal, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := p.client.R().SetContext(ctx).SetBody(body).Post("/auth/login")
	if err != nil {
		return models.Principal{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		p.logger.Debug().Int("status", resp.StatusCode()).Err(err).Msg("sign in rejected")
		return models.Principal{}, err
	}

	return p.establishSession(resp)
}

func (p *restProvider) SignUp(ctx context.Context, email, password, captchaToken string) (models.Principal, error) {
	body := map[string]string{
		"email":          email,
		"password":       password,
		"captchaToken":   captchaToken,
		"captchaSiteKey": p.captchaSiteKey,
	}

	resp, err := p.client.R().SetContext(ctx).SetBody(body).Post("/auth/signup")
	if err != nil {
		return models.Principal{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		p.logger.Debug().Int("status", resp.StatusCode()).Err(err).Msg("sign up rejected")
		return models.Principal{}, err
	}

	return p.establishSession(resp)
}

func (p *restProvider) BeginFederated(ctx context.Context) (FederatedSession, error) {
	resp, err := p.client.R().SetContext(ctx).Post("/auth/federated/start")
	if err != nil {
		return FederatedSession{}, fmt.Errorf("begin federated request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return FederatedSession{}, err
	}

	var session struct {
		VerificationURL string `json:"verificationUrl"`
		DeviceCode      string `json:"deviceCode"`
	}
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return FederatedSession{}, fmt.Errorf("decode federated session: %w", err)
	}

	return FederatedSession{
		VerificationURL: session.VerificationURL,
		DeviceCode:      session.DeviceCode,
	}, nil
}

func (p *restProvider) PollFederated(ctx context.Context, session FederatedSession) (models.Principal, error) {
	body := map[string]string{"deviceCode": session.DeviceCode}

	resp, err := p.client.R().SetContext(ctx).SetBody(body).Post("/auth/federated/poll")
	if err != nil {
		return models.Principal{}, fmt.Errorf("poll federated request: %w", err)
	}
	if resp.StatusCode() == http.StatusAccepted {
		return models.Principal{}, ErrFederatedPending
	}
	if err = mapProviderError(resp); err != nil {
		return models.Principal{}, err
	}

	return p.establishSession(resp)
}

func (p *restProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()
	if current == nil {
		return ErrNoSession
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+current.Token).
		Post("/auth/signout")
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}
	if err = mapProviderError(resp); err != nil {
		return err
	}

	p.setSession(nil)
	p.logger.Debug().Msg("session terminated")
	return nil
}

func (p *restProvider) Current() *models.Principal {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	principal := *p.current
	return &principal
}

func (p *restProvider) Subscribe(onChange func(*models.Principal)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subscribers[id] = onChange
	current := p.current
	p.mu.Unlock()

	// The in-memory session state is always known, so the subscriber learns
	// it right away rather than waiting for the next change.
	onChange(clonePrincipal(current))

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

// establishSession decodes the issued token, installs the session, and
// notifies subscribers.
func (p *restProvider) establishSession(resp *resty.Response) (models.Principal, error) {
	var issued tokenResponse
	if err := json.Unmarshal(resp.Body(), &issued); err != nil {
		return models.Principal{}, fmt.Errorf("decode token response: %w", err)
	}
	if issued.Token == "" {
		return models.Principal{}, errors.New("provider response carries no token")
	}

	principal, err := principalFromToken(issued.Token)
	if err != nil {
		return models.Principal{}, fmt.Errorf("parse issued token: %w", err)
	}

	p.setSession(&principal)
	p.logger.Debug().Str("subject", principal.Subject).Msg("session established")
	return principal, nil
}

func (p *restProvider) setSession(principal *models.Principal) {
	p.mu.Lock()
	p.current = principal
	notifyList := make([]func(*models.Principal), 0, len(p.subscribers))
	for _, subscriber := range p.subscribers {
		notifyList = append(notifyList, subscriber)
	}
	p.mu.Unlock()

	for _, subscriber := range notifyList {
		subscriber(clonePrincipal(principal))
	}
}

func clonePrincipal(principal *models.Principal) *models.Principal {
	if principal == nil {
		return nil
	}
	clone := *principal
	return &clone
}

// principalFromToken extracts subject, email, and expiry from the issued
// JWT. The token is parsed unverified: signature verification is the
// provider's job, the console only needs the claims.
func principalFromToken(token string) (models.Principal, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return models.Principal{}, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.Principal{}, errors.New("invalid token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return models.Principal{}, errors.New("token carries no subject")
	}

	principal := models.Principal{Subject: subject, Token: token}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		principal.ExpiresAt = exp.Time
	}

	return principal, nil
}

// mapProviderError surfaces the provider's own message text on non-2xx
// responses.
func mapProviderError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	var payload providerError
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Message != "" {
		return errors.New(payload.Message)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("identity provider: http %d: %s", status, body)
}
