package client

import (
	"context"
	"fmt"

	"github.com/apolonotes/apolo-console/internal/adapter"
	"github.com/apolonotes/apolo-console/internal/config"
	"github.com/apolonotes/apolo-console/internal/identity"
	"github.com/apolonotes/apolo-console/internal/logger"
	"github.com/apolonotes/apolo-console/internal/notify"
	"github.com/apolonotes/apolo-console/internal/resource"
	"github.com/apolonotes/apolo-console/internal/service"
	"github.com/apolonotes/apolo-console/internal/tui"
	"github.com/apolonotes/apolo-console/models"
)

// App is the console runtime. It owns the full dependency graph and the
// session-to-transport bridge: whenever the provider reports a session
// change, the backend adapter's bearer token is updated to match.
type App struct {
	log      *logger.Logger
	provider identity.Provider
	doer     adapter.HTTPDoer
	ui       *tui.TUI
}

// NewApp loads configuration and wires every layer of the console.
func NewApp() (*App, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New("console", cfg.App.LogLevel)
	dispatcher := notify.NewDispatcher(log)

	doer, err := adapter.NewHTTPDoer(cfg.Backend, dispatcher, log)
	if err != nil {
		return nil, fmt.Errorf("create backend adapter: %w", err)
	}

	provider, err := identity.NewRESTProvider(cfg.Identity, log)
	if err != nil {
		return nil, fmt.Errorf("create identity provider: %w", err)
	}

	stores := resource.NewStores(service.NewServices(doer))
	ui := tui.New(dispatcher, stores, provider, log)

	return &App{
		log:      log,
		provider: provider,
		doer:     doer,
		ui:       ui,
	}, nil
}

// Run bridges the session stream into the adapter and blocks in the UI until
// the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	unsubscribe := a.provider.Subscribe(func(principal *models.Principal) {
		if principal != nil {
			a.doer.SetToken(principal.Token)
			return
		}
		a.doer.SetToken("")
	})
	defer unsubscribe()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	a.log.Info().Msg("console stopped")
	return nil
}
