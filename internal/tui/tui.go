package tui

import (
	"context"

	"github.com/apolonotes/apolo-console/internal/identity"
	"github.com/apolonotes/apolo-console/internal/logger"
	"github.com/apolonotes/apolo-console/internal/notify"
	"github.com/apolonotes/apolo-console/internal/resource"
	"github.com/apolonotes/apolo-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI owns the terminal program lifecycle. It mounts the toast surface on the
// dispatcher and drives screen routing off the auth gate.
type TUI struct {
	dispatcher *notify.Dispatcher
	stores     *resource.Stores
	provider   identity.Provider
	log        *logger.Logger
}

func New(dispatcher *notify.Dispatcher, stores *resource.Stores, provider identity.Provider, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		dispatcher: dispatcher,
		stores:     stores,
		provider:   provider,
		log:        log,
	}
}

// Run blocks until the user quits or ctx is cancelled. The dispatcher handler
// and the gate subscription live exactly as long as the program does.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(
		newAppModel(ctx, t.stores, t.provider),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	t.dispatcher.Register(func(message string, severity notify.Severity) {
		program.Send(toastMsg{message: message, severity: severity})
	})
	defer t.dispatcher.Unregister()

	gate := identity.NewGate(t.provider, func(state identity.GateState, principal *models.Principal) {
		program.Send(gateChangedMsg{state: state, principal: principal})
	})
	// Subscribe delivers the current session synchronously and Send blocks
	// until the program loop is reading, so the gate starts off this
	// goroutine.
	go gate.Start()
	defer gate.Stop()

	t.log.Info().Msg("console started")
	_, err := program.Run()
	return err
}
