package identity

import (
	"sync"

	"github.com/apolonotes/apolo-console/models"
)

// GateState is the authentication gate's position.
type GateState int

const (
	// StateChecking means the session status is not yet known. The UI shows
	// a loading indicator and performs no navigation.
	StateChecking GateState = iota
	// StateAuthenticated means a live session exists; protected content may
	// render.
	StateAuthenticated
	// StateUnauthenticated means no session exists; the UI routes to login.
	StateUnauthenticated
)

// Gate is the three-state machine guarding protected screens. It starts in
// StateChecking, subscribes to the provider's session-change stream on
// Start, transitions on every notification, and unsubscribes on Stop.
//
// A session notification arriving while still checking moves the gate
// directly to StateAuthenticated, with no intermediate unauthenticated
// flash.
type Gate struct {
	provider Provider
	onChange func(GateState, *models.Principal)

	mu          sync.Mutex
	state       GateState
	principal   *models.Principal
	unsubscribe func()
}

// NewGate constructs a gate over provider. onChange, when non-nil, is
// invoked after every transition with the new state and principal; the TUI
// uses it to route between login and protected screens.
func NewGate(provider Provider, onChange func(GateState, *models.Principal)) *Gate {
	return &Gate{
		provider: provider,
		onChange: onChange,
		state:    StateChecking,
	}
}

// Start resets the gate to StateChecking and subscribes to the session
// stream. Calling Start on a started gate re-subscribes.
func (g *Gate) Start() {
	g.mu.Lock()
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
	g.state = StateChecking
	g.principal = nil
	g.mu.Unlock()

	unsubscribe := g.provider.Subscribe(g.transition)

	g.mu.Lock()
	g.unsubscribe = unsubscribe
	g.mu.Unlock()
}

// Stop unsubscribes from the session stream. The gate keeps its last state.
func (g *Gate) Stop() {
	g.mu.Lock()
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// State returns the current gate state and principal.
func (g *Gate) State() (GateState, *models.Principal) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state, g.principal
}

func (g *Gate) transition(principal *models.Principal) {
	g.mu.Lock()
	if principal != nil {
		g.state = StateAuthenticated
	} else {
		g.state = StateUnauthenticated
	}
	g.principal = principal
	state := g.state
	onChange := g.onChange
	g.mu.Unlock()

	if onChange != nil {
		onChange(state, principal)
	}
}
