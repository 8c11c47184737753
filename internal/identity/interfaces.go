// Package identity integrates the external identity provider and hosts the
// authentication gate that protects every screen behind the login flow.
//
// The provider is abstracted behind the minimal capability interface
// [Provider] (sign-in/up, federated sign-in, sign-out, current principal,
// and a session-change subscription), so the concrete provider is swappable
// and the gate's state machine is testable with a fake.
package identity

import (
	"context"

	"github.com/apolonotes/apolo-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_mock.go -package=mock

// FederatedSession describes an in-progress federated sign-in. The console
// shows VerificationURL to the user and polls until the provider reports
// completion.
type FederatedSession struct {
	// VerificationURL is where the user completes the federated flow in a
	// browser.
	VerificationURL string

	// DeviceCode identifies this flow on poll requests.
	DeviceCode string
}

// Provider is the identity-provider capability surface the console consumes.
// The console owns no credential persistence or refresh logic; a session
// exists exactly as long as the provider says it does.
//
// Implementations deliver the current principal (or nil) to every
// subscriber whenever the session changes, and once immediately upon
// subscription as soon as the session state is known.
type Provider interface {
	// SignIn authenticates with email and password. On success the session
	// changes and subscribers are notified.
	SignIn(ctx context.Context, email, password string) (models.Principal, error)

	// SignUp creates an account with email and password. captchaToken is
	// the bot-verification response forwarded to the provider. A successful
	// sign-up establishes a session.
	SignUp(ctx context.Context, email, password, captchaToken string) (models.Principal, error)

	// BeginFederated starts a federated (OAuth-style) sign-in and returns
	// the session the user must complete in a browser.
	BeginFederated(ctx context.Context) (FederatedSession, error)

	// PollFederated checks a federated flow once. It returns
	// [ErrFederatedPending] while the user has not finished, the principal
	// once the provider issues the session, or another error on failure.
	PollFederated(ctx context.Context, session FederatedSession) (models.Principal, error)

	// SignOut terminates the session. Subscribers are notified with nil.
	SignOut(ctx context.Context) error

	// Current returns the live principal, or nil when no session exists.
	Current() *models.Principal

	// Subscribe registers onChange for session-change notifications and
	// returns the function that removes the subscription.
	Subscribe(onChange func(*models.Principal)) (unsubscribe func())
}
