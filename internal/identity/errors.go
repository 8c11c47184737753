package identity

import "errors"

var (
	// ErrFederatedPending is returned by PollFederated while the user has
	// not yet completed the flow in the browser.
	ErrFederatedPending = errors.New("federated sign-in pending")

	// ErrNoSession is returned by SignOut when no session exists.
	ErrNoSession = errors.New("no active session")
)
