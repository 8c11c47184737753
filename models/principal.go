package models

import "time"

// Principal is the authenticated identity issued by the external identity
// provider. Its mere presence is the authorization signal the router gate
// consumes; the console owns no refresh or persistence logic.
type Principal struct {
	// Subject is the provider-assigned stable user identifier.
	Subject string `json:"subject"`

	// Email is the address the principal signed in with.
	Email string `json:"email"`

	// Token is the opaque credential presented to the backend as a bearer
	// token.
	Token string `json:"-"`

	// ExpiresAt is the token expiry as reported by the provider, zero when
	// the provider did not include one.
	ExpiresAt time.Time `json:"-"`
}
