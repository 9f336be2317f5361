// Package identity wraps the external identity provider. The rest of the
// client programs against Provider; the Firebase REST implementation is the
// only concrete one.
package identity

import "context"

// User is the provider's view of a signed-in subject.
type User struct {
	SubjectID string
	Email     string
	IDToken   string
}

// Provider exposes the consumed subset of the identity service.
//
// Subscribe registers for live-session notifications. The callback fires
// once immediately with the current state and then on every state change;
// deliveries are serialized (a callback returns before the next one runs).
// The returned function detaches the listener.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignOut(ctx context.Context) error
	Subscribe(cb func(*User)) (unsubscribe func())
	CurrentUser() *User
	CurrentSubjectID() string
}
