// Package services contains the application services behind the portfolio
// views: the auth gateway, the route guard, the gallery store, uploads, and
// profile content.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chenjq/photofolio/internal/client/identity"
	"github.com/chenjq/photofolio/internal/client/session"
	"github.com/chenjq/photofolio/internal/logging"
)

// StatusSignedIn is the opaque status token marking an established login.
const StatusSignedIn = "signIn"

// loginSettleWait bounds how long a notification handler waits for an
// in-progress login to finish writing its session record.
const loginSettleWait = 100 * time.Millisecond

// AuthUser is the application-level view of the signed-in user.
type AuthUser struct {
	Email     string
	SubjectID string
	Status    string
}

// AuthService is the single source of truth for "is the user
// authenticated". It reconciles three signals: the identity provider's live
// state, the persisted session record, and an in-flight login flag.
type AuthService interface {
	// Login verifies credentials with the provider and persists a session
	// record on success. Failures carry the provider's classification (see
	// identity.AuthError) and never leave a partial session record behind.
	Login(ctx context.Context, email, password string) (*AuthUser, error)

	// Logout clears the session record first, then asks the provider to
	// sign out (best-effort; provider errors never fail the caller).
	Logout(ctx context.Context) error

	// Subscribe registers for reconciled auth-state notifications. This is
	// the sole initialization path on startup: callers should treat state
	// as loading until the first delivery, then arm an expiry timer from
	// SessionRemaining and force Logout when it fires.
	Subscribe(cb func(*AuthUser)) (unsubscribe func())

	// IsSessionValid is the authoritative synchronous check behind the
	// route guard. It is deliberately stricter than the in-memory user
	// state, which is trivial to manipulate.
	IsSessionValid(ctx context.Context) bool

	// SessionRemaining reports how much session lifetime is left.
	SessionRemaining(ctx context.Context) time.Duration

	// CurrentUser returns the in-memory user state, or nil when signed out.
	CurrentUser() *AuthUser
}

type authService struct {
	provider identity.Provider
	sessions *session.Store
	log      logging.Logger

	mu              sync.Mutex
	current         *AuthUser
	loginInProgress bool
}

func NewAuthService(provider identity.Provider, sessions *session.Store, log logging.Logger) AuthService {
	return &authService{provider: provider, sessions: sessions, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (*AuthUser, error) {
	a.setLoginInProgress(true)

	u, err := a.provider.SignIn(ctx, email, password)
	if err != nil {
		a.setLoginInProgress(false)
		// Never leave partial session state behind a failed login.
		_ = a.sessions.Clear(ctx)
		return nil, err
	}

	if err := a.sessions.Write(ctx, u.SubjectID); err != nil {
		a.setLoginInProgress(false)
		_ = a.sessions.Clear(ctx)
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	a.setLoginInProgress(false)

	user := &AuthUser{Email: u.Email, SubjectID: u.SubjectID, Status: StatusSignedIn}
	a.setCurrent(user)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	// Local session clearing comes first; provider sign-out is best-effort.
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Error(ctx, "clearing session on logout", "error", err)
	}
	a.setCurrent(nil)

	if err := a.provider.SignOut(ctx); err != nil {
		a.log.Warn(ctx, "provider sign-out failed", "error", err)
	}
	return nil
}

func (a *authService) Subscribe(cb func(*AuthUser)) func() {
	return a.provider.Subscribe(func(u *identity.User) {
		a.reconcile(context.Background(), u, cb)
	})
}

// reconcile processes one provider notification. Deliveries arrive
// serialized (the provider dispatches through a single consumer), so one
// reconciliation finishes before the next begins.
func (a *authService) reconcile(ctx context.Context, u *identity.User, cb func(*AuthUser)) {
	if u == nil {
		// Signed out upstream: drop any stale session data.
		_ = a.sessions.Clear(ctx)
		a.setCurrent(nil)
		cb(nil)
		return
	}

	// A login may still be writing its session record; give it a moment.
	if a.isLoginInProgress() {
		time.Sleep(loginSettleWait)
	}

	rec, err := a.sessions.Read(ctx)
	if err != nil {
		a.log.Error(ctx, "reading session record", "error", err)
	}
	if rec == nil || a.sessions.IsExpired(ctx, time.Now()) {
		if !a.isLoginInProgress() {
			_ = a.Logout(ctx)
			cb(nil)
			return
		}
		// Login still in flight but no record yet: write one for the live
		// subject as a backstop.
		if err := a.sessions.Write(ctx, u.SubjectID); err != nil {
			_ = a.Logout(ctx)
			cb(nil)
			return
		}
	}

	rec, err = a.sessions.Read(ctx)
	if err != nil || rec == nil {
		_ = a.Logout(ctx)
		cb(nil)
		return
	}
	if rec.SubjectID != u.SubjectID {
		a.log.Warn(ctx, "session subject mismatch, logging out",
			"session", rec.SubjectID, "live", u.SubjectID)
		_ = a.Logout(ctx)
		cb(nil)
		return
	}

	user := &AuthUser{Email: u.Email, SubjectID: u.SubjectID, Status: StatusSignedIn}
	a.setCurrent(user)
	cb(user)
}

func (a *authService) IsSessionValid(ctx context.Context) bool {
	// Optimistic during the login transition to avoid a redirect flicker.
	if a.isLoginInProgress() {
		return true
	}

	subject := a.provider.CurrentSubjectID()
	if subject == "" {
		return false
	}

	rec, err := a.sessions.Read(ctx)
	if err != nil || rec == nil {
		return false
	}
	if rec.SubjectID != subject {
		a.log.Warn(ctx, "session subject mismatch", "session", rec.SubjectID, "live", subject)
		return false
	}
	return !a.sessions.IsExpired(ctx, time.Now())
}

func (a *authService) SessionRemaining(ctx context.Context) time.Duration {
	return a.sessions.Remaining(ctx, time.Now())
}

func (a *authService) CurrentUser() *AuthUser {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *authService) setCurrent(u *AuthUser) {
	a.mu.Lock()
	a.current = u
	a.mu.Unlock()
}

func (a *authService) setLoginInProgress(v bool) {
	a.mu.Lock()
	a.loginInProgress = v
	a.mu.Unlock()
}

func (a *authService) isLoginInProgress() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loginInProgress
}
