package services

import "context"

// Guard decides whether protected views may render. It requires both the
// cheap in-memory user state and the authoritative session check, so that
// manipulating the former alone cannot open a protected route.
type Guard struct {
	auth AuthService
}

func NewGuard(auth AuthService) *Guard {
	return &Guard{auth: auth}
}

// CanEnter returns false whenever the caller must redirect to login.
func (g *Guard) CanEnter(ctx context.Context) bool {
	u := g.auth.CurrentUser()
	if u == nil || u.Status == "" {
		return false
	}
	return g.auth.IsSessionValid(ctx)
}
