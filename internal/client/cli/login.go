package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/chenjq/photofolio/internal/client/identity"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "reading email", "error", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "reading password", "error", err)
		return err
	}

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		var authErr *identity.AuthError
		if errors.As(err, &authErr) {
			printlnFn(authErr.Message())
		} else {
			printlnFn("Login failed: " + err.Error())
		}
		return err
	}

	a.onAuthChange(ctx, user)
	printlnFn("Logged in as " + user.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.onAuthChange(ctx, nil)
	printlnFn("Logged out")
	return nil
}

// Status reports the signed-in user and how much session lifetime is left.
func (a *App) Status(ctx context.Context) error {
	u := a.currentUser()
	if u == nil || !a.authService.IsSessionValid(ctx) {
		printlnFn("Not logged in")
		return nil
	}
	remaining := a.authService.SessionRemaining(ctx).Round(time.Minute)
	printlnFn("Logged in as " + u.Email + ", session expires in " + remaining.String())
	return nil
}
