package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/chenjq/photofolio/internal/client/api"
	"github.com/chenjq/photofolio/internal/client/config"
	"github.com/chenjq/photofolio/internal/client/identity"
	"github.com/chenjq/photofolio/internal/client/repositories/metadata"
	"github.com/chenjq/photofolio/internal/client/services"
	"github.com/chenjq/photofolio/internal/client/session"
	"github.com/chenjq/photofolio/internal/client/storage"
	"github.com/chenjq/photofolio/internal/logging"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	provider    *identity.Firebase
	authService services.AuthService
	guard       *services.Guard
	gallery     *services.GalleryService
	uploads     *services.UploadService
	profile     *services.ProfileService
	reader      *bufio.Reader

	mu          sync.Mutex
	user        *services.AuthUser
	expiryTimer *time.Timer
	unsubscribe func()
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing database", "error", err)
		return nil, err
	}

	repo := metadata.NewSQLiteRepository(db)
	sessions := session.NewStore(repo, log)
	provider := identity.NewFirebase(c.FirebaseAPIKey, log)
	apiClient := api.NewHTTPClient(c.Backend, c.APIVersion, log)

	auth := services.NewAuthService(provider, sessions, log)

	return &App{
		config:      c,
		log:         log,
		provider:    provider,
		authService: auth,
		guard:       services.NewGuard(auth),
		gallery:     services.NewGalleryService(apiClient, c.AdminPageSize, log),
		uploads:     services.NewUploadService(apiClient, log),
		profile:     services.NewProfileService(apiClient, log),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run subscribes for auth-state notifications, then hands control to the
// REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.mu.Lock()
	a.unsubscribe = a.authService.Subscribe(func(u *services.AuthUser) {
		a.onAuthChange(ctx, u)
	})
	a.mu.Unlock()

	defer a.close()

	for _, name := range a.config.MissingFirebaseVars() {
		a.log.Warn(ctx, "identity provider setting missing", "name", name)
	}

	a.Root(ctx)
}

// onAuthChange tracks the reconciled auth state and keeps the expiry timer
// armed with whatever session lifetime is left. When it fires, the user is
// logged out in place.
func (a *App) onAuthChange(ctx context.Context, u *services.AuthUser) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.user = u
	if a.expiryTimer != nil {
		a.expiryTimer.Stop()
		a.expiryTimer = nil
	}
	if u == nil {
		return
	}

	remaining := a.authService.SessionRemaining(ctx)
	if remaining <= 0 {
		return
	}
	a.expiryTimer = time.AfterFunc(remaining, func() {
		a.log.Info(ctx, "session expired, logging out")
		_ = a.authService.Logout(ctx)
		a.mu.Lock()
		a.user = nil
		a.mu.Unlock()
	})
}

func (a *App) close() {
	a.mu.Lock()
	if a.expiryTimer != nil {
		a.expiryTimer.Stop()
		a.expiryTimer = nil
	}
	unsub := a.unsubscribe
	a.unsubscribe = nil
	a.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	a.provider.Close()
}

func (a *App) currentUser() *services.AuthUser {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != nil
}
