package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/chenjq/photofolio/internal/client/api"
	"github.com/chenjq/photofolio/internal/client/identity"
	"github.com/chenjq/photofolio/internal/client/models"
	"github.com/chenjq/photofolio/internal/client/repositories/metadata"
	"github.com/chenjq/photofolio/internal/client/session"
	"github.com/chenjq/photofolio/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupSessions(t *testing.T) (*session.Store, metadata.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	repo := metadata.NewSQLiteRepository(db)
	return session.NewStore(repo, testLogger()), repo
}

// fakeProvider implements identity.Provider with settable results and a
// synchronous emit helper standing in for the provider's dispatcher.
type fakeProvider struct {
	mu sync.Mutex

	SignInRet  *identity.User
	SignInErr  error
	SignOutErr error

	current *identity.User
	subs    []func(*identity.User)
}

func (f *fakeProvider) SignIn(ctx context.Context, email, password string) (*identity.User, error) {
	if f.SignInErr != nil {
		return nil, f.SignInErr
	}
	f.mu.Lock()
	f.current = f.SignInRet
	f.mu.Unlock()
	return f.SignInRet, nil
}

func (f *fakeProvider) SignOut(ctx context.Context) error {
	f.mu.Lock()
	f.current = nil
	f.mu.Unlock()
	return f.SignOutErr
}

func (f *fakeProvider) Subscribe(cb func(*identity.User)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, cb)
	return func() {}
}

func (f *fakeProvider) CurrentUser() *identity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeProvider) CurrentSubjectID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return ""
	}
	return f.current.SubjectID
}

func (f *fakeProvider) setCurrent(u *identity.User) {
	f.mu.Lock()
	f.current = u
	f.mu.Unlock()
}

// emit pushes one notification to all subscribers, serialized like the real
// provider's dispatcher.
func (f *fakeProvider) emit(u *identity.User) {
	f.mu.Lock()
	subs := append([]func(*identity.User){}, f.subs...)
	f.mu.Unlock()
	for _, cb := range subs {
		cb(u)
	}
}

// fakeAPIClient implements api.Client through overridable funcs; methods
// without an override return zero values.
type fakeAPIClient struct {
	listFn     func(ctx context.Context, lastKey *string, page int) (*models.ImagePage, error)
	deleteFn   func(ctx context.Context, imageID string) error
	updateFn   func(ctx context.Context, imageID string, patch models.MetadataPatch) (map[string]any, error)
	grantFn    func(ctx context.Context, contentType string) (*models.UploadGrant, error)
	finalizeFn func(ctx context.Context, fin models.UploadFinalize) error

	selfieFn  func(ctx context.Context) (string, error)
	resumeFn  func(ctx context.Context) (string, error)
	linksFn   func(ctx context.Context) (*models.SocialLinks, error)
	messageFn func(ctx context.Context) (string, error)
}

var _ api.Client = (*fakeAPIClient)(nil)

func (f *fakeAPIClient) ListImages(ctx context.Context, lastKey *string, page int) (*models.ImagePage, error) {
	if f.listFn != nil {
		return f.listFn(ctx, lastKey, page)
	}
	return &models.ImagePage{}, nil
}

func (f *fakeAPIClient) RequestUploadGrant(ctx context.Context, contentType string) (*models.UploadGrant, error) {
	if f.grantFn != nil {
		return f.grantFn(ctx, contentType)
	}
	return &models.UploadGrant{}, nil
}

func (f *fakeAPIClient) FinalizeUpload(ctx context.Context, fin models.UploadFinalize) error {
	if f.finalizeFn != nil {
		return f.finalizeFn(ctx, fin)
	}
	return nil
}

func (f *fakeAPIClient) DeleteImage(ctx context.Context, imageID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, imageID)
	}
	return nil
}

func (f *fakeAPIClient) UpdateImage(ctx context.Context, imageID string, patch models.MetadataPatch) (map[string]any, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, imageID, patch)
	}
	return nil, nil
}

func (f *fakeAPIClient) GetSelfie(ctx context.Context) (string, error) {
	if f.selfieFn != nil {
		return f.selfieFn(ctx)
	}
	return "", nil
}

func (f *fakeAPIClient) SetSelfie(ctx context.Context, url string) error { return nil }

func (f *fakeAPIClient) GetResume(ctx context.Context) (string, error) {
	if f.resumeFn != nil {
		return f.resumeFn(ctx)
	}
	return "", nil
}

func (f *fakeAPIClient) SetResume(ctx context.Context, url string) error { return nil }

func (f *fakeAPIClient) GetSocialLinks(ctx context.Context) (*models.SocialLinks, error) {
	if f.linksFn != nil {
		return f.linksFn(ctx)
	}
	return &models.SocialLinks{}, nil
}

func (f *fakeAPIClient) SetSocialLinks(ctx context.Context, links models.SocialLinks) error {
	return nil
}

func (f *fakeAPIClient) GetSiteMessage(ctx context.Context) (string, error) {
	if f.messageFn != nil {
		return f.messageFn(ctx)
	}
	return "", nil
}

func (f *fakeAPIClient) SetSiteMessage(ctx context.Context, message string) error { return nil }
