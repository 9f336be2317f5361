package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chenjq/photofolio/internal/logging"
)

const defaultEndpoint = "https://identitytoolkit.googleapis.com"

// Firebase talks to the Firebase Identity Toolkit REST API and keeps the
// current subject in memory, pushing state changes to subscribers through a
// single dispatcher goroutine. Serializing deliveries that way means one
// notification's handling finishes before the next begins, even when the
// provider emits in quick succession.
type Firebase struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	log        logging.Logger

	mu        sync.Mutex
	current   *User
	subs      map[int]func(*User)
	nextSubID int

	queue chan func()
	done  chan struct{}
}

// Option tweaks the Firebase client; used by tests to point it at a stub.
type Option func(*Firebase)

func WithEndpoint(url string) Option {
	return func(f *Firebase) { f.endpoint = strings.TrimRight(url, "/") }
}

func WithHTTPClient(c *http.Client) Option {
	return func(f *Firebase) { f.httpClient = c }
}

func NewFirebase(apiKey string, log logging.Logger, opts ...Option) *Firebase {
	f := &Firebase{
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		httpClient: http.DefaultClient,
		log:        log,
		subs:       make(map[int]func(*User)),
		queue:      make(chan func(), 16),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	go f.dispatchLoop()
	return f
}

// Close stops the notification dispatcher. Pending deliveries are dropped.
func (f *Firebase) Close() {
	close(f.done)
}

func (f *Firebase) dispatchLoop() {
	for {
		select {
		case fn := <-f.queue:
			fn()
		case <-f.done:
			return
		}
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn verifies credentials with the identity service. Failures carry the
// provider's error classification as an *AuthError; transport failures map
// to the network code.
func (f *Firebase) SignIn(ctx context.Context, email, password string) (*User, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/accounts:signInWithPassword?key=%s", f.endpoint, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, NewAuthError(CodeNetworkRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAuthError(readErrorCode(resp.Body), nil)
	}

	var res signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, NewAuthError(CodeNetworkRequestFailed, err)
	}

	f.crossCheckToken(ctx, res.IDToken, res.LocalID)

	user := &User{SubjectID: res.LocalID, Email: res.Email, IDToken: res.IDToken}

	f.mu.Lock()
	f.current = user
	f.mu.Unlock()
	f.notify(user)

	return user, nil
}

// crossCheckToken decodes the ID token without verifying its signature and
// warns when the token subject disagrees with the reported localId. The
// token is provider-signed; local verification is not this client's job.
func (f *Firebase) crossCheckToken(ctx context.Context, idToken, localID string) {
	if idToken == "" {
		return
	}
	tok, _, err := jwt.NewParser().ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		f.log.Warn(ctx, "could not decode id token", "error", err)
		return
	}
	if sub, err := tok.Claims.GetSubject(); err == nil && sub != "" && sub != localID {
		f.log.Warn(ctx, "id token subject mismatch", "subject", sub, "localId", localID)
	}
}

// SignOut drops the in-memory subject and notifies subscribers. The
// email/password flow has no server-side session to revoke.
func (f *Firebase) SignOut(ctx context.Context) error {
	f.mu.Lock()
	f.current = nil
	f.mu.Unlock()
	f.notify(nil)
	return nil
}

// Subscribe registers cb and replays the current state to it immediately,
// mirroring the provider's native auth-state listener semantics.
func (f *Firebase) Subscribe(cb func(*User)) func() {
	f.mu.Lock()
	id := f.nextSubID
	f.nextSubID++
	f.subs[id] = cb
	cur := f.current
	f.mu.Unlock()

	f.enqueue(func() { cb(cur) })

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *Firebase) CurrentUser() *User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *Firebase) CurrentSubjectID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return ""
	}
	return f.current.SubjectID
}

func (f *Firebase) notify(u *User) {
	f.mu.Lock()
	cbs := make([]func(*User), 0, len(f.subs))
	for _, cb := range f.subs {
		cbs = append(cbs, cb)
	}
	f.mu.Unlock()

	f.enqueue(func() {
		for _, cb := range cbs {
			cb(u)
		}
	})
}

func (f *Firebase) enqueue(fn func()) {
	select {
	case f.queue <- fn:
	case <-f.done:
	}
}

// readErrorCode extracts the provider's error classification from an error
// body. Some responses suffix the code with a reason ("INVALID_PASSWORD :
// ..."); only the leading token classifies.
func readErrorCode(r io.Reader) string {
	var res errorResponse
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return ""
	}
	code := res.Error.Message
	if i := strings.IndexAny(code, " :"); i > 0 {
		code = code[:i]
	}
	return code
}
