package consolesdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// DefaultSignInURL is the sign-in entry point used when none is configured.
const DefaultSignInURL = "/login"

// Navigator moves the user to the sign-in entry point after a session reset.
type Navigator interface {
	RedirectToSignIn(ctx context.Context) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(ctx context.Context) error

// RedirectToSignIn calls f(ctx).
func (f NavigatorFunc) RedirectToSignIn(ctx context.Context) error { return f(ctx) }

// State is the credential state of a Session.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session coordinates the credential lifecycle on top of a transport.
// It is the single place where a 401 turns into a session reset: the stored
// credential is cleared and the navigator is sent to sign-in. Resource groups
// built on a Session never handle expiry themselves.
type Session struct {
	transport Requester
	store     CredentialStore
	navigator Navigator
	logger    *slog.Logger
}

// NewSession wires a session. store must be the same store the transport
// reads its credential from.
func NewSession(transport Requester, store CredentialStore, navigator Navigator) *Session {
	if navigator == nil {
		navigator = NavigatorFunc(func(context.Context) error { return nil })
	}
	return &Session{
		transport: transport,
		store:     store,
		navigator: navigator,
		logger:    slog.Default(),
	}
}

// NewSession creates a Session over c using c's credential store.
func (c *SDKClient) NewSession(navigator Navigator) *Session {
	s := NewSession(c, c.Credentials, navigator)
	s.logger = c.Logger
	return s
}

// Do sends req through the transport. On a 401 the session is reset and
// ErrSessionExpired is returned instead of the transport error.
func (s *Session) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := s.transport.Do(ctx, req)
	if err == nil || !errors.Is(err, ErrUnauthenticated) {
		return resp, err
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	expired := fmt.Errorf("%s %s: %w", method, req.Path, ErrSessionExpired)

	if resetErr := s.Reset(ctx); resetErr != nil {
		return nil, errors.Join(expired, resetErr)
	}
	return nil, expired
}

// Reset discards the credential and redirects to sign-in. The reset runs to
// completion even if ctx is already cancelled.
func (s *Session) Reset(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}

	s.logger.WarnContext(ctx, "session reset, redirecting to sign-in")

	if err := s.navigator.RedirectToSignIn(ctx); err != nil {
		return fmt.Errorf("failed to redirect to sign-in: %w", err)
	}
	return nil
}

// Login exchanges username and password for a bearer token and stores it.
// The exchange runs through Do, so a rejected sign-in resets the session like
// any other 401 and no stale credential survives it.
func (s *Session) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	tok, err := NewAuthAPI(s).Login(ctx, LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if tok.AccessToken == "" {
		return nil, errors.New("consolesdk: sign-in response carried no access token")
	}

	if err := s.store.Save(ctx, tok.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}

	return tok, nil
}

// Logout discards the stored credential.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

// State reports whether a credential is currently stored.
func (s *Session) State(ctx context.Context) (State, error) {
	_, err := s.Token(ctx)
	switch {
	case errors.Is(err, ErrNoCredential):
		return StateAnonymous, nil
	case err != nil:
		return StateAnonymous, err
	}
	return StateAuthenticated, nil
}

// Token returns the stored credential or ErrNoCredential.
func (s *Session) Token(ctx context.Context) (string, error) {
	return s.store.Load(ctx)
}

var (
	_ Requester = (*SDKClient)(nil)
	_ Requester = (*Session)(nil)
)
