package consolesdk

import (
	"context"
	"net/http"
)

// AuthAPI covers the sign-in exchange and the current account.
type AuthAPI struct {
	r Requester
}

// NewAuthAPI returns an AuthAPI over r.
func NewAuthAPI(r Requester) *AuthAPI {
	return &AuthAPI{r: r}
}

// Login exchanges credentials for a bearer token. It does not store the
// token; use Session.Login for that.
func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	tok, err := call[TokenResponse](ctx, a.r, &Request{
		Method: http.MethodPost,
		Path:   "/auth/login-json",
		Body:   req,
	})
	if err != nil {
		return nil, err
	}
	return &tok, nil
}

// CurrentUser returns the account the stored credential belongs to.
func (a *AuthAPI) CurrentUser(ctx context.Context) (*User, error) {
	user, err := call[User](ctx, a.r, &Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account.
func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	user, err := call[User](ctx, a.r, &Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   req,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
