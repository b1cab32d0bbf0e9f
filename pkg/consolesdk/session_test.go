package consolesdk

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionResetsOnUnauthorized(t *testing.T) {
	t.Parallel()

	// Every resource function resets the session the same way
	calls := map[string]func(ctx context.Context, api *API) error{
		"Clients.List": func(ctx context.Context, api *API) error {
			_, err := api.Clients.List(ctx, nil)
			return err
		},
		"Clients.Delete": func(ctx context.Context, api *API) error {
			_, err := api.Clients.Delete(ctx, 7)
			return err
		},
		"Users.Get": func(ctx context.Context, api *API) error {
			_, err := api.Users.Get(ctx, 1)
			return err
		},
		"Financial.CreateInvoice": func(ctx context.Context, api *API) error {
			_, err := api.Financial.CreateInvoice(ctx, InvoiceInput{ClientID: 1})
			return err
		},
		"Compliance.ListTasks": func(ctx context.Context, api *API) error {
			_, err := api.Compliance.ListTasks(ctx, nil)
			return err
		},
		"Auth.CurrentUser": func(ctx context.Context, api *API) error {
			_, err := api.Auth.CurrentUser(ctx)
			return err
		},
		"AI.ExtractDocumentData": func(ctx context.Context, api *API) error {
			_, err := api.AI.ExtractDocumentData(ctx, testDocument("a.pdf", "x"), "invoice")
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := newRecorder(t, http.StatusUnauthorized, `{"detail":"Token expired"}`)
			api, store, nav := newTestSession(t, rec, "stale")
			ctx := context.Background()

			err := call(ctx, api)
			require.ErrorIs(t, err, ErrSessionExpired)
			require.ErrorIs(t, err, ErrUnauthenticated)

			_, err = store.Load(ctx)
			require.ErrorIs(t, err, ErrNoCredential)
			require.Equal(t, 1, nav.Calls())
			require.Len(t, rec.Requests(), 1)
		})
	}
}

func TestSessionPassesOtherErrorsThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		payload string
	}{
		{http.StatusNotFound, `{"detail":"Client not found"}`},
		{http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","name"],"msg":"field required","type":"value_error.missing"}]}`},
		{http.StatusForbidden, `{"detail":"Not enough permissions"}`},
		{http.StatusInternalServerError, `Internal Server Error`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			rec := newRecorder(t, tt.status, tt.payload)
			api, store, nav := newTestSession(t, rec, "tok")
			ctx := context.Background()

			_, err := api.Clients.Get(ctx, 42)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.payload, string(apiErr.Payload))
			require.NotErrorIs(t, err, ErrUnauthenticated)

			// The session is untouched
			token, err := store.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, "tok", token)
			require.Zero(t, nav.Calls())
		})
	}
}

func TestSessionResetSurvivesCancelledContext(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	nav := &countingNavigator{}
	session := NewSession(MustNewSDKClient("https://api.example.com"), store, nav)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, store.Save(ctx, "tok"))
	cancel()

	require.NoError(t, session.Reset(ctx))
	require.Equal(t, 1, nav.Calls())

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNoCredential)
}

func TestSessionReportsNavigatorFailure(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusUnauthorized, `{}`)
	store := NewMemoryStore()
	client := MustNewSDKClient(rec.URL, WithCredentials(store))
	session := client.NewSession(NavigatorFunc(func(context.Context) error {
		return errors.New("no browser")
	}))

	_, err := NewAPI(session).Clients.List(context.Background(), nil)
	require.ErrorIs(t, err, ErrSessionExpired)
	require.ErrorContains(t, err, "no browser")
}

func TestSessionLogin(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, `{"access_token":"new-token","token_type":"bearer","user":{"id":3,"username":"priya"}}`)
	store := NewMemoryStore()
	client := MustNewSDKClient(rec.URL, WithCredentials(store))
	nav := &countingNavigator{}
	session := client.NewSession(nav)
	ctx := context.Background()

	state, err := session.State(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAnonymous, state)

	tok, err := session.Login(ctx, "priya", "secret")
	require.NoError(t, err)
	require.Equal(t, "priya", tok.User.Username)

	got := rec.Last(t)
	require.Equal(t, http.MethodPost, got.Method)
	require.Equal(t, "/auth/login-json", got.URI)
	require.JSONEq(t, `{"username":"priya","password":"secret"}`, string(got.Body))

	state, err = session.State(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAuthenticated, state)
	require.Equal(t, "authenticated", state.String())

	token, err := session.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "new-token", token)

	require.NoError(t, session.Logout(ctx))
	state, err = session.State(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAnonymous, state)
	require.Zero(t, nav.Calls())
}

func TestSessionLoginRejected(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusUnauthorized, `{"detail":"Incorrect username or password"}`)
	store := NewMemoryStore()
	client := MustNewSDKClient(rec.URL, WithCredentials(store))
	nav := &countingNavigator{}
	session := client.NewSession(nav)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "previous"))

	_, err := session.Login(ctx, "priya", "wrong")
	require.ErrorIs(t, err, ErrSessionExpired)
	require.ErrorIs(t, err, ErrUnauthenticated)

	require.Equal(t, 1, nav.Calls())
	_, err = store.Load(ctx)
	require.ErrorIs(t, err, ErrNoCredential)

	state, err := session.State(ctx)
	require.NoError(t, err)
	require.Equal(t, StateAnonymous, state)
}

func TestSessionLoginWithoutToken(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, `{"token_type":"bearer"}`)
	session := MustNewSDKClient(rec.URL).NewSession(nil)

	_, err := session.Login(context.Background(), "priya", "secret")
	require.Error(t, err)
}
