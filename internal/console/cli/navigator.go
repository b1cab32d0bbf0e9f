package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
)

// Navigator is the command line's sign-in entry point. It tells the user to
// sign in again; it reports once per command even when several concurrent
// requests hit the same expired session.
type Navigator struct {
	SignInURL string

	mu         sync.Mutex
	out        io.Writer
	redirected bool
}

// NewNavigator returns a Navigator writing to out.
func NewNavigator(out io.Writer, signInURL string) *Navigator {
	if signInURL == "" {
		signInURL = consolesdk.DefaultSignInURL
	}
	return &Navigator{SignInURL: signInURL, out: out}
}

// RedirectToSignIn implements consolesdk.Navigator.
func (n *Navigator) RedirectToSignIn(_ context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.redirected {
		return nil
	}
	n.redirected = true

	_, err := fmt.Fprintf(n.out, "session expired: sign in again with `console login` (%s)\n", n.SignInURL)
	return err
}

// Redirected reports whether a session reset sent the user to sign-in.
func (n *Navigator) Redirected() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.redirected
}

var _ consolesdk.Navigator = (*Navigator)(nil)
