package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
)

func runLogin(ctx context.Context, e *env, args []string) error {
	fs := e.flags("login")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password (read from stdin when empty)")

	rest, err := parse(fs, args)
	if err != nil {
		return err
	}
	if *username == "" && len(rest) > 0 {
		*username = rest[0]
	}
	if *username == "" {
		return usagef("username is required")
	}

	if *password == "" {
		line, err := bufio.NewReader(e.stdin).ReadString('\n')
		if err != nil && line == "" {
			return usagef("password is required")
		}
		*password = strings.TrimRight(line, "\r\n")
	}

	tok, err := e.app.Session().Login(ctx, *username, *password)
	if errors.Is(err, consolesdk.ErrUnauthenticated) {
		return fmt.Errorf("sign-in rejected for %s: %w", *username, consolesdk.ErrUnauthenticated)
	}
	if err != nil {
		return err
	}

	name := *username
	if tok.User != nil && tok.User.FullName != "" {
		name = tok.User.FullName
	}

	e.out.Printf("signed in as %s\n", name)
	return nil
}

func runLogout(ctx context.Context, e *env, _ []string) error {
	if err := e.app.Session().Logout(ctx); err != nil {
		return err
	}
	e.out.Printf("signed out\n")
	return nil
}

type statusReport struct {
	BaseURL   string     `json:"base_url"`
	Store     string     `json:"store"`
	StoreOK   bool       `json:"store_ok"`
	StoreErr  string     `json:"store_error,omitempty"`
	State     string     `json:"state"`
	Subject   string     `json:"subject,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
}

// runStatus reports the stored credential without contacting the server.
func runStatus(ctx context.Context, e *env, _ []string) error {
	session := e.app.Session()

	state, err := session.State(ctx)
	if err != nil {
		return err
	}

	report := statusReport{
		BaseURL: e.app.Client().BaseURL(),
		Store:   e.app.Config().CredentialStore,
		State:   state.String(),
		StoreOK: true,
	}
	if err := e.app.CheckStore(ctx); err != nil {
		report.StoreOK = false
		report.StoreErr = err.Error()
	}

	if state == consolesdk.StateAuthenticated {
		token, err := session.Token(ctx)
		if err != nil {
			return err
		}

		info, err := consolesdk.InspectToken(token)
		switch {
		case errors.Is(err, consolesdk.ErrOpaqueToken):
			// nothing to show for opaque tokens
		case err != nil:
			return err
		default:
			report.Subject = info.Subject
			if !info.IssuedAt.IsZero() {
				report.IssuedAt = &info.IssuedAt
			}
			if !info.ExpiresAt.IsZero() {
				report.ExpiresAt = &info.ExpiresAt
				report.Expired = e.now().After(info.ExpiresAt)
			}
		}
	}

	if e.out.json {
		return e.out.JSON(report)
	}

	pairs := [][2]string{
		{"base url", report.BaseURL},
		{"store", report.Store},
		{"state", report.State},
	}
	if !report.StoreOK {
		pairs = append(pairs, [2]string{"store health", report.StoreErr})
	}
	if report.Subject != "" {
		pairs = append(pairs, [2]string{"subject", report.Subject})
	}
	if report.ExpiresAt != nil {
		expires := report.ExpiresAt.Local().Format(time.RFC3339)
		if report.Expired {
			expires += " (expired)"
		}
		pairs = append(pairs, [2]string{"expires", expires})
	}
	return e.out.Fields(pairs...)
}

func runWhoami(ctx context.Context, e *env, _ []string) error {
	user, err := e.api.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if e.out.json {
		return e.out.JSON(user)
	}

	return e.out.Fields(
		[2]string{"id", itoa(user.ID)},
		[2]string{"username", user.Username},
		[2]string{"name", orDash(user.FullName)},
		[2]string{"email", orDash(user.Email)},
		[2]string{"role", orDash(user.Role)},
	)
}
