/*
Package consolesdk is the API access layer of the practice management console.

# Overview

The package talks JSON over HTTP to a single configured base address. It has
three layers:

  - SDKClient: the transport. Attaches the stored bearer credential, sends the
    request exactly once and maps the response to a typed result.
  - Session: the coordinator. Turns a 401 into a session reset (credential
    cleared, navigator sent to sign-in) and owns login and logout.
  - Resource groups: thin wrappers (Auth, Users, Clients, Financial,
    Compliance, AI) that fix method and path and forward parameters.

# Getting Started

	store := consolesdk.NewMemoryStore()
	client := consolesdk.MustNewSDKClient("https://api.example.com/api/v1",
		consolesdk.WithCredentials(store),
	)

	session := client.NewSession(navigator)
	if _, err := session.Login(ctx, "priya", "secret"); err != nil {
		return err
	}

	api := consolesdk.NewAPI(session)
	clients, err := api.Clients.List(ctx, consolesdk.Params{"search": {"acme"}})

# Errors

  - *APIError: any non-2xx status other than 401. Carries the status code and
    the server payload unchanged.
  - *UnauthenticatedError: a 401 seen by the SDKClient. Matches ErrUnauthenticated.
  - ErrSessionExpired: returned by Session after it reset the session. Also
    matches ErrUnauthenticated.

Callers can skip inline presentation of either:

	if errors.Is(err, consolesdk.ErrUnauthenticated) {
		return // the navigator already took over
	}

Transport failures are wrapped with %w and otherwise returned as is. Nothing
in this package retries.

# Credentials

The credential lives in a CredentialStore under CredentialKey. MemoryStore
is provided here; persistent stores live with the console application.

# Concurrency

SDKClient, Session and MemoryStore are safe for concurrent use. Every call is an
independent request; the package does not queue, coalesce or limit them.
*/
package consolesdk
