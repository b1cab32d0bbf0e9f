package consolesdk

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// recorded is one request seen by a recorder.
type recorded struct {
	Method      string
	URI         string
	Header      http.Header
	Body        []byte
	ContentType string
}

// recorder is an API server that answers every request with the same status
// and body and remembers what it was sent.
type recorder struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
}

func newRecorder(t *testing.T, status int, body string) *recorder {
	t.Helper()

	rec := &recorder{status: status, body: body}
	rec.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		rec.mu.Lock()
		rec.requests = append(rec.requests, recorded{
			Method:      r.Method,
			URI:         r.URL.RequestURI(),
			Header:      r.Header.Clone(),
			Body:        data,
			ContentType: r.Header.Get("Content-Type"),
		})
		status, body := rec.status, rec.body
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(rec.Close)

	return rec
}

func (r *recorder) respond(status int, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status, r.body = status, body
}

func (r *recorder) Requests() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.requests...)
}

func (r *recorder) Last(t *testing.T) recorded {
	t.Helper()

	reqs := r.Requests()
	if len(reqs) == 0 {
		t.Fatal("no request recorded")
	}
	return reqs[len(reqs)-1]
}

// countingNavigator records sign-in redirects.
type countingNavigator struct {
	mu    sync.Mutex
	calls int
}

func (n *countingNavigator) RedirectToSignIn(context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	return nil
}

func (n *countingNavigator) Calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

// newTestSession wires a client, store, session and API against rec.
func newTestSession(t *testing.T, rec *recorder, token string) (*API, *MemoryStore, *countingNavigator) {
	t.Helper()

	store := NewMemoryStore()
	if token != "" {
		_ = store.Save(context.Background(), token)
	}

	client := MustNewSDKClient(rec.URL, WithCredentials(store))
	nav := &countingNavigator{}

	return NewAPI(client.NewSession(nav)), store, nav
}
