package slogx

import (
	"log/slog"
	"net/http"
	"time"
)

// Transport is an http.RoundTripper that logs every outgoing request.
// Headers are never logged, so bearer tokens stay out of the logs.
type Transport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// NewTransport wraps base, http.DefaultTransport when nil.
func NewTransport(base http.RoundTripper, logger *slog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transport{Base: base, Logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger := t.Logger.With(
		"req_id", req.Header.Get("X-Request-ID"),
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
	)

	resp, err := t.Base.RoundTrip(req)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		logger.WarnContext(req.Context(), "api_request_failed",
			"error", err,
			"duration_ms", duration,
		)
		return nil, err
	}

	logger.DebugContext(req.Context(), "api_request",
		"status", resp.StatusCode,
		"duration_ms", duration,
	)
	return resp, nil
}
