package consolesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/practiceconsole/pkg/idx"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// Requester executes a single API request. SDKClient implements it directly;
// Session decorates it with session reset handling. Resource groups depend
// only on this interface.
type Requester interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request describes one call against the API.
type Request struct {
	// Method is the HTTP method. Defaults to GET.
	Method string

	// Path is appended to the base URL verbatim, e.g. "/clients/42".
	Path string

	// Query parameters, encoded in key order. Nil sends no query string.
	Query url.Values

	// Body is JSON encoded unless it is a *MultipartBody or an io.Reader.
	Body any

	// Headers override the defaults set by the client.
	Headers map[string]string
}

// Response is a successful (2xx) API response.
type Response struct {
	StatusCode int
	Header     http.Header
	RequestID  string

	// Body is the raw response body as sent by the server.
	Body json.RawMessage
}

// Decode parses the JSON body into target. An empty body leaves target
// untouched.
func (r *Response) Decode(target any) error {
	if r == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Do sends req exactly once. The stored credential, if any, is attached as a
// bearer token. A 401 yields *UnauthenticatedError, any other non-2xx status
// yields *APIError, and transport failures are returned wrapped but otherwise
// unchanged.
func (c *SDKClient) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New("consolesdk: nil request")
	}

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	token, err := c.loadToken(ctx)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.url(req.Path, req.Query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	reqID := idx.New().String()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.UserAgent)
	httpReq.Header.Set(HeaderRequestID, reqID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	c.mu.RLock()
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}
	c.mu.RUnlock()

	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), value)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := parseErrorResponse(method, req.Path, resp, bodyBytes); err != nil {
		c.Logger.DebugContext(ctx, "api_error",
			"req_id", reqID,
			"method", method,
			"path", req.Path,
			"status", resp.StatusCode,
		)
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		RequestID:  reqID,
		Body:       bodyBytes,
	}, nil
}

// url builds the request URL from the base address, path and query.
func (c *SDKClient) url(path string, query url.Values) string {
	u := c.BaseURL() + path
	if len(query) == 0 {
		return u
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return u + sep + query.Encode()
}

// loadToken reads the credential. A missing credential is not an error.
func (c *SDKClient) loadToken(ctx context.Context) (string, error) {
	if c.Credentials == nil {
		return "", nil
	}

	token, err := c.Credentials.Load(ctx)
	switch {
	case errors.Is(err, ErrNoCredential):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("failed to load credential: %w", err)
	}

	return token, nil
}

// encodeBody returns the request body reader and its content type.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *MultipartBody:
		return b.Reader(), b.ContentType(), nil
	case json.RawMessage:
		return bytes.NewReader(b), "application/json", nil
	case io.Reader:
		return b, "application/octet-stream", nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// call performs req and decodes a successful body into a T.
func call[T any](ctx context.Context, r Requester, req *Request) (T, error) {
	var out T

	resp, err := r.Do(ctx, req)
	if err != nil {
		return out, err
	}

	if err := resp.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

// raw performs req and returns the body unchanged.
func raw(ctx context.Context, r Requester, req *Request) (json.RawMessage, error) {
	resp, err := r.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
