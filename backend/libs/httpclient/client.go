package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the backend address used by Default.
	DefaultBaseURL = "http://localhost:3001"
	// DefaultTimeout bounds a whole exchange when no Doer is supplied.
	DefaultTimeout = 10 * time.Second

	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	noDetails = "No error details."
)

// Doer is the subset of *http.Client used to send requests.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client performs JSON exchanges against a fixed base address. It is safe for
// concurrent use; nothing is mutated after New returns.
type Client struct {
	base       *url.URL
	doer       Doer
	logger     *zap.Logger
	headers    http.Header
	requestIDs bool
}

type options struct {
	doer       Doer
	timeout    time.Duration
	logger     *zap.Logger
	headers    http.Header
	requestIDs bool
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient replaces the transport. The timeout option is ignored when set.
func WithHTTPClient(doer Doer) Option {
	return func(o *options) { o.doer = doer }
}

// WithTimeout sets the timeout of the default *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(o *options) { o.headers.Add(key, value) }
}

// WithRequestIDs stamps each request with a fresh X-Request-ID.
func WithRequestIDs() Option {
	return func(o *options) { o.requestIDs = true }
}

// New builds a Client for baseURL, which must be an absolute http(s) URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	o := options{timeout: DefaultTimeout, headers: http.Header{}}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}

	if o.doer == nil {
		timeout := o.timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		o.doer = &http.Client{Timeout: timeout}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &Client{
		base:       base,
		doer:       o.doer,
		logger:     o.logger,
		headers:    o.headers,
		requestIDs: o.requestIDs,
	}, nil
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the shared client for DefaultBaseURL.
func Default() *Client {
	defaultOnce.Do(func() {
		c, err := New(DefaultBaseURL)
		if err != nil {
			panic(err)
		}
		defaultClient = c
	})
	return defaultClient
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func parseBase(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, invalidEndpoint(raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, invalidEndpoint(raw, nil)
	}
	u.RawQuery = ""
	u.Fragment = ""
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		u.RawPath = ""
	}
	return u, nil
}

// endpoint resolves a relative path against the base address.
func (c *Client) endpoint(path string) (string, error) {
	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return "", invalidEndpoint(path, err)
	}
	if ref.IsAbs() || ref.Host != "" {
		return "", invalidEndpoint(path, nil)
	}
	return c.base.ResolveReference(ref).String(), nil
}

// Post sends body as JSON with POST and decodes a Res from the response.
func Post[Req, Res any](ctx context.Context, c *Client, path string, body Req) (Res, error) {
	return send[Res](ctx, c, http.MethodPost, path, body, true)
}

// PostEmpty sends a POST without a body and decodes a Res from the response.
func PostEmpty[Res any](ctx context.Context, c *Client, path string) (Res, error) {
	return send[Res](ctx, c, http.MethodPost, path, nil, false)
}

// Put sends body as JSON with PUT and decodes a Res from the response.
func Put[Req, Res any](ctx context.Context, c *Client, path string, body Req) (Res, error) {
	return send[Res](ctx, c, http.MethodPut, path, body, true)
}

func send[Res any](ctx context.Context, c *Client, method, path string, body any, hasBody bool) (Res, error) {
	var out Res

	var payload []byte
	if hasBody {
		data, err := json.Marshal(body)
		if err != nil {
			return out, unknown(fmt.Sprintf("encode request: %v", err), err)
		}
		payload = data
	}

	data, err := c.Do(ctx, method, path, payload)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		var zero Res
		c.logger.Warn("response did not match expected shape",
			zap.String("kind", KindDecodeFailure.String()),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return zero, &Error{Kind: KindDecodeFailure, Detail: err.Error(), Cause: err}
	}
	return out, nil
}

// Do performs one exchange and returns the raw body of a 2xx response. A nil
// payload sends no body. Any other outcome is reported as an *Error.
func (c *Client) Do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	target, err := c.endpoint(path)
	if err != nil {
		return nil, err
	}

	hasBody := payload != nil
	var reader io.Reader
	if hasBody {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, invalidEndpoint(target, err)
	}
	for k, values := range c.headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}

	fields := []zap.Field{zap.String("method", method), zap.String("path", path)}
	if c.requestIDs {
		id := uuid.NewString()
		req.Header.Set(RequestIDHeader, id)
		fields = append(fields, zap.String("request_id", id))
	}

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		c.logger.Info("request not delivered", append(fields, zap.Error(err))...)
		return nil, unknown(err.Error(), err)
	}
	if resp == nil {
		return nil, unknown("invalid response type", nil)
	}
	var (
		body    []byte
		readErr error
	)
	if resp.Body != nil {
		defer resp.Body.Close()
		body, readErr = io.ReadAll(resp.Body)
	}
	fields = append(fields, zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := noDetails
		if readErr == nil && utf8.Valid(body) {
			detail = string(body)
		}
		c.logger.Info("request rejected", append(fields, zap.String("kind", KindRequestFailure.String()))...)
		return nil, &Error{Kind: KindRequestFailure, Status: resp.StatusCode, Detail: detail, Body: body}
	}
	if readErr != nil {
		c.logger.Info("response body unreadable", append(fields, zap.Error(readErr))...)
		return nil, unknown(fmt.Sprintf("read response: %v", readErr), readErr)
	}

	c.logger.Debug("request completed", fields...)
	return body, nil
}
