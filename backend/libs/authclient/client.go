package authclient

import (
	"context"

	"go.uber.org/zap"

	"hackathon/backend/libs/httpclient"
)

const (
	signUpPath = "auth/signup"
	signInPath = "auth/signin"
)

// Client performs sign-up and sign-in against the auth backend.
type Client struct {
	http   *httpclient.Client
	logger *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient injects the transport client. Defaults to httpclient.Default().
func WithHTTPClient(c *httpclient.Client) Option {
	return func(a *Client) { a.http = c }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Client) { a.logger = logger }
}

// New returns an auth client.
func New(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.Default()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// SignUp registers creds. A nil role fails with ErrRoleRequired before any
// request is made.
func (c *Client) SignUp(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	if creds.Role == nil {
		return nil, ErrRoleRequired
	}
	return c.send(ctx, signUpPath, creds)
}

// SignIn authenticates creds. Inputs are passed through unchecked.
func (c *Client) SignIn(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	return c.send(ctx, signInPath, creds)
}

func (c *Client) send(ctx context.Context, path string, creds Credentials) (*AuthResponse, error) {
	resp, err := httpclient.Post[Credentials, AuthResponse](ctx, c.http, path, creds)
	if err != nil {
		return nil, c.classify(path, creds, err)
	}
	c.logger.Debug("auth request succeeded", zap.String("path", path), zap.Object("credentials", creds))
	return &resp, nil
}

func (c *Client) classify(path string, creds Credentials, err error) error {
	netErr, ok := httpclient.AsError(err)
	if !ok {
		return err
	}

	switch netErr.Kind {
	case httpclient.KindRequestFailure:
		refined := *netErr
		refined.Detail = requestFailureDetail(netErr.Status, netErr.Body)
		c.logger.Info("auth request rejected",
			zap.String("path", path),
			zap.Int("status", refined.Status),
			zap.String("detail", refined.Detail),
			zap.Object("credentials", creds),
		)
		return &refined
	case httpclient.KindDecodeFailure:
		c.logger.Warn("auth response did not match contract",
			zap.String("path", path),
			zap.String("detail", netErr.Detail),
		)
	}
	return err
}
