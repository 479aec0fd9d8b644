package accountclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/qauto/garage/pkg/logger"
	"github.com/qauto/garage/svc/registration"
)

const (
	signupPath  = "/api/auth/signup"
	signinPath  = "/api/auth/signin"
	logoutPath  = "/api/auth/logout"
	currentPath = "/api/users/current"
)

// Client is an HTTP AccountRegistryClient.
type Client struct {
	http *resty.Client
	log  *slog.Logger

	baseURL    string
	timeout    time.Duration
	retryCount int
	hc         *http.Client
}

var _ registration.AccountRegistryClient = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetryCount retries requests that failed at the transport level.
func WithRetryCount(n int) Option {
	return func(c *Client) { c.retryCount = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a client for the registry at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.hc != nil {
		c.http = resty.NewWithClient(c.hc)
	} else {
		c.http = resty.New()
	}
	c.http.SetBaseURL(c.baseURL).SetHeader("Accept", "application/json")
	if c.timeout > 0 {
		c.http.SetTimeout(c.timeout)
	}
	if c.retryCount > 0 {
		c.http.SetRetryCount(c.retryCount)
	}
	c.log = c.log.With(logger.Component("accountclient"))
	return c
}

type envelope[T any] struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Data    T                   `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

type signupRequest struct {
	registration.RegisterInput
	RepeatPassword string `json:"repeatPassword"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Register creates an account. The form has already checked that both
// password fields match, so the repeat is sent as the password itself.
func (c *Client) Register(ctx context.Context, in registration.RegisterInput) (*registration.AccountCreated, error) {
	var (
		result envelope[registration.AccountCreated]
		failed envelope[any]
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(signupRequest{RegisterInput: in, RepeatPassword: in.Password}).
		SetResult(&result).
		SetError(&failed).
		Post(signupPath)
	apiErr, err := c.check(ctx, "signup", resp, err, &failed)
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		if apiErr.StatusCode == http.StatusBadRequest && apiErr.Message == registration.MsgUserAlreadyExists {
			return nil, fmt.Errorf("%w: %w", registration.ErrDuplicateEmail, apiErr)
		}
		return nil, rejected(apiErr)
	}
	return &result.Data, nil
}

// Login opens a session for email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*registration.Session, error) {
	var (
		result envelope[registration.Session]
		failed envelope[any]
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(signinRequest{Email: email, Password: password}).
		SetResult(&result).
		SetError(&failed).
		Post(signinPath)
	apiErr, err := c.check(ctx, "signin", resp, err, &failed)
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		if apiErr.StatusCode == http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %w", registration.ErrInvalidCredentials, apiErr)
		}
		return nil, rejected(apiErr)
	}
	return &result.Data, nil
}

// Current returns the session owner for token.
func (c *Client) Current(ctx context.Context, token string) (*registration.Session, error) {
	var (
		result envelope[registration.Session]
		failed envelope[any]
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&result).
		SetError(&failed).
		Get(currentPath)
	apiErr, err := c.check(ctx, "current", resp, err, &failed)
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		return nil, rejected(apiErr)
	}
	return &result.Data, nil
}

// Logout closes the session identified by token.
func (c *Client) Logout(ctx context.Context, token string) error {
	var failed envelope[any]
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(&failed).
		Get(logoutPath)
	apiErr, err := c.check(ctx, "logout", resp, err, &failed)
	if err != nil {
		return err
	}
	if apiErr != nil {
		return rejected(apiErr)
	}
	return nil
}

// check reports transport failures and 5xx as an ErrTransport error and
// any other non-2xx response as an *APIError.
func (c *Client) check(ctx context.Context, op string, resp *resty.Response, err error, failed *envelope[any]) (*APIError, error) {
	if err != nil {
		c.log.WarnContext(ctx, "registry request failed", logger.Event(op), logger.Error(err))
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = errors.Join(err, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s: %w", registration.ErrTransport, op, err)
	}
	if !resp.IsError() {
		return nil, nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    failed.Message,
		Fields:     failed.Errors,
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(apiErr.StatusCode)
	}

	c.log.WarnContext(ctx, "registry rejected request",
		logger.Event(op),
		slog.Int("status_code", apiErr.StatusCode),
		slog.String("message", apiErr.Message),
		logger.Duration(resp.Time()),
	)

	if apiErr.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: %w", registration.ErrTransport, apiErr)
	}
	return apiErr, nil
}

func rejected(apiErr *APIError) error {
	if apiErr.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	}
	return fmt.Errorf("%w: %w", registration.ErrUnknown, apiErr)
}
