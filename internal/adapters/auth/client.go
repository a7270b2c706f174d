package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/bnema/chatline/internal/domain"
	"github.com/bnema/chatline/internal/ports"
)

const maxResponseBytes = 1 << 20

const (
	DefaultRegisterPath = "/register"
	DefaultLoginPath    = "/login"
)

type API struct {
	BaseURL      string
	RegisterPath string
	LoginPath    string
}

func DefaultAPI(baseURL string) API {
	return API{
		BaseURL:      baseURL,
		RegisterPath: DefaultRegisterPath,
		LoginPath:    DefaultLoginPath,
	}
}

// Client performs the register and login exchanges. Every request carries the
// default headers armed in Headers, and cookies are kept in the HTTPClient jar.
type Client struct {
	API            API
	HTTPClient     *http.Client
	Headers        *Headers
	RequestTimeout time.Duration
}

var _ ports.IdentityAPI = (*Client)(nil)

type errorBody struct {
	Message string `json:"message"`
}

// NewHTTPClient returns a client with a cookie jar, the equivalent of sending
// requests with credentials included.
func NewHTTPClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{Jar: jar}
}

func (c *Client) Register(ctx context.Context, creds domain.Credentials) ([]byte, error) {
	body, err := c.post(ctx, c.API.RegisterPath, creds)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Login returns the decoded payload of an accepted login. A success body that
// is not a JSON object yields an empty payload, which carries no token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error) {
	body, err := c.post(ctx, c.API.LoginPath, creds)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	var payload domain.LoginResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.LoginResponse{}, nil
	}

	return payload, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	endpoint, err := buildAPIURL(c.API.BaseURL, path)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Headers != nil {
		c.Headers.Apply(req)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeServerError(resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// requestContext only adds a deadline when one is configured; otherwise the
// transport defaults apply.
func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline || c.RequestTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.RequestTimeout)
}

func decodeServerError(statusCode int, body []byte) *domain.ServerError {
	serverErr := &domain.ServerError{StatusCode: statusCode}

	var decoded errorBody
	if err := json.Unmarshal(body, &decoded); err == nil {
		serverErr.Message = decoded.Message
	}

	return serverErr
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
