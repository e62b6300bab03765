package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/scribe/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader is set on every outbound request.
const RequestIDHeader = "X-Request-ID"

// Client is the transport-agnostic contract with the blogging backend.
type Client interface {
	Signup(ctx context.Context, req SignupRequest) (string, error)
	Verify(ctx context.Context, req VerifyRequest) (string, error)
	Signin(ctx context.Context, req SigninRequest) (string, error)
	Me(ctx context.Context) (*User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (string, error)
	ListPosts(ctx context.Context, page, pageSize int) (*PostPage, error)
	DeletePost(ctx context.Context, id string) (string, error)
}

// TokenSource yields the bearer token for authenticated calls. An empty token
// means the request goes out without Authorization.
type TokenSource interface {
	Token() string
}

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL. A nil
// httpClient means http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client, tokens TokenSource, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &HTTPClient{baseURL: u, http: httpClient, tokens: tokens, logger: logger}, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (string, error) {
	var resp signupResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/user/signup", nil, req, &resp); err != nil {
		return "", err
	}
	if resp.User.ID == "" {
		return "", fmt.Errorf("%w: signup response without user id", ErrUnexpected)
	}
	return resp.User.ID, nil
}

func (c *HTTPClient) Verify(ctx context.Context, req VerifyRequest) (string, error) {
	return c.token(ctx, "/api/v1/user/verify", req)
}

func (c *HTTPClient) Signin(ctx context.Context, req SigninRequest) (string, error) {
	return c.token(ctx, "/api/v1/user/signin", req)
}

func (c *HTTPClient) token(ctx context.Context, path string, body any) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: response without token", ErrUnexpected)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/user/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (string, error) {
	var resp messageResponse
	path := "/api/v1/user/update/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context, page, pageSize int) (*PostPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var resp PostPage
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts", q, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Posts == nil {
		resp.Posts = []Post{}
	}
	return &resp, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, "/api/v1/posts/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := *c.baseURL
	u.Path = u.Path + path
	u.RawQuery = query.Encode()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	log := c.logger.With("method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnexpected, err)
	}

	log.Debug(ctx, "response received", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrUnexpected, err)
	}
	return nil
}
