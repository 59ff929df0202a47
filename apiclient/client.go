// Package apiclient talks to the wallet backend. Every call goes through Client.Call, which attaches
// the session's bearer token and turns non-2xx responses into *APIError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	werrors "github.com/jrsteele09/go-wallet-web/internal/errors"
	"github.com/jrsteele09/go-wallet-web/internal/metrics"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const contentTypeJSON = "application/json"

// TokenSource supplies the bearer token for outgoing requests. sessions.Store satisfies it.
type TokenSource interface {
	GetToken() (string, bool)
}

type noTokens struct{}

func (noTokens) GetToken() (string, bool) { return "", false }

// Client issues single-attempt requests against baseURL. It is safe for concurrent use;
// WithTokens derives a copy bound to one user's session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	metrics    metrics.APIRecorder
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithMetrics(recorder metrics.APIRecorder) Option {
	return func(c *Client) {
		c.metrics = recorder
	}
}

// New creates a client for the backend rooted at baseURL, e.g. "http://localhost:8081/api"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		tokens:     noTokens{},
		metrics:    metrics.Noop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithTokens returns a copy of the client that authenticates with tokens
func (c *Client) WithTokens(tokens TokenSource) *Client {
	bound := *c
	bound.tokens = tokens
	return &bound
}

// Options are the per-call request settings
type Options struct {
	Method string // defaults to GET
	// Body is sent as JSON. []byte and json.RawMessage are sent as-is.
	Body any
	// Headers are applied after the computed defaults, so they win on conflict (Authorization included)
	Headers map[string]string
	// Label names the endpoint in metrics when the path carries identifiers
	Label string
}

// Call performs one request and decodes the JSON response into out (which may be nil).
// A non-2xx response yields *APIError carrying the server's message.
func (c *Client) Call(ctx context.Context, endpoint string, opts Options, out any) error {
	body, _, err := c.do(ctx, endpoint, opts)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		log.Err(err).Str("endpoint", endpoint).Msg("API Error")
		return fmt.Errorf("[APIClient Call] %s: %w: %w", endpoint, werrors.ErrBadResponse, err)
	}
	return nil
}

// Document is a binary response such as a PDF receipt
type Document struct {
	ContentType string
	Data        []byte
}

// Download performs a GET whose successful response is not JSON. Failures follow the Call contract.
func (c *Client) Download(ctx context.Context, endpoint string, opts Options) (Document, error) {
	opts.Method = http.MethodGet
	body, header, err := c.do(ctx, endpoint, opts)
	if err != nil {
		return Document{}, err
	}
	return Document{ContentType: header.Get("Content-Type"), Data: body}, nil
}

func (c *Client) do(ctx context.Context, endpoint string, opts Options) ([]byte, http.Header, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	label := opts.Label
	if label == "" {
		label, _, _ = strings.Cut(endpoint, "?")
	}

	reqBody, err := encodeBody(opts.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("[APIClient Call] %s %s: encode body: %w", method, endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("[APIClient Call] %s %s: %w", method, endpoint, err)
	}
	c.setHeaders(ctx, req, opts.Headers)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveAPICall(label, 0, time.Since(start))
		log.Err(err).Str("method", method).Str("endpoint", endpoint).Msg("API Error")
		return nil, nil, fmt.Errorf("[APIClient Call] %s %s: %w: %w", method, endpoint, werrors.ErrTransport, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveAPICall(label, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Err(err).Str("method", method).Str("endpoint", endpoint).Msg("API Error")
		return nil, nil, fmt.Errorf("[APIClient Call] %s %s: read body: %w: %w", method, endpoint, werrors.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr, err := decodeAPIError(resp.StatusCode, body)
		if err != nil {
			log.Err(err).Str("method", method).Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("API Error")
			return nil, nil, fmt.Errorf("[APIClient Call] %s %s: %w: %w", method, endpoint, werrors.ErrBadResponse, err)
		}
		log.Warn().Str("method", method).Str("endpoint", endpoint).Int("status", resp.StatusCode).Str("message", apiErr.Message).Msg("API Error")
		return nil, nil, apiErr
	}
	return body, resp.Header, nil
}

// setHeaders applies the defaults first and the caller's headers last
func (c *Client) setHeaders(ctx context.Context, req *http.Request, headers map[string]string) {
	req.Header.Set("Content-Type", contentTypeJSON)
	if token, ok := c.tokens.GetToken(); ok {
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(b), nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}
