// Package api provides the HTTP client for the WordAhead text-processing service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/f3rmion/wordahead/internal/wordahead"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000"

const (
	processTextPath       = "/api/process-text"
	translateWordPath     = "/api/translate/word/"
	translateSentencePath = "/api/translate/sentence"
	healthPath            = "/api/health"

	requestIDHeader = "X-Request-ID"
)

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Server error: %d", e.Code)
}

// TransportError wraps network and decoding failures. Its message is the
// underlying error's message so it can be shown to the user unchanged.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client talks to the analysis and translation endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("component", "api"))
	return c
}

// BaseURL returns the service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type processTextRequest struct {
	Text string `json:"text"`
}

type processTextResponse struct {
	Words     []wordahead.WordAnnotation `json:"words"`
	UsingMock bool                       `json:"using_mock,omitempty"`
	Warning   *string                    `json:"warning,omitempty"`
}

// ProcessText sends text for analysis and returns the annotated words in
// source order. The returned slice may be empty; callers decide what an empty
// result means.
func (c *Client) ProcessText(ctx context.Context, text string) ([]wordahead.WordAnnotation, error) {
	var out processTextResponse
	if err := c.do(ctx, http.MethodPost, processTextPath, processTextRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	if out.Warning != nil && *out.Warning != "" {
		c.log.Warn("service warning", zap.String("warning", *out.Warning), zap.Bool("using_mock", out.UsingMock))
	}
	return out.Words, nil
}

// TranslateWord fetches translation details for a single word. The result is
// returned as a patch so it can be shallow-merged into an annotation.
func (c *Client) TranslateWord(ctx context.Context, word string) (wordahead.Patch, error) {
	var out wordahead.Patch
	if err := c.do(ctx, http.MethodGet, translateWordPath+url.PathEscape(word), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type translateSentenceRequest struct {
	Sentence string `json:"sentence"`
}

// TranslateSentence translates a whole sentence.
func (c *Client) TranslateSentence(ctx context.Context, sentence string) (*wordahead.SentenceTranslation, error) {
	var out wordahead.SentenceTranslation
	if err := c.do(ctx, http.MethodPost, translateSentencePath, translateSentenceRequest{Sentence: sentence}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health reports the service status.
func (c *Client) Health(ctx context.Context) (*wordahead.Health, error) {
	var out wordahead.Health
	if err := c.do(ctx, http.MethodGet, healthPath, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one JSON request. Non-2xx statuses become *StatusError, every
// other failure becomes *TransportError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	target := c.baseURL + path
	requestID := uuid.NewString()
	log := c.log.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", target),
	)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &TransportError{Op: "marshaling request", Err: err}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &TransportError{Op: "creating request", Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	log.Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed", zap.Error(err))
		return &TransportError{Op: "making request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "reading response", Err: err}
	}

	log.Debug("received response",
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", respBody),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &TransportError{Op: "unmarshaling response", Err: err}
	}
	return nil
}
