package jobs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rshade/jobfocus/internal/logging"
)

const (
	// DefaultBaseURL is the production jobs API.
	DefaultBaseURL = "https://apis.ccbp.in"

	// DefaultTimeout bounds a single details request.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "jobfocus"

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 4 << 20

	// maxErrorBodyLen caps the response snippet kept in StatusError.
	maxErrorBodyLen = 200
)

// TokenSource supplies the bearer token sent with each request.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning a fixed token.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// Client fetches job details from the jobs API.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	userAgent  string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		clone := *c.httpClient
		clone.Timeout = d
		c.httpClient = &clone
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a jobs API client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, tokens TokenSource, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if tokens == nil {
		tokens = StaticToken("")
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// DetailsURL returns the endpoint for job id.
func (c *Client) DetailsURL(id string) string {
	return c.baseURL + "/jobs/" + url.PathEscape(id)
}

// FetchDetails issues one GET for job id and returns the normalized payload.
// It never retries. The token is read on every call and sent as-is, so an
// absent token surfaces as the server's auth failure.
func (c *Client) FetchDetails(ctx context.Context, id string) (*Details, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	log := logging.FromContext(ctx)
	endpoint := c.DetailsURL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for job %s: %w", id, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().
			Ctx(ctx).
			Str("component", "jobs").
			Str("operation", "fetch_details").
			Str("job_id", id).
			Err(err).
			Msg("request failed")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "jobs").
		Str("operation", "fetch_details").
		Str("job_id", id).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("response received")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Body: snippet(body)}
	}

	details, err := Normalize(body)
	if err != nil {
		log.Warn().
			Ctx(ctx).
			Str("component", "jobs").
			Str("operation", "normalize").
			Str("job_id", id).
			Err(err).
			Msg("could not normalize job details")
		return nil, err
	}
	return details, nil
}

// snippet trims a response body for inclusion in an error message.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= maxErrorBodyLen {
		return s
	}
	// Back off to a rune boundary so the snippet stays valid UTF-8.
	cut := maxErrorBodyLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
