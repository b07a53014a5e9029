package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrInvalidURL is returned when the request URL cannot be sent.
var ErrInvalidURL = errors.New("invalid URL")

// Method is one of the HTTP methods the client can send.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
)

// Methods lists every method in picker order.
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete}

func (m Method) String() string {
	switch m {
	case MethodPost:
		return http.MethodPost
	case MethodPut:
		return http.MethodPut
	case MethodDelete:
		return http.MethodDelete
	default:
		return http.MethodGet
	}
}

// AllowsBody reports whether the request body is attached for m.
func (m Method) AllowsBody() bool {
	return m == MethodPost || m == MethodPut
}

// ParseMethod maps a method token (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return MethodGet, fmt.Errorf("unsupported method %q", s)
}

// Request is a snapshot of what the user composed at the moment of sending.
type Request struct {
	Method  Method
	URL     string
	Params  [][2]string
	Headers [][2]string
	Body    string
}

// Result is the outcome of one request. Err is set on failure; otherwise
// the status fields and Body describe the response.
type Result struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       string
	Duration   time.Duration
	Err        error
}

// Text is what gets displayed: the body on success, the error otherwise.
func (r Result) Text() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Body
}

// ContentType returns the response Content-Type header.
func (r Result) ContentType() string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get("Content-Type")
}

// Client sends Requests.
type Client struct {
	http        *http.Client
	contentType string
}

type Option func(*Client)

// WithTimeout bounds the whole exchange; zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithContentType sets the Content-Type sent on every request.
func WithContentType(ct string) Option {
	return func(c *Client) { c.contentType = ct }
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport = rt }
}

func New(opts ...Option) *Client {
	c := &Client{
		http:        &http.Client{Timeout: 30 * time.Second},
		contentType: "application/json",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs req. It never returns a nil-error Result for a failed
// exchange: every failure is reported through Result.Err.
func (c *Client) Do(ctx context.Context, req Request) Result {
	u, err := BuildURL(req.URL, req.Params)
	if err != nil {
		return Result{Err: fmt.Errorf("request failed: %w", err)}
	}

	var body io.Reader
	if req.Body != "" && req.Method.AllowsBody() {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), u, body)
	if err != nil {
		return Result{Err: fmt.Errorf("request failed: %w", err)}
	}
	if c.contentType != "" {
		httpReq.Header.Set("Content-Type", c.contentType)
	}
	for _, h := range req.Headers {
		httpReq.Header.Set(h[0], h[1])
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Result{
			Err:      fmt.Errorf("request failed: %w", err),
			Duration: time.Since(start),
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	if err != nil {
		return Result{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Headers:    resp.Header,
			Err:        fmt.Errorf("failed to read response: %w", err),
			Duration:   duration,
		}
	}

	return Result{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Header,
		Body:       string(Decode(raw, resp.Header.Get("Content-Type"))),
		Duration:   duration,
	}
}

// BuildURL validates raw and merges params into its query string.
func BuildURL(raw string, params [][2]string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidURL, raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w %q: missing host", ErrInvalidURL, raw)
	}
	if len(params) > 0 {
		q := u.Query()
		for _, p := range params {
			q.Add(p[0], p[1])
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// ParseHeaders reads "Name: value" lines. Blank lines and lines without a
// colon are skipped.
func ParseHeaders(text string) [][2]string {
	var out [][2]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		out = append(out, [2]string{http.CanonicalHeaderKey(strings.TrimSpace(name)), strings.TrimSpace(value)})
	}
	return out
}

// ParseParams reads "key=value" lines. A line without '=' is a key with an
// empty value.
func ParseParams(text string) [][2]string {
	var out [][2]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		k, v, _ := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out = append(out, [2]string{k, strings.TrimSpace(v)})
	}
	return out
}
