package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Request is the descriptor handed to the transport: the stamped
// lowercase method, the merged header list (nil when empty), the
// resolved credentials mode, and the serialized body (nil when the verb
// carries none).
type Request struct {
	Method      string
	Headers     Headers
	Credentials Credentials
	Body        []byte
}

// Response is what the transport hands back: the status code, the
// response headers, and the fully-read body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport dispatches a single assembled request. Implementations own
// connection lifecycle; the pipeline owns nothing past the round trip.
type Transport interface {
	Send(ctx context.Context, url string, req *Request) (*Response, error)
}

// HTTPTransport is the production Transport over net/http. It keeps
// two http.Clients sharing one underlying transport: a jar-less one
// for the "omit" credentials mode and a cookie-jar one for
// "same-origin" and "include".
type HTTPTransport struct {
	plain  *http.Client
	jarred *http.Client
}

// TransportOption is a function that configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

// NewHTTPTransport creates a transport with a 30 second timeout by
// default.
func NewHTTPTransport(options ...TransportOption) *HTTPTransport {
	rt := http.DefaultTransport
	jar, _ := cookiejar.New(nil)

	t := &HTTPTransport{
		plain: &http.Client{
			Transport: rt,
			Timeout:   30 * time.Second,
		},
		jarred: &http.Client{
			Transport: rt,
			Jar:       jar,
			Timeout:   30 * time.Second,
		},
	}

	for _, option := range options {
		option(t)
	}

	return t
}

// WithTimeout sets the timeout on the underlying HTTP clients.
func WithTimeout(timeout time.Duration) TransportOption {
	return func(t *HTTPTransport) {
		t.plain.Timeout = timeout
		t.jarred.Timeout = timeout
	}
}

// WithRoundTripper replaces the underlying http.RoundTripper.
func WithRoundTripper(rt http.RoundTripper) TransportOption {
	return func(t *HTTPTransport) {
		t.plain.Transport = rt
		t.jarred.Transport = rt
	}
}

// Send executes one round trip. The body is read eagerly and the
// connection released before returning.
func (t *HTTPTransport) Send(ctx context.Context, url string, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	// Wire methods are uppercase; the descriptor carries the verb as
	// stamped by the pipeline.
	httpReq, err := http.NewRequestWithContext(ctx, strings.ToUpper(req.Method), url, body)
	if err != nil {
		return nil, err
	}

	// Add, not Set: duplicates in the merged list must survive so the
	// receiving end's duplicate-header rules apply.
	for _, h := range req.Headers {
		httpReq.Header.Add(h.Name, h.Value)
	}

	httpResp, err := t.client(req.Credentials).Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       raw,
	}, nil
}

func (t *HTTPTransport) client(mode Credentials) *http.Client {
	switch mode {
	case CredentialsSameOrigin, CredentialsInclude:
		return t.jarred
	default:
		return t.plain
	}
}
