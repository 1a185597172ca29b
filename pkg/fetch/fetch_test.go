package fetch

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

// fakeTransport records the dispatched URL and descriptor and returns a
// canned response, so pipeline behavior can be asserted without a
// network.
type fakeTransport struct {
	lastURL string
	lastReq *Request
	resp    *Response
	err     error
}

func (f *fakeTransport) Send(ctx context.Context, url string, req *Request) (*Response, error) {
	f.lastURL = url
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func jsonResponse(status int, body string) *Response {
	return &Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	}
}

type message struct {
	Message string `json:"message"`
}

func TestClassification(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode Code
		expectedName string
	}{
		{200, CodeOK, "ok"},
		{201, CodeCreated, "created"},
		{400, CodeBadRequest, "bad request"},
		{401, CodeUnauthorized, "unauthorized"},
		{404, CodeNotFound, "not found"},
		{500, CodeServerError, "server error"},
	}

	verbs := []struct {
		name string
		call func(c *Client, opts *Options) Result[message]
	}{
		{"get", func(c *Client, opts *Options) Result[message] {
			return Get[message](context.Background(), c, opts)
		}},
		{"post", func(c *Client, opts *Options) Result[message] {
			return Post[message](context.Background(), c, opts)
		}},
		{"put", func(c *Client, opts *Options) Result[message] {
			return Put[message](context.Background(), c, opts)
		}},
		{"delete", func(c *Client, opts *Options) Result[message] {
			return Delete[message](context.Background(), c, opts)
		}},
	}

	for _, verb := range verbs {
		for _, tt := range tests {
			transport := &fakeTransport{resp: jsonResponse(tt.status, `{"message":"hi"}`)}
			client := New("/foo", WithTransport(transport))

			res := verb.call(client, &Options{Body: map[string]string{}})

			if res.Code != tt.expectedCode {
				t.Errorf("%s %d: expected code %d, got %d", verb.name, tt.status, tt.expectedCode, res.Code)
			}
			if res.Name != tt.expectedName {
				t.Errorf("%s %d: expected name %q, got %q", verb.name, tt.status, tt.expectedName, res.Name)
			}

			if tt.status == 200 || tt.status == 201 {
				if res.Data.Message != "hi" {
					t.Errorf("%s %d: expected data to be decoded, got %+v", verb.name, tt.status, res.Data)
				}
			} else if res.Data.Message != "" {
				t.Errorf("%s %d: expected empty data, got %+v", verb.name, tt.status, res.Data)
			}

			if res.Err != nil {
				t.Errorf("%s %d: expected no error, got %v", verb.name, tt.status, res.Err)
			}
			if res.StatusCode != 0 {
				t.Errorf("%s %d: expected zero StatusCode, got %d", verb.name, tt.status, res.StatusCode)
			}
		}
	}
}

func TestClassification_UnknownStatus(t *testing.T) {
	for _, status := range []int{202, 301, 403, 418, 503} {
		transport := &fakeTransport{resp: jsonResponse(status, `{}`)}
		client := New("/foo", WithTransport(transport))

		res := Get[message](context.Background(), client, nil)

		if res.Code != CodeUnknown {
			t.Errorf("status %d: expected code %d, got %d", status, CodeUnknown, res.Code)
		}
		if res.Name != "unknown" {
			t.Errorf("status %d: expected name unknown, got %q", status, res.Name)
		}
		if res.StatusCode != status {
			t.Errorf("status %d: expected StatusCode %d, got %d", status, status, res.StatusCode)
		}
	}
}

func TestClassification_TransportError(t *testing.T) {
	bang := errors.New("connection refused")
	transport := &fakeTransport{err: bang}
	client := New("/foo", WithTransport(transport))

	res := Get[message](context.Background(), client, nil)

	if res.Code != CodeClientError {
		t.Fatalf("expected code %d, got %d", CodeClientError, res.Code)
	}
	if res.Name != "client error" {
		t.Errorf("expected name \"client error\", got %q", res.Name)
	}
	// The original error must come through unwrapped.
	if res.Err != bang {
		t.Errorf("expected the original transport error, got %v", res.Err)
	}
}

func TestClassification_MalformedJSON(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{not json`)}
	client := New("/foo", WithTransport(transport))

	res := Get[message](context.Background(), client, nil)

	if res.Code != CodeClientError {
		t.Fatalf("expected code %d, got %d", CodeClientError, res.Code)
	}
	if res.Err == nil {
		t.Error("expected the decode error to be carried on the result")
	}
}

func TestClassification_EmptyJSONBody(t *testing.T) {
	// A declared-JSON response with an empty body falls back to the
	// zero value instead of failing the call.
	transport := &fakeTransport{resp: jsonResponse(200, "")}
	client := New("/foo", WithTransport(transport))

	res := Get[message](context.Background(), client, nil)

	if res.Code != CodeOK {
		t.Fatalf("expected code %d, got %d", CodeOK, res.Code)
	}
	if res.Data.Message != "" {
		t.Errorf("expected zero-value data, got %+v", res.Data)
	}
}

func TestClassification_NonJSONContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{"plain text", "text/plain"},
		{"parameter suffix", "application/json; charset=utf-8"},
		{"case mismatch", "Application/JSON"},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.contentType != "" {
				header.Set("Content-Type", tt.contentType)
			}
			transport := &fakeTransport{resp: &Response{
				StatusCode: 200,
				Header:     header,
				Body:       []byte(`{"message":"hi"}`),
			}}
			client := New("/foo", WithTransport(transport))

			res := Get[message](context.Background(), client, nil)

			if res.Code != CodeOK {
				t.Fatalf("expected code %d, got %d", CodeOK, res.Code)
			}
			if res.Data.Message != "" {
				t.Errorf("expected the body to be skipped, got %+v", res.Data)
			}
		})
	}
}

func TestQueryEncoding(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo", WithTransport(transport))

	Get[message](context.Background(), client, &Options{
		Query: Query{{Key: "bar", Value: "baz"}, {Key: "pokemon", Value: "pikachu"}},
	})

	expected := "/foo?bar=baz&pokemon=pikachu"
	if transport.lastURL != expected {
		t.Errorf("expected URL %q, got %q", expected, transport.lastURL)
	}
}

func TestQueryEncoding_EmptyQuery(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo", WithTransport(transport))

	Get[message](context.Background(), client, &Options{Query: Query{}})

	if transport.lastURL != "/foo" {
		t.Errorf("expected URL /foo, got %q", transport.lastURL)
	}
}

func TestQueryEncoding_ValueCoercion(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo", WithTransport(transport))

	Get[message](context.Background(), client, &Options{
		Query: Query{{Key: "page", Value: 2}, {Key: "strict", Value: true}},
	})

	expected := "/foo?page=2&strict=true"
	if transport.lastURL != expected {
		t.Errorf("expected URL %q, got %q", expected, transport.lastURL)
	}
}

func TestQueryEncoding_DefaultsAfterCallPairs(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo",
		WithTransport(transport),
		WithDefaultQuery("api_key", "abc123"),
	)

	Get[message](context.Background(), client, &Options{
		Query: Query{{Key: "page", Value: 1}},
	})

	// Call-level pairs come first, then client defaults.
	expected := "/foo?page=1&api_key=abc123"
	if transport.lastURL != expected {
		t.Errorf("expected URL %q, got %q", expected, transport.lastURL)
	}
}

func TestHeaderMerge(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo",
		WithTransport(transport),
		WithDefaultHeader("content-type", "application/json"),
	)

	Get[message](context.Background(), client, nil)

	if len(transport.lastReq.Headers) != 1 {
		t.Fatalf("expected 1 header, got %d", len(transport.lastReq.Headers))
	}
	if h := transport.lastReq.Headers[0]; h.Name != "content-type" || h.Value != "application/json" {
		t.Errorf("expected default header to be dispatched, got %+v", h)
	}

	Get[message](context.Background(), client, &Options{
		Headers: Headers{{Name: "x-request-id", Value: "42"}},
	})

	if len(transport.lastReq.Headers) != 2 {
		t.Fatalf("expected 2 headers, got %d", len(transport.lastReq.Headers))
	}
	if transport.lastReq.Headers[0].Name != "content-type" {
		t.Errorf("expected defaults first, got %+v", transport.lastReq.Headers)
	}
	if transport.lastReq.Headers[1].Name != "x-request-id" {
		t.Errorf("expected per-call headers appended after defaults, got %+v", transport.lastReq.Headers)
	}
}

func TestHeaderMerge_EmptyOmitted(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo", WithTransport(transport))

	Get[message](context.Background(), client, nil)

	if transport.lastReq.Headers != nil {
		t.Errorf("expected headers to be omitted entirely, got %+v", transport.lastReq.Headers)
	}
}

func TestPathJoining(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo", WithTransport(transport))

	Get[message](context.Background(), client, &Options{Path: "/bar"})
	if transport.lastURL != "/foo/bar" {
		t.Errorf("expected URL /foo/bar, got %q", transport.lastURL)
	}

	Get[message](context.Background(), client, nil)
	if transport.lastURL != "/foo" {
		t.Errorf("expected URL /foo, got %q", transport.lastURL)
	}
}

func TestMethodStamping(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo", WithTransport(transport))

	Get[message](context.Background(), client, nil)
	if transport.lastReq.Method != "get" {
		t.Errorf("expected method get, got %q", transport.lastReq.Method)
	}

	Post[message](context.Background(), client, &Options{Body: map[string]string{}})
	if transport.lastReq.Method != "post" {
		t.Errorf("expected method post, got %q", transport.lastReq.Method)
	}

	Put[message](context.Background(), client, &Options{Body: map[string]string{}})
	if transport.lastReq.Method != "put" {
		t.Errorf("expected method put, got %q", transport.lastReq.Method)
	}

	Delete[message](context.Background(), client, nil)
	if transport.lastReq.Method != "delete" {
		t.Errorf("expected method delete, got %q", transport.lastReq.Method)
	}
}

func TestBodySerialization(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(201, `{}`)}
	client := New("/foo", WithTransport(transport))

	Post[message](context.Background(), client, &Options{
		Body: map[string]string{"name": "Ada"},
	})
	if string(transport.lastReq.Body) != `{"name":"Ada"}` {
		t.Errorf("expected marshaled body, got %q", transport.lastReq.Body)
	}

	// A nil body still serializes for writing verbs.
	Put[message](context.Background(), client, &Options{})
	if string(transport.lastReq.Body) != "null" {
		t.Errorf("expected null body, got %q", transport.lastReq.Body)
	}
}

func TestBodyIgnoredForReadVerbs(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo", WithTransport(transport))

	Get[message](context.Background(), client, &Options{Body: map[string]string{"sneaky": "yes"}})
	if transport.lastReq.Body != nil {
		t.Errorf("expected GET to send no body, got %q", transport.lastReq.Body)
	}

	Delete[message](context.Background(), client, &Options{Body: "ignored"})
	if transport.lastReq.Body != nil {
		t.Errorf("expected DELETE to send no body, got %q", transport.lastReq.Body)
	}
}

func TestBodySerialization_MarshalError(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(201, `{}`)}
	client := New("/foo", WithTransport(transport))

	res := Post[message](context.Background(), client, &Options{
		Body: func() {}, // not JSON-serializable
	})

	if res.Code != CodeClientError {
		t.Fatalf("expected code %d, got %d", CodeClientError, res.Code)
	}
	if res.Err == nil {
		t.Error("expected the marshal error to be carried on the result")
	}
	if transport.lastReq != nil {
		t.Error("expected no dispatch after a marshal failure")
	}
}

func TestCredentialsResolution(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("/foo",
		WithTransport(transport),
		WithCredentials(CredentialsInclude),
	)

	Get[message](context.Background(), client, nil)
	if transport.lastReq.Credentials != CredentialsInclude {
		t.Errorf("expected default credentials include, got %q", transport.lastReq.Credentials)
	}

	Get[message](context.Background(), client, &Options{Credentials: CredentialsOmit})
	if transport.lastReq.Credentials != CredentialsOmit {
		t.Errorf("expected per-call credentials to win, got %q", transport.lastReq.Credentials)
	}
}

func TestDispatchIsStateless(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{"message":"hi"}`)}
	client := New("/foo",
		WithTransport(transport),
		WithDefaultHeader("accept", "application/json"),
		WithDefaultQuery("v", 2),
	)
	opts := &Options{
		Path:  "/bar",
		Query: Query{{Key: "page", Value: 1}},
	}

	first := Get[message](context.Background(), client, opts)
	firstURL := transport.lastURL
	second := Get[message](context.Background(), client, opts)

	if first != second {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
	if transport.lastURL != firstURL {
		t.Errorf("expected identical URLs, got %q and %q", firstURL, transport.lastURL)
	}
	if len(client.defaults.Headers) != 1 || len(client.defaults.Query) != 1 {
		t.Errorf("expected defaults to be untouched, got %+v", client.defaults)
	}
}

func TestEmptyBaseURL(t *testing.T) {
	transport := &fakeTransport{resp: jsonResponse(200, `{}`)}
	client := New("", WithTransport(transport))

	Get[message](context.Background(), client, &Options{Path: "/bar"})

	if transport.lastURL != "/bar" {
		t.Errorf("expected URL /bar, got %q", transport.lastURL)
	}
}
