package fetch

// Client owns a base URL, a set of default call options, and the
// transport used to dispatch requests. It is immutable once New
// returns.
type Client struct {
	baseURL   string
	defaults  Defaults
	transport Transport
}

// ClientOption is a function that configures a Client during New.
type ClientOption func(*Client)

// New creates a client for the given base URL. An empty base URL is
// legal and means "no prefix": paths are dispatched as given. The base
// URL is not validated or rewritten.
func New(baseURL string, options ...ClientOption) *Client {
	client := &Client{
		baseURL:   baseURL,
		transport: NewHTTPTransport(),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithTransport sets the transport used to dispatch requests. Tests
// substitute a double here instead of patching any global state.
func WithTransport(t Transport) ClientOption {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithDefaults replaces the client's default options wholesale.
func WithDefaults(d Defaults) ClientOption {
	return func(c *Client) {
		c.defaults = d
	}
}

// WithDefaultHeader appends a header applied to every call, before any
// per-call headers.
func WithDefaultHeader(name, value string) ClientOption {
	return func(c *Client) {
		c.defaults.Headers = append(c.defaults.Headers, Header{Name: name, Value: value})
	}
}

// WithDefaultQuery appends a query pair applied to every call, after
// any per-call pairs.
func WithDefaultQuery(key string, value any) ClientOption {
	return func(c *Client) {
		c.defaults.Query = append(c.defaults.Query, Param{Key: key, Value: value})
	}
}

// WithCredentials sets the default credentials mode.
func WithCredentials(mode Credentials) ClientOption {
	return func(c *Client) {
		c.defaults.Credentials = mode
	}
}

// BaseURL returns the base URL the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}
