package fetch

// Credentials mirrors the transport's accepted credential modes.
type Credentials string

const (
	CredentialsOmit       Credentials = "omit"
	CredentialsSameOrigin Credentials = "same-origin"
	CredentialsInclude    Credentials = "include"
)

// Param is a single query-string pair. Values are coerced to their
// string representation when the URL is assembled.
type Param struct {
	Key   string
	Value any
}

// Query is an ordered list of query parameters. Order is preserved into
// the final query string, so Query is a slice rather than a map.
type Query []Param

// Header is a single header name/value pair.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered header list. Duplicate names are allowed; the
// receiving end's duplicate-header rules decide which value wins.
type Headers []Header

// Options carries the per-call request options. All fields are
// optional except Body, which Post and Put require.
type Options struct {
	// Path is appended verbatim to the client's base URL. When present
	// it must begin with "/".
	Path string

	// Query pairs are emitted before the client's default pairs.
	Query Query

	// Headers are applied after the client's default headers.
	Headers Headers

	// Credentials overrides the client's default mode when non-empty.
	Credentials Credentials

	// Body is JSON-marshaled for Post and Put. Get and Delete ignore it.
	Body any
}

// Defaults holds client-scoped options applied to every call. Same
// shape as Options minus Path and Body.
type Defaults struct {
	Query       Query
	Headers     Headers
	Credentials Credentials
}

// mergeHeaders concatenates defaults then per-call headers into one
// ordered list. Returns nil when both are empty so the outgoing request
// omits headers entirely rather than sending an empty set.
func mergeHeaders(defaults, call Headers) Headers {
	if len(defaults) == 0 && len(call) == 0 {
		return nil
	}
	merged := make(Headers, 0, len(defaults)+len(call))
	merged = append(merged, defaults...)
	merged = append(merged, call...)
	return merged
}
