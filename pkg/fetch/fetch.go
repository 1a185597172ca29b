package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Get dispatches a GET request. opts may be nil; a supplied Body is
// ignored.
func Get[T any](ctx context.Context, c *Client, opts *Options) Result[T] {
	return dispatch[T](ctx, c, "get", opts, false)
}

// Post dispatches a POST request. opts.Body is required and is
// JSON-marshaled; a nil Body still serializes (to "null").
func Post[T any](ctx context.Context, c *Client, opts *Options) Result[T] {
	return dispatch[T](ctx, c, "post", opts, true)
}

// Put dispatches a PUT request. opts.Body is required and is
// JSON-marshaled; a nil Body still serializes (to "null").
func Put[T any](ctx context.Context, c *Client, opts *Options) Result[T] {
	return dispatch[T](ctx, c, "put", opts, true)
}

// Delete dispatches a DELETE request. opts may be nil; a supplied Body
// is ignored.
func Delete[T any](ctx context.Context, c *Client, opts *Options) Result[T] {
	return dispatch[T](ctx, c, "delete", opts, false)
}

// dispatch is the single routine every verb funnels through: merge
// options, assemble the URL, invoke the transport, classify the
// outcome. It never returns an error; failures become the client error
// variant.
func dispatch[T any](ctx context.Context, c *Client, method string, opts *Options, withBody bool) Result[T] {
	if opts == nil {
		opts = &Options{}
	}

	headers := mergeHeaders(c.defaults.Headers, opts.Headers)

	credentials := opts.Credentials
	if credentials == "" {
		credentials = c.defaults.Credentials
	}

	url := c.baseURL + opts.Path + encodeQuery(opts.Query, c.defaults.Query)

	var body []byte
	if withBody {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return clientError[T](err)
		}
		body = b
	}

	resp, err := c.transport.Send(ctx, url, &Request{
		Method:      method,
		Headers:     headers,
		Credentials: credentials,
		Body:        body,
	})
	if err != nil {
		return clientError[T](err)
	}

	return classify[T](resp)
}

// encodeQuery builds the query string from per-call pairs followed by
// default pairs. Values are stringified via fmt.Sprint and keys/values
// are emitted as-is: no URL escaping, insertion order preserved.
func encodeQuery(call, defaults Query) string {
	if len(call) == 0 && len(defaults) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(call)+len(defaults))
	for _, p := range call {
		pairs = append(pairs, p.Key+"="+fmt.Sprint(p.Value))
	}
	for _, p := range defaults {
		pairs = append(pairs, p.Key+"="+fmt.Sprint(p.Value))
	}
	return "?" + strings.Join(pairs, "&")
}

// classify maps a transport response onto the closed result set. The
// body is decoded before the status is mapped, so a malformed body that
// declares application/json classifies as client error regardless of
// status. An empty declared-JSON body falls back to the zero value.
func classify[T any](resp *Response) Result[T] {
	var data T
	if resp.Header.Get("Content-Type") == "application/json" && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &data); err != nil {
			return clientError[T](err)
		}
	}

	switch resp.StatusCode {
	case 200:
		return Result[T]{Code: CodeOK, Name: CodeOK.Name(), Data: data}
	case 201:
		return Result[T]{Code: CodeCreated, Name: CodeCreated.Name(), Data: data}
	case 400:
		return Result[T]{Code: CodeBadRequest, Name: CodeBadRequest.Name()}
	case 401:
		return Result[T]{Code: CodeUnauthorized, Name: CodeUnauthorized.Name()}
	case 404:
		return Result[T]{Code: CodeNotFound, Name: CodeNotFound.Name()}
	case 500:
		return Result[T]{Code: CodeServerError, Name: CodeServerError.Name()}
	default:
		return Result[T]{Code: CodeUnknown, Name: CodeUnknown.Name(), StatusCode: resp.StatusCode}
	}
}
