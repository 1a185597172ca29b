package fetch

// Code discriminates the closed set of outcomes a call can produce.
// Recognized HTTP statuses map to their own code; anything else maps to
// CodeUnknown, and transport or decode failures map to CodeClientError.
type Code int

const (
	CodeClientError  Code = -1
	CodeUnknown      Code = 0
	CodeOK           Code = 200
	CodeCreated      Code = 201
	CodeBadRequest   Code = 400
	CodeUnauthorized Code = 401
	CodeNotFound     Code = 404
	CodeServerError  Code = 500
)

// Name returns the human-readable variant name for the code.
func (c Code) Name() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeCreated:
		return "created"
	case CodeBadRequest:
		return "bad request"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeNotFound:
		return "not found"
	case CodeServerError:
		return "server error"
	case CodeClientError:
		return "client error"
	default:
		return "unknown"
	}
}

// Result is the single value every call resolves to. Code is the
// discriminant:
//
//   - CodeOK, CodeCreated: Data holds the decoded JSON payload (the
//     zero value when the response did not declare application/json).
//   - CodeBadRequest, CodeUnauthorized, CodeNotFound, CodeServerError:
//     no payload.
//   - CodeUnknown: StatusCode holds the actual HTTP status.
//   - CodeClientError: Err holds the original transport or decode
//     error, unwrapped.
type Result[T any] struct {
	Code Code
	Name string

	// Data is populated only for CodeOK and CodeCreated.
	Data T

	// StatusCode is populated only for CodeUnknown.
	StatusCode int

	// Err is populated only for CodeClientError.
	Err error
}

// OK reports whether the call produced a success variant.
func (r Result[T]) OK() bool {
	return r.Code == CodeOK || r.Code == CodeCreated
}

func clientError[T any](err error) Result[T] {
	return Result[T]{Code: CodeClientError, Name: CodeClientError.Name(), Err: err}
}
