// Package fetch provides a small, typed, fetch-like HTTP client that
// funnels GET/POST/PUT/DELETE through a single request pipeline and
// classifies every outcome into a closed set of result variants.
//
// A Client owns a base URL and a set of default call options (headers,
// query parameters, credentials). Each call merges its own options over
// the defaults, builds the final URL, dispatches through the configured
// Transport, and returns exactly one Result — never an error return and
// never a panic. Callers branch on the result's Code instead of
// hand-rolling status checks at every call site.
//
// Basic Usage:
//
//	client := fetch.New("https://api.example.com",
//	    fetch.WithDefaultHeader("content-type", "application/json"),
//	)
//
//	type User struct {
//	    Name  string `json:"name"`
//	    Email string `json:"email"`
//	}
//
//	res := fetch.Get[User](context.Background(), client, &fetch.Options{
//	    Path:  "/users/1",
//	    Query: fetch.Query{{Key: "expand", Value: "profile"}},
//	})
//	switch res.Code {
//	case fetch.CodeOK:
//	    fmt.Println(res.Data.Name)
//	case fetch.CodeNotFound:
//	    fmt.Println("no such user")
//	case fetch.CodeClientError:
//	    log.Fatal(res.Err)
//	}
//
// Writing:
//
//	res := fetch.Post[User](ctx, client, &fetch.Options{
//	    Path: "/users",
//	    Body: map[string]string{"name": "Ada"},
//	})
//	if res.Code == fetch.CodeCreated {
//	    fmt.Println("created", res.Data.Name)
//	}
//
// Query parameters are an ordered pair list and are emitted exactly as
// given: insertion order is preserved and no URL escaping is applied.
// Callers are responsible for providing already-safe tokens.
//
// Thread Safety:
//
// Client is immutable after construction and safe for concurrent use.
// Multiple goroutines may issue calls through one Client simultaneously.
package fetch
