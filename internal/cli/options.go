package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/riposte/internal/config"
	"github.com/wesleyorama2/riposte/internal/output"
	"github.com/wesleyorama2/riposte/pkg/fetch"
	"github.com/wesleyorama2/riposte/pkg/jsonpath"
	"github.com/wesleyorama2/riposte/pkg/jsonschema"
)

// callSpec is everything a verb command collects from its flags before
// dispatching.
type callSpec struct {
	client  *fetch.Client
	options *fetch.Options

	formatter *output.Formatter
	extract   string
	schema    string
}

// addRequestFlags registers the flag set shared by every verb command.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP header as 'name: value' (can be used multiple times)")
	cmd.Flags().StringArrayP("query", "q", []string{}, "Query pair as 'key=value', emitted in the order given (can be used multiple times)")
	cmd.Flags().String("credentials", "", "Credentials mode: omit, same-origin or include")
	cmd.Flags().String("config", "", "Path to a profile file")
	cmd.Flags().String("profile", "default", "Profile name within the profile file")
	cmd.Flags().String("extract", "", "JSONPath to extract from a successful response body")
	cmd.Flags().String("schema", "", "JSON Schema file to validate a successful response body against")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Transport timeout")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

// parseURL splits a URL argument into base URL and path. The base is
// scheme://host; path keeps query and fragment so the pipeline passes
// them through verbatim.
func parseURL(fullURL string) (string, string) {
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = "http://" + fullURL
	}

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return fullURL, "/"
	}

	baseURL := fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host)
	if parsed.User != nil {
		baseURL = fmt.Sprintf("%s://%s@%s", parsed.Scheme, parsed.User.String(), parsed.Host)
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path = path + "?" + parsed.RawQuery
	}
	if parsed.Fragment != "" {
		path = path + "#" + parsed.Fragment
	}

	return baseURL, path
}

// parseHeaderFlags converts repeated 'name: value' flags into an
// ordered header list. Entries without a colon are skipped.
func parseHeaderFlags(flags []string) fetch.Headers {
	var headers fetch.Headers
	for _, flag := range flags {
		parts := strings.SplitN(flag, ":", 2)
		if len(parts) != 2 {
			continue
		}
		headers = append(headers, fetch.Header{
			Name:  strings.TrimSpace(parts[0]),
			Value: strings.TrimSpace(parts[1]),
		})
	}
	return headers
}

// parseQueryFlags converts repeated 'key=value' flags into an ordered
// query list, preserving the order given on the command line.
func parseQueryFlags(flags []string) (fetch.Query, error) {
	var query fetch.Query
	for _, flag := range flags {
		parts := strings.SplitN(flag, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid query pair %q (expected key=value)", flag)
		}
		query = append(query, fetch.Param{Key: parts[0], Value: parts[1]})
	}
	return query, nil
}

// parseBody interprets a --data value: JSON when it parses, a plain
// string otherwise.
func parseBody(data string) any {
	var value any
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return data
	}
	return value
}

// buildCallSpec assembles the client and per-call options from the
// command's flags and URL argument.
func buildCallSpec(cmd *cobra.Command, rawURL string) (*callSpec, error) {
	headerFlags, _ := cmd.Flags().GetStringArray("header")
	queryFlags, _ := cmd.Flags().GetStringArray("query")
	credentials, _ := cmd.Flags().GetString("credentials")
	configPath, _ := cmd.Flags().GetString("config")
	profileName, _ := cmd.Flags().GetString("profile")
	extract, _ := cmd.Flags().GetString("extract")
	schema, _ := cmd.Flags().GetString("schema")
	verbose, _ := cmd.Flags().GetBool("verbose")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noColor, _ := cmd.Flags().GetBool("no-color")

	query, err := parseQueryFlags(queryFlags)
	if err != nil {
		return nil, err
	}

	clientOptions := []fetch.ClientOption{
		fetch.WithTransport(fetch.NewHTTPTransport(fetch.WithTimeout(timeout))),
	}

	var profile *config.Profile
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		profile, err = cfg.Profile(profileName)
		if err != nil {
			return nil, err
		}
		clientOptions = append(clientOptions, fetch.WithDefaults(profile.Defaults()))
	}

	var baseURL, path string
	if profile != nil && profile.BaseURL != "" && !strings.Contains(rawURL, "://") {
		// A relative URL argument rides on the profile's base URL.
		baseURL = profile.BaseURL
		path = rawURL
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
	} else {
		baseURL, path = parseURL(rawURL)
	}

	if !noColor && !output.IsTerminal(os.Stdout) {
		noColor = true
	}

	return &callSpec{
		client: fetch.New(baseURL, clientOptions...),
		options: &fetch.Options{
			Path:        path,
			Query:       query,
			Headers:     parseHeaderFlags(headerFlags),
			Credentials: fetch.Credentials(credentials),
		},
		formatter: output.NewFormatter(verbose, noColor),
		extract:   extract,
		schema:    schema,
	}, nil
}

// runVerb is the shared body of the four verb commands: build the call,
// dispatch, render, and post-process the result.
func runVerb(cmd *cobra.Command, method string, args []string) {
	call, err := buildCallSpec(cmd, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if method == "post" || method == "put" {
		if data, _ := cmd.Flags().GetString("data"); data != "" {
			call.options.Body = parseBody(data)
		}
	}

	var displayBody []byte
	if call.options.Body != nil {
		displayBody, _ = json.Marshal(call.options.Body)
	}
	fmt.Print(call.formatter.FormatRequest(method,
		call.client.BaseURL()+call.options.Path, call.options.Headers, displayBody))

	var res fetch.Result[json.RawMessage]
	switch method {
	case "get":
		res = fetch.Get[json.RawMessage](cmd.Context(), call.client, call.options)
	case "post":
		res = fetch.Post[json.RawMessage](cmd.Context(), call.client, call.options)
	case "put":
		res = fetch.Put[json.RawMessage](cmd.Context(), call.client, call.options)
	case "delete":
		res = fetch.Delete[json.RawMessage](cmd.Context(), call.client, call.options)
	}

	fmt.Print(call.formatter.FormatResult(res))

	if res.Code == fetch.CodeClientError {
		os.Exit(1)
	}

	if call.extract != "" && res.OK() {
		value, err := jsonpath.Extract(string(res.Data), call.extract)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s = %s\n", call.extract, value)
	}

	if call.schema != "" && res.OK() {
		if err := validateAgainstSchema(res.Data, call.schema, call.formatter.NoColor); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}

func validateAgainstSchema(body json.RawMessage, schemaPath string, noColor bool) error {
	schemaJSON, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("error reading schema file: %w", err)
	}

	validator, err := jsonschema.Compile(string(schemaJSON))
	if err != nil {
		return err
	}

	ok, violations := validator.Validate(string(body))
	if !ok {
		fmt.Printf("%s schema validation failed\n", output.ErrorIcon(noColor))
		for _, v := range violations {
			fmt.Printf("  %v\n", v)
		}
		return fmt.Errorf("response does not conform to %s", schemaPath)
	}

	fmt.Printf("%s schema validation passed\n", output.SuccessIcon(noColor))
	return nil
}
