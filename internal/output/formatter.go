// Package output renders dispatched requests and classified results
// for the terminal.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wesleyorama2/riposte/pkg/fetch"
)

// Formatter renders requests and results in text format.
type Formatter struct {
	Verbose bool
	NoColor bool

	scheme *ColorScheme
}

// NewFormatter creates a formatter with the given options.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest formats a request about to be dispatched.
func (f *Formatter) FormatRequest(method, url string, headers fetch.Headers, body []byte) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(strings.ToUpper(method)),
		f.scheme.URL.Sprint(url)))

	if f.Verbose && len(headers) > 0 {
		buf.WriteString("  Headers:\n")
		for _, h := range headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(h.Name),
				f.scheme.HeaderValue.Sprint(h.Value)))
		}
	}

	if len(body) > 0 {
		buf.WriteString("  Body: ")
		buf.WriteString(formatJSONString(string(body)))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResult formats a classified result. The CLI dispatches with a
// raw JSON payload type so every variant renders through one signature.
func (f *Formatter) FormatResult(res fetch.Result[json.RawMessage]) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("◀ RESULT: %s\n", f.variantLabel(res)))

	switch res.Code {
	case fetch.CodeClientError:
		buf.WriteString(fmt.Sprintf("  Error: %v\n", res.Err))
	case fetch.CodeOK, fetch.CodeCreated:
		if len(res.Data) > 0 {
			buf.WriteString("  Data:\n")
			buf.WriteString("  ")
			buf.WriteString(formatJSONString(string(res.Data)))
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

func (f *Formatter) variantLabel(res fetch.Result[json.RawMessage]) string {
	switch res.Code {
	case fetch.CodeOK, fetch.CodeCreated:
		return f.scheme.VariantOK.Sprintf("%s (%d)", res.Name, res.Code)
	case fetch.CodeUnknown:
		return f.scheme.VariantWarn.Sprintf("%s (status %d)", res.Name, res.StatusCode)
	case fetch.CodeClientError:
		return f.scheme.VariantError.Sprint(res.Name)
	default:
		return f.scheme.VariantError.Sprintf("%s (%d)", res.Name, res.Code)
	}
}

// formatJSONString attempts to pretty-print a JSON string.
func formatJSONString(s string) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(s), "  ", "  "); err != nil {
		return s
	}
	return pretty.String()
}
