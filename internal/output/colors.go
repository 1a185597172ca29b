package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for different elements in the
// output.
type ColorScheme struct {
	Method       *color.Color
	URL          *color.Color
	VariantOK    *color.Color
	VariantWarn  *color.Color
	VariantError *color.Color
	HeaderKey    *color.Color
	HeaderValue  *color.Color
	Success      *color.Color
	Error        *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Method:       color.New(color.FgBlue, color.Bold),
		URL:          color.New(color.FgCyan),
		VariantOK:    color.New(color.FgGreen, color.Bold),
		VariantWarn:  color.New(color.FgYellow, color.Bold),
		VariantError: color.New(color.FgRed, color.Bold),
		HeaderKey:    color.New(color.FgYellow),
		HeaderValue:  color.New(color.FgWhite),
		Success:      color.New(color.FgGreen),
		Error:        color.New(color.FgRed),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Method.DisableColor()
	scheme.URL.DisableColor()
	scheme.VariantOK.DisableColor()
	scheme.VariantWarn.DisableColor()
	scheme.VariantError.DisableColor()
	scheme.HeaderKey.DisableColor()
	scheme.HeaderValue.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()

	return scheme
}

// IsTerminal reports whether the file is attached to a terminal, so
// color can be disabled automatically for piped output.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SuccessIcon returns a checkmark symbol with appropriate color.
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color.
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
