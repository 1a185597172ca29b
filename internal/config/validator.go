package config

import (
	"fmt"
)

// ValidationError represents a profile validation error.
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

var credentialModes = map[string]bool{
	"":            true,
	"omit":        true,
	"same-origin": true,
	"include":     true,
}

// ValidateConfig validates a parsed profile file and returns every
// problem found.
func ValidateConfig(config *Config) []ValidationError {
	var errors []ValidationError

	if len(config.Profiles) == 0 {
		errors = append(errors, ValidationError{
			Path:    "profiles",
			Message: "at least one profile is required",
		})
	}

	for name, profile := range config.Profiles {
		if !credentialModes[profile.Credentials] {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("profiles.%s.credentials", name),
				Message: fmt.Sprintf("unknown mode %q (expected omit, same-origin or include)", profile.Credentials),
			})
		}

		for i, h := range profile.Headers {
			if h.Name == "" {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("profiles.%s.headers[%d].name", name, i),
					Message: "header name is required",
				})
			}
		}

		for i, q := range profile.Query {
			if q.Key == "" {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("profiles.%s.query[%d].key", name, i),
					Message: "query key is required",
				})
			}
		}
	}

	return errors
}
