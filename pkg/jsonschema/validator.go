// Package jsonschema validates JSON documents against JSON Schema
// definitions, flattening nested schema violations into a flat error
// list callers can print one per line.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Violations is the flattened list of schema violations found in one
// document.
type Violations []error

// Error implements the error interface for Violations.
func (v Violations) Error() string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, len(v))
	for i, err := range v {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// Validator holds a compiled schema. Compile once, validate many.
type Validator struct {
	schema *jsonschema.Schema
}

// Compile parses and compiles a JSON Schema document.
func Compile(schemaJSON string) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks a JSON document against the compiled schema. It
// returns true when the document conforms; otherwise the Violations
// list what failed and where. A document that is not valid JSON at all
// is reported as a single violation.
func (v *Validator) Validate(doc string) (bool, Violations) {
	var value any
	if err := json.Unmarshal([]byte(doc), &value); err != nil {
		return false, Violations{fmt.Errorf("invalid JSON: %w", err)}
	}

	err := v.schema.Validate(value)
	if err == nil {
		return true, nil
	}
	if verr, ok := err.(*jsonschema.ValidationError); ok {
		return false, flatten(verr)
	}
	return false, Violations{err}
}

// Validate is a one-shot convenience: compile the schema and validate
// the document in one call.
func Validate(doc, schemaJSON string) (bool, error) {
	validator, err := Compile(schemaJSON)
	if err != nil {
		return false, err
	}
	ok, violations := validator.Validate(doc)
	if ok {
		return true, nil
	}
	return false, violations
}

func flatten(err *jsonschema.ValidationError) Violations {
	var out Violations
	if err.Message != "" {
		out = append(out, fmt.Errorf("at %s: %s", location(err), err.Message))
	}
	for _, cause := range err.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}

func location(err *jsonschema.ValidationError) string {
	if err.InstanceLocation == "" {
		return "$"
	}
	return "$" + strings.ReplaceAll(err.InstanceLocation, "/", ".")
}
