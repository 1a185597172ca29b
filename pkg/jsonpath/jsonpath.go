// Package jsonpath resolves JSONPath-style expressions against JSON
// documents using gjson as the lookup engine.
package jsonpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract resolves a JSONPath expression (e.g. $.users[0].name) against
// a JSON document and returns the matched value as a string. JSON null
// is returned as the literal string "null".
func Extract(doc, path string) (string, error) {
	if strings.TrimSpace(doc) == "" {
		return "", errors.New("empty JSON document")
	}

	gpath, err := toGjson(path)
	if err != nil {
		return "", err
	}

	result := gjson.Get(doc, gpath)
	if !result.Exists() {
		return "", fmt.Errorf("no value at %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// Exists reports whether the expression matches anything in the
// document.
func Exists(doc, path string) bool {
	gpath, err := toGjson(path)
	if err != nil {
		return false
	}
	return gjson.Get(doc, gpath).Exists()
}

// bracketForms rewrites every JSONPath bracket form into gjson's dotted
// form: ['name'] and ["name"] become .name, [0] becomes .0.
var bracketForms = strings.NewReplacer(
	"['", ".", "']", "",
	`["`, ".", `"]`, "",
	"[", ".", "]", "",
)

// toGjson converts a JSONPath expression into a gjson path.
// $.users[0].name becomes users.0.name. Filter and wildcard forms are
// not supported.
func toGjson(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return "", errors.New("empty path expression")
	}

	p = strings.TrimPrefix(p, "$")
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		// The expression addressed the document root.
		return "@this", nil
	}

	p = bracketForms.Replace(p)
	// A bracket at the root leaves a leading separator behind.
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		return "", fmt.Errorf("unsupported path expression: %s", path)
	}
	return p, nil
}
