// Package config loads and validates riposte profile files: named sets
// of client defaults (base URL, headers, query pairs, credentials) that
// the CLI turns into a fetch.Client.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/riposte/pkg/fetch"
)

// Config is the top-level profile file.
//
// Example YAML:
//
//	profiles:
//	  dev:
//	    baseUrl: http://localhost:8080
//	    credentials: include
//	    headers:
//	      - name: accept
//	        value: application/json
//	    query:
//	      - key: api_key
//	        value: abc123
type Config struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile is one named set of client defaults.
type Profile struct {
	BaseURL     string       `yaml:"baseUrl"`
	Credentials string       `yaml:"credentials,omitempty"`
	Headers     []HeaderPair `yaml:"headers,omitempty"`
	Query       []QueryPair  `yaml:"query,omitempty"`
}

// HeaderPair is an ordered header entry. A list, not a map: header
// order and duplicates are significant to the pipeline.
type HeaderPair struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// QueryPair is an ordered query entry, same reasoning as HeaderPair.
type QueryPair struct {
	Key   string `yaml:"key"`
	Value any    `yaml:"value"`
}

// Load reads and parses a profile file.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("profile file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading profile file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing profile file: %w", err)
	}

	if errs := ValidateConfig(&config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid profile file: %s", errs[0].Error())
	}

	return &config, nil
}

// Profile looks up a named profile.
func (c *Config) Profile(name string) (*Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile not found: %s", name)
	}
	return &p, nil
}

// Defaults converts the profile into client default options.
func (p *Profile) Defaults() fetch.Defaults {
	d := fetch.Defaults{
		Credentials: fetch.Credentials(p.Credentials),
	}
	for _, h := range p.Headers {
		d.Headers = append(d.Headers, fetch.Header{Name: h.Name, Value: h.Value})
	}
	for _, q := range p.Query {
		d.Query = append(d.Query, fetch.Param{Key: q.Key, Value: q.Value})
	}
	return d
}
