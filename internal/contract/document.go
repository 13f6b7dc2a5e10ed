// Package contract loads API contract documents and answers structural
// questions about them: which paths exist, which methods a path declares,
// and which parameters an operation takes.
package contract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location is where a parameter travels in the request.
type Location string

const (
	InHeader Location = "header"
	InQuery  Location = "query"
	InPath   Location = "path"
	InBody   Location = "body"
)

// Parameter is a single parameter declared by an operation.
type Parameter struct {
	Name     string   `json:"name" yaml:"name"`
	In       Location `json:"in" yaml:"in"`
	Required bool     `json:"required" yaml:"required"`
}

// Operation is one method on one path.
type Operation struct {
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
}

// PathItem maps lower-case HTTP methods to their operations.
type PathItem map[string]Operation

// Document is the contract shape the engine reads:
//
//	{"paths": {"/dns/{domain}/a": {"post": {"parameters": [...]}}}}
//
// Path keys may contain {variable} segments.
type Document struct {
	Paths map[string]PathItem `json:"paths" yaml:"paths"`
}

// Format selects the on-disk encoding of a contract document.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Load reads a contract document from disk. With FormatAuto the encoding
// is chosen by file extension, defaulting to JSON.
func Load(path string, format Format) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contract: %w", err)
	}
	if format == FormatAuto || format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			format = FormatJSON
		}
	}
	return Parse(data, format)
}

// Parse decodes a contract document from raw bytes.
func Parse(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("failed to parse contract: %w", err)
		}
	case FormatJSON, FormatAuto, "":
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("failed to parse contract: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown contract format: %s", format)
	}
	if doc.Paths == nil {
		doc.Paths = map[string]PathItem{}
	}
	return doc, nil
}

// SplitSegments splits "/dns/{domain}/a" into ["dns", "{domain}", "a"].
// An empty or root path yields a single empty segment.
func SplitSegments(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}
