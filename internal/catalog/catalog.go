// Package catalog loads curated problem lists. The Blind 75 list ships
// embedded in the binary; other lists can be imported from JSON files
// that follow the same shape.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/nasir-khan01/dsaprep/internal/store"
)

// ErrInvalidCatalog is returned when a list document fails to parse or
// does not match the list schema.
var ErrInvalidCatalog = errors.New("catalog: invalid problem list")

// BundledSource is recorded as the source of the embedded list.
const BundledSource = "embedded"

//go:embed data/blind75.json
var blind75JSON []byte

//go:embed data/list.schema.json
var listSchemaJSON []byte

// Entry is one problem in a list document.
type Entry struct {
	Name       string `json:"name"`
	URL        string `json:"url,omitempty"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Pattern    string `json:"pattern,omitempty"`
}

// List is a named, versioned collection of problems.
type List struct {
	Name        string  `json:"name"`
	Version     string  `json:"version,omitempty"`
	Description string  `json:"description,omitempty"`
	Problems    []Entry `json:"problems"`
}

// Load reads a list document, validates it against the list schema and
// fills in missing patterns from the category.
func Load(r io.Reader) (List, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return List{}, fmt.Errorf("read list: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return List{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	compiled, err := listSchema()
	if err != nil {
		return List{}, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return List{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	var l List
	if err := json.Unmarshal(raw, &l); err != nil {
		return List{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	l.Name = strings.TrimSpace(l.Name)
	for i := range l.Problems {
		e := &l.Problems[i]
		e.Name = strings.TrimSpace(e.Name)
		if e.Pattern == "" {
			e.Pattern = InferPattern(e.Category)
		}
	}
	return l, nil
}

// Bundled returns the embedded Blind 75 list.
func Bundled() (List, error) {
	l, err := Load(bytes.NewReader(blind75JSON))
	if err != nil {
		return List{}, fmt.Errorf("bundled list: %w", err)
	}
	return l, nil
}

// NewProblems converts the list into store rows tagged with the list name.
func (l List) NewProblems() []store.NewProblem {
	out := make([]store.NewProblem, 0, len(l.Problems))
	for _, e := range l.Problems {
		out = append(out, store.NewProblem{
			Name:       e.Name,
			URL:        e.URL,
			Category:   e.Category,
			Difficulty: e.Difficulty,
			Pattern:    e.Pattern,
			List:       l.Name,
		})
	}
	return out
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func listSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(listSchemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse list schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://dsaprep/list.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add list schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile list schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
