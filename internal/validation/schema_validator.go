// Package validation checks JSON data files against JSON schemas before they are decoded.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/osse101/giftroll/configs"
)

// CaseCatalogSchemaURL identifies the embedded case catalog schema
const CaseCatalogSchemaURL = "https://giftroll.local/schemas/cases.schema.json"

// SchemaValidator validates JSON documents against registered schemas
type SchemaValidator interface {
	Register(url string, schema []byte) error
	ValidateBytes(data []byte, url string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates an empty validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// Register compiles schema and stores it under url
func (v *validator) Register(url string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[url]; ok {
		return nil
	}

	var doc any
	if err := json.Unmarshal(schema, &doc); err != nil {
		return fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	if err := v.compiler.AddResource(url, doc); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := v.compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}
	v.schemas[url] = compiled
	return nil
}

// ValidateBytes validates data against the schema registered under url
func (v *validator) ValidateBytes(data []byte, url string) error {
	v.mu.Lock()
	schema, ok := v.schemas[url]
	v.mu.Unlock()
	if !ok {
		return fmt.Errorf("schema %s is not registered", url)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

var caseCatalogValidator = sync.OnceValues(func() (SchemaValidator, error) {
	v := NewSchemaValidator()
	if err := v.Register(CaseCatalogSchemaURL, configs.CaseCatalogSchema); err != nil {
		return nil, err
	}
	return v, nil
})

// ValidateCaseCatalog checks a case catalog document against the embedded schema
func ValidateCaseCatalog(data []byte) error {
	v, err := caseCatalogValidator()
	if err != nil {
		return fmt.Errorf("failed to load case catalog schema: %w", err)
	}
	return v.ValidateBytes(data, CaseCatalogSchemaURL)
}

// formatValidationError lists every failing location on its own line
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(path, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
