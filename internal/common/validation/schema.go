// internal/common/validation/schema.go
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Result reports schema validation outcome with per-field errors.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateJSON validates a raw JSON document against a JSON-schema string.
func ValidateJSON(document []byte, schema string) (*Result, error) {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed to run: %w", err)
	}

	return toResult(result), nil
}

// ValidateGo validates an already-decoded Go value (map, struct, slice)
// against a JSON-schema string.
func ValidateGo(document interface{}, schema string) (*Result, error) {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed to run: %w", err)
	}

	return toResult(result), nil
}

func toResult(result *gojsonschema.Result) *Result {
	if result.Valid() {
		return &Result{Valid: true}
	}

	out := &Result{Valid: false}
	for _, e := range result.Errors() {
		out.Errors = append(out.Errors, FieldError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return out
}

// FirstError returns a printable summary of the first validation error.
func (r *Result) FirstError() string {
	if r.Valid || len(r.Errors) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s", r.Errors[0].Field, r.Errors[0].Message)
}
