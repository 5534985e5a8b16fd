package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lambda-feedback/tool-launcher/util"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed config.schema.json
var configSchemaDocument json.RawMessage
var configSchema = util.Must(gojsonschema.NewSchema(gojsonschema.NewBytesLoader(configSchemaDocument)))

// SchemaError lists the violations of a configuration document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Violations, "; "))
}

// ValidateDocument validates a raw configuration document, as
// loaded from file, env and flags, before it is decoded.
func ValidateDocument(data map[string]any) error {
	result, err := configSchema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	return &SchemaError{Violations: violations}
}
