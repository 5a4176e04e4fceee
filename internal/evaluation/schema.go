package evaluation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema is the contract every evaluation response must satisfy
// before we parse it. Model output is untrusted input.
const responseSchema = `{
	"type": "object",
	"required": ["score", "message", "suggestions"],
	"properties": {
		"score": {"type": "integer", "minimum": 1, "maximum": 10},
		"message": {"type": "string", "minLength": 1},
		"suggestions": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

// validateResponse checks a raw LLM response against the evaluation schema.
func validateResponse(raw string) error {
	schemaLoader := gojsonschema.NewStringLoader(responseSchema)
	documentLoader := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var descriptions []string
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		descriptions = append(descriptions, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return fmt.Errorf("response violates schema: %s", strings.Join(descriptions, "; "))
}
