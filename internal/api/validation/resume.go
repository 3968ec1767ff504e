package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resumeSchema is the subset of the JSON Resume schema this service depends
// on. It rejects documents missing the fields rendering cannot do without and
// catches shape errors (a string where a list is expected) before decoding.
const resumeSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["basics"],
	"properties": {
		"basics": {
			"type": "object",
			"required": ["name", "email", "phone"],
			"properties": {
				"name": {"type": "string", "minLength": 1},
				"email": {"type": "string", "minLength": 1},
				"phone": {"type": "string", "minLength": 1},
				"url": {"type": "string"},
				"summary": {"type": "string"},
				"location": {"type": "object"},
				"profiles": {
					"type": "array",
					"items": {"type": "object"}
				}
			}
		},
		"education": {"type": "array", "items": {"type": "object"}},
		"work": {"type": "array", "items": {"type": "object"}},
		"publications": {"type": "array", "items": {"type": "object"}},
		"projects": {"type": "array", "items": {"type": "object"}},
		"skills": {"type": "array", "items": {"type": "object"}},
		"awards": {"type": "array", "items": {"type": "object"}}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(resumeSchema)

// ValidateResumeJSON checks a raw request body against the résumé schema
// before it is decoded into the typed model.
func ValidateResumeJSON(body []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return fmt.Errorf("resume validation failed: %s", strings.Join(messages, "; "))
}
