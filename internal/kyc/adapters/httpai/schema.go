package httpai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Every provider response shares the {success, data, error} envelope.
const envelopeSchema = `{
  "type": "object",
  "required": ["success"],
  "properties": {
    "success": {"type": "boolean"},
    "error": {"type": "string"}
  }
}`

const entitiesSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["type", "value", "source"],
    "properties": {
      "type": {"type": "string", "minLength": 1},
      "value": {"type": "string"},
      "confidence": {"type": "number", "minimum": 0, "maximum": 1},
      "source": {
        "type": "object",
        "required": ["document", "page"],
        "properties": {
          "document": {"type": "string"},
          "page": {"type": "integer", "minimum": 0},
          "coordinates": {
            "type": "object",
            "required": ["x", "y", "width", "height"],
            "properties": {
              "x": {"type": "number"},
              "y": {"type": "number"},
              "width": {"type": "number"},
              "height": {"type": "number"}
            }
          }
        }
      }
    }
  }
}`

const verificationSchema = `{
  "type": "object",
  "required": ["verified", "issues"],
  "properties": {
    "verified": {"type": "boolean"},
    "issues": {"type": "array", "items": {"type": "string"}}
  }
}`

type schemas struct {
	envelope     *jsonschema.Schema
	entities     *jsonschema.Schema
	verification *jsonschema.Schema
}

func mustCompileSchemas() schemas {
	return schemas{
		envelope:     mustCompile("envelope.json", envelopeSchema),
		entities:     mustCompile("entities.json", entitiesSchema),
		verification: mustCompile("verification.json", verificationSchema),
	}
}

func mustCompile(name, src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	return compiler.MustCompile(name)
}

// validate checks raw JSON against schema.
func validate(schema *jsonschema.Schema, raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
