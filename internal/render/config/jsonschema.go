package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "rendermon.schema.json"

// JSONSchema describes a configuration document.
const JSONSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "rendermon configuration",
  "type": "object",
  "definitions": {
    "switches": {
      "type": "object",
      "additionalProperties": { "type": "boolean" }
    }
  },
  "properties": {
    "frames": {
      "oneOf": [
        { "type": "boolean" },
        {
          "allOf": [{ "$ref": "#/definitions/switches" }],
          "propertyNames": { "enum": ["fps", "drops", "p95"] }
        }
      ]
    },
    "memory": {
      "oneOf": [
        { "type": "boolean" },
        {
          "allOf": [{ "$ref": "#/definitions/switches" }],
          "propertyNames": { "enum": ["heap"] }
        }
      ]
    },
    "dom": {
      "oneOf": [
        { "type": "boolean" },
        {
          "allOf": [{ "$ref": "#/definitions/switches" }],
          "propertyNames": { "enum": ["count"] }
        }
      ]
    },
    "timing": {
      "oneOf": [
        { "type": "boolean" },
        {
          "allOf": [{ "$ref": "#/definitions/switches" }],
          "propertyNames": { "enum": ["script", "render", "paint"] }
        }
      ]
    },
    "logging": {
      "type": "object",
      "properties": {
        "enabled": { "type": "boolean" },
        "decimals": { "type": "integer", "minimum": 0, "maximum": 10 },
        "prefix": { "type": "string" }
      },
      "additionalProperties": false
    },
    "sampleRate": { "type": "integer", "minimum": 1 },
    "bufferSize": { "type": "integer", "minimum": 1 }
  },
  "additionalProperties": false
}`

// compileSchema compiles JSONSchema once.
var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(JSONSchema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return schema, nil
})

// CheckSchema validates a configuration document against JSONSchema.
//
// YAML documents are converted to their JSON form first, so both formats are
// held to the same rules. The format is chosen from path like ParseConfig.
func CheckSchema(data []byte, path string) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	doc, err := decodeDocument(data, path)
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}

// decodeDocument decodes data into generic JSON values.
func decodeDocument(data []byte, path string) (interface{}, error) {
	raw := data

	if !isJSON(path) {
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if doc == nil {
			doc = map[string]interface{}{}
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("YAML document is not representable as JSON: %w", err)
		}
		raw = converted
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return doc, nil
}
