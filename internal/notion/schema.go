package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const envelopeSchemaURL = "notion_query_response.json"

// envelopeSchemaJSON describes the parts of a query response the client
// relies on. Property payloads are checked by type only; their shape is
// handled leniently during conversion.
const envelopeSchemaJSON = `{
  "type": "object",
  "required": ["results"],
  "properties": {
    "object": {"type": "string"},
    "results": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["properties"],
        "properties": {
          "id": {"type": "string"},
          "icon": {"type": ["object", "null"]},
          "properties": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "required": ["type"],
              "properties": {"type": {"type": "string"}}
            }
          }
        }
      }
    },
    "has_more": {"type": "boolean"},
    "next_cursor": {"type": ["string", "null"]}
  }
}`

var envelopeSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(envelopeSchemaURL, strings.NewReader(envelopeSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(envelopeSchemaURL)
})

// validateEnvelope checks body against the query response schema.
func validateEnvelope(body []byte) error {
	schema, err := envelopeSchema()
	if err != nil {
		return fmt.Errorf("compile response schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return describeValidation(err)
	}
	return nil
}

func describeValidation(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}
	var leaves []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := node.InstanceLocation
			if location == "" {
				location = "#"
			}
			leaves = append(leaves, location+": "+strings.TrimSpace(node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	if len(leaves) == 0 {
		return err
	}
	return errors.New(strings.Join(leaves, "; "))
}
