// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package loader

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pdiddy/chat-export/pkg/types"
)

// exportSchema describes the fields the loader relies on. Other fields are
// allowed and ignored.
const exportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["messages"],
  "properties": {
    "messages": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "role": {"type": "string"},
          "versions": {"type": "array", "items": {"type": "object"}},
          "currentlySelected": {"type": "integer", "minimum": 0},
          "timestamp": {"type": "number"}
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(exportSchema)

// validate checks a decoded document against exportSchema and returns an
// error wrapping types.ErrParse listing every violation.
func validate(doc any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrParse, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", types.ErrParse, strings.Join(msgs, "; "))
}
