// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpserver

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// checkRequestSchema describes the body of POST /check_certificate.
const checkRequestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["domain"],
  "properties": {
    "domain": {"type": "string", "minLength": 1, "maxLength": 253}
  }
}`

// checkRequest is the decoded body of POST /check_certificate.
type checkRequest struct {
	Domain string `json:"domain"`
}

func compileSchema(schema string) (*gojsonschema.Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile request schema: %w", err)
	}
	return s, nil
}

// validate checks body against schema and joins the violations into one
// error.
func validate(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return fmt.Errorf("schema violation: %s", strings.Join(violations, "; "))
}
